package config

import (
	"testing"
	"time"

	"github.com/tdewolff/test"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	test.T(t, cfg.Width, 1980)
	test.T(t, cfg.Height, 1280)
	test.Float(t, cfg.Rect.Left, 100)
	test.Float(t, cfg.Rect.Width, 60)
	test.Float(t, cfg.Rect.Height, 30)
	test.Float(t, cfg.Rect.StrokeWidth, 0)
	test.Float(t, cfg.OutlineWidth, 5)
	test.T(t, cfg.OutlineColor, OutlineColor)
	test.T(t, cfg.ThrottleInterval, 100*time.Millisecond)
	test.Float(t, cfg.SnapAngle, 0)
}
