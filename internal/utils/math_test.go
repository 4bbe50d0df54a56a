package utils

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestNormalizeDegrees(t *testing.T) {
	test.Float(t, NormalizeDegrees(0), 0)
	test.Float(t, NormalizeDegrees(360), 0)
	test.Float(t, NormalizeDegrees(450), 90)
	test.Float(t, NormalizeDegrees(-90), 270)
}

func TestSnapAngle(t *testing.T) {
	test.Float(t, SnapAngle(43, 45, 5), 45)
	test.Float(t, SnapAngle(38, 45, 5), 38)
	test.Float(t, SnapAngle(-2, 90, 5), 0)
	test.Float(t, SnapAngle(17, 0, 5), 17)
}
