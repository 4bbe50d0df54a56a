// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1980
	ScreenHeight = 1280
	MaxDeltaTime = 0.06

	RectLeft        = 100.0
	RectTop         = 100.0
	RectWidth       = 60.0
	RectHeight      = 30.0
	RectAngle       = 0.0
	RectStrokeWidth = 0.0 // без рамки

	OutlineWidth     = 5.0
	ThrottleInterval = 100 * time.Millisecond

	RotateHandleOffset = 40.0 // расстояние от верхней грани до ручки вращения
	ControlSize        = 13.0
	BorderWidth        = 1.0

	NudgeStep     = 1.0
	NudgeStepFast = 10.0
	RotateStep    = 15.0
	SnapThreshold = 5.0

	PanelX       = 10
	PanelY       = 10
	PanelWidth   = 260
	PanelLineGap = 16
)

var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	RectFillColor   = color.RGBA{0, 0, 0, 255}
	RectStrokeColor = color.RGBA{0, 0, 0, 255}
	OutlineColor    = color.RGBA{255, 0, 0, 255}
	BorderColor     = color.RGBA{178, 204, 255, 255}
	ControlColor    = color.RGBA{178, 204, 255, 255}
	PanelBgColor    = color.RGBA{25, 35, 45, 200}
	PanelTextColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
)

// RectConfig describes the initial rectangle.
type RectConfig struct {
	Left, Top     float64
	Width, Height float64
	Angle         float64
	StrokeWidth   float64
	Fill          color.RGBA
}

// Config is the runtime configuration; Default matches the constants above
// and the command line overrides individual fields.
type Config struct {
	Width, Height    int
	Rect             RectConfig
	OutlineWidth     float64
	OutlineColor     color.RGBA
	ThrottleInterval time.Duration
	SnapAngle        float64 // 0 отключает привязку
	SnapThreshold    float64
}

func Default() Config {
	return Config{
		Width:  ScreenWidth,
		Height: ScreenHeight,
		Rect: RectConfig{
			Left:        RectLeft,
			Top:         RectTop,
			Width:       RectWidth,
			Height:      RectHeight,
			Angle:       RectAngle,
			StrokeWidth: RectStrokeWidth,
			Fill:        RectFillColor,
		},
		OutlineWidth:     OutlineWidth,
		OutlineColor:     OutlineColor,
		ThrottleInterval: ThrottleInterval,
		SnapThreshold:    SnapThreshold,
	}
}
