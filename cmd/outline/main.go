// cmd/outline/main.go
package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-shape-outline/internal/app"
	"go-shape-outline/internal/config"
	"go-shape-outline/internal/logging"
	"go-shape-outline/internal/sched"
	"go-shape-outline/internal/state"
	"go-shape-outline/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tdewolff/argp"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Outline is the command line of the demo.
type Outline struct {
	Width    int     `short:"W" default:"1980" desc:"Canvas width in pixels"`
	Height   int     `short:"H" default:"1280" desc:"Canvas height in pixels"`
	Left     float64 `default:"100" desc:"Initial left of the rectangle"`
	Top      float64 `default:"100" desc:"Initial top of the rectangle"`
	Angle    float64 `short:"a" default:"0" desc:"Initial rotation in degrees"`
	Snap     float64 `default:"0" desc:"Snap rotation to multiples of this angle"`
	Color    string  `short:"c" default:"#ff0000" desc:"Outline color"`
	Throttle int     `short:"t" default:"100" desc:"Minimum milliseconds between outline updates"`
	Snapshot string  `short:"o" desc:"Render the initial scene to a PNG file and exit"`
	Pprof    string  `desc:"Serve pprof on this address, e.g. localhost:6060"`
	Verbose  bool    `short:"v" desc:"Log every outline pass"`
}

func main() {
	root := argp.NewCmd(&Outline{}, "Rectangle with a live four-segment outline")
	root.Parse()
}

func (cmd *Outline) config() (config.Config, error) {
	cfg := config.Default()
	if cmd.Width <= 0 || cmd.Height <= 0 {
		return cfg, fmt.Errorf("canvas size must be positive, got %dx%d", cmd.Width, cmd.Height)
	}
	outlineColor, err := render.ParseHex(cmd.Color)
	if err != nil {
		return cfg, err
	}
	cfg.Width, cfg.Height = cmd.Width, cmd.Height
	cfg.Rect.Left, cfg.Rect.Top, cfg.Rect.Angle = cmd.Left, cmd.Top, cmd.Angle
	cfg.SnapAngle = cmd.Snap
	cfg.OutlineColor = outlineColor
	cfg.ThrottleInterval = time.Duration(cmd.Throttle) * time.Millisecond
	return cfg, nil
}

func (cmd *Outline) Run() error {
	level := slog.LevelInfo
	if cmd.Verbose {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := cmd.config()
	if err != nil {
		return err
	}
	if cmd.Snapshot != "" {
		return snapshot(cfg, cmd.Snapshot)
	}

	if cmd.Pprof != "" {
		go func() {
			log.Println(http.ListenAndServe(cmd.Pprof, nil))
		}()
	}

	loop := sched.NewLoop()
	scene := app.NewScene(cfg, loop)
	defer scene.Close()

	sm := state.NewStateMachine()
	sm.SetState(state.NewCanvasState(sm, scene, loop))
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          cfg.Width,
		height:         cfg.Height,
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Shape Outline")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// snapshot renders the scene with its initial outline offscreen.
func snapshot(cfg config.Config, filename string) error {
	scene := app.NewScene(cfg, sched.NewLoop())
	defer scene.Close()

	r := render.NewRasterRenderer(cfg.Width, cfg.Height)
	scene.Surface.Render(r)

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := r.EncodePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	logging.Logger().Info("snapshot written", "file", filename, "passes", scene.Outline.Passes())
	return nil
}
