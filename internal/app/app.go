// Package app runs the windowed viewer: it owns the SDL window, the GL
// renderer and the main loop.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/durham-house/internal/config"
	"github.com/Faultbox/durham-house/internal/engine/debug"
	"github.com/Faultbox/durham-house/internal/engine/input"
	"github.com/Faultbox/durham-house/internal/engine/renderer"
	"github.com/Faultbox/durham-house/internal/engine/texture"
	"github.com/Faultbox/durham-house/internal/engine/window"
	"github.com/Faultbox/durham-house/internal/logger"
	"github.com/Faultbox/durham-house/internal/viewer"
)

// App is the windowed viewer.
type App struct {
	cfg      *config.Config
	window   *window.Window
	renderer *renderer.Renderer
	viewer   *viewer.Viewer
	input    *input.Input
	shots    *debug.Screenshots
	reloads  <-chan *config.Config
	cancel   context.CancelFunc
	log      *zap.Logger
}

// New opens the window and starts loading textures.
func New(cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg, log: logger.Named("app")}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	var err error
	a.window, err = window.New(window.Config{
		Title:      viewer.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	a.renderer, err = renderer.New(renderer.Config{ClearColor: cfg.Graphics.ClearColor})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	textures := texture.NewRegistry(cfg.TextureSettings(), texture.GLUploader{}, logger.Named("texture"))
	a.viewer, err = viewer.New(ctx, cfg, viewer.Options{
		Drawer:   a.renderer,
		Textures: textures,
		Alerts:   viewer.DialogAlerter{Title: viewer.Title},
	})
	if err != nil {
		a.renderer.Close()
		a.renderer = nil
		a.Close()
		return nil, err
	}

	a.input = input.New(input.DefaultBindings())
	a.shots = debug.NewScreenshots(cfg.Debug.ScreenshotDir, "durham")

	if cfg.Debug.WatchConfig && cfg.Source != "" {
		a.reloads, err = viewer.WatchConfig(ctx, cfg.Source)
		if err != nil {
			a.log.Warn("config watch disabled", zap.Error(err))
		}
	}

	a.log.Info("viewer initialized")
	return a, nil
}

// Run drives frames until the window closes or Esc is pressed.
func (a *App) Run() error {
	last := time.Now()
	fps := debug.NewFPS(5*time.Second, last)

	a.log.Info("starting render loop")
	for {
		now := time.Now()
		dt := min(now.Sub(last), viewer.MaxFrameTime)
		last = now

		if a.input.Update() || a.input.IsKeyPressed(sdl.K_ESCAPE) {
			return nil
		}
		for _, act := range a.input.Actions() {
			// Rejected controls are alerted by the viewer.
			_ = a.viewer.Handle(act)
		}
		if cfg, ok := viewer.Latest(a.reloads); ok {
			a.viewer.Apply(cfg)
		}

		a.viewer.Update(float32(dt.Seconds()))

		w, h := a.window.DrawableSize()
		if err := a.viewer.Render(w, h); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		if a.input.IsKeyPressed(sdl.K_F12) {
			a.screenshot(w, h)
		}
		a.window.SwapBuffers()

		if rate, ok := fps.Tick(time.Now()); ok {
			a.log.Debug("fps", zap.Float64("fps", rate), zap.Duration("frame", dt))
			if a.cfg.Debug.ShowFPS {
				a.window.SetTitle(fmt.Sprintf("%s (%.0f fps)", viewer.Title, rate))
			}
		}
	}
}

func (a *App) screenshot(w, h int32) {
	name, err := a.shots.Capture(w, h)
	if err != nil {
		a.log.Error("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", name))
}

// Close releases everything New created.
func (a *App) Close() {
	a.log.Info("closing viewer")
	a.cancel()
	if a.viewer != nil {
		a.viewer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
