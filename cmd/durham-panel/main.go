// Package main is the Durham house viewer with an ImGui control panel.
// The scene renders into an offscreen target shown beside the controls.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/durham-house/internal/config"
	"github.com/Faultbox/durham-house/internal/engine/debug"
	"github.com/Faultbox/durham-house/internal/engine/framebuffer"
	"github.com/Faultbox/durham-house/internal/engine/renderer"
	"github.com/Faultbox/durham-house/internal/engine/texture"
	"github.com/Faultbox/durham-house/internal/engine/ui"
	"github.com/Faultbox/durham-house/internal/logger"
	"github.com/Faultbox/durham-house/internal/viewer"
)

const panelWidth = 320

func main() {
	runtime.LockOSThread()
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Durham house (panel) ===", zap.String("config", cfg.Source))

	if err := run(cfg); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("viewer closed normally")
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend, err := ui.NewBackend(viewer.Title, int32(cfg.Graphics.Width), int32(cfg.Graphics.Height), [3]float32{0.1, 0.1, 0.12})
	if err != nil {
		return err
	}

	r, err := renderer.New(renderer.Config{ClearColor: cfg.Graphics.ClearColor})
	if err != nil {
		return err
	}
	textures := texture.NewRegistry(cfg.TextureSettings(), texture.GLUploader{}, logger.Named("texture"))
	v, err := viewer.New(ctx, cfg, viewer.Options{
		Drawer:   r,
		Textures: textures,
		Alerts:   viewer.DialogAlerter{Title: viewer.Title},
	})
	if err != nil {
		r.Close()
		return err
	}
	defer v.Close()

	target, err := framebuffer.New(int32(cfg.Graphics.Width-panelWidth), int32(cfg.Graphics.Height))
	if err != nil {
		return err
	}
	defer target.Destroy()

	var reloads <-chan *config.Config
	if cfg.Debug.WatchConfig && cfg.Source != "" {
		if reloads, err = viewer.WatchConfig(ctx, cfg.Source); err != nil {
			logger.Warn("config watch disabled", zap.Error(err))
		}
	}

	shots := debug.NewScreenshots(cfg.Debug.ScreenshotDir, "durham-panel")
	panel := ui.NewPanel(v)
	panel.Screenshot = func() {
		restore := target.Begin()
		w, h := target.Size()
		name, err := shots.Capture(w, h)
		restore()
		if err != nil {
			logger.Error("screenshot failed", zap.Error(err))
			panel.Status = "Screenshot failed: " + err.Error()
			return
		}
		logger.Info("screenshot saved", zap.String("path", name))
		panel.Status = "Saved " + name
	}

	last := time.Now()
	fps := debug.NewFPS(5*time.Second, last)
	var frameErr error

	backend.Run(func() {
		if frameErr != nil {
			return
		}
		now := time.Now()
		dt := min(now.Sub(last), viewer.MaxFrameTime)
		last = now

		if c, ok := viewer.Latest(reloads); ok {
			v.Apply(c)
		}
		v.Update(float32(dt.Seconds()))

		restore := target.Begin()
		w, h := target.Size()
		if err := v.Render(w, h); err != nil {
			frameErr = err
			logger.Error("render error", zap.Error(err))
		}
		restore()

		nextW, nextH := panel.Viewport(target.Texture(), panelWidth)
		target.Resize(nextW, nextH)
		panel.Controls(panelWidth)

		if ui.IsKeyPressed(imgui.KeyF12) {
			panel.Screenshot()
		}
		if rate, ok := fps.Tick(now); ok {
			logger.Debug("fps", zap.Float64("fps", rate))
			if cfg.Debug.ShowFPS {
				backend.SetWindowTitle(fmt.Sprintf("%s (%.0f fps)", viewer.Title, rate))
			}
		}
	})
	return frameErr
}
