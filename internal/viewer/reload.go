package viewer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/durham-house/internal/config"
	"github.com/Faultbox/durham-house/internal/logger"
)

// Title is the window and alert title.
const Title = "Durham"

// MaxFrameTime caps the step the animation takes after a stall, such as
// a blocking alert box.
const MaxFrameTime = 250 * time.Millisecond

// WatchConfig reloads the config file at path whenever it changes. Only
// the newest config is kept until the render loop takes it with Latest.
func WatchConfig(ctx context.Context, path string) (<-chan *config.Config, error) {
	log := logger.Named("config")
	ch := make(chan *config.Config, 1)
	err := config.Watch(ctx, path,
		func(cfg *config.Config) {
			log.Info("config changed", zap.String("path", cfg.Source))
			offer(ch, cfg)
		},
		func(err error) {
			log.Warn("config reload failed", zap.Error(err))
		})
	if err != nil {
		return nil, err
	}
	log.Info("watching config", zap.String("path", path))
	return ch, nil
}

// offer replaces any unread config in ch with cfg.
func offer(ch chan *config.Config, cfg *config.Config) {
	for {
		select {
		case ch <- cfg:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Latest returns the pending config, if any, without blocking.
func Latest(ch <-chan *config.Config) (*config.Config, bool) {
	select {
	case cfg := <-ch:
		return cfg, cfg != nil
	default:
		return nil, false
	}
}
