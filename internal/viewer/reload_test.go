package viewer

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/durham-house/internal/config"
)

func TestOfferKeepsNewest(t *testing.T) {
	ch := make(chan *config.Config, 1)
	first, second := config.Default(), config.Default()
	second.Simulation.RedSpeed = 0.5

	offer(ch, first)
	offer(ch, second)

	got, ok := Latest(ch)
	if !ok || got != second {
		t.Fatalf("Latest = %p, %v; want the second config", got, ok)
	}
	if _, ok := Latest(ch); ok {
		t.Error("channel should be empty")
	}
}

func TestLatestNilChannel(t *testing.T) {
	if _, ok := Latest(nil); ok {
		t.Error("nil channel should never yield a config")
	}
}

func TestWatchConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := config.Default().SaveTo(path); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := WatchConfig(ctx, path)
	if err != nil {
		t.Fatalf("WatchConfig: %v", err)
	}

	cfg := config.Default()
	cfg.Simulation.WalkSpeed = 0.07
	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case got := <-ch:
			if got.Simulation.WalkSpeed == 0.07 {
				return
			}
		case <-deadline:
			t.Fatal("no reload within 5s")
		}
	}
}

func TestWatchConfigMissingDir(t *testing.T) {
	_, err := WatchConfig(context.Background(), filepath.Join(t.TempDir(), "nope", "config.yaml"))
	if err == nil {
		t.Error("expected error for missing directory")
	}
}
