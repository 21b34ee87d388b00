package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	// Camera matches the scene's initial view
	if cfg.Camera.FOV != 20 {
		t.Errorf("expected fov 20, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.Eye != [3]float32{0, 0, 15} {
		t.Errorf("expected eye (0,0,15), got %v", cfg.Camera.Eye)
	}
	if cfg.Camera.AngleStep != 3 || cfg.Camera.ZoomStep != 2 {
		t.Errorf("expected steps 3/2, got %f/%f", cfg.Camera.AngleStep, cfg.Camera.ZoomStep)
	}

	if cfg.Lighting.Position != [3]float32{2.3, 4.0, 3.5} {
		t.Errorf("unexpected light position %v", cfg.Lighting.Position)
	}

	if cfg.Simulation.RedSpeed != 0.04 || cfg.Simulation.GreenSpeed != 0.06 || cfg.Simulation.WalkSpeed != 0.02 {
		t.Errorf("unexpected speeds %+v", cfg.Simulation)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true

camera:
  fov: 30
  eye: [1, 2, 20]

simulation:
  red_speed: 0.1
  seed: 42

assets:
  texture_dir: "textures"
  procedural: true

logging:
  level: "debug"
  log_file: "durham.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Graphics.Width)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Camera.FOV != 30 {
		t.Errorf("expected fov 30, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.Eye != [3]float32{1, 2, 20} {
		t.Errorf("expected eye (1,2,20), got %v", cfg.Camera.Eye)
	}
	// Unset keys keep their defaults
	if cfg.Camera.Near != 1 {
		t.Errorf("expected near 1 kept from defaults, got %f", cfg.Camera.Near)
	}
	if cfg.Simulation.RedSpeed != 0.1 {
		t.Errorf("expected red speed 0.1, got %f", cfg.Simulation.RedSpeed)
	}
	if cfg.Simulation.GreenSpeed != 0.06 {
		t.Errorf("expected green speed 0.06 kept from defaults, got %f", cfg.Simulation.GreenSpeed)
	}
	if cfg.Simulation.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Simulation.Seed)
	}
	if cfg.Assets.TextureDir != "textures" || !cfg.Assets.Procedural {
		t.Errorf("unexpected assets %+v", cfg.Assets)
	}
	if cfg.Logging.LogFile != "durham.log" {
		t.Errorf("expected log file 'durham.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Graphics.Width = 0 }, "window size"},
		{"fov too small", func(c *Config) { c.Camera.FOV = 1 }, "fov"},
		{"fov too large", func(c *Config) { c.Camera.FOV = 51 }, "fov"},
		{"far before near", func(c *Config) { c.Camera.Far = 0.5 }, "clip range"},
		{"zero step", func(c *Config) { c.Camera.ZoomStep = 0 }, "steps"},
		{"negative speed", func(c *Config) { c.Simulation.WalkSpeed = -1 }, "speeds"},
		{"empty texture dir", func(c *Config) { c.Assets.TextureDir = "" }, "texture_dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestSettingsConversion(t *testing.T) {
	cfg := Default()
	cfg.Camera.Eye = [3]float32{3, 4, 5}
	cfg.Simulation.WalkSpeed = 0.05

	cc := cfg.CameraSettings()
	if cc.Eye.X != 3 || cc.Eye.Y != 4 || cc.Eye.Z != 5 {
		t.Errorf("expected eye (3,4,5), got %+v", cc.Eye)
	}
	if cc.FOV != 20 || cc.MinFOV != 2 || cc.MaxFOV != 50 {
		t.Errorf("unexpected fov settings %f [%f, %f]", cc.FOV, cc.MinFOV, cc.MaxFOV)
	}

	sc := cfg.SimSettings()
	if sc.WalkSpeed != 0.05 || sc.RedSpeed != 0.04 {
		t.Errorf("unexpected sim settings %+v", sc)
	}

	if l := cfg.LightSettings(); l.Position != [3]float32{2.3, 4.0, 3.5} || l.Color != [3]float32{1, 1, 1} {
		t.Errorf("unexpected light %+v", l)
	}

	cfg.Assets.Procedural = true
	if tc := cfg.TextureSettings(); tc.Dir != "src" || !tc.Procedural || tc.Files != nil {
		t.Errorf("unexpected texture settings %+v", tc)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", tmpDir)

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Debug.ShowFPS {
					t.Error("expected show_fps to be enabled with debug flag")
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "asset flags",
			setup: func() {
				*flagAssets = "/srv/textures"
				*flagProcedural = true
			},
			verify: func(cfg *Config) {
				if cfg.Assets.TextureDir != "/srv/textures" {
					t.Errorf("expected texture dir /srv/textures, got %s", cfg.Assets.TextureDir)
				}
				if !cfg.Assets.Procedural {
					t.Error("expected procedural to be enabled")
				}
			},
			teardown: func() {
				*flagAssets = ""
				*flagProcedural = false
			},
		},
		{
			name: "seed and watch flags",
			setup: func() {
				*flagSeed = 7
				*flagWatch = true
			},
			verify: func(cfg *Config) {
				if cfg.Simulation.Seed != 7 {
					t.Errorf("expected seed 7, got %d", cfg.Simulation.Seed)
				}
				if !cfg.Debug.WatchConfig {
					t.Error("expected watch_config to be enabled")
				}
			},
			teardown: func() {
				*flagSeed = 0
				*flagWatch = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width from flag, height from file
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
	if cfg.Source != configPath {
		t.Errorf("expected source %s, got %s", configPath, cfg.Source)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("camera:\n  fov: 80\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected error for fov 80, got nil")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Camera.FOV = 35
	cfg.Source = "ignored"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	got, err := Reload(path)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if got.Camera.FOV != 35 {
		t.Errorf("expected fov 35, got %f", got.Camera.FOV)
	}
	if got.Source != path {
		t.Errorf("expected source %s, got %s", path, got.Source)
	}
}

func TestWatch(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("camera:\n  fov: 20\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 8)
	errs := make(chan error, 8)
	err := Watch(ctx, configPath,
		func(c *Config) { changes <- c },
		func(err error) { errs <- err },
	)
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := os.WriteFile(configPath, []byte("camera:\n  fov: 40\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite config: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-changes:
			// A write may be observed as a truncate first
			if c.Camera.FOV == 40 {
				return
			}
		case <-errs:
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), "/nonexistent/dir/config.yaml", func(*Config) {}, func(error) {})
	if err == nil {
		t.Error("expected error watching a missing directory")
	}
}
