package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Map.Width != 80 || cfg.Map.Height != 50 {
		t.Errorf("unexpected map size %dx%d", cfg.Map.Width, cfg.Map.Height)
	}
	if cfg.Map.MaxRooms != 30 || cfg.Map.MinRoomSize != 7 || cfg.Map.MaxRoomSize != 12 {
		t.Errorf("unexpected room settings %+v", cfg.Map)
	}
	if cfg.Spawn.MaxMonsters != 4 || cfg.Spawn.MaxItems != 2 {
		t.Errorf("unexpected spawn settings %+v", cfg.Spawn)
	}
	if cfg.Game.FOVRadius != 8 || cfg.Game.TickInterval != 33*time.Millisecond || cfg.Game.LogLines != 5 {
		t.Errorf("unexpected game settings %+v", cfg.Game)
	}
	if cfg.Server.Port != 2222 || cfg.Telemetry.Enabled {
		t.Errorf("unexpected server/telemetry settings %+v %+v", cfg.Server, cfg.Telemetry)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MISTERY_MAP_WIDTH", "100")
	t.Setenv("MISTERY_GAME_TICK_INTERVAL", "50ms")
	t.Setenv("MISTERY_LOG_LEVEL", "debug")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Map.Width != 100 {
		t.Errorf("expected width 100, got %d", cfg.Map.Width)
	}
	if cfg.Game.TickInterval != 50*time.Millisecond {
		t.Errorf("expected 50ms, got %v", cfg.Game.TickInterval)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug, got %s", cfg.Log.Level)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mistery.yaml")
	data := "map:\n  height: 60\nserver:\n  port: 2300\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Map.Height != 60 || cfg.Server.Port != 2300 {
		t.Errorf("file values not applied: %+v %+v", cfg.Map, cfg.Server)
	}
	if cfg.Map.Width != 80 {
		t.Errorf("defaults should fill the rest, width %d", cfg.Map.Width)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestValidate(t *testing.T) {
	base, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero width", func(c *Config) { c.Map.Width = 0 }},
		{"zero rooms", func(c *Config) { c.Map.MaxRooms = 0 }},
		{"negative monsters", func(c *Config) { c.Spawn.MaxMonsters = -1 }},
		{"zero fov", func(c *Config) { c.Game.FOVRadius = 0 }},
		{"zero tick", func(c *Config) { c.Game.TickInterval = 0 }},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := *base
			tc.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
