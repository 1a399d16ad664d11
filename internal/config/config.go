// Package config loads runtime settings. Later sources win: defaults, an
// optional config file, then MISTERY_* environment variables, which may
// also come from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Map       MapConfig       `mapstructure:"map"`
	Spawn     SpawnConfig     `mapstructure:"spawn"`
	Game      GameConfig      `mapstructure:"game"`
	Log       LogConfig       `mapstructure:"log"`
	Server    ServerConfig    `mapstructure:"server"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type MapConfig struct {
	Width       uint32 `mapstructure:"width"`
	Height      uint32 `mapstructure:"height"`
	MaxRooms    int    `mapstructure:"max_rooms"`
	MinRoomSize int    `mapstructure:"min_room_size"`
	MaxRoomSize int    `mapstructure:"max_room_size"`
}

type SpawnConfig struct {
	MaxMonsters int `mapstructure:"max_monsters"`
	MaxItems    int `mapstructure:"max_items"`
}

type GameConfig struct {
	Seed         int64         `mapstructure:"seed"` // 0 picks one from the clock
	FOVRadius    uint32        `mapstructure:"fov_radius"`
	TickInterval time.Duration `mapstructure:"tick_interval"`
	LogLines     int           `mapstructure:"log_lines"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
	File   string `mapstructure:"file"`   // "-" for stderr
}

type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	HostKey string `mapstructure:"host_key"`
}

type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("map.width", 80)
	v.SetDefault("map.height", 50)
	v.SetDefault("map.max_rooms", 30)
	v.SetDefault("map.min_room_size", 7)
	v.SetDefault("map.max_room_size", 12)
	v.SetDefault("spawn.max_monsters", 4)
	v.SetDefault("spawn.max_items", 2)
	v.SetDefault("game.seed", 0)
	v.SetDefault("game.fov_radius", 8)
	v.SetDefault("game.tick_interval", 33*time.Millisecond)
	v.SetDefault("game.log_lines", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "mistery.log")
	v.SetDefault("server.port", 2222)
	v.SetDefault("server.host_key", "server_host_key")
	v.SetDefault("telemetry.enabled", false)
}

// Load reads .env (if present), then path (if non-empty), then the
// environment. A missing .env is not an error; a missing config file is.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("MISTERY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the game cannot start with.
func (c *Config) Validate() error {
	switch {
	case c.Map.Width == 0 || c.Map.Height == 0:
		return fmt.Errorf("config: map size %dx%d must be positive", c.Map.Width, c.Map.Height)
	case c.Map.MinRoomSize <= 0 || c.Map.MaxRoomSize <= 0:
		return errors.New("config: room sizes must be positive")
	case c.Map.MaxRooms <= 0:
		return errors.New("config: map.max_rooms must be positive")
	case c.Spawn.MaxMonsters < 0 || c.Spawn.MaxItems < 0:
		return errors.New("config: spawn limits cannot be negative")
	case c.Game.FOVRadius == 0:
		return errors.New("config: game.fov_radius must be positive")
	case c.Game.TickInterval <= 0:
		return errors.New("config: game.tick_interval must be positive")
	case c.Game.LogLines <= 0:
		return errors.New("config: game.log_lines must be positive")
	case c.Server.Port <= 0 || c.Server.Port > 65535:
		return fmt.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	return nil
}
