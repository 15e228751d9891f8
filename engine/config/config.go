package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/lumina/engine/core"
	"github.com/spaghettifunk/lumina/engine/math"
)

const (
	DefaultMaxGeometryCount uint32 = 4096
	// Hard ceiling for the geometry slot table. Allocations are dense
	// arrays, so an absurd configured count is clamped rather than honored.
	MaxGeometryCountLimit uint32 = 1 << 20
)

/**
 * @brief Engine configuration, loaded from a TOML file or defaulted.
 */
type Config struct {
	/** @brief Maximum number of geometry slots a scene may hold. */
	MaxGeometryCount uint32 `toml:"max_geometry_count"`
	/** @brief Default name prefix for unnamed scenes. */
	SceneName string `toml:"scene_name"`
	/** @brief Log level: debug, info, warn, error, fatal. */
	LogLevel string `toml:"log_level"`
}

func Default() *Config {
	return &Config{
		MaxGeometryCount: DefaultMaxGeometryCount,
		SceneName:        "lumina-scene",
		LogLevel:         "debug",
	}
}

// Load reads a TOML configuration file. A missing file is not an
// error; defaults are returned so the engine can run unconfigured.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			core.LogDebug("no config file at '%s', using defaults", path)
			return cfg, nil
		}
		err = fmt.Errorf("failed to read config '%s': %w", path, err)
		core.LogError(err.Error())
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		err = fmt.Errorf("failed to parse config '%s': %w", path, err)
		core.LogError(err.Error())
		return nil, err
	}

	cfg.sanitize()
	return cfg, nil
}

func (c *Config) sanitize() {
	if c.MaxGeometryCount == 0 {
		core.LogWarn("max_geometry_count must be > 0. Defaulting to %d.", DefaultMaxGeometryCount)
		c.MaxGeometryCount = DefaultMaxGeometryCount
	}
	c.MaxGeometryCount = math.Clamp(c.MaxGeometryCount, 1, MaxGeometryCountLimit)
	if c.SceneName == "" {
		c.SceneName = "lumina-scene"
	}
	if c.LogLevel != "" {
		core.SetLogLevel(c.LogLevel)
	}
}
