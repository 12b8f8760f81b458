// Package config loads deckforge configuration from a TOML file with
// environment variable overrides.
//
// The file lives at the XDG config path (~/.config/deckforge/config.toml
// by default). Every field is optional: without a file the zero Config
// selects in-memory stores, the file cache, and no generation model.
//
// # Example
//
//	[server]
//	addr = ":8080"
//
//	[mongo]
//	uri = "mongodb://localhost:27017"
//	database = "deckforge"
//
//	[redis]
//	addr = "localhost:6379"
//
//	[gemini]
//	model = "gemini-2.0-flash"
//	api_key_env = "GEMINI_API_KEY"
//
//	[images]
//	pollinations = true
//	unsplash = true
//	loremflickr = true
//	picsum = true
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/deckforge/deckforge/pkg/errors"
	"github.com/deckforge/deckforge/pkg/images"
)

// appName names the XDG config and cache directories.
const appName = "deckforge"

// Config is the full deckforge configuration.
type Config struct {
	Server ServerConfig  `toml:"server"`
	Mongo  MongoConfig   `toml:"mongo"`
	Redis  RedisConfig   `toml:"redis"`
	Gemini GeminiConfig  `toml:"gemini"`
	Images images.Config `toml:"images"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// MongoConfig configures project and theme persistence. An empty URI
// selects the in-memory stores.
type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// RedisConfig configures the shared artifact cache. An empty address
// selects the file cache.
type RedisConfig struct {
	Addr string `toml:"addr"`
}

// GeminiConfig configures deck generation. The API key is read from the
// environment, never from the file.
type GeminiConfig struct {
	Model     string `toml:"model"`
	APIKeyEnv string `toml:"api_key_env"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Mongo:  MongoConfig{Database: appName},
		Gemini: GeminiConfig{APIKeyEnv: "GEMINI_API_KEY"},
		Images: images.DefaultConfig(),
	}
}

// Load reads the config file at path, or the default location when path
// is empty. A missing file is not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		dir, err := Dir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overrides file values with environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("DECKFORGE_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("DECKFORGE_MONGO_URI"); v != "" {
		cfg.Mongo.URI = v
	}
	if v := os.Getenv("DECKFORGE_MONGO_DB"); v != "" {
		cfg.Mongo.Database = v
	}
	if v := os.Getenv("DECKFORGE_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("DECKFORGE_GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}
}

// APIKey resolves the Gemini API key from the configured environment
// variable. Empty when generation is not configured.
func (c Config) APIKey() string {
	if c.Gemini.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.Gemini.APIKeyEnv)
}

// Dir returns the config directory using the XDG standard
// (~/.config/deckforge/).
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// CacheDir returns the cache directory using the XDG standard
// (~/.cache/deckforge/).
func CacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
