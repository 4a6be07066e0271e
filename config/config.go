// Package config reads the game settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/lanedash/share"
	"github.com/zucenko/lanedash/store"
)

const (
	EnvAssets     = "LANEDASH_ASSETS"
	EnvStore      = "LANEDASH_STORE"
	EnvStorePath  = "LANEDASH_STORE_PATH"
	EnvLogLevel   = "LANEDASH_LOG_LEVEL"
	EnvWidth      = "LANEDASH_WIDTH"
	EnvHeight     = "LANEDASH_HEIGHT"
	EnvMute       = "LANEDASH_MUTE"
	EnvDebugBoxes = "LANEDASH_DEBUG_BOXES"
	EnvGameURL    = "LANEDASH_GAME_URL"
)

type Config struct {
	AssetDir   string
	Store      string
	StorePath  string
	LogLevel   log.Level
	Width      int
	Height     int
	Mute       bool
	DebugBoxes bool
	GameURL    string

	// variables left unset, logged by Apply once the level is known
	defaulted []string
}

// Load reads .env from the working directory when present, then the
// environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	c := &Config{}
	c.AssetDir = c.getenv(EnvAssets, "assets")
	c.Store = c.getenv(EnvStore, store.KindSQLite)
	c.GameURL = c.getenv(EnvGameURL, share.DefaultGameURL)

	switch c.Store {
	case store.KindSQLite:
		c.StorePath = c.getenv(EnvStorePath, "lanedash.db")
	case store.KindFile:
		c.StorePath = c.getenv(EnvStorePath, ".lanedash")
	case store.KindMemory:
	default:
		return nil, fmt.Errorf("%s: unknown store %q", EnvStore, c.Store)
	}

	level, err := log.ParseLevel(c.getenv(EnvLogLevel, "info"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EnvLogLevel, err)
	}
	c.LogLevel = level

	if c.Width, err = c.getInt(EnvWidth, 480); err != nil {
		return nil, err
	}
	if c.Height, err = c.getInt(EnvHeight, 800); err != nil {
		return nil, err
	}
	if c.Mute, err = c.getBool(EnvMute, false); err != nil {
		return nil, err
	}
	if c.DebugBoxes, err = c.getBool(EnvDebugBoxes, false); err != nil {
		return nil, err
	}
	return c, nil
}

// Apply configures the standard logger.
func (c *Config) Apply() {
	log.SetLevel(c.LogLevel)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	for _, d := range c.defaulted {
		log.Debug(d)
	}
}

func (c *Config) defaultTo(key string, def interface{}) {
	c.defaulted = append(c.defaulted, fmt.Sprintf("Defaulting %s to %v", key, def))
}

func (c *Config) getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		c.defaultTo(key, fmt.Sprintf("%q", def))
		return def
	}
	return v
}

func (c *Config) getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		c.defaultTo(key, def)
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s: want a positive integer, got %q", key, v)
	}
	return n, nil
}

func (c *Config) getBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		c.defaultTo(key, def)
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
