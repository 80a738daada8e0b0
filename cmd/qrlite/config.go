package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds defaults read from the environment. Command-line flags
// override every field.
type Config struct {
	Level    string `env:"QRLITE_LEVEL"`
	Margin   int    `env:"QRLITE_MARGIN" envDefault:"4"`
	Scale    int    `env:"QRLITE_SCALE" envDefault:"8"`
	LogLevel string `env:"QRLITE_LOG_LEVEL" envDefault:"info"`
	Parallel bool   `env:"QRLITE_PARALLEL" envDefault:"false"`
}

// loadConfig loads the given .env files (".env" when none are named) into
// the process environment without overriding variables already set, then
// parses Config. A missing .env file is not an error.
func loadConfig(files ...string) (Config, error) {
	var cfg Config
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load env file: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// vars exposes the configuration to kong default tags.
func (c Config) vars() kong.Vars {
	return kong.Vars{
		"level":     c.Level,
		"margin":    strconv.Itoa(c.Margin),
		"scale":     strconv.Itoa(c.Scale),
		"log_level": c.LogLevel,
		"parallel":  strconv.FormatBool(c.Parallel),
	}
}
