/*
Copyright (c) 2025 Git Tutor Contributors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Package config loads git-tutor's runtime configuration from, in
// ascending priority order: built-in defaults, an optional
// ~/.config/git-tutor/config.toml, a local .env file, and process
// environment variables. The layering mirrors discobot's
// config.Load() plus gastown's TOML-backed CLI defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

const appName = "git-tutor"

// Config holds every tunable for both the CLI REPL and the HTTP server.
type Config struct {
	// Server settings
	Port        int      `toml:"port"`
	CORSOrigins []string `toml:"cors_origins"`

	// Persistence
	PersistPath string `toml:"persist_path"`
	DatabaseDSN string `toml:"database_dsn"`
	Backend     string `toml:"backend"` // "file" or "sqlite"

	// Logging
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"` // "console" or "json"

	// REPL
	NoColor bool `toml:"no_color"`
}

// Default returns the configuration every field falls back to before
// any file or environment override is applied.
func Default() Config {
	dataDir := filepath.Join(xdg.DataHome, appName)
	return Config{
		Port:        8080,
		CORSOrigins: []string{"*"},
		PersistPath: filepath.Join(dataDir, "state.json"),
		DatabaseDSN: filepath.Join(dataDir, "git-tutor.db"),
		Backend:     "file",
		LogLevel:    "info",
		LogFormat:   "console",
		NoColor:     false,
	}
}

// ConfigPath returns the default location of the TOML config file,
// following XDG on every platform the way gastown's own CLI config resolves it.
func ConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

// Load builds a Config from defaults, an optional TOML file at
// ConfigPath, an optional .env file in the working directory, and
// process environment variables, each layer overriding the last.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom is Load with an explicit TOML path in place of ConfigPath,
// for callers honoring a --config flag.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	if fileExists(path) {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	_ = godotenv.Load() // local .env is optional; ignore a missing file

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("GIT_TUTOR_PORT"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Port = n
		}
	}
	if v, ok := os.LookupEnv("GIT_TUTOR_PERSIST_PATH"); ok {
		cfg.PersistPath = v
	}
	if v, ok := os.LookupEnv("GIT_TUTOR_DATABASE_DSN"); ok {
		cfg.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("GIT_TUTOR_BACKEND"); ok {
		cfg.Backend = v
	}
	if v, ok := os.LookupEnv("GIT_TUTOR_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv("GIT_TUTOR_LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	if v, ok := os.LookupEnv("GIT_TUTOR_NO_COLOR"); ok {
		cfg.NoColor = v == "1" || v == "true"
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
