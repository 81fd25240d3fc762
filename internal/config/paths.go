// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DefaultDataDir returns the directory where the bot keeps local state such
// as the fallback order log.
func DefaultDataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "grocery-bot")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".grocery-bot"
	}
	return filepath.Join(home, ".local", "share", "grocery-bot")
}

// DefaultOrderLogPath is the default location of the sqlite fallback order log.
func DefaultOrderLogPath() string {
	return filepath.Join(DefaultDataDir(), "orders.db")
}
