package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/phyten/cobolx/internal/editor"
)

// Service computes the effective settings for a document. Nothing is cached:
// every call re-reads the configuration file that applies to the document.
type Service struct {
	// Explicit is a configuration file that bypasses discovery.
	Explicit string
	XDGHome  string
	Home     string
	// Env and Flags are applied over the file layer, in that order.
	Env    Config
	Flags  Config
	Logger *slog.Logger
}

// Source describes where the file layer came from.
type Source struct {
	Path  string `json:"path,omitempty"`
	Where string `json:"where,omitempty"`
}

// For returns the settings that apply to documentURI. An empty URI uses the
// current directory for discovery.
func (s Service) For(documentURI string) (Settings, Source, error) {
	startDir := "."
	if documentURI != "" {
		p, err := editor.PathFromURI(documentURI)
		if err != nil {
			return Settings{}, Source{}, err
		}
		startDir = filepath.Dir(p)
	}
	path, where, err := Find(startDir, s.Explicit, s.XDGHome, s.Home)
	if err != nil {
		return Settings{}, Source{}, fmt.Errorf("find config: %w", err)
	}
	fileCfg, err := Load(path)
	if err != nil {
		return Settings{}, Source{}, err
	}
	s.logger().Debug("config layer", "path", path, "where", where, "start", startDir)

	merged := Merge(Defaults(), fileCfg, s.Env, s.Flags)
	settings, err := Normalize(merged)
	if err != nil {
		return Settings{}, Source{}, err
	}
	return settings, Source{Path: path, Where: where}, nil
}

func (s Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// LoadDotEnv loads variables from a .env file without overriding variables
// that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}
