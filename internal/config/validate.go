package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var outputFormats = map[string]struct{}{
	"table": {}, "tsv": {}, "csv": {}, "markdown": {}, "json": {}, "ndjson": {}, "text": {},
}

func CanonicalizeOutput(raw string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return "table", nil
	}
	if v == "md" {
		v = "markdown"
	}
	if _, ok := outputFormats[v]; !ok {
		return "", fmt.Errorf("invalid output: %s", raw)
	}
	return v, nil
}

func CanonicalizeColor(raw string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "", "auto":
		return "auto", nil
	case "always", "never":
		return v, nil
	default:
		return "", fmt.Errorf("invalid color: %s", raw)
	}
}

// ParseLogLevel maps debug|info|warn|error to a slog level.
func ParseLogLevel(raw string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid log_level: %s", raw)
	}
}

// NormalizeExtensions gives every extension a leading dot and drops
// duplicates. The empty extension (exact name) is kept.
func NormalizeExtensions(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, raw := range values {
		ext := strings.TrimSpace(raw)
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, dup := seen[ext]; dup {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out
}

// Normalize canonicalises s and reports every invalid value at once.
func Normalize(s Settings) (Settings, error) {
	var errs []error
	var err error

	s.Profile = strings.TrimSpace(s.Profile)
	s.Storage = strings.TrimSpace(s.Storage)
	s.Extensions = NormalizeExtensions(s.Extensions)
	if s.Output, err = CanonicalizeOutput(s.Output); err != nil {
		errs = append(errs, err)
	}
	if s.Color, err = CanonicalizeColor(s.Color); err != nil {
		errs = append(errs, err)
	}
	if _, err = ParseLogLevel(s.LogLevel); err != nil {
		errs = append(errs, err)
	} else {
		s.LogLevel = strings.ToLower(strings.TrimSpace(s.LogLevel))
		if s.LogLevel == "" || s.LogLevel == "warning" {
			s.LogLevel = "warn"
		}
	}
	if len(s.Dialects) > 0 {
		dialects := make(map[string]PathSettings, len(s.Dialects))
		for name, p := range s.Dialects {
			dialects[CanonicalDialect(name)] = p
		}
		s.Dialects = dialects
	}
	if len(errs) > 0 {
		return s, errors.Join(errs...)
	}
	return s, nil
}
