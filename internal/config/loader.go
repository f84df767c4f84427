package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var settingsKeyMap = map[string]string{
	"profile":             "profile",
	"profile_name":        "profile",
	"storage":             "storage",
	"storage_path":        "storage",
	"copybook_extensions": "copybook_extensions",
	"copybook_extension":  "copybook_extensions",
	"extensions":          "copybook_extensions",
	"output":              "output",
	"color":               "color",
	"log_level":           "log_level",
}

var pathsKeyMap = map[string]string{
	"paths_local": "paths_local",
	"local_paths": "paths_local",
	"local":       "paths_local",
	"paths_dsn":   "paths_dsn",
	"dsn_paths":   "paths_dsn",
	"dsn":         "paths_dsn",
	"paths_uss":   "paths_uss",
	"uss_paths":   "paths_uss",
	"uss":         "paths_uss",
}

var pathsSections = map[string]struct{}{
	"cpy_manager": {},
	"copybook":    {},
	"copybooks":   {},
}

// Load reads a YAML, TOML or JSON configuration file. An empty path yields an
// empty layer.
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	topPaths := make(map[string]any)

	for key, value := range raw {
		norm := normalizeKey(key)
		if _, ok := pathsSections[norm]; ok {
			sub, err := toStringKeyMap(value)
			if err != nil {
				return cfg, fmt.Errorf("%s: %w", key, err)
			}
			if err := fillSection(topPaths, sub, pathsKeyMap, key); err != nil {
				return cfg, err
			}
			continue
		}
		if norm == "dialects" {
			dialects, err := decodeDialects(value)
			if err != nil {
				return cfg, fmt.Errorf("dialects: %w", err)
			}
			cfg.Dialects = dialects
			continue
		}
		if canonical, ok := pathsKeyMap[norm]; ok {
			topPaths[canonical] = value
			continue
		}
		canonical, ok := settingsKeyMap[norm]
		if !ok {
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
		if err := assignSetting(canonical, value, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := assignPaths(topPaths, &cfg.Paths); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decodeDialects(value any) (map[string]PathsConfig, error) {
	block, err := toStringKeyMap(value)
	if err != nil {
		return nil, err
	}
	out := make(map[string]PathsConfig, len(block))
	for name, rawSection := range block {
		sub, err := toStringKeyMap(rawSection)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		section := make(map[string]any)
		if err := fillSection(section, sub, pathsKeyMap, name); err != nil {
			return nil, err
		}
		var paths PathsConfig
		if err := assignPaths(section, &paths); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[CanonicalDialect(name)] = paths
	}
	return out, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func assignSetting(key string, value any, dst *Config) error {
	switch key {
	case "copybook_extensions":
		list, err := expectStringList(value, key, true)
		if err != nil {
			return err
		}
		dst.Extensions = &list
		return nil
	}
	str, err := expectString(value, key)
	if err != nil {
		return err
	}
	trimmed := strings.TrimSpace(str)
	switch key {
	case "profile":
		dst.Profile = &trimmed
	case "storage":
		dst.Storage = &trimmed
	case "output":
		dst.Output = &trimmed
	case "color":
		dst.Color = &trimmed
	case "log_level":
		dst.LogLevel = &trimmed
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}

func assignPaths(section map[string]any, dst *PathsConfig) error {
	for key, value := range section {
		list, err := expectStringList(value, key, false)
		if err != nil {
			return err
		}
		switch key {
		case "paths_local":
			dst.Local = &list
		case "paths_dsn":
			dst.Dsn = &list
		case "paths_uss":
			dst.Uss = &list
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

// expectStringList accepts a list or a comma separated string. keepEmpty
// retains empty entries, which copybook_extensions uses for "no extension".
func expectStringList(value any, field string, keepEmpty bool) ([]string, error) {
	switch v := value.(type) {
	case string:
		if keepEmpty {
			return normalizeList(strings.Split(v, ","), true), nil
		}
		return SplitMulti([]string{v}), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return normalizeList(out, keepEmpty), nil
	case []string:
		return normalizeList(v, keepEmpty), nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func normalizeList(values []string, keepEmpty bool) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" && !keepEmpty {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
