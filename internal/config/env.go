package config

import (
	"strings"
)

// Environment variable names. Every name here is also a field of envVars
// (envusage.go); TestFromEnvReadsEveryDocumentedVariable keeps them in step.
const (
	EnvConfig     = "COBOLX_CONFIG"
	EnvProfile    = "COBOLX_PROFILE"
	EnvStorage    = "COBOLX_STORAGE"
	EnvExtensions = "COBOLX_COPYBOOK_EXTENSIONS"
	EnvPathsLocal = "COBOLX_PATHS_LOCAL"
	EnvPathsDsn   = "COBOLX_PATHS_DSN"
	EnvPathsUss   = "COBOLX_PATHS_USS"
	EnvOutput     = "COBOLX_OUTPUT"
	EnvColor      = "COBOLX_COLOR"
	EnvLogLevel   = "COBOLX_LOG_LEVEL"
)

// FromEnv builds a configuration layer from environment variables. Unset or
// blank variables leave the corresponding field nil.
func FromEnv(getenv func(string) string) Config {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := SplitMulti([]string{raw})
		*target = &list
	}

	setString(&cfg.Profile, EnvProfile)
	setString(&cfg.Storage, EnvStorage)
	if raw := getenv(EnvExtensions); strings.TrimSpace(raw) != "" {
		list := normalizeList(strings.Split(raw, ","), true)
		cfg.Extensions = &list
	}
	setList(&cfg.Paths.Local, EnvPathsLocal)
	setList(&cfg.Paths.Dsn, EnvPathsDsn)
	setList(&cfg.Paths.Uss, EnvPathsUss)
	setString(&cfg.Output, EnvOutput)
	setString(&cfg.Color, EnvColor)
	setString(&cfg.LogLevel, EnvLogLevel)
	return cfg
}

// SplitMulti turns repeated values (and comma-separated values) into a flat slice.
func SplitMulti(vals []string) []string {
	out := []string{}
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}
