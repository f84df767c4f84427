package config

import "strings"

// Merge applies layers over base in order; later layers win field by field.
func Merge(base Settings, layers ...Config) Settings {
	out := base
	out.Extensions = cloneStrings(base.Extensions)
	out.Paths = clonePaths(base.Paths)
	out.Dialects = make(map[string]PathSettings, len(base.Dialects))
	for name, p := range base.Dialects {
		out.Dialects[name] = clonePaths(p)
	}
	for _, layer := range layers {
		out.Profile = overrideString(out.Profile, layer.Profile)
		out.Storage = overrideString(out.Storage, layer.Storage)
		out.Extensions = overrideList(out.Extensions, layer.Extensions)
		out.Paths = mergePaths(out.Paths, layer.Paths)
		for name, p := range layer.Dialects {
			d := CanonicalDialect(name)
			if d == DefaultDialect {
				out.Paths = mergePaths(out.Paths, p)
				continue
			}
			out.Dialects[d] = mergePaths(out.Dialects[d], p)
		}
		out.Output = overrideString(out.Output, layer.Output)
		out.Color = overrideString(out.Color, layer.Color)
		out.LogLevel = overrideString(out.LogLevel, layer.LogLevel)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "table"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	if strings.TrimSpace(out.LogLevel) == "" {
		out.LogLevel = "warn"
	}
	if len(out.Dialects) == 0 {
		out.Dialects = nil
	}
	return out
}

func mergePaths(base PathSettings, layer PathsConfig) PathSettings {
	return PathSettings{
		Local: overrideList(base.Local, layer.Local),
		Dsn:   overrideList(base.Dsn, layer.Dsn),
		Uss:   overrideList(base.Uss, layer.Uss),
	}
}

func clonePaths(p PathSettings) PathSettings {
	return PathSettings{
		Local: cloneStrings(p.Local),
		Dsn:   cloneStrings(p.Dsn),
		Uss:   cloneStrings(p.Uss),
	}
}

// overrideString returns the trimmed layer value when the layer sets one.
func overrideString(current string, layer *string) string {
	if layer == nil {
		return current
	}
	return strings.TrimSpace(*layer)
}

// overrideList replaces current when the layer sets a list. An explicit
// empty list clears the value and stays non-nil so callers can tell it apart
// from "unset".
func overrideList(current []string, layer *[]string) []string {
	if layer == nil {
		return current
	}
	if len(*layer) == 0 {
		return []string{}
	}
	return cloneStrings(*layer)
}
