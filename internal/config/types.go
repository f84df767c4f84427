package config

import "strings"

// DefaultDialect is the dialect whose copybook paths live at the top level
// of the configuration.
const DefaultDialect = "COBOL"

// PathsConfig is one layer of copybook folder settings. A nil field means
// "not set in this layer".
type PathsConfig struct {
	Local *[]string `yaml:"paths_local" toml:"paths_local" json:"paths_local"`
	Dsn   *[]string `yaml:"paths_dsn" toml:"paths_dsn" json:"paths_dsn"`
	Uss   *[]string `yaml:"paths_uss" toml:"paths_uss" json:"paths_uss"`
}

// Config is one configuration layer (file, environment or flags).
type Config struct {
	Profile    *string                `yaml:"profile" toml:"profile" json:"profile"`
	Storage    *string                `yaml:"storage" toml:"storage" json:"storage"`
	Extensions *[]string              `yaml:"copybook_extensions" toml:"copybook_extensions" json:"copybook_extensions"`
	Paths      PathsConfig            `yaml:"cpy_manager" toml:"cpy_manager" json:"cpy_manager"`
	Dialects   map[string]PathsConfig `yaml:"dialects" toml:"dialects" json:"dialects"`
	Output     *string                `yaml:"output" toml:"output" json:"output"`
	Color      *string                `yaml:"color" toml:"color" json:"color"`
	LogLevel   *string                `yaml:"log_level" toml:"log_level" json:"log_level"`
}

// PathSettings are the resolved copybook folders of one dialect.
type PathSettings struct {
	Local []string `json:"paths_local"`
	Dsn   []string `json:"paths_dsn"`
	Uss   []string `json:"paths_uss"`
}

// Settings are the effective values after all layers are merged.
type Settings struct {
	Profile    string                  `json:"profile"`
	Storage    string                  `json:"storage"`
	Extensions []string                `json:"copybook_extensions"`
	Paths      PathSettings            `json:"paths"`
	Dialects   map[string]PathSettings `json:"dialects,omitempty"`
	Output     string                  `json:"output"`
	Color      string                  `json:"color"`
	LogLevel   string                  `json:"log_level"`
}

// Defaults returns the baseline settings shared by every command.
func Defaults() Settings {
	return Settings{
		Extensions: []string{"", ".cpy", ".copy"},
		Output:     "table",
		Color:      "auto",
		LogLevel:   "warn",
	}
}

// CanonicalDialect upper-cases a dialect name; empty means COBOL.
func CanonicalDialect(name string) string {
	d := strings.ToUpper(strings.TrimSpace(name))
	if d == "" {
		return DefaultDialect
	}
	return d
}

// PathsFor returns the folders configured for dialect. Dialects other than
// COBOL read only their own block.
func (s Settings) PathsFor(dialect string) PathSettings {
	d := CanonicalDialect(dialect)
	if d == DefaultDialect {
		return s.Paths
	}
	return s.Dialects[d]
}

func (s Settings) LocalPaths(_, dialect string) []string {
	return cloneStrings(s.PathsFor(dialect).Local)
}

func (s Settings) DsnPaths(_, dialect string) []string {
	return cloneStrings(s.PathsFor(dialect).Dsn)
}

func (s Settings) UssPaths(_, dialect string) []string {
	return cloneStrings(s.PathsFor(dialect).Uss)
}

func (s Settings) ProfileName() string { return s.Profile }

func (s Settings) CopybookExtensions(string) []string {
	return cloneStrings(s.Extensions)
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
