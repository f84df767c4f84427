package config

import (
	"io"
	"text/tabwriter"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "COBOLX"

// envVars documents the environment variables read by FromEnv and the CLI.
// Values are read through FromEnv with an injectable getenv, so the struct
// only drives the usage table. Keep its fields in step with the Env*
// constants in env.go.
type envVars struct {
	Config     string   `envconfig:"CONFIG" desc:"configuration file; disables discovery"`
	Profile    string   `envconfig:"PROFILE" desc:"profile of downloaded copybooks"`
	Storage    string   `envconfig:"STORAGE" desc:"folder holding zowe/copybooks/<profile>/<dataset>"`
	Extensions []string `envconfig:"COPYBOOK_EXTENSIONS" default:",.cpy,.copy" desc:"extensions tried in local folders; empty entry means the exact name"`
	PathsLocal []string `envconfig:"PATHS_LOCAL" desc:"local copybook folders (glob patterns allowed)"`
	PathsDsn   []string `envconfig:"PATHS_DSN" desc:"downloaded datasets searched after local folders"`
	PathsUss   []string `envconfig:"PATHS_USS" desc:"downloaded USS directories searched last"`
	Output     string   `envconfig:"OUTPUT" default:"table" desc:"table|tsv|csv|markdown|json|ndjson|text"`
	Color      string   `envconfig:"COLOR" default:"auto" desc:"auto|always|never"`
	LogLevel   string   `envconfig:"LOG_LEVEL" default:"warn" desc:"debug|info|warn|error"`
}

const envUsageFormat = "KEY\tTYPE\tDEFAULT\tDESCRIPTION\n" +
	"{{range .}}{{usage_key .}}\t{{usage_type .}}\t{{usage_default .}}\t{{usage_description .}}\n{{end}}"

// WriteEnvUsage prints the environment variables as an aligned table.
func WriteEnvUsage(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	if err := envconfig.Usagef(envPrefix, &envVars{}, tw, envUsageFormat); err != nil {
		return err
	}
	return tw.Flush()
}
