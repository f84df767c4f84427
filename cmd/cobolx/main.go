// Command cobolx toggles fixed-format COBOL comments and resolves copybooks.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phyten/cobolx/internal/comment"
	"github.com/phyten/cobolx/internal/config"
	"github.com/phyten/cobolx/internal/detect"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errNotFound signals a lookup miss. The result has already been printed, so
// main only sets the exit status.
var errNotFound = errors.New("not found")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd(os.Getenv).ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errNotFound) {
			fmt.Fprintln(os.Stderr, "cobolx:", err)
		}
		stop()
		os.Exit(1)
	}
}

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	getenv     func(string) string
	logLevel   string
	verbose    bool
	color      string
	configPath string
	envFile    string

	level  *slog.LevelVar
	logger *slog.Logger
}

func newRootCmd(getenv func(string) string) *cobra.Command {
	if getenv == nil {
		getenv = os.Getenv
	}
	g := &globalOptions{getenv: getenv, level: new(slog.LevelVar)}

	cmd := &cobra.Command{
		Use:           "cobolx",
		Short:         "Fixed-format COBOL comment toggling and copybook lookup",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setup(cmd)
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&g.logLevel, "log-level", "", "debug|info|warn|error (default from config)")
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "shortcut for --log-level debug")
	flags.StringVar(&g.color, "color", "", "auto|always|never")
	flags.StringVar(&g.configPath, "config", "", "configuration file (overrides discovery and "+config.EnvConfig+")")
	flags.StringVar(&g.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	cmd.AddCommand(editCmd(g, comment.ActionComment))
	cmd.AddCommand(editCmd(g, comment.ActionUncomment))
	cmd.AddCommand(editCmd(g, comment.ActionToggle))
	cmd.AddCommand(classifyCmd(g))
	cmd.AddCommand(resolveCmd(g))
	cmd.AddCommand(envCmd())
	cmd.AddCommand(versionCmd())
	return cmd
}

func (g *globalOptions) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(g.envFile); err != nil {
		return fmt.Errorf("load %s: %w", g.envFile, err)
	}
	raw := g.logLevel
	if g.verbose {
		raw = "debug"
	}
	if raw == "" {
		raw = g.getenv(config.EnvLogLevel)
	}
	level, err := config.ParseLogLevel(raw)
	if err != nil {
		return err
	}
	g.level.Set(level)
	g.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: g.level}))
	return nil
}

// service builds the configuration service. Flags set on the command line
// become the topmost layer.
func (g *globalOptions) service(flags config.Config) config.Service {
	explicit := strings.TrimSpace(g.configPath)
	if explicit == "" {
		explicit = g.getenv(config.EnvConfig)
	}
	if g.color != "" {
		color := g.color
		flags.Color = &color
	}
	return config.Service{
		Explicit: explicit,
		XDGHome:  g.getenv("XDG_CONFIG_HOME"),
		Home:     g.getenv("HOME"),
		Env:      config.FromEnv(g.getenv),
		Flags:    flags,
		Logger:   g.logger,
	}
}

// settingsFor loads the settings of a document and applies the configured
// log level unless one was given on the command line.
func (g *globalOptions) settingsFor(documentURI string, flags config.Config) (config.Settings, config.Source, error) {
	settings, src, err := g.service(flags).For(documentURI)
	if err != nil {
		return settings, src, err
	}
	if g.logLevel == "" && !g.verbose {
		if level, err := config.ParseLogLevel(settings.LogLevel); err == nil {
			g.level.Set(level)
		}
	}
	g.logger.Debug("settings loaded", "config", src.Path, "where", src.Where, "profile", settings.Profile)
	return settings, src, nil
}

// checkSource warns when path is neither a COBOL program nor a copybook. The
// column rules are applied regardless.
func (g *globalOptions) checkSource(path string, data []byte) {
	info := detect.FromPathAndContent(path, data)
	if !info.Known() {
		g.logger.Warn("file does not look like fixed-format COBOL", "file", path)
		return
	}
	g.logger.Debug("source detected", "file", path, "lang", info.Name, "by_content", info.ByContent)
}
