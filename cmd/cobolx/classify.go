package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/phyten/cobolx/internal/comment"
	"github.com/phyten/cobolx/internal/config"
	"github.com/phyten/cobolx/internal/editor"
	"github.com/phyten/cobolx/internal/output"
	"github.com/phyten/cobolx/internal/termcolor"
)

func classifyCmd(g *globalOptions) *cobra.Command {
	var (
		format    string
		textWidth int
	)
	cmd := &cobra.Command{
		Use:   "classify FILE",
		Short: "Print the comment status of every line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			uri, err := editor.URIFromPath(path)
			if err != nil {
				return err
			}
			var flags config.Config
			if cmd.Flags().Changed("output") {
				flags.Output = &format
			}
			settings, _, err := g.settingsFor(uri, flags)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			g.checkSource(path, data)
			reports := comment.Report(editor.NewBuffer(data).Lines())

			mode, err := termcolor.ParseMode(settings.Color)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			outFile, _ := out.(*os.File)
			env := termcolor.EnvFrom(os.Environ())
			opts := output.TableOptions{
				Color:     termcolor.Enabled(mode, outFile, env),
				Palette:   termcolor.DetectPalette(env),
				TextWidth: textWidth,
			}
			return output.WriteReport(out, settings.Output, reports, opts)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", "table", "table|tsv|csv|markdown|ndjson")
	cmd.Flags().IntVar(&textWidth, "text-width", 0, "truncate the text column in table output (0=80, -1=off)")
	return cmd
}
