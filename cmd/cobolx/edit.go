package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phyten/cobolx/internal/comment"
	"github.com/phyten/cobolx/internal/editor"
	"github.com/phyten/cobolx/internal/output"
)

var editShort = map[comment.Action]string{
	comment.ActionComment:   "Comment out the selected lines",
	comment.ActionUncomment: "Uncomment the selected lines",
	comment.ActionToggle:    "Comment the selection unless every line is already a comment",
}

func editCmd(g *globalOptions, action comment.Action) *cobra.Command {
	var (
		selections []string
		write      bool
		format     string
	)
	cmd := &cobra.Command{
		Use:   action.String() + " FILE",
		Short: editShort[action],
		Long: `Selections are 1-based: N, N-M or LINE:COL-LINE:COL. Without -l the whole
file is one selection. Blank lines around a selection are left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			g.checkSource(path, data)
			buf := editor.NewBuffer(data)

			sels := make([]editor.Selection, 0, len(selections))
			for _, raw := range selections {
				sel, err := editor.ParseSelection(raw)
				if err != nil {
					return err
				}
				sels = append(sels, sel)
			}
			if len(sels) == 0 {
				sels = append(sels, buf.FullRange())
			}

			edits := comment.Toggle(buf, sels, action)
			g.logger.Debug("replacements computed", "file", path, "action", action.String(), "selections", len(sels), "edits", len(edits), "eol", buf.EOL().Name())

			switch format {
			case "ndjson":
				return output.WriteReplacementsNDJSON(cmd.OutOrStdout(), edits)
			case "", "text":
			default:
				return fmt.Errorf("invalid format: %s (want text|ndjson)", format)
			}

			if err := buf.ApplyEdits(edits); err != nil {
				return fmt.Errorf("apply edits: %w", err)
			}
			if !write {
				_, err := fmt.Fprint(cmd.OutOrStdout(), buf.Text())
				return err
			}
			if len(edits) == 0 {
				return nil
			}
			if err := os.WriteFile(path, []byte(buf.Text()), info.Mode().Perm()); err != nil {
				return err
			}
			g.logger.Info("file updated", "file", path, "edits", len(edits))
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&selections, "lines", "l", nil, "selection to edit (repeatable)")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to FILE")
	cmd.Flags().StringVar(&format, "format", "text", "text|ndjson (ndjson lists the replacements without applying them)")
	return cmd
}
