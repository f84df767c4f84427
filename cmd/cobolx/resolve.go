package main

import (
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/phyten/cobolx/internal/config"
	"github.com/phyten/cobolx/internal/copybook"
	"github.com/phyten/cobolx/internal/editor"
	"github.com/phyten/cobolx/internal/output"
)

func resolveCmd(g *globalOptions) *cobra.Command {
	var (
		document string
		dialect  string
		storage  string
		profile  string
		format   string
		jobs     int
	)
	cmd := &cobra.Command{
		Use:   "resolve NAME...",
		Short: "Find the files of copybooks referenced by a document",
		Long: `Searches the local folders, then the downloaded datasets, then the
downloaded USS directories, and prints the first match of every NAME in the
order given. Exits with status 1 when any copybook is not found.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uri, err := editor.URIFromPath(document)
			if err != nil {
				return err
			}
			var flags config.Config
			if cmd.Flags().Changed("storage") {
				abs, err := filepath.Abs(storage)
				if err != nil {
					return err
				}
				flags.Storage = &abs
			}
			if cmd.Flags().Changed("profile") {
				flags.Profile = &profile
			}
			settings, src, err := g.settingsFor(uri, flags)
			if err != nil {
				return err
			}

			docPath, err := editor.PathFromURI(uri)
			if err != nil {
				return err
			}
			root := filepath.Dir(docPath)
			if src.Path != "" {
				root = filepath.Dir(src.Path)
			}
			storagePath := settings.Storage
			if storagePath == "" {
				storagePath = root
			} else if !filepath.IsAbs(storagePath) {
				storagePath = filepath.Join(root, storagePath)
			}

			searcher := copybook.FSSearcher{Root: root}
			resolver := copybook.NewResolver(settings, searcher.Search, copybook.WithLogger(g.logger))
			reqs := make([]copybook.Request, len(args))
			for i, name := range args {
				reqs[i] = copybook.Request{
					DocumentURI:  uri,
					CopybookName: name,
					Dialect:      dialect,
					StoragePath:  storagePath,
				}
			}
			lookups, err := resolver.ResolveAll(cmd.Context(), reqs, jobs)
			if err != nil {
				return err
			}
			missing := 0
			for _, l := range lookups {
				if err := output.WriteResolution(cmd.OutOrStdout(), format, l.Request.CopybookName, l.Resolution, l.Found); err != nil {
					return err
				}
				if !l.Found {
					missing++
				}
			}
			if missing > 0 {
				g.logger.Debug("copybooks missing", "missing", missing, "total", len(lookups))
				return errNotFound
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&document, "document", "d", "", "source file that references the copybook")
	cmd.Flags().StringVar(&dialect, "dialect", config.DefaultDialect, "dialect whose copybook folders are searched")
	cmd.Flags().StringVar(&storage, "storage", "", "storage folder holding downloaded copybooks")
	cmd.Flags().StringVar(&profile, "profile", "", "profile of the downloaded copybooks")
	cmd.Flags().StringVarP(&format, "output", "o", "text", "text|json")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "max parallel lookups")
	_ = cmd.MarkFlagRequired("document")
	return cmd
}
