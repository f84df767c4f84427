package main

import (
	"github.com/spf13/cobra"

	"github.com/phyten/cobolx/internal/config"
)

func envCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables cobolx reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return config.WriteEnvUsage(cmd.OutOrStdout())
		},
	}
}
