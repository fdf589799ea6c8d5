package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liquidkit",
		Short: "Liquid text filters for storefront themes",
		Long: `liquidkit runs the storefront Liquid filters (escape, strip_html, truncate,
handleize, pluralize and friends) over text from files or stdin, and serves
an HTTP API theme editors use to preview filter output.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("liquidkit version {{.Version}}\n")

	cmd.AddCommand(newListCmd(), newApplyCmd(), newServeCmd())
	return cmd
}
