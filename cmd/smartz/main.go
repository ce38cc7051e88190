package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd *cobra.Command

func init() {
	rootCmd = &cobra.Command{
		Use:   "smartz",
		Short: "Resolve localized structured messages",
		Long: "smartz resolves message contracts (named sets of fields such as code and description) " +
			"against localized resource tables, from the command line or a Discord bot.",
		SilenceUsage: true,
	}

	initResolveCmd()
	initContractsCmd()
	initImportCmd()
	initMigrateCmd()
	initBotCmd()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
