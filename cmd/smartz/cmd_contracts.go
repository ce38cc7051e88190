package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"smartz/internal/domain/entities"
)

func initContractsCmd() {
	contractsCmd := &cobra.Command{
		Use:   "contracts",
		Short: "List registered contracts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()
			return printContracts(cmd.OutOrStdout(), a.registry.Contracts())
		},
	}

	rootCmd.AddCommand(contractsCmd)
}

func printContracts(w io.Writer, contracts []*entities.Contract) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CONTRACT\tBUNDLE\tFIELD\tSUFFIX\tREQUIRED")
	for _, c := range contracts {
		for _, f := range c.Fields() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s%s\t%t\n", c.Name(), c.Bundle(), f.Name, c.Separator(), f.Suffix, f.Required)
		}
	}
	return tw.Flush()
}
