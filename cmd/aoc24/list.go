package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, d := range a.reg.Days() {
				fmt.Fprintf(cmd.OutOrStdout(), "%02d  %s\n", d.Number, d.Title)
			}

			return nil
		},
	}
}
