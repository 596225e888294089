package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/optionpricer/internal/output"
	"github.com/spf13/cobra"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available output formats and their aliases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Formats: %s, all\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(w, "Aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
			return nil
		},
	}
}
