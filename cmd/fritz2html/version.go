package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianc/fritz2html/pkg/fritz2html"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of fritz2html",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "fritz2html version %s\n", fritz2html.Version)
		},
	}
}
