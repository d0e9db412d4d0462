package main

import (
	"fmt"

	"github.com/gogpu/gasket"
	"github.com/gogpu/gasket/internal/buildinfo"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of gasket",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			fmt.Fprintf(cmd.OutOrStdout(), "library %s\n", gasket.Version)
		},
	}
}
