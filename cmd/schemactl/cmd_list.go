package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/filipelima1990/schemactl/internal/provision"
	"github.com/filipelima1990/schemactl/internal/style"
)

func newListCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List datasets and their target databases in apply order",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			runList(stdout)
			return nil
		},
	}
}

func runList(stdout io.Writer) {
	for _, d := range provision.Datasets() {
		fmt.Fprintf(stdout, "%s %s (%s)\n", d.Glyph, d.DisplayName, d.Name)
		for _, env := range d.Environments {
			fmt.Fprintf(stdout, "  %-4s %s\n", env, style.Dim.Render(d.TargetDB(env)))
		}
	}
}
