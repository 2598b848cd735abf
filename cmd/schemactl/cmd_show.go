package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/filipelima1990/schemactl/internal/provision"
)

func newShowCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "show <dataset>",
		Short: "Print a dataset's DDL exactly as it will be applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			d, ok := provision.DatasetByName(args[0])
			if !ok {
				return fmt.Errorf("unknown dataset %q (want football or housing)", args[0])
			}
			fmt.Fprint(stdout, d.SQL)
			return nil
		},
	}
}
