package main

import (
	"fmt"
	"io"

	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/filipelima1990/schemactl/internal/provision"
	"github.com/filipelima1990/schemactl/internal/tui"
)

func newBrowseCmd(_, _ io.Writer) *cobra.Command {
	var container string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactive terminal UI for inspecting the provisioning plan",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			m := tui.New(tui.Config{
				Datasets: provision.Datasets(),
				Context:  "docker:" + container,
			})

			p := bubbletea.NewProgram(m, bubbletea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("TUI error: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&container, "container", "postgres", "Postgres container name shown in the status bar")

	return cmd
}
