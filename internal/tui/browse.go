// Package tui provides an interactive terminal UI for inspecting the
// provisioning plan: every target database in apply order, with its DDL.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	bubbletea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/filipelima1990/schemactl/internal/provision"
)

type browseModel struct {
	targets []provision.Target
	cursor  int
	width   int
	height  int
}

func newBrowseModel(targets []provision.Target) browseModel {
	return browseModel{targets: targets}
}

func (m *browseModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m browseModel) update(msg bubbletea.Msg) (browseModel, bubbletea.Cmd) {
	if msg, ok := msg.(bubbletea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Quit):
			return m, bubbletea.Quit

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.targets)-1 {
				m.cursor++
			}

		case key.Matches(msg, keys.Enter):
			if m.cursor < len(m.targets) {
				idx := m.cursor
				return m, func() bubbletea.Msg {
					return navigateMsg{view: viewDetail, target: idx}
				}
			}
		}
	}

	return m, nil
}

func (m browseModel) view() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Provisioning Plan"))
	b.WriteByte('\n')

	colHeader := fmt.Sprintf("  %-16s %-6s %-22s %-10s",
		"DATASET", "ENV", "DATABASE", "STATEMENTS")
	b.WriteString(styleDim.Render(colHeader))
	b.WriteByte('\n')

	sep := strings.Repeat("─", min(m.width, lipgloss.Width(colHeader)+2))
	b.WriteString(styleDim.Render(sep))
	b.WriteByte('\n')

	if len(m.targets) == 0 {
		b.WriteString(styleDim.Render("  No targets."))
		return b.String()
	}

	b.WriteString(styleDim.Render(fmt.Sprintf("  %d targets, applied top to bottom", len(m.targets))))
	b.WriteByte('\n')

	for i, tgt := range m.targets {
		line := fmt.Sprintf("  %-16s %-6s %-22s %-10d",
			tgt.Dataset.DisplayName, tgt.Env, tgt.DB(), statementCount(tgt.Dataset.SQL))
		if i == m.cursor {
			line = styleSelected.Width(m.width).Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}

// statementCount counts top-level SQL statements by terminating semicolons.
// Good enough for the fixed schema files, which contain no string literals
// with embedded semicolons.
func statementCount(sql string) int {
	return strings.Count(sql, ";")
}
