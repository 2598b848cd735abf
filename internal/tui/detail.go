package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	bubbletea "github.com/charmbracelet/bubbletea"

	"github.com/filipelima1990/schemactl/internal/provision"
)

type detailModel struct {
	target   *provision.Target
	viewport viewport.Model
	width    int
	height   int
}

func newDetailModel() detailModel {
	return detailModel{}
}

func (m *detailModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - 2 // room for title + padding
}

func (m *detailModel) setTarget(t provision.Target) {
	m.target = &t
	m.viewport.SetContent(t.Dataset.SQL)
	m.viewport.GotoTop()
}

func (m detailModel) update(msg bubbletea.Msg) (detailModel, bubbletea.Cmd) {
	if msg, ok := msg.(bubbletea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Back):
			return m, func() bubbletea.Msg {
				return navigateMsg{view: viewBrowse}
			}
		case key.Matches(msg, keys.Quit):
			return m, bubbletea.Quit
		}
	}

	var cmd bubbletea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m detailModel) view() string {
	if m.target == nil {
		return styleDim.Render("  No target selected.")
	}

	title := styleTitle.Render(fmt.Sprintf("%s (%s, %s)",
		m.target.DB(), m.target.Dataset.DisplayName, colorizeEnv(m.target.Env)))
	return title + "\n" + m.viewport.View()
}
