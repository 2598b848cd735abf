package tui

import (
	bubbletea "github.com/charmbracelet/bubbletea"

	"github.com/filipelima1990/schemactl/internal/provision"
)

// Config holds the parameters needed to launch the TUI.
type Config struct {
	Datasets []provision.Dataset // datasets in apply order
	Context  string              // execution context for the status bar, e.g. "docker:postgres"
}

// Model is the root TUI model that routes between views.
type Model struct {
	cfg      Config
	targets  []provision.Target
	active   activeView
	browse   browseModel
	detail   detailModel
	bar      statusBar
	width    int
	height   int
	quitting bool
}

// New creates a new root TUI model.
func New(cfg Config) Model {
	targets := provision.Targets(cfg.Datasets)
	return Model{
		cfg:     cfg,
		targets: targets,
		active:  viewBrowse,
		browse:  newBrowseModel(targets),
		detail:  newDetailModel(),
		bar:     newStatusBar("schemactl " + cfg.Context),
	}
}

// Init implements bubbletea.Model. All data is compiled in, nothing to load.
func (m Model) Init() bubbletea.Cmd {
	return nil
}

// Update processes messages.
func (m Model) Update(msg bubbletea.Msg) (bubbletea.Model, bubbletea.Cmd) {
	switch msg := msg.(type) {
	case bubbletea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, bubbletea.Quit
		}

	case bubbletea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.width = msg.Width
		m.browse.setSize(msg.Width, msg.Height-1) // -1 for statusbar
		m.detail.setSize(msg.Width, msg.Height-1)
		return m, nil

	case navigateMsg:
		m.active = msg.view
		if msg.view == viewDetail && msg.target < len(m.targets) {
			m.detail.setTarget(m.targets[msg.target])
		}
		return m, nil
	}

	var cmd bubbletea.Cmd
	switch m.active {
	case viewBrowse:
		m.browse, cmd = m.browse.update(msg)
	case viewDetail:
		m.detail, cmd = m.detail.update(msg)
	}
	return m, cmd
}

// View renders the active view plus the status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body, hints string
	switch m.active {
	case viewDetail:
		body = m.detail.view()
		hints = "j/k scroll · esc back · q quit"
	default:
		body = m.browse.view()
		hints = "j/k move · enter schema · q quit"
	}

	return body + "\n" + m.bar.render(hints)
}
