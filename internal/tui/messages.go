package tui

// activeView identifies which view is currently displayed.
type activeView int

const (
	viewBrowse activeView = iota
	viewDetail
)

// navigateMsg requests a view switch.
type navigateMsg struct {
	view   activeView
	target int // index into the target list when navigating to detail
}
