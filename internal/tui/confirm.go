package tui

// confirmAction is what happens when a confirmation is accepted.
type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDelete
	confirmClearAll
)

type confirmModel struct {
	message string
	action  confirmAction
	// targetID is the node to delete for confirmDelete.
	targetID string
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
