package tui

import (
	"github.com/MKhiriev/linkdir/models"
)

// opDoneMsg reports a finished forest mutation.
type opDoneMsg struct {
	forest models.Forest
	status string
	// focusID is selected after the refresh when set.
	focusID string
	// expandID is expanded after the refresh when set.
	expandID string
	// clearMark drops the pending move selection.
	clearMark bool
	err       error
	errLabel  string
}

// sideEffectDoneMsg reports an operation that does not change the forest
// (export, clipboard copy).
type sideEffectDoneMsg struct {
	status   string
	err      error
	errLabel string
}

// clearStatusMsg hides the notification with the same sequence number.
type clearStatusMsg struct {
	seq int
}
