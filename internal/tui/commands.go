package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/linkdir/internal/tree"
	"github.com/MKhiriev/linkdir/models"
)

// Service calls run inside tea.Cmd functions so storage and clipboard I/O
// never block the event loop.

func (m appModel) cmdAdd(parentID string, item models.Item) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		f, err := svc.Add(ctx, parentID, item)
		if err != nil {
			return opDoneMsg{forest: f, err: err, errLabel: "Error adding item"}
		}
		status := "Link added"
		if item.IsFolder() {
			status = "Folder added"
		}
		return opDoneMsg{forest: f, status: status, focusID: lastChildID(f, parentID), expandID: parentID}
	}
}

func (m appModel) cmdEdit(id string, item models.Item) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		f, err := svc.Edit(ctx, id, item)
		if err != nil {
			return opDoneMsg{forest: f, err: err, errLabel: "Error saving item"}
		}
		return opDoneMsg{forest: f, status: "Item updated", focusID: id}
	}
}

func (m appModel) cmdDelete(id string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		f, err := svc.Delete(ctx, id)
		if err != nil {
			return opDoneMsg{forest: f, err: err, errLabel: "Error deleting item"}
		}
		return opDoneMsg{forest: f, status: "Item deleted successfully!"}
	}
}

func (m appModel) cmdMove(id, destParentID string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		f, err := svc.Move(ctx, id, destParentID)
		if err != nil {
			return opDoneMsg{forest: f, err: err, errLabel: "Error moving item"}
		}
		return opDoneMsg{forest: f, status: "Item moved", focusID: id, expandID: destParentID, clearMark: true}
	}
}

func (m appModel) cmdClearAll() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		f, err := svc.ClearAll(ctx)
		if err != nil {
			return opDoneMsg{forest: f, err: err, errLabel: "Error clearing items"}
		}
		return opDoneMsg{forest: f, status: "All items cleared successfully!", clearMark: true}
	}
}

func (m appModel) cmdImportFile(path string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		f, err := svc.ImportFromFile(ctx, path)
		if err != nil {
			return opDoneMsg{forest: f, err: err, errLabel: "Error importing file"}
		}
		return opDoneMsg{forest: f, status: "Import successful!", clearMark: true}
	}
}

func (m appModel) cmdImportClipboard() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		f, err := svc.ImportFromClipboard(ctx)
		if err != nil {
			return opDoneMsg{forest: f, err: err, errLabel: "Error importing from clipboard"}
		}
		return opDoneMsg{forest: f, status: "Import from clipboard successful!", clearMark: true}
	}
}

func (m appModel) cmdExport() tea.Cmd {
	ctx, svc, dir := m.ctx, m.svc, m.opts.exportDir
	return func() tea.Msg {
		path, err := svc.Export(ctx, dir)
		if err != nil {
			return sideEffectDoneMsg{err: err, errLabel: "Error exporting"}
		}
		return sideEffectDoneMsg{status: fmt.Sprintf("Exported to %s", path)}
	}
}

func (m appModel) cmdCopyJSON() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		if err := svc.CopyToClipboard(ctx); err != nil {
			return sideEffectDoneMsg{err: err, errLabel: "Error copying to clipboard"}
		}
		return sideEffectDoneMsg{status: "Copied to clipboard!"}
	}
}

func (m appModel) cmdCopyURL(id string) tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		url, err := svc.CopyURL(ctx, id)
		if err != nil {
			return sideEffectDoneMsg{err: err, errLabel: "Error copying URL"}
		}
		return sideEffectDoneMsg{status: "Copied " + url}
	}
}

// lastChildID is the ID of the most recently appended child of parentID.
func lastChildID(f models.Forest, parentID string) string {
	children := []models.Item(f)
	if parentID != tree.RootID {
		loc, ok := tree.Find(f, parentID)
		if !ok {
			return ""
		}
		children = loc.Item.Children
	}
	if len(children) == 0 {
		return ""
	}
	return children[len(children)-1].ID
}
