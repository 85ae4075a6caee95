package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/linkdir/internal/icons"
	"github.com/MKhiriev/linkdir/internal/service"
	"github.com/MKhiriev/linkdir/internal/tree"
	"github.com/MKhiriev/linkdir/models"
)

type screen int

const (
	screenTree screen = iota
	screenForm
)

const defaultStatusTimeout = 3 * time.Second

type appOptions struct {
	resolver      *icons.Resolver
	exportDir     string
	statusTimeout time.Duration
	buildInfo     models.AppBuildInfo
	storage       string
}

type appModel struct {
	ctx  context.Context
	svc  service.LinkTreeService
	opts appOptions

	forest   models.Forest
	rows     []row
	cursor   int
	expanded map[string]bool
	markedID string

	currentScreen screen
	form          itemFormModel

	showConfirm   bool
	confirm       confirmModel
	showPrompt    bool
	prompt        pathPromptModel
	showDetail    bool
	detail        detailModel
	showBuildInfo bool

	busy    bool
	spinner spinner.Model

	status      string
	statusIsErr bool
	statusSeq   int

	width int
}

func newAppModel(ctx context.Context, svc service.LinkTreeService, opts appOptions) appModel {
	if opts.resolver == nil {
		opts.resolver = icons.NewResolver(icons.DefaultCatalog(), "")
	}
	if opts.statusTimeout <= 0 {
		opts.statusTimeout = defaultStatusTimeout
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := appModel{
		ctx:      ctx,
		svc:      svc,
		opts:     opts,
		expanded: make(map[string]bool),
		spinner:  s,
	}
	m.setForest(svc.Forest(), "", "")
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case opDoneMsg:
		m.busy = false
		if msg.err != nil {
			if m.currentScreen == screenForm {
				m.form.err = errorMessage(msg.err)
				return m, nil
			}
			return m.withError(msg.errLabel, msg.err)
		}
		m.currentScreen = screenTree
		if msg.clearMark {
			m.markedID = ""
		}
		m.setForest(msg.forest, msg.focusID, msg.expandID)
		return m.withStatus(msg.status)
	case sideEffectDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m.withError(msg.errLabel, msg.err)
		}
		return m.withStatus(msg.status)
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusIsErr = false
		}
		return m, nil
	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.showBuildInfo:
			return m.updateBuildInfo(msg)
		case m.showConfirm:
			return m.updateConfirm(msg)
		case m.showPrompt:
			return m.updatePrompt(msg)
		case m.showDetail:
			return m.updateDetail(msg)
		case m.currentScreen == screenForm:
			return m.updateForm(msg)
		}
		return m.updateTree(msg)
	}

	// cursor blink and other input internals
	var cmd tea.Cmd
	switch {
	case m.showPrompt:
		m.prompt.input, cmd = m.prompt.input.Update(msg)
	case m.currentScreen == screenForm:
		m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	}
	return m, cmd
}

func (m appModel) updateTree(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.right):
		if r, ok := m.selected(); ok && r.item.IsFolder() {
			m.expanded[r.item.ID] = true
			m.refreshRows()
		}
	case key.Matches(msg, keys.left):
		m.collapseOrAscend()
	case key.Matches(msg, keys.enter):
		r, ok := m.selected()
		if !ok {
			return m, nil
		}
		if r.item.IsFolder() {
			m.expanded[r.item.ID] = !m.expanded[r.item.ID]
			m.refreshRows()
			return m, nil
		}
		m.detail = detailModel{item: r.item, path: r.path}
		m.showDetail = true
	case key.Matches(msg, keys.esc):
		if m.markedID != "" {
			m.markedID = ""
			return m.withStatus("Move cancelled")
		}
	case key.Matches(msg, keys.addLink):
		m.openForm(models.TypeLink, nil)
	case key.Matches(msg, keys.addFolder):
		m.openForm(models.TypeFolder, nil)
	case key.Matches(msg, keys.edit):
		r, ok := m.selected()
		if !ok {
			return m.withStatus("Nothing to edit")
		}
		item := r.item
		m.openForm(item.Type, &item)
	case key.Matches(msg, keys.delete):
		r, ok := m.selected()
		if !ok {
			return m.withStatus("Nothing to delete")
		}
		message := fmt.Sprintf("Delete %q?", r.item.Name)
		if r.item.IsFolder() && len(r.item.Children) > 0 {
			message = fmt.Sprintf("Delete folder %q and everything in it (%d items)?", r.item.Name, r.item.Count()-1)
		}
		m.confirm = confirmModel{message: message, action: confirmDelete, targetID: r.item.ID}
		m.showConfirm = true
	case key.Matches(msg, keys.mark):
		r, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.markedID = r.item.ID
		return m.withStatus(fmt.Sprintf("Moving %q: select a folder and press p, or P for the top level", r.item.Name))
	case key.Matches(msg, keys.drop):
		if m.markedID == "" {
			return m.withStatus("Mark an item with m first")
		}
		r, ok := m.selected()
		if !ok || !r.item.IsFolder() {
			return m.withError("Error moving", tree.ErrNotAFolder)
		}
		return m.run(m.cmdMove(m.markedID, r.item.ID))
	case key.Matches(msg, keys.dropRoot):
		if m.markedID == "" {
			return m.withStatus("Mark an item with m first")
		}
		return m.run(m.cmdMove(m.markedID, tree.RootID))
	case key.Matches(msg, keys.pasteJSON):
		return m.run(m.cmdImportClipboard())
	case key.Matches(msg, keys.importF):
		m.prompt = newPathPromptModel("path/to/linkdir-export.json")
		m.showPrompt = true
	case key.Matches(msg, keys.exportF):
		return m.run(m.cmdExport())
	case key.Matches(msg, keys.copyJSON):
		return m.run(m.cmdCopyJSON())
	case key.Matches(msg, keys.copyURL):
		r, ok := m.selected()
		if !ok || !r.item.IsLink() {
			return m.withStatus("Select a link to copy its URL")
		}
		return m.run(m.cmdCopyURL(r.item.ID))
	case key.Matches(msg, keys.clearAll):
		m.confirm = confirmModel{message: "Clear all items? This cannot be undone.", action: confirmClearAll}
		m.showConfirm = true
	case key.Matches(msg, keys.about):
		m.showBuildInfo = true
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.currentScreen = screenTree
		return m, nil
	case key.Matches(msg, keys.tab):
		m.form = m.form.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.form = m.form.focusPrev()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.form.err = ""
		item := m.form.toItem()
		if m.form.editing {
			return m.run(m.cmdEdit(m.form.id, item))
		}
		return m.run(m.cmdAdd(m.form.parentID, item))
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		c := m.confirm
		m.confirm = confirmModel{}
		switch c.action {
		case confirmDelete:
			return m.run(m.cmdDelete(c.targetID))
		case confirmClearAll:
			return m.run(m.cmdClearAll())
		}
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.confirm = confirmModel{}
	}
	return m, nil
}

func (m appModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.showPrompt = false
		return m, nil
	case key.Matches(msg, keys.enter):
		path := m.prompt.value()
		if path == "" {
			return m, nil
		}
		m.showPrompt = false
		return m.run(m.cmdImportFile(path))
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

func (m appModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.enter), key.Matches(msg, keys.quit):
		m.showDetail = false
	case key.Matches(msg, keys.copyURL):
		m.showDetail = false
		return m.run(m.cmdCopyURL(m.detail.item.ID))
	case key.Matches(msg, keys.edit):
		m.showDetail = false
		item := m.detail.item
		m.openForm(item.Type, &item)
	}
	return m, nil
}

func (m appModel) updateBuildInfo(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) || key.Matches(msg, keys.about) || key.Matches(msg, keys.enter) {
		m.showBuildInfo = false
	}
	return m, nil
}

// run starts cmd unless another operation is still in flight.
func (m appModel) run(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if m.busy {
		return m.withStatus("Please wait for the current operation")
	}
	m.busy = true
	return m, tea.Batch(m.spinner.Tick, cmd)
}

func (m *appModel) openForm(kind models.ItemType, item *models.Item) {
	m.form = newItemFormModel(kind, item)
	if item == nil {
		m.form.parentID = m.targetContainer()
	}
	m.currentScreen = screenForm
}

// targetContainer is where new items go: into the selected folder, next to
// the selected link, or at the top level when nothing is selected.
func (m appModel) targetContainer() string {
	r, ok := m.selected()
	if !ok {
		return tree.RootID
	}
	if r.item.IsFolder() {
		return r.item.ID
	}
	return r.parentID
}

func (m appModel) selected() (row, bool) {
	if len(m.rows) == 0 || m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

func (m *appModel) collapseOrAscend() {
	r, ok := m.selected()
	if !ok {
		return
	}
	if r.item.IsFolder() && m.expanded[r.item.ID] {
		m.expanded[r.item.ID] = false
		m.refreshRows()
		return
	}
	if r.parentID != tree.RootID {
		if idx := indexOfID(m.rows, r.parentID); idx >= 0 {
			m.cursor = idx
		}
	}
}

func (m *appModel) refreshRows() {
	var selectedID string
	if r, ok := m.selected(); ok {
		selectedID = r.item.ID
	}
	m.rows = flatten(m.forest, m.expanded)
	if idx := indexOfID(m.rows, selectedID); idx >= 0 {
		m.cursor = idx
	}
	m.clampCursor()
}

// setForest installs a new snapshot, keeping the selection on focusID or on
// the previously selected node when it still exists.
func (m *appModel) setForest(f models.Forest, focusID, expandID string) {
	var prevID string
	if r, ok := m.selected(); ok {
		prevID = r.item.ID
	}

	m.forest = f
	if expandID != "" && expandID != tree.RootID {
		m.expanded[expandID] = true
	}
	m.rows = flatten(f, m.expanded)

	target := focusID
	if target == "" {
		target = prevID
	}
	if idx := indexOfID(m.rows, target); idx >= 0 {
		m.cursor = idx
	}
	m.clampCursor()

	if m.markedID != "" {
		if _, ok := tree.Find(f, m.markedID); !ok {
			m.markedID = ""
		}
	}
}

func (m *appModel) clampCursor() {
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// withStatus shows a transient notice and schedules its removal.
func (m appModel) withStatus(status string) (appModel, tea.Cmd) {
	if status == "" {
		return m, nil
	}
	m.statusSeq++
	m.status = status
	m.statusIsErr = false
	return m, m.clearStatusAfter()
}

func (m appModel) withError(label string, err error) (appModel, tea.Cmd) {
	text := errorMessage(err)
	if label != "" {
		text = label + ": " + text
	}
	m.statusSeq++
	m.status = text
	m.statusIsErr = true
	return m, m.clearStatusAfter()
}

func (m appModel) clearStatusAfter() tea.Cmd {
	seq := m.statusSeq
	return tea.Tick(m.opts.statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.opts.buildInfo, m.opts.storage))
	}

	var body string
	switch m.currentScreen {
	case screenForm:
		body = m.form.View()
	default:
		body = m.viewTree()
	}

	switch {
	case m.showConfirm:
		body += "\n\n" + m.confirm.View()
	case m.showPrompt:
		body += "\n\n" + m.prompt.View()
	case m.showDetail:
		body += "\n\n" + m.detail.View(m.opts.resolver)
	}

	return appStyle.Render(body)
}

const treeHelp = "a link  f folder  e edit  d delete  m move  p drop  P drop to root  v paste  i import  x export  c copy  u copy url  D clear  ? about  q quit"

func (m appModel) viewTree() string {
	title := titleStyle.Render("linkdir")
	if n := m.forest.Count(); n > 0 {
		title += helpStyle.Render(fmt.Sprintf("  %d items", n))
	}
	if m.busy {
		title += " " + m.spinner.View()
	}

	urlWidth := 60
	if m.width > 0 {
		urlWidth = max(20, m.width-40)
	}

	var b strings.Builder
	if len(m.rows) == 0 {
		b.WriteString("No links yet. Press a to add a link or f to add a folder.\n")
	}
	for i, r := range m.rows {
		b.WriteString(renderRow(r, m.opts.resolver, m.expanded[r.item.ID], i == m.cursor, r.item.ID == m.markedID, urlWidth))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		if m.statusIsErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(statusStyle.Render(m.status))
		}
		b.WriteString("\n")
	}

	return renderPage(title, b.String(), treeHelp)
}
