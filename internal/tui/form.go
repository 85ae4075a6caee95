package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/linkdir/models"
)

const (
	fieldName = iota
	fieldURL
	fieldDescription
	fieldIcon
)

// itemFormModel edits the fields of a link or a folder. Folders only have a
// name and an icon.
type itemFormModel struct {
	kind     models.ItemType
	inputs   []textinput.Model
	labels   []string
	fields   []int
	focus    int
	editing  bool
	id       string
	parentID string
	err      string
}

func newItemFormModel(kind models.ItemType, item *models.Item) itemFormModel {
	m := itemFormModel{kind: kind}
	if kind == models.TypeLink {
		m.fields = []int{fieldName, fieldURL, fieldDescription, fieldIcon}
		m.labels = []string{"Name:       ", "URL:        ", "Description:", "Icon:       "}
	} else {
		m.fields = []int{fieldName, fieldIcon}
		m.labels = []string{"Name:       ", "Icon:       "}
	}

	m.inputs = make([]textinput.Model, len(m.fields))
	for i := range m.inputs {
		m.inputs[i] = textinput.New()
		m.inputs[i].Width = 50
	}
	m.inputs[0].Focus()
	m.inputs[len(m.inputs)-1].Placeholder = "symbol name or image url"

	if item == nil {
		return m
	}

	m.editing = true
	m.id = item.ID
	for i, f := range m.fields {
		m.inputs[i].SetValue(fieldValue(*item, f))
	}
	return m
}

func fieldValue(item models.Item, field int) string {
	switch field {
	case fieldName:
		return item.Name
	case fieldURL:
		return item.URL
	case fieldDescription:
		return item.Description
	case fieldIcon:
		return item.Icon
	}
	return ""
}

func (m itemFormModel) toItem() models.Item {
	item := models.Item{Type: m.kind}
	for i, f := range m.fields {
		v := m.inputs[i].Value()
		switch f {
		case fieldName:
			item.Name = v
		case fieldURL:
			item.URL = v
		case fieldDescription:
			item.Description = strings.TrimSpace(v)
		case fieldIcon:
			item.Icon = strings.TrimSpace(v)
		}
	}
	if m.kind == models.TypeFolder {
		item.Children = []models.Item{}
	}
	return item
}

func (m itemFormModel) focusNext() itemFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m itemFormModel) focusPrev() itemFormModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m itemFormModel) View() string {
	noun := "link"
	if m.kind == models.TypeFolder {
		noun = "folder"
	}
	title := "New " + noun
	if m.editing {
		title = "Edit " + noun
	}

	var b strings.Builder
	for i := range m.inputs {
		b.WriteString(m.labels[i])
		b.WriteString(" [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}
	return renderPage(titleStyle.Render(title), b.String(), "esc cancel  tab next field  enter save")
}

// pathPromptModel asks for the file to import.
type pathPromptModel struct {
	input textinput.Model
}

func newPathPromptModel(placeholder string) pathPromptModel {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = 60
	in.Focus()
	return pathPromptModel{input: in}
}

func (m pathPromptModel) value() string {
	return strings.TrimSpace(m.input.Value())
}

func (m pathPromptModel) View() string {
	content := "Import from file\n\n[" + m.input.View() + "]\n\nenter import  esc cancel"
	return overlayBoxStyle.Render(content)
}
