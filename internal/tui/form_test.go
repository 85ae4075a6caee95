package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/linkdir/models"
)

func TestItemForm_NewLink(t *testing.T) {
	form := newItemFormModel(models.TypeLink, nil)
	require.Len(t, form.inputs, 4)
	assert.False(t, form.editing)

	form.inputs[0].SetValue("Go")
	form.inputs[1].SetValue("go.dev")
	form.inputs[2].SetValue("  the language  ")
	form.inputs[3].SetValue(" code ")

	item := form.toItem()
	assert.Equal(t, models.TypeLink, item.Type)
	assert.Equal(t, "Go", item.Name)
	assert.Equal(t, "go.dev", item.URL)
	assert.Equal(t, "the language", item.Description)
	assert.Equal(t, "code", item.Icon)
	assert.Nil(t, item.Children)
}

func TestItemForm_NewFolder(t *testing.T) {
	form := newItemFormModel(models.TypeFolder, nil)
	require.Len(t, form.inputs, 2)

	form.inputs[0].SetValue("Work")

	item := form.toItem()
	assert.True(t, item.IsFolder())
	assert.Equal(t, "Work", item.Name)
	assert.NotNil(t, item.Children)
	assert.Empty(t, item.URL)
}

func TestItemForm_EditPrefills(t *testing.T) {
	existing := models.NewLink("Go", "https://go.dev")
	existing.ID = "id-1"
	existing.Description = "docs"

	form := newItemFormModel(models.TypeLink, &existing)

	assert.True(t, form.editing)
	assert.Equal(t, "id-1", form.id)
	assert.Equal(t, "Go", form.inputs[0].Value())
	assert.Equal(t, "https://go.dev", form.inputs[1].Value())
	assert.Equal(t, "docs", form.inputs[2].Value())
}

func TestItemForm_FocusWraps(t *testing.T) {
	form := newItemFormModel(models.TypeFolder, nil)

	form = form.focusNext()
	assert.Equal(t, 1, form.focus)
	form = form.focusNext()
	assert.Equal(t, 0, form.focus)
	form = form.focusPrev()
	assert.Equal(t, 1, form.focus)
}

func TestPathPrompt_TrimsValue(t *testing.T) {
	prompt := newPathPromptModel("file.json")
	prompt.input.SetValue("  /tmp/links.json ")
	assert.Equal(t, "/tmp/links.json", prompt.value())
}
