package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	p := Path{"Work", "Docs"}

	assert.False(t, p.IsRoot())
	assert.True(t, Path{}.IsRoot())
	assert.Equal(t, Path{"Work"}, p.Parent())
	assert.Equal(t, Path{}, Path{}.Parent())
	assert.Equal(t, "Docs", p.Last())
	assert.Equal(t, "", Path{}.Last())
	assert.Equal(t, "/Work/Docs", p.String())
	assert.Equal(t, "/", Path{}.String())

	assert.True(t, p.HasPrefix(Path{"Work"}))
	assert.True(t, p.HasPrefix(Path{}))
	assert.False(t, p.HasPrefix(Path{"Docs"}))
	assert.True(t, p.Equal(Path{"Work", "Docs"}))
	assert.False(t, p.Equal(Path{"Work"}))
}

func TestPath_ChildDoesNotAlias(t *testing.T) {
	base := Path{"A"}
	left := base.Child("B")
	right := base.Child("C")

	assert.Equal(t, Path{"A", "B"}, left)
	assert.Equal(t, Path{"A", "C"}, right)
	assert.Equal(t, Path{"A"}, base)
}

func TestCount(t *testing.T) {
	f := Forest{
		NewFolder("Work", NewLink("Docs", "https://docs.example"), NewFolder("Inner")),
		NewLink("Go", "https://go.dev"),
	}

	assert.Equal(t, 4, f.Count())
	assert.Equal(t, 3, f[0].Count())
	assert.Equal(t, 0, Forest{}.Count())
}

func TestItemJSON(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{
			name: "link omits empty optionals",
			item: NewLink("Go", "https://go.dev"),
			want: `{"name":"Go","type":"Link","url":"https://go.dev"}`,
		},
		{
			name: "folder always has children",
			item: Item{Name: "Empty", Type: TypeFolder},
			want: `{"name":"Empty","type":"Folder","children":[]}`,
		},
		{
			name: "ids and link fields on folders are dropped",
			item: Item{ID: "x", Name: "F", Type: TypeFolder, URL: "ignored", Icon: "star", Children: []Item{}},
			want: `{"name":"F","type":"Folder","children":[],"icon":"star"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.item)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))
		})
	}
}

func TestItemJSON_UnknownType(t *testing.T) {
	var item Item
	err := json.Unmarshal([]byte(`{"name":"X","type":"Note"}`), &item)
	assert.ErrorIs(t, err, ErrUnknownItemType)

	_, err = json.Marshal(Item{Name: "X"})
	assert.ErrorIs(t, err, ErrUnknownItemType)
}

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("v1.0.0", "", "abc123")

	assert.Equal(t, "v1.0.0", info.BuildVersion())
	assert.Equal(t, "linkdir v1.0.0 (date: N/A, commit: abc123)", info.String())
}
