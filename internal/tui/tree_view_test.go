package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/linkdir/internal/codec"
	"github.com/MKhiriev/linkdir/internal/service"
	"github.com/MKhiriev/linkdir/internal/tree"
	"github.com/MKhiriev/linkdir/internal/validators"
	"github.com/MKhiriev/linkdir/models"
)

func sampleForest() models.Forest {
	return tree.AssignIDs(models.Forest{
		models.NewFolder("Work",
			models.NewLink("Docs", "https://docs.example"),
			models.NewFolder("Inner"),
		),
		models.NewLink("Go", "https://go.dev"),
	})
}

func TestFlatten(t *testing.T) {
	f := sampleForest()
	work := f[0]

	tests := []struct {
		name      string
		expanded  map[string]bool
		wantNames []string
		wantDepth []int
	}{
		{
			name:      "collapsed",
			expanded:  map[string]bool{},
			wantNames: []string{"Work", "Go"},
			wantDepth: []int{0, 0},
		},
		{
			name:      "expanded folder",
			expanded:  map[string]bool{work.ID: true},
			wantNames: []string{"Work", "Docs", "Inner", "Go"},
			wantDepth: []int{0, 1, 1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := flatten(f, tt.expanded)
			require.Len(t, rows, len(tt.wantNames))
			for i, r := range rows {
				assert.Equal(t, tt.wantNames[i], r.item.Name)
				assert.Equal(t, tt.wantDepth[i], r.depth)
			}
		})
	}
}

func TestFlatten_PathsAndParents(t *testing.T) {
	f := sampleForest()
	work := f[0]

	rows := flatten(f, map[string]bool{work.ID: true})

	assert.Equal(t, models.Path{"Work", "Docs"}, rows[1].path)
	assert.Equal(t, work.ID, rows[1].parentID)
	assert.Equal(t, tree.RootID, rows[0].parentID)
	assert.Equal(t, 3, indexOfID(rows, f[1].ID))
	assert.Equal(t, -1, indexOfID(rows, "missing"))
}

func TestFlatten_Empty(t *testing.T) {
	assert.Empty(t, flatten(nil, map[string]bool{}))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "unchanged", fitText("unchanged", 0))
	assert.Equal(t, "пр...", fitText("привет мир", 5))
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "parse", err: fmt.Errorf("import clipboard: %w", codec.ErrParse), want: "Invalid JSON"},
		{name: "unsupported file", err: service.ErrUnsupportedFile, want: "Only .json files can be imported"},
		{name: "no-op move", err: service.ErrNoOpMove, want: "Item is already in that folder"},
		{name: "move into self", err: tree.ErrMoveIntoSelf, want: "A folder cannot be moved into itself"},
		{
			name: "validation wins over generic invalid item",
			err:  fmt.Errorf("%w: %w", service.ErrInvalidItem, validators.ErrEmptyURL),
			want: "URL is required",
		},
		{name: "unknown", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.err))
		})
	}
}
