package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/linkdir/internal/icons"
	"github.com/MKhiriev/linkdir/internal/tree"
	"github.com/MKhiriev/linkdir/models"
)

// row is one visible line of the tree.
type row struct {
	item     models.Item
	depth    int
	path     models.Path
	parentID string
}

// flatten lists the nodes that are visible given the expanded folders, in
// display order.
func flatten(f models.Forest, expanded map[string]bool) []row {
	var rows []row
	var walk func(items []models.Item, depth int, parent models.Path, parentID string)
	walk = func(items []models.Item, depth int, parent models.Path, parentID string) {
		for _, item := range items {
			path := parent.Child(item.Name)
			rows = append(rows, row{item: item, depth: depth, path: path, parentID: parentID})
			if item.IsFolder() && expanded[item.ID] {
				walk(item.Children, depth+1, path, item.ID)
			}
		}
	}
	walk(f, 0, nil, tree.RootID)
	return rows
}

func indexOfID(rows []row, id string) int {
	for i, r := range rows {
		if r.item.ID == id {
			return i
		}
	}
	return -1
}

// glyph picks a terminal representation for a resolved icon. Image and
// favicon URLs cannot be drawn, so they get a generic globe.
func glyph(icon icons.Icon, item models.Item) string {
	switch icon.Kind {
	case icons.KindSymbol, icons.KindFallback:
		return icon.Value
	default:
		if item.IsFolder() {
			return icons.FolderGlyph
		}
		return "🌐"
	}
}

func renderRow(r row, resolver *icons.Resolver, expanded, selected, marked bool, width int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", r.depth))

	if r.item.IsFolder() {
		if expanded {
			b.WriteString("▾ ")
		} else {
			b.WriteString("▸ ")
		}
	} else {
		b.WriteString("  ")
	}

	b.WriteString(glyph(resolver.Resolve(r.item), r.item))
	b.WriteString(" ")

	name := r.item.Name
	if r.item.IsFolder() {
		name = folderStyle.Render(name) + helpStyle.Render(" ("+strconv.Itoa(len(r.item.Children))+")")
	}
	b.WriteString(name)

	if r.item.IsLink() {
		b.WriteString("  ")
		b.WriteString(urlStyle.Render(fitText(r.item.URL, width)))
	}

	line := b.String()
	switch {
	case marked:
		line = markedStyle.Render(line + "  [moving]")
	case selected:
		line = selectedStyle.Render(line)
	}
	return line
}
