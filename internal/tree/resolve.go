package tree

import (
	"fmt"

	"github.com/MKhiriev/linkdir/models"
)

// Location describes where a node sits in a forest.
type Location struct {
	// Item is the node found.
	Item models.Item

	// Indexes is the positional chain from the root down to the node.
	Indexes []int

	// Path is the name path of the node.
	Path models.Path
}

// ParentID is the ID of the enclosing folder, or RootID for root-level nodes.
func (l Location) ParentID(f models.Forest) string {
	if len(l.Indexes) <= 1 {
		return RootID
	}
	return itemAt(f, l.Indexes[:len(l.Indexes)-1]).ID
}

// Resolve walks the forest by name, one level per path segment. The first
// sibling with a matching name wins.
func Resolve(f models.Forest, path models.Path) (Location, error) {
	if path.IsRoot() {
		return Location{}, ErrEmptyPath
	}

	items := []models.Item(f)
	indexes := make([]int, 0, len(path))
	var found models.Item

	for depth, name := range path {
		idx := indexByName(items, name)
		if idx < 0 {
			return Location{}, fmt.Errorf("%w: %s", ErrPathNotFound, path[:depth+1])
		}

		found = items[idx]
		indexes = append(indexes, idx)

		if depth < len(path)-1 {
			if !found.IsFolder() {
				return Location{}, fmt.Errorf("%w: %s", ErrNotAFolder, path[:depth+1])
			}
			items = found.Children
		}
	}

	return Location{
		Item:    found,
		Indexes: indexes,
		Path:    append(models.Path{}, path...),
	}, nil
}

// ResolveContainer resolves path to a folder and returns its ID. The root
// path resolves to RootID.
func ResolveContainer(f models.Forest, path models.Path) (string, error) {
	chain, err := containerChain(f, path)
	if err != nil {
		return "", err
	}
	if chain == nil {
		return RootID, nil
	}
	return itemAt(f, chain).ID, nil
}

// Find locates the node with the given ID anywhere in the forest.
func Find(f models.Forest, id string) (Location, bool) {
	if id == RootID {
		return Location{}, false
	}
	return find(f, id, nil, nil)
}

func find(items []models.Item, id string, indexes []int, path models.Path) (Location, bool) {
	for i, item := range items {
		chain := append(append([]int{}, indexes...), i)
		itemPath := path.Child(item.Name)

		if item.ID == id {
			return Location{Item: item, Indexes: chain, Path: itemPath}, true
		}
		if item.IsFolder() {
			if loc, ok := find(item.Children, id, chain, itemPath); ok {
				return loc, true
			}
		}
	}
	return Location{}, false
}

// Walk visits every node depth-first in display order. Returning false from
// fn skips the node's children.
func Walk(f models.Forest, fn func(path models.Path, item models.Item) bool) {
	walk(f, nil, fn)
}

func walk(items []models.Item, parent models.Path, fn func(models.Path, models.Item) bool) {
	for _, item := range items {
		path := parent.Child(item.Name)
		if fn(path, item) && item.IsFolder() {
			walk(item.Children, path, fn)
		}
	}
}

// containerChain resolves path to the index chain of a folder. The root path
// yields a nil chain.
func containerChain(f models.Forest, path models.Path) ([]int, error) {
	if path.IsRoot() {
		return nil, nil
	}

	loc, err := Resolve(f, path)
	if err != nil {
		return nil, err
	}
	if !loc.Item.IsFolder() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFolder, path)
	}
	return loc.Indexes, nil
}

// idContainerChain is containerChain for ID addressing.
func idContainerChain(f models.Forest, id string) ([]int, error) {
	if id == RootID {
		return nil, nil
	}

	loc, ok := Find(f, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIDNotFound, id)
	}
	if !loc.Item.IsFolder() {
		return nil, fmt.Errorf("%w: %s", ErrNotAFolder, loc.Path)
	}
	return loc.Indexes, nil
}

func indexByName(items []models.Item, name string) int {
	for i, item := range items {
		if item.Name == name {
			return i
		}
	}
	return -1
}

func itemAt(items []models.Item, chain []int) models.Item {
	item := items[chain[0]]
	for _, idx := range chain[1:] {
		item = item.Children[idx]
	}
	return item
}
