// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tree implements the structural operations of the link forest.
//
// Every operation is a pure function: it takes a forest and returns a new
// one, copying each container along the touched path and sharing every
// untouched subtree. The input forest is never modified.
//
// Nodes can be addressed two ways:
//   - by ID (Add, Edit, Delete, Move), which is unambiguous;
//   - by name path (AddItem, EditItem, DeleteItem, MoveItem), a convenience
//     layer where the first sibling with a matching name wins.
//
// A failing operation returns the input forest unchanged together with an
// error, leaving it to the caller to surface or ignore the failure.
package tree

import (
	"fmt"

	"github.com/MKhiriev/linkdir/models"
)

// Add appends item to the children of the folder parentID, or to the root
// when parentID is RootID. Nodes of item without an ID get one.
func Add(f models.Forest, parentID string, item models.Item) (models.Forest, error) {
	chain, err := idContainerChain(f, parentID)
	if err != nil {
		return f, err
	}
	return addAt(f, chain, item), nil
}

// Edit replaces the node id with edited. The ID is kept, and a folder keeps
// its current children whatever edited.Children holds.
func Edit(f models.Forest, id string, edited models.Item) (models.Forest, error) {
	loc, ok := Find(f, id)
	if !ok {
		return f, fmt.Errorf("%w: %s", ErrIDNotFound, id)
	}
	return editAt(f, loc, edited)
}

// Delete removes the node id and returns it along with the new forest.
func Delete(f models.Forest, id string) (models.Forest, models.Item, error) {
	loc, ok := Find(f, id)
	if !ok {
		return f, models.Item{}, fmt.Errorf("%w: %s", ErrIDNotFound, id)
	}
	out, removed := deleteAt(f, loc.Indexes)
	return out, removed, nil
}

// Move detaches node id and appends it to the folder destParentID (or the
// root). Both ends are resolved before anything changes, so the node is
// never lost: on failure the input forest is returned.
func Move(f models.Forest, id, destParentID string) (models.Forest, error) {
	src, ok := Find(f, id)
	if !ok {
		return f, fmt.Errorf("%w: %s", ErrIDNotFound, id)
	}
	dest, err := idContainerChain(f, destParentID)
	if err != nil {
		return f, err
	}
	return moveAt(f, src.Indexes, dest)
}

// AddItem appends item to the folder at path; the empty path means the root.
func AddItem(f models.Forest, path models.Path, item models.Item) (models.Forest, error) {
	chain, err := containerChain(f, path)
	if err != nil {
		return f, err
	}
	return addAt(f, chain, item), nil
}

// EditItem replaces the node at path with edited. The last path segment is
// the node's current name, so a rename is expressed as
// EditItem(f, [..., "old"], Item{Name: "new", ...}).
func EditItem(f models.Forest, path models.Path, edited models.Item) (models.Forest, error) {
	loc, err := Resolve(f, path)
	if err != nil {
		return f, err
	}
	return editAt(f, loc, edited)
}

// DeleteItem removes the node at path.
func DeleteItem(f models.Forest, path models.Path) (models.Forest, error) {
	loc, err := Resolve(f, path)
	if err != nil {
		return f, err
	}
	out, _ := deleteAt(f, loc.Indexes)
	return out, nil
}

// MoveItem moves the node at fromPath into the folder at toPath (the root
// when toPath is empty).
func MoveItem(f models.Forest, fromPath, toPath models.Path) (models.Forest, error) {
	src, err := Resolve(f, fromPath)
	if err != nil {
		return f, err
	}
	dest, err := containerChain(f, toPath)
	if err != nil {
		return f, err
	}
	return moveAt(f, src.Indexes, dest)
}

func addAt(f models.Forest, container []int, item models.Item) models.Forest {
	item = withIDs(item)
	return models.Forest(updateContainer(f, container, func(items []models.Item) []models.Item {
		out := make([]models.Item, len(items), len(items)+1)
		copy(out, items)
		return append(out, item)
	}))
}

func editAt(f models.Forest, loc Location, edited models.Item) (models.Forest, error) {
	old := loc.Item
	if edited.Type != old.Type {
		return f, fmt.Errorf("%w: %s is %s, got %s", ErrKindMismatch, loc.Path, old.Type, edited.Type)
	}

	edited.ID = old.ID
	if edited.IsFolder() {
		edited.Children = old.Children
	} else {
		edited.Children = nil
	}

	last := len(loc.Indexes) - 1
	pos := loc.Indexes[last]
	return models.Forest(updateContainer(f, loc.Indexes[:last], func(items []models.Item) []models.Item {
		out := make([]models.Item, len(items))
		copy(out, items)
		out[pos] = edited
		return out
	})), nil
}

func deleteAt(f models.Forest, chain []int) (models.Forest, models.Item) {
	last := len(chain) - 1
	pos := chain[last]
	var removed models.Item

	out := updateContainer(f, chain[:last], func(items []models.Item) []models.Item {
		removed = items[pos]
		rest := make([]models.Item, 0, len(items)-1)
		rest = append(rest, items[:pos]...)
		return append(rest, items[pos+1:]...)
	})
	return models.Forest(out), removed
}

func moveAt(f models.Forest, src, dest []int) (models.Forest, error) {
	if hasPrefix(dest, src) {
		return f, fmt.Errorf("%w: %s", ErrMoveIntoSelf, pathOf(f, src))
	}

	detached, removed := deleteAt(f, src)
	dest = shiftAfterRemoval(dest, src)

	out := updateContainer(detached, dest, func(items []models.Item) []models.Item {
		grown := make([]models.Item, len(items), len(items)+1)
		copy(grown, items)
		return append(grown, removed)
	})
	return models.Forest(out), nil
}

// updateContainer rebuilds the spine from the root to the container at chain
// (nil = root), replacing the container's children with fn's result.
func updateContainer(items []models.Item, chain []int, fn func([]models.Item) []models.Item) []models.Item {
	if len(chain) == 0 {
		return fn(items)
	}

	idx := chain[0]
	folder := items[idx]
	folder.Children = updateContainer(folder.Children, chain[1:], fn)

	out := make([]models.Item, len(items))
	copy(out, items)
	out[idx] = folder
	return out
}

// shiftAfterRemoval fixes up a container chain once the node at removed has
// been taken out: a later sibling on the shared level moves one slot left.
func shiftAfterRemoval(chain, removed []int) []int {
	level := len(removed) - 1
	if len(chain) <= level {
		return chain
	}
	for i := 0; i < level; i++ {
		if chain[i] != removed[i] {
			return chain
		}
	}
	if chain[level] <= removed[level] {
		return chain
	}

	out := append([]int{}, chain...)
	out[level]--
	return out
}

func hasPrefix(chain, prefix []int) bool {
	if len(prefix) > len(chain) {
		return false
	}
	for i := range prefix {
		if chain[i] != prefix[i] {
			return false
		}
	}
	return true
}

func pathOf(f models.Forest, chain []int) models.Path {
	path := make(models.Path, 0, len(chain))
	items := []models.Item(f)
	for _, idx := range chain {
		path = append(path, items[idx].Name)
		items = items[idx].Children
	}
	return path
}
