// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ItemType is the discriminator of the [Item] tagged union.
type ItemType string

const (
	// TypeLink marks a leaf node pointing to a URL.
	TypeLink ItemType = "Link"

	// TypeFolder marks a container node with ordered children.
	TypeFolder ItemType = "Folder"
)

// ErrUnknownItemType is returned when decoding an item whose "type" field is
// neither "Link" nor "Folder".
var ErrUnknownItemType = errors.New("unknown item type")

// Item is a single node of the link tree: either a Link or a Folder.
//
// Link-only fields (URL, Description) are ignored for folders and
// Children is ignored for links, both in memory and on the wire.
type Item struct {
	// ID is a runtime identity assigned when the node is created or decoded.
	// It is never serialized; names stay the only identity on the wire.
	ID string

	// Name is the display label. Sibling names are expected to be distinct
	// but this is not enforced.
	Name string

	// Type selects the union variant.
	Type ItemType

	// Icon is either an absolute image URL (prefix "http") or a symbolic
	// icon name. Optional.
	Icon string

	// URL is the link target. Required for links.
	URL string

	// Description is an optional free-form note for links.
	Description string

	// Children are the ordered child nodes of a folder.
	Children []Item
}

// NewLink constructs a link item.
func NewLink(name, url string) Item {
	return Item{Name: name, Type: TypeLink, URL: url}
}

// NewFolder constructs a folder item with the given children.
func NewFolder(name string, children ...Item) Item {
	if children == nil {
		children = []Item{}
	}
	return Item{Name: name, Type: TypeFolder, Children: children}
}

// IsFolder reports whether the item is a folder.
func (i Item) IsFolder() bool {
	return i.Type == TypeFolder
}

// IsLink reports whether the item is a link.
func (i Item) IsLink() bool {
	return i.Type == TypeLink
}

// Count returns the number of nodes in the subtree rooted at i, i included.
func (i Item) Count() int {
	n := 1
	for _, child := range i.Children {
		n += child.Count()
	}
	return n
}

type linkJSON struct {
	Name        string   `json:"name"`
	Type        ItemType `json:"type"`
	URL         string   `json:"url"`
	Description string   `json:"description,omitempty"`
	Icon        string   `json:"icon,omitempty"`
}

type folderJSON struct {
	Name     string   `json:"name"`
	Type     ItemType `json:"type"`
	Children []Item   `json:"children"`
	Icon     string   `json:"icon,omitempty"`
}

type itemJSON struct {
	Name        string   `json:"name"`
	Type        ItemType `json:"type"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Children    []Item   `json:"children"`
}

// MarshalJSON encodes the item in the variant-specific wire shape.
func (i Item) MarshalJSON() ([]byte, error) {
	switch i.Type {
	case TypeLink:
		return json.Marshal(linkJSON{
			Name:        i.Name,
			Type:        i.Type,
			URL:         i.URL,
			Description: i.Description,
			Icon:        i.Icon,
		})
	case TypeFolder:
		children := i.Children
		if children == nil {
			children = []Item{}
		}
		return json.Marshal(folderJSON{
			Name:     i.Name,
			Type:     i.Type,
			Children: children,
			Icon:     i.Icon,
		})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownItemType, i.Type)
	}
}

// UnmarshalJSON decodes either variant, dispatching on the "type" field.
func (i *Item) UnmarshalJSON(data []byte) error {
	var raw itemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.Type {
	case TypeLink:
		*i = Item{
			Name:        raw.Name,
			Type:        TypeLink,
			URL:         raw.URL,
			Description: raw.Description,
			Icon:        raw.Icon,
		}
	case TypeFolder:
		children := raw.Children
		if children == nil {
			children = []Item{}
		}
		*i = Item{
			Name:     raw.Name,
			Type:     TypeFolder,
			Icon:     raw.Icon,
			Children: children,
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownItemType, raw.Type)
	}

	return nil
}
