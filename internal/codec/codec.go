// Package codec converts a link forest to and from its JSON document form:
// a bare array of items, without any envelope.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/linkdir/internal/tree"
	"github.com/MKhiriev/linkdir/models"
)

// ErrParse is returned when a document is not valid JSON or does not have the
// item array shape.
var ErrParse = errors.New("invalid link document")

// Indent is the indentation used by EncodeIndent.
const Indent = "  "

// Encode returns the compact JSON form of f, used for storage.
func Encode(f models.Forest) ([]byte, error) {
	if f == nil {
		f = models.Forest{}
	}

	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("encode forest: %w", err)
	}
	return data, nil
}

// EncodeIndent returns the pretty-printed JSON form of f, used for export.
func EncodeIndent(f models.Forest) ([]byte, error) {
	if f == nil {
		f = models.Forest{}
	}

	data, err := json.MarshalIndent(f, "", Indent)
	if err != nil {
		return nil, fmt.Errorf("encode forest: %w", err)
	}
	return data, nil
}

// Decode parses a JSON document into a forest and assigns runtime IDs to
// every node. Any failure wraps ErrParse.
//
// Only the shape is checked: the top level must be an array and every item
// must carry a known "type". Field contents (empty names, missing urls) are
// accepted as they are.
func Decode(data []byte) (models.Forest, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}

	var forest models.Forest
	if err := json.Unmarshal(trimmed, &forest); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if forest == nil {
		// literal null
		return nil, fmt.Errorf("%w: document is null", ErrParse)
	}

	return tree.AssignIDs(forest), nil
}

// DecodeString is Decode for text input such as clipboard contents.
func DecodeString(text string) (models.Forest, error) {
	return Decode([]byte(text))
}
