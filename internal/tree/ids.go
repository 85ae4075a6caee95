package tree

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/linkdir/models"
)

// RootID addresses the forest root as a container in ID-based operations.
const RootID = ""

// NewID returns a fresh node identifier. Time-ordered v7 UUIDs are preferred;
// v4 is used if the v7 generator fails.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// AssignIDs returns a deep copy of f in which every node without an ID has
// received a fresh one. Existing IDs are kept.
func AssignIDs(f models.Forest) models.Forest {
	if f == nil {
		return models.Forest{}
	}
	return models.Forest(assignIDs(f))
}

func assignIDs(items []models.Item) []models.Item {
	out := make([]models.Item, len(items))
	for i, item := range items {
		out[i] = withIDs(item)
	}
	return out
}

func withIDs(item models.Item) models.Item {
	if item.ID == "" {
		item.ID = NewID()
	}
	if item.IsFolder() {
		item.Children = assignIDs(item.Children)
	}
	return item
}
