package tree

import "github.com/MKhiriev/linkdir/models"

// Equal reports whether two forests have the same shape and content.
// Runtime IDs are ignored, and a nil children list equals an empty one.
func Equal(a, b models.Forest) bool {
	return equalItems(a, b)
}

func equalItems(a, b []models.Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalItem(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalItem(a, b models.Item) bool {
	if a.Name != b.Name || a.Type != b.Type || a.Icon != b.Icon {
		return false
	}
	if a.IsFolder() {
		return equalItems(a.Children, b.Children)
	}
	return a.URL == b.URL && a.Description == b.Description
}
