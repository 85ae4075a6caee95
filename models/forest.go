package models

import "strings"

// Forest is the ordered collection of root-level items. There is no implicit
// root folder.
type Forest []Item

// Count returns the total number of nodes in the forest.
func (f Forest) Count() int {
	n := 0
	for _, item := range f {
		n += item.Count()
	}
	return n
}

// Path is the sequence of names from the forest root down to and including a
// node. The empty path denotes the forest root itself.
type Path []string

// IsRoot reports whether p addresses the forest root.
func (p Path) IsRoot() bool {
	return len(p) == 0
}

// Parent returns the path of the enclosing container.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}
	return p[:len(p)-1]
}

// Last returns the final segment, or "" for the root path.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Child returns a new path extended with name. p is not modified.
func (p Path) Child(name string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, name)
}

// HasPrefix reports whether prefix is equal to p or one of its ancestors.
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}
	return true
}

// Equal reports whether both paths have the same segments.
func (p Path) Equal(other Path) bool {
	return len(p) == len(other) && p.HasPrefix(other)
}

// String joins the segments with "/".
func (p Path) String() string {
	return "/" + strings.Join(p, "/")
}
