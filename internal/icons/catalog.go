package icons

import (
	"strings"

	"golang.org/x/text/cases"
)

// Catalog maps symbolic icon names to renderable glyphs.
type Catalog interface {
	Lookup(name string) (glyph string, ok bool)
}

// MapCatalog is a [Catalog] over a plain map. Lookups are case-folded, so
// keys must be stored folded (lower case for ASCII names).
type MapCatalog map[string]string

func (c MapCatalog) Lookup(name string) (string, bool) {
	glyph, ok := c[cases.Fold().String(strings.TrimSpace(name))]
	return glyph, ok
}

// DefaultCatalog returns the built-in glyph set used by the terminal UI.
func DefaultCatalog() Catalog {
	return MapCatalog{
		"folder":   "📁",
		"star":     "⭐",
		"home":     "🏠",
		"work":     "💼",
		"code":     "💻",
		"github":   "🐙",
		"book":     "📚",
		"music":    "🎵",
		"video":    "🎬",
		"mail":     "✉️",
		"news":     "📰",
		"shopping": "🛒",
		"game":     "🎮",
		"travel":   "✈️",
		"money":    "💰",
		"heart":    "❤️",
		"link":     "🔗",
		"search":   "🔍",
		"settings": "⚙️",
		"cloud":    "☁️",
	}
}
