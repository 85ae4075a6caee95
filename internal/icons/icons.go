// Package icons turns the free-form icon field of an item into something a
// view can render.
//
// An icon string starting with "http" is an image URL. Anything else is a
// symbolic name looked up in a [Catalog]. Links without an icon, or whose
// symbolic icon is unknown, are shown with the favicon of their host.
package icons

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/MKhiriev/linkdir/models"
)

// DefaultFaviconService is prefixed to a hostname to build a favicon URL.
const DefaultFaviconService = "https://www.google.com/s2/favicons?domain="

// Kind tells a view how to interpret [Icon.Value].
type Kind int

const (
	// KindFallback is the generic glyph. Value holds the glyph.
	KindFallback Kind = iota
	// KindImage is an explicit image URL. Value holds the URL.
	KindImage
	// KindSymbol is a catalog hit. Value holds the glyph.
	KindSymbol
	// KindFavicon is the favicon-service URL of a link's host.
	KindFavicon
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindSymbol:
		return "symbol"
	case KindFavicon:
		return "favicon"
	default:
		return "fallback"
	}
}

// Icon is the resolved icon of an item.
type Icon struct {
	Kind  Kind
	Value string
}

const (
	FallbackGlyph = "•"
	FolderGlyph   = "📁"
	unknownHost   = "unknown"
)

// Resolver resolves icons against a catalog and a favicon service.
type Resolver struct {
	catalog        Catalog
	faviconService string
}

// NewResolver returns a Resolver. A nil catalog resolves no symbolic names;
// an empty faviconService means [DefaultFaviconService].
func NewResolver(catalog Catalog, faviconService string) *Resolver {
	if catalog == nil {
		catalog = MapCatalog(nil)
	}
	if faviconService == "" {
		faviconService = DefaultFaviconService
	}
	return &Resolver{catalog: catalog, faviconService: faviconService}
}

// Resolve resolves item with the default favicon service.
func Resolve(item models.Item, catalog Catalog) Icon {
	return NewResolver(catalog, "").Resolve(item)
}

func (r *Resolver) Resolve(item models.Item) Icon {
	name := strings.TrimSpace(item.Icon)

	if strings.HasPrefix(name, "http") {
		return Icon{Kind: KindImage, Value: name}
	}

	if name != "" {
		if glyph, ok := r.catalog.Lookup(name); ok {
			return Icon{Kind: KindSymbol, Value: glyph}
		}
	}

	if item.IsLink() {
		return Icon{Kind: KindFavicon, Value: r.FaviconURL(item.URL)}
	}

	if item.IsFolder() && name == "" {
		return Icon{Kind: KindFallback, Value: FolderGlyph}
	}
	return Icon{Kind: KindFallback, Value: FallbackGlyph}
}

// FaviconURL returns the favicon-service URL for the host of rawURL.
func (r *Resolver) FaviconURL(rawURL string) string {
	return r.faviconService + url.QueryEscape(Hostname(rawURL))
}

// FaviconURL returns the default favicon-service URL for the host of rawURL.
func FaviconURL(rawURL string) string {
	return NewResolver(nil, "").FaviconURL(rawURL)
}

var hostPattern = regexp.MustCompile(`^(?:https?://)?([^/]+)`)

// Hostname extracts the host of rawURL. Scheme-less input such as
// "example.com/path" is accepted. Unparseable input yields "unknown".
func Hostname(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return unknownHost
	}

	if u, err := url.Parse(rawURL); err == nil && u.Hostname() != "" {
		return u.Hostname()
	}

	if m := hostPattern.FindStringSubmatch(rawURL); len(m) == 2 && m[1] != "" {
		return m[1]
	}
	return unknownHost
}

// NormalizeURL prefixes rawURL with https:// when it has no http(s) scheme.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	lower := strings.ToLower(rawURL)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return rawURL
	}
	return "https://" + rawURL
}
