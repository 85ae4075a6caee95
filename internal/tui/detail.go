package tui

import (
	"strings"

	"github.com/MKhiriev/linkdir/internal/icons"
	"github.com/MKhiriev/linkdir/models"
)

type detailModel struct {
	item models.Item
	path models.Path
}

func (m detailModel) View(resolver *icons.Resolver) string {
	icon := resolver.Resolve(m.item)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.item.Name))
	b.WriteString("\n\n")
	b.WriteString("Path:        " + m.path.String() + "\n")
	b.WriteString("URL:         " + valueOrDash(m.item.URL) + "\n")
	b.WriteString("Opens as:    " + valueOrDash(icons.NormalizeURL(m.item.URL)) + "\n")
	b.WriteString("Host:        " + icons.Hostname(m.item.URL) + "\n")
	b.WriteString("Description: " + valueOrDash(m.item.Description) + "\n")
	b.WriteString("Icon:        " + icon.Kind.String() + " " + icon.Value + "\n")
	b.WriteString("\nu copy url  e edit  esc close")
	return overlayBoxStyle.Render(b.String())
}
