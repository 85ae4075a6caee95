package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	addLink   key.Binding
	addFolder key.Binding
	edit      key.Binding
	delete    key.Binding
	mark      key.Binding
	drop      key.Binding
	dropRoot  key.Binding
	pasteJSON key.Binding
	importF   key.Binding
	exportF   key.Binding
	copyJSON  key.Binding
	copyURL   key.Binding
	clearAll  key.Binding
	about     key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	addLink:   key.NewBinding(key.WithKeys("a")),
	addFolder: key.NewBinding(key.WithKeys("f")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	mark:      key.NewBinding(key.WithKeys("m")),
	drop:      key.NewBinding(key.WithKeys("p")),
	dropRoot:  key.NewBinding(key.WithKeys("P")),
	pasteJSON: key.NewBinding(key.WithKeys("v")),
	importF:   key.NewBinding(key.WithKeys("i")),
	exportF:   key.NewBinding(key.WithKeys("x")),
	copyJSON:  key.NewBinding(key.WithKeys("c")),
	copyURL:   key.NewBinding(key.WithKeys("u")),
	clearAll:  key.NewBinding(key.WithKeys("D")),
	about:     key.NewBinding(key.WithKeys("?")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
