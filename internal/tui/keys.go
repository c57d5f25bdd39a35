package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	next      key.Binding
	prev      key.Binding
	submit    key.Binding
	esc       key.Binding
	quit      key.Binding
	buildInfo key.Binding
}

// Letters are deliberately absent from the field navigation bindings: the
// signup page forwards them to the focused input.
var keys = keyMap{
	next:      key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
	prev:      key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "previous field")),
	submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign up")),
	esc:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	buildInfo: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "about")),
}

func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += " │ "
		}
		h := b.Help()
		out += h.Key + ": " + h.Desc
	}
	return out
}
