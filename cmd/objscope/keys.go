package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level keyboard shortcuts. Tree
// navigation keys live in the nodetree package.
type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Detail   key.Binding
	Inspect  key.Binding
	GoToPath key.Binding
}

// DefaultKeyMap returns the standard application bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Detail:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand / detail")),
		Inspect:  key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "node detail")),
		GoToPath: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to path")),
	}
}
