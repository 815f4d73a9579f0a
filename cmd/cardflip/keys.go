package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Flip   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Status key.Binding
	Help   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Next:   key.NewBinding(key.WithKeys("n", "right", "l"), key.WithHelp("n/→", "next")),
	Prev:   key.NewBinding(key.WithKeys("p", "left", "h"), key.WithHelp("p/←", "prev")),
	Flip:   key.NewBinding(key.WithKeys("f", " ", "enter"), key.WithHelp("f/space", "flip")),
	Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Status: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "level counts")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Flip, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Flip},
		{k.Add, k.Edit, k.Delete},
		{k.Status, k.Help, k.Quit},
	}
}

// formKeys are active while the add or edit form is open.
type formKeys struct {
	Submit key.Binding
	Switch key.Binding
	Back   key.Binding
	Cancel key.Binding
}

var form = formKeys{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next field / save")),
	Switch: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "switch field")),
	Back:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
}

func (k formKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Switch, k.Cancel}
}

func (k formKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
