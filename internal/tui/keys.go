package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	NextView    key.Binding
	PrevView    key.Binding
	Morning     key.Binding
	Evening     key.Binding
	Complete    key.Binding
	Custom      key.Binding
	Edit        key.Binding
	Toggle      key.Binding
	NextOption  key.Binding
	PrevOption  key.Binding
	InsertBelow key.Binding
	InsertAbove key.Binding
	Remove      key.Binding
	Layout      key.Binding
	Cancel      key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		NextView:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevView:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev view")),
		Morning:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "morning")),
		Evening:     key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "evening")),
		Complete:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "complete")),
		Custom:      key.NewBinding(key.WithKeys("4", "c"), key.WithHelp("4/c", "custom columns")),
		Edit:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),
		NextOption:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next option")),
		PrevOption:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev option")),
		InsertBelow: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "row below")),
		InsertAbove: key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "row above")),
		Remove:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove row")),
		Layout:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "grid/list")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Custom, k.Edit, k.Toggle, k.NextOption, k.InsertBelow, k.Remove, k.Layout, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.NextView, k.PrevView, k.Morning, k.Evening, k.Complete, k.Custom},
		{k.Edit, k.Toggle, k.NextOption, k.PrevOption},
		{k.InsertBelow, k.InsertAbove, k.Remove, k.Layout, k.Quit},
	}
}
