package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding

	// Section switching
	NextSection key.Binding
	PrevSection key.Binding
	GoHome      key.Binding
	GoCatalog   key.Binding
	GoCart      key.Binding
	GoOrders    key.Binding

	// Catalog actions
	FocusSearch   key.Binding
	CycleCategory key.Binding
	NextPage      key.Binding
	PrevPage      key.Binding
	Open          key.Binding
	QuickAdd      key.Binding

	// Navigation
	Up   key.Binding
	Down key.Binding

	// Detail panel actions
	NextThumb key.Binding
	PrevThumb key.Binding
	Buy       key.Binding

	// Search/input
	Confirm key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close panel"),
		),

		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous section"),
		),
		GoHome: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Home"),
		),
		GoCatalog: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Catalog"),
		),
		GoCart: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Cart"),
		),
		GoOrders: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Orders"),
		),

		FocusSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),
		CycleCategory: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Cycle category"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right", "]"),
			key.WithHelp("right/]", "Next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left", "["),
			key.WithHelp("left/[", "Previous page"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Product details"),
		),
		QuickAdd: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add to cart"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),

		NextThumb: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Next image"),
		),
		PrevThumb: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Previous image"),
		),
		Buy: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "Buy now"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.GoHome, k.GoCatalog, k.GoCart, k.GoOrders},
		{k.Up, k.Down, k.NextPage, k.PrevPage},
		{k.FocusSearch, k.CycleCategory, k.Open, k.QuickAdd},
		{k.NextThumb, k.PrevThumb, k.Buy, k.Escape},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
