package models

// Category classifies a money log. ID is empty until assigned: the
// category manager mints a local UUID on create and swaps it for the
// server-assigned ID once the create call returns.
type Category struct {
	ID    string
	Name  string
	Icon  Icon
	Color PaletteColor
}

// PaletteColor is a design-system color choice for a category badge.
type PaletteColor struct {
	ID  string
	Hex string
}

// Icon is a design-system glyph choice for a category badge.
type Icon struct {
	ID   string
	Name string
}
