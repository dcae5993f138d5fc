package picker

import "errors"

var (
	// ErrInvalidConfiguration is returned when a widget or scene node is
	// configured with a value outside its closed set of variants, such as
	// an unknown slider type or transform type.
	ErrInvalidConfiguration = errors.New("picker: invalid configuration")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("picker: invalid color")
)
