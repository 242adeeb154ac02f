package footer

import (
	"fmt"

	"golang.org/x/text/cases"
)

// Mode is the colour scheme of the snake document being patched.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// InvalidModeError reports an unsupported mode token.
type InvalidModeError struct {
	Value string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("mode must be 'light' or 'dark', got '%s'", e.Value)
}

// ParseMode accepts light or dark in any case.
func ParseMode(value string) (Mode, error) {
	folded := cases.Fold().String(value)
	switch mode := Mode(folded); mode {
	case ModeLight, ModeDark:
		return mode, nil
	default:
		return "", &InvalidModeError{Value: folded}
	}
}

func (m Mode) String() string {
	return string(m)
}
