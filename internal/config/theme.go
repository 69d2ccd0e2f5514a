package config

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/slate/internal/terminal"
)

// Theme holds the status bar colors as hex strings.
type Theme struct {
	StatusFG string `toml:"status_fg"`
	StatusBG string `toml:"status_bg"`
}

// DefaultTheme returns a light status bar over dark text.
func DefaultTheme() Theme {
	return Theme{
		StatusFG: "#3f3f3f",
		StatusBG: "#efefef",
	}
}

// Colors parses the theme into terminal colors.
func (t Theme) Colors() (fg, bg terminal.Color, err error) {
	fg, err = parseHex(t.StatusFG)
	if err != nil {
		return fg, bg, fmt.Errorf("status_fg: %w", err)
	}
	bg, err = parseHex(t.StatusBG)
	if err != nil {
		return fg, bg, fmt.Errorf("status_bg: %w", err)
	}
	return fg, bg, nil
}

func parseHex(s string) (terminal.Color, error) {
	if s == "" {
		return terminal.Color{}, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return terminal.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return terminal.RGB(r, g, b), nil
}
