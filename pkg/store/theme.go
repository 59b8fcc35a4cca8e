package store

import (
	"fmt"
	"strings"
)

// Theme is the persisted display preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle flips between light and dark. The zero value toggles to dark, since
// an unset preference renders as light.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("store: unknown theme %q", s)
	}
}

func (t Theme) String() string {
	if t == "" {
		return string(ThemeLight)
	}
	return string(t)
}
