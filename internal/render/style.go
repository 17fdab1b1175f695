package render

import "fmt"

// Style controls how rendered names join words and how multi-episode
// markers are written.
//
// Dots and Spaces join title words with "." and " " respectively and write
// contiguous episode lists as an inclusive range (E01-E03). Mixed joins
// words with dots but always concatenates episode markers (E01E02E03).
// Non-contiguous lists are concatenated under every style.
type Style int

const (
	StyleDots Style = iota
	StyleSpaces
	StyleMixed
)

func (s Style) String() string {
	switch s {
	case StyleSpaces:
		return "spaces"
	case StyleMixed:
		return "mixed"
	default:
		return "dots"
	}
}

// ParseStyle maps a config/CLI spelling to a Style.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "dots", "":
		return StyleDots, nil
	case "spaces":
		return StyleSpaces, nil
	case "mixed":
		return StyleMixed, nil
	default:
		return StyleDots, fmt.Errorf("unknown style %q (want dots, spaces, or mixed)", name)
	}
}

func (s Style) separator() string {
	if s == StyleSpaces {
		return " "
	}
	return "."
}

func (s Style) useRanges() bool {
	return s != StyleMixed
}
