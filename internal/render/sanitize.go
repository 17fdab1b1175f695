package render

import (
	"fmt"
	"path"
	"strings"
)

const invalidFilenameChars = "<>:\"/\\|?*"

// Sanitize replaces characters that are invalid in filenames with spaces,
// collapsing runs of spaces, so rendered names are safe to write to disk.
func Sanitize(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("name is empty after sanitization")
	}

	var b strings.Builder
	b.Grow(len(name))

	lastSpace := false
	for _, r := range name {
		if r < 32 || r == 127 || strings.ContainsRune(invalidFilenameChars, r) {
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
			continue
		}
		if r == ' ' {
			if lastSpace {
				continue
			}
			lastSpace = true
			b.WriteRune(' ')
			continue
		}
		lastSpace = false
		b.WriteRune(r)
	}

	result := strings.TrimSpace(b.String())
	if result == "" {
		return "", fmt.Errorf("name is empty after sanitization")
	}
	return result, nil
}

// SanitizePath sanitizes each element of a slash-separated relative path,
// such as the output of RenderPath.
func SanitizePath(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("path is empty after sanitization")
	}

	parts := strings.Split(p, "/")
	sanitized := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		s, err := Sanitize(part)
		if err != nil {
			return "", err
		}
		sanitized = append(sanitized, s)
	}
	if len(sanitized) == 0 {
		return "", fmt.Errorf("path is empty after sanitization")
	}
	return path.Join(sanitized...), nil
}
