// Package render turns structured media names back into filenames and
// relative paths under named templates and a separator style.
package render

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/mediafmt/mediafmt/internal/media"
)

// Renderer renders media names through a template registry. The registry
// is read after construction, never written, so one Renderer is safe for
// concurrent use.
type Renderer struct {
	registry *TemplateRegistry
}

func NewRenderer(registry *TemplateRegistry) *Renderer {
	return &Renderer{registry: registry}
}

// templateVarRe matches {field} and {field:spec} placeholders.
var templateVarRe = regexp.MustCompile(`\{([^{}:]+)(?::([^{}]+))?\}`)

// Render produces a filename for the parsed name under the named template.
// An absent template name falls back to the media type's default. A
// template referencing a field the media type does not carry renders the
// minimal {title}{extension} form instead of failing.
func (r *Renderer) Render(p media.ParsedMediaName, templateName string, style Style) string {
	tpl := r.registry.Lookup(templateName, p.MediaType)
	out, ok := renderTemplate(tpl.Format, p, style)
	if !ok {
		return renderMinimal(p, style)
	}
	return out
}

// RenderPath renders the filename prefixed with directories: show and
// season for TV types, a year-qualified title for movies, the title for
// anime. Unknown names get no directory.
func (r *Renderer) RenderPath(p media.ParsedMediaName, templateName string, style Style) string {
	name := r.Render(p, templateName, style)

	switch p.MediaType {
	case media.MediaTypeTVShow, media.MediaTypeTVSpecial:
		if p.Title == "" {
			return name
		}
		return path.Join(p.Title, fmt.Sprintf("Season %02d", p.Season), name)
	case media.MediaTypeMovie:
		if p.Title == "" {
			return name
		}
		dir := p.Title
		if p.Year != 0 {
			dir = fmt.Sprintf("%s (%d)", p.Title, p.Year)
		}
		return path.Join(dir, name)
	case media.MediaTypeAnime, media.MediaTypeAnimeSpecial:
		if p.Title == "" {
			return name
		}
		return path.Join(p.Title, name)
	default:
		return name
	}
}

func renderTemplate(format string, p media.ParsedMediaName, style Style) (string, bool) {
	out := ""
	last := 0
	for _, loc := range templateVarRe.FindAllStringSubmatchIndex(format, -1) {
		literal := format[last:loc[0]]
		name := format[loc[2]:loc[3]]
		spec := ""
		if loc[4] >= 0 {
			spec = format[loc[4]:loc[5]]
		}
		last = loc[1]

		value, ok := fieldValue(p, name, spec, style)
		if !ok {
			return "", false
		}

		out += applyStyleToLiteral(literal, style)
		if value == "" {
			// Conditional omission: the separator that introduced this
			// field goes with it.
			out = strings.TrimRight(out, ". _-")
			continue
		}
		out += value
	}
	out += applyStyleToLiteral(format[last:], style)
	return postClean(out), true
}

func renderMinimal(p media.ParsedMediaName, style Style) string {
	return postClean(styleWords(p.Title, style) + p.Extension)
}

// fieldValue resolves a template field against the parsed name. ok is
// false when the media type does not carry the field (or carries it
// empty where a value is required), which callers treat as a template
// mismatch. An empty value with ok true means conditional omission.
func fieldValue(p media.ParsedMediaName, name, spec string, style Style) (string, bool) {
	width := specWidth(spec)

	switch name {
	case "title":
		return styleWords(p.Title, style), true
	case "extension":
		return p.Extension, true
	case "season":
		if !isTV(p.MediaType) {
			return "", false
		}
		return pad(p.Season, width), true
	case "episode":
		if !p.HasEpisodes() {
			return "", false
		}
		switch p.MediaType {
		case media.MediaTypeTVShow, media.MediaTypeTVSpecial, media.MediaTypeAnime:
			return episodeBlock(p.Episodes, width, style), true
		}
		return "", false
	case "episode_title":
		if !isTV(p.MediaType) {
			return "", false
		}
		return styleWords(p.EpisodeTitle, style), true
	case "quality":
		if p.MediaType == media.MediaTypeUnknown {
			return "", false
		}
		return p.Quality, true
	case "year":
		if p.MediaType != media.MediaTypeMovie || p.Year == 0 {
			return "", false
		}
		return strconv.Itoa(p.Year), true
	case "group":
		if !isAnime(p.MediaType) {
			return "", false
		}
		return p.Group, true
	case "version":
		if !isAnime(p.MediaType) {
			return "", false
		}
		if p.Version == 0 {
			return "", true
		}
		return strconv.Itoa(p.Version), true
	case "special_type":
		if p.SpecialType == "" {
			return "", false
		}
		return specialTypeLabel(p.SpecialType), true
	case "special_number":
		if p.SpecialType == "" || p.SpecialNumber == 0 {
			return "", false
		}
		return pad(p.SpecialNumber, width), true
	default:
		return "", false
	}
}

// episodeBlock writes the numeric episode part that follows a literal "E"
// in templates: "01" for a single episode, "01-E03" for a contiguous list
// under a range style, "01E02E03" otherwise.
func episodeBlock(episodes []int, width int, style Style) string {
	if len(episodes) == 1 {
		return pad(episodes[0], width)
	}
	if style.useRanges() && media.AreSequential(episodes) {
		return pad(episodes[0], width) + "-E" + pad(episodes[len(episodes)-1], width)
	}
	parts := make([]string, 0, len(episodes))
	for _, ep := range episodes {
		parts = append(parts, pad(ep, width))
	}
	return strings.Join(parts, "E")
}

// specWidth parses the numeric width out of a "02d"-style format spec.
// Season and episode numbers always render with at least two digits.
func specWidth(spec string) int {
	spec = strings.TrimSuffix(spec, "d")
	if n, err := strconv.Atoi(spec); err == nil && n > 2 {
		return n
	}
	return 2
}

func pad(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

func styleWords(s string, style Style) string {
	return strings.ReplaceAll(s, " ", style.separator())
}

// applyStyleToLiteral rewrites the template's literal dot separators so a
// dotted default template renders cleanly under the spaces style.
func applyStyleToLiteral(literal string, style Style) string {
	if style == StyleSpaces {
		return strings.ReplaceAll(literal, ".", " ")
	}
	return literal
}

func specialTypeLabel(t media.SpecialType) string {
	switch t {
	case media.SpecialTypeOVA:
		return "OVA"
	case media.SpecialTypeMovie:
		return "Movie"
	default:
		return "Special"
	}
}

func isTV(t media.MediaType) bool {
	return t == media.MediaTypeTVShow || t == media.MediaTypeTVSpecial
}

func isAnime(t media.MediaType) bool {
	return t == media.MediaTypeAnime || t == media.MediaTypeAnimeSpecial
}

var (
	emptyBracketsRe = regexp.MustCompile(`\s*\[\s*\]|\s*\(\s*\)`)
	spaceBeforeDot  = regexp.MustCompile(`\s+\.`)
	multiDotRe      = regexp.MustCompile(`\.{2,}`)
	multiSpaceRe    = regexp.MustCompile(`\s{2,}`)
)

// postClean repairs artifacts left by omitted fields: empty bracket
// pairs, doubled separators, stray separators around the extension dot.
func postClean(s string) string {
	s = emptyBracketsRe.ReplaceAllString(s, "")
	s = spaceBeforeDot.ReplaceAllString(s, ".")
	s = multiDotRe.ReplaceAllString(s, ".")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	s = strings.TrimLeft(s, ". _-")
	return strings.TrimSpace(s)
}
