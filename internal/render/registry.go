package render

import (
	"github.com/mediafmt/mediafmt/internal/media"
)

// Template names a filename format for one media type. Format strings use
// {field} and {field:02d} placeholders; see Render for the field set.
type Template struct {
	Name   string
	Type   media.MediaType
	Format string
}

// DefaultTemplateName is the registry fallback key.
const DefaultTemplateName = "default"

type templateKey struct {
	name      string
	mediaType media.MediaType
}

// TemplateRegistry holds named templates per media type. Construct it once
// at startup, register any overrides, and treat it as read-only afterwards.
type TemplateRegistry struct {
	templates map[templateKey]Template
}

// Built-in formats, registered under the "default" name.
var defaultFormats = map[media.MediaType]string{
	media.MediaTypeTVShow:       "{title}.S{season:02d}E{episode:02d}.{episode_title}.{quality}{extension}",
	media.MediaTypeTVSpecial:    "{title}.S00E{special_number:02d}.{episode_title}{extension}",
	media.MediaTypeMovie:        "{title}.{year}.{quality}{extension}",
	media.MediaTypeAnime:        "[{group}] {title} - {episode:02d} [{quality}]{extension}",
	media.MediaTypeAnimeSpecial: "[{group}] {title} - {special_type}{special_number} [{quality}]{extension}",
	media.MediaTypeUnknown:      "{title}{extension}",
}

// NewTemplateRegistry builds a registry seeded with the default template
// for every media type.
func NewTemplateRegistry() *TemplateRegistry {
	r := &TemplateRegistry{templates: make(map[templateKey]Template)}
	for mediaType, format := range defaultFormats {
		r.Register(Template{Name: DefaultTemplateName, Type: mediaType, Format: format})
	}
	return r
}

// Register adds or replaces a template under its name and type.
func (r *TemplateRegistry) Register(t Template) {
	r.templates[templateKey{name: t.Name, mediaType: t.Type}] = t
}

// Lookup resolves a named template for a media type, falling back to the
// type's default when the name is absent, and to the minimal unknown-type
// default as a last resort.
func (r *TemplateRegistry) Lookup(name string, mediaType media.MediaType) Template {
	if t, ok := r.templates[templateKey{name: name, mediaType: mediaType}]; ok {
		return t
	}
	if t, ok := r.templates[templateKey{name: DefaultTemplateName, mediaType: mediaType}]; ok {
		return t
	}
	return Template{Name: DefaultTemplateName, Type: mediaType, Format: defaultFormats[media.MediaTypeUnknown]}
}
