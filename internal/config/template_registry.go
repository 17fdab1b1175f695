package config

import (
	"github.com/mediafmt/mediafmt/internal/media"
	"github.com/mediafmt/mediafmt/internal/render"
)

// BuildRegistry constructs the template registry for this configuration:
// the built-in defaults with any per-type overrides applied on top.
func (c *Config) BuildRegistry() *render.TemplateRegistry {
	registry := render.NewTemplateRegistry()
	for mediaType, format := range c.Templates {
		registry.Register(render.Template{
			Name:   render.DefaultTemplateName,
			Type:   media.MediaType(mediaType),
			Format: format,
		})
	}
	return registry
}
