// Package catalog holds the ordered set of plugins and their modules that
// the browser filters, and builds it from TOML plugin manifests.
package catalog

import (
	"errors"
	"fmt"

	"rackbrowser/internal/domain"
)

var (
	// ErrInvalidManifest is returned for manifests missing required fields
	ErrInvalidManifest = errors.New("invalid plugin manifest")
	// ErrDuplicatePlugin is returned when two manifests declare the same plugin slug
	ErrDuplicatePlugin = errors.New("duplicate plugin")
	// ErrDuplicateModel is returned when a plugin declares the same model slug twice
	ErrDuplicateModel = errors.New("duplicate model")
)

// Catalog is an immutable, ordered collection of plugins
type Catalog struct {
	plugins []*domain.Plugin
	bySlug  map[string]*domain.Plugin
	models  map[domain.ModuleRef]*domain.ModuleDescriptor
}

// New builds a catalog from plugins in the given order. Plugins and
// models are validated; the first problem is returned as an error.
func New(plugins ...*domain.Plugin) (*Catalog, error) {
	c := &Catalog{
		bySlug: make(map[string]*domain.Plugin),
		models: make(map[domain.ModuleRef]*domain.ModuleDescriptor),
	}
	for _, p := range plugins {
		if err := c.add(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(p *domain.Plugin) error {
	if err := validatePlugin(p); err != nil {
		return err
	}
	if _, exists := c.bySlug[p.Slug]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicatePlugin, p.Slug)
	}
	c.plugins = append(c.plugins, p)
	c.bySlug[p.Slug] = p
	for _, m := range p.Models {
		c.models[m.Ref()] = m
	}
	return nil
}

func validatePlugin(p *domain.Plugin) error {
	if p == nil || p.Slug == "" {
		return fmt.Errorf("%w: plugin slug is required", ErrInvalidManifest)
	}
	seen := make(map[string]bool, len(p.Models))
	for i, m := range p.Models {
		if m == nil || m.Slug == "" {
			return fmt.Errorf("%w: plugin %s model #%d has no slug", ErrInvalidManifest, p.Slug, i)
		}
		if m.Plugin != p.Slug {
			return fmt.Errorf("%w: model %s belongs to %q, not %q", ErrInvalidManifest, m.Slug, m.Plugin, p.Slug)
		}
		if seen[m.Slug] {
			return fmt.Errorf("%w: %s/%s", ErrDuplicateModel, p.Slug, m.Slug)
		}
		seen[m.Slug] = true
		for _, tag := range m.Tags {
			if !tag.Valid() {
				return fmt.Errorf("%w: %s/%s: %w", ErrInvalidManifest, p.Slug, m.Slug, domain.ErrUnknownTag)
			}
		}
	}
	return nil
}

// Plugins returns the plugins in catalog order
func (c *Catalog) Plugins() []*domain.Plugin {
	if c == nil {
		return nil
	}
	return c.plugins
}

// Plugin returns a plugin by slug
func (c *Catalog) Plugin(slug string) (*domain.Plugin, bool) {
	if c == nil {
		return nil, false
	}
	p, ok := c.bySlug[slug]
	return p, ok
}

// Resolve looks a module up by plugin and model slug
func (c *Catalog) Resolve(plugin, model string) (*domain.ModuleDescriptor, bool) {
	if c == nil {
		return nil, false
	}
	m, ok := c.models[domain.ModuleRef{Plugin: plugin, Model: model}]
	return m, ok
}

// Modules returns every module, plugins in order then models in order
func (c *Catalog) Modules() []*domain.ModuleDescriptor {
	if c == nil {
		return nil
	}
	out := make([]*domain.ModuleDescriptor, 0, len(c.models))
	for _, p := range c.plugins {
		out = append(out, p.Models...)
	}
	return out
}

// Len returns the number of modules
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.models)
}
