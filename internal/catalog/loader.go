package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"rackbrowser/internal/domain"
	"rackbrowser/internal/eventbus"
)

//go:embed builtin.toml
var builtinManifest []byte

// maxDepth bounds how far below the plugins root manifests are searched
const maxDepth = 3

type manifestFile struct {
	Plugins []manifestPlugin `toml:"plugins"`
}

type manifestPlugin struct {
	Slug         string          `toml:"slug"`
	Name         string          `toml:"name"`
	Version      string          `toml:"version"`
	Manufacturer string          `toml:"manufacturer"` // default for models that omit it
	Models       []manifestModel `toml:"models"`
}

type manifestModel struct {
	Slug         string         `toml:"slug"`
	Name         string         `toml:"name"`
	Manufacturer string         `toml:"manufacturer"`
	Tags         []domain.TagID `toml:"tags"`
}

// ParseManifest decodes one TOML manifest into plugins. source is only
// used in error messages.
func ParseManifest(data []byte, source string) ([]*domain.Plugin, error) {
	var mf manifestFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&mf); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidManifest, source, err)
	}

	plugins := make([]*domain.Plugin, 0, len(mf.Plugins))
	for _, mp := range mf.Plugins {
		p := &domain.Plugin{
			Slug:    mp.Slug,
			Name:    mp.Name,
			Version: mp.Version,
		}
		if p.Name == "" {
			p.Name = p.Slug
		}
		for _, mm := range mp.Models {
			m := &domain.ModuleDescriptor{
				Plugin:       mp.Slug,
				Slug:         mm.Slug,
				Name:         mm.Name,
				Manufacturer: mm.Manufacturer,
				Tags:         mm.Tags,
			}
			if m.Name == "" {
				m.Name = m.Slug
			}
			if m.Manufacturer == "" {
				m.Manufacturer = mp.Manufacturer
			}
			p.Models = append(p.Models, m)
		}
		if err := validatePlugin(p); err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		plugins = append(plugins, p)
	}
	return plugins, nil
}

// Loader builds catalogs from manifests on disk or from the embedded set
type Loader struct {
	bus eventbus.EventBus
}

// NewLoader creates a loader. bus may be nil.
func NewLoader(bus eventbus.EventBus) *Loader {
	return &Loader{bus: bus}
}

// LoadBuiltin returns the catalog compiled into the binary
func (l *Loader) LoadBuiltin() (*Catalog, error) {
	plugins, err := ParseManifest(builtinManifest, "builtin.toml")
	if err != nil {
		return nil, err
	}
	c, err := New(plugins...)
	if err != nil {
		return nil, err
	}
	l.publishLoaded(c, 0)
	return c, nil
}

// LoadDir walks root for *.toml manifests in lexical order. Manifests that
// fail to parse or collide with an earlier plugin are skipped; the
// returned catalog holds everything valid, and the error (if any) joins
// every rejection.
func (l *Loader) LoadDir(ctx context.Context, root string) (*Catalog, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open plugins directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("plugins path is not a directory: %s", root)
	}

	c, _ := New()
	var rejected []error

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			log.Warn("catalog: error walking path", "path", path, "err", err)
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			relPath, _ := filepath.Rel(root, path)
			if strings.Count(relPath, string(filepath.Separator)) >= maxDepth {
				return filepath.SkipDir
			}
			if strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != ".toml" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			rejected = append(rejected, fmt.Errorf("failed to read manifest: %w", err))
			return nil
		}
		plugins, err := ParseManifest(data, path)
		if err != nil {
			log.Warn("catalog: skipping manifest", "path", path, "err", err)
			rejected = append(rejected, err)
			return nil
		}
		for _, p := range plugins {
			if err := c.add(p); err != nil {
				log.Warn("catalog: skipping plugin", "path", path, "plugin", p.Slug, "err", err)
				rejected = append(rejected, fmt.Errorf("%s: %w", path, err))
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan plugins directory: %w", err)
	}

	log.Info("catalog: loaded", "root", root, "plugins", len(c.plugins), "modules", c.Len(), "rejected", len(rejected))
	l.publishLoaded(c, len(rejected))
	return c, errors.Join(rejected...)
}

func (l *Loader) publishLoaded(c *Catalog, skipped int) {
	if l.bus == nil {
		return
	}
	l.bus.Publish(eventbus.CatalogLoadedEvent{
		Plugins: len(c.plugins),
		Modules: c.Len(),
		Skipped: skipped,
	})
}
