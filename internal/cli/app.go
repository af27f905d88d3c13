package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"rackbrowser/internal/catalog"
	"rackbrowser/internal/config"
	"rackbrowser/internal/eventbus"
	"rackbrowser/internal/favorites"
)

// app is everything a command needs: configuration, the catalog and the
// favorites loaded against it
type app struct {
	bus       eventbus.EventBus
	cfg       *config.Config
	catalog   *catalog.Catalog
	favorites *favorites.Store
}

// loadApp reads the configuration, builds the catalog and merges the
// saved favorites. Rejected manifests are logged, not fatal.
func loadApp(ctx context.Context, opts *options, bus eventbus.EventBus) (*app, error) {
	_, cfg, err := loadConfig(opts, bus)
	if err != nil {
		return nil, err
	}

	cat, err := loadCatalog(ctx, cfg.PluginsDir, opts.builtin, bus)
	if err != nil {
		return nil, err
	}

	favs := favorites.NewStore(bus)
	if _, err := favs.LoadFile(cfg.SettingsPath, cat); err != nil {
		return nil, err
	}

	return &app{
		bus:       bus,
		cfg:       cfg,
		catalog:   cat,
		favorites: favs,
	}, nil
}

// loadCatalog reads the plugins directory, falling back to the built-in
// catalog when it is not set up
func loadCatalog(ctx context.Context, dir string, builtin bool, bus eventbus.EventBus) (*catalog.Catalog, error) {
	loader := catalog.NewLoader(bus)
	if builtin || dir == "" {
		return loader.LoadBuiltin()
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		log.Info("plugins directory missing, using built-in catalog", "dir", dir)
		return loader.LoadBuiltin()
	}

	cat, err := loader.LoadDir(ctx, dir)
	if cat == nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if err != nil {
		log.Warn("some plugin manifests were skipped", "dir", dir, "err", err)
	}
	return cat, nil
}

// saveFavorites writes the favorites document to the settings file
func (a *app) saveFavorites() error {
	return a.favorites.SaveFile(a.cfg.SettingsPath)
}
