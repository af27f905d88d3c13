package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"rackbrowser/internal/eventbus"
	"rackbrowser/internal/logging"
	"rackbrowser/internal/rack"
	"rackbrowser/internal/ui"
)

// forwardedEvents are the domain events the UI reacts to
var forwardedEvents = []eventbus.EventType{
	eventbus.EventCatalogLoaded,
	eventbus.EventFavoritesLoaded,
	eventbus.EventFavoritesSaved,
	eventbus.EventModuleInstantiated,
	eventbus.EventModuleRemoved,
	eventbus.EventError,
}

func runTUI(cmd *cobra.Command, opts *options) error {
	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Logging goes to a file before anything can log: the TUI owns the terminal
	closer, logErr := setupFileLogging(opts)
	defer closer.Close()
	if logErr != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", logErr)
	}

	// Closed before the log file so the last events are still written
	bus := eventbus.New()
	defer bus.Close()
	logging.LogEvents(bus)

	// Queue events until the program exists
	eventChan := make(chan eventbus.DomainEvent, 100)
	for _, t := range forwardedEvents {
		bus.Subscribe(t, func(e eventbus.DomainEvent) {
			select {
			case eventChan <- e:
			default:
				// Channel full, drop event
				log.Warn("event channel full, dropping event", "type", e.Type())
			}
		})
	}

	a, err := loadApp(ctx, opts, bus)
	if err != nil {
		return err
	}
	log.Info("starting", "plugins", len(a.catalog.Plugins()), "modules", a.catalog.Len(), "favorites", a.favorites.Len())

	r := rack.New(a.catalog, bus)
	model := ui.NewModel(bus, a.cfg, a.catalog, r, a.favorites)

	p := tea.NewProgram(model, programOptions(ctx)...)
	model.SetProgram(p)

	go forward(ctx, eventChan, p)

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}

	// Favorites are saved on every toggle; this catches a save that was
	// still in flight when the program quit
	if err := a.saveFavorites(); err != nil {
		log.Error("failed to save favorites on exit", "err", err)
	}
	return nil
}

// programOptions configures the terminal. All-motion mouse reporting
// delivers plain hover, which moves the browser cursor.
func programOptions(ctx context.Context) []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	}
}

// setupFileLogging opens the log file named by the configuration. Runs
// before loadApp so catalog loading is logged.
func setupFileLogging(opts *options) (io.Closer, error) {
	_, cfg, err := loadConfig(opts, nil)
	if err != nil {
		return logging.Setup("", "info")
	}
	return logging.Setup(cfg.Log.File, cfg.Log.Level)
}

func forward(ctx context.Context, events <-chan eventbus.DomainEvent, p *tea.Program) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-events:
			p.Send(ui.EventMsg{Event: e})
		}
	}
}
