package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rackbrowser/internal/domain"
)

func newFavoritesCommand(opts *options) *cobra.Command {
	favCmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage favorite modules",
	}

	favCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favorite modules in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd.Context(), opts, nil)
			if err != nil {
				return err
			}
			for _, m := range a.favorites.List() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", m.Ref(), m.Name)
			}
			return nil
		},
	})

	favCmd.AddCommand(&cobra.Command{
		Use:   "add PLUGIN/MODEL...",
		Short: "Mark modules as favorites",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setFavorites(cmd, opts, args, true)
		},
	})

	favCmd.AddCommand(&cobra.Command{
		Use:     "remove PLUGIN/MODEL...",
		Aliases: []string{"rm"},
		Short:   "Unmark favorite modules",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setFavorites(cmd, opts, args, false)
		},
	})

	return favCmd
}

func setFavorites(cmd *cobra.Command, opts *options, args []string, favorite bool) error {
	a, err := loadApp(cmd.Context(), opts, nil)
	if err != nil {
		return err
	}

	// Resolve everything first so a typo changes nothing
	modules := make([]*domain.ModuleDescriptor, 0, len(args))
	for _, arg := range args {
		ref, err := parseRef(arg)
		if err != nil {
			return err
		}
		m, ok := a.catalog.Resolve(ref.Plugin, ref.Model)
		if !ok {
			return fmt.Errorf("unknown module: %s", ref)
		}
		modules = append(modules, m)
	}

	for _, m := range modules {
		a.favorites.SetFavorite(m, favorite)
	}
	if err := a.saveFavorites(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d favorites\n", a.favorites.Len())
	return nil
}

// parseRef splits "Plugin/Model"
func parseRef(s string) (domain.ModuleRef, error) {
	plugin, model, ok := strings.Cut(s, "/")
	if !ok || plugin == "" || model == "" {
		return domain.ModuleRef{}, fmt.Errorf("module must be given as PLUGIN/MODEL: %q", s)
	}
	return domain.ModuleRef{Plugin: plugin, Model: model}, nil
}
