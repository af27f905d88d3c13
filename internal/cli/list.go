package cli

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"rackbrowser/internal/catalog"
	"rackbrowser/internal/domain"
	"rackbrowser/internal/ui"
	"rackbrowser/internal/ui/logic"
)

type listOptions struct {
	search        string
	manufacturer  string
	tag           string
	favoritesOnly bool
	pager         bool
}

func newListCommand(opts *options) *cobra.Command {
	lo := &listOptions{}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List modules matching a search and filter",
		Long: `List modules the way the browser would show them: favorites only when
--favorites-only is given, otherwise every module in catalog order that
passes the manufacturer and tag filters. The search is one case-insensitive
substring matched against "plugin manufacturer name slug tags" joined by
spaces, so it may span adjacent fields but words are not reordered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts, lo)
		},
	}
	cmd.Flags().StringVarP(&lo.search, "search", "s", "", "case-insensitive substring of plugin, manufacturer, name, slug and tags")
	cmd.Flags().StringVarP(&lo.manufacturer, "manufacturer", "m", "", "only modules by this manufacturer")
	cmd.Flags().StringVarP(&lo.tag, "tag", "t", "", "only modules with this tag (key or label)")
	cmd.Flags().BoolVarP(&lo.favoritesOnly, "favorites-only", "f", false, "only favorite modules")
	cmd.Flags().BoolVar(&lo.pager, "pager", false, "show the result in a pager")
	return cmd
}

func runList(cmd *cobra.Command, opts *options, lo *listOptions) error {
	a, err := loadApp(cmd.Context(), opts, nil)
	if err != nil {
		return err
	}

	filter, err := resolveFilter(a.catalog, lo)
	if err != nil {
		return err
	}

	source := a.catalog.Modules()
	if lo.favoritesOnly {
		source = a.favorites.List()
	}
	var modules []*domain.ModuleDescriptor
	for _, m := range source {
		if logic.Visible(m, filter) {
			modules = append(modules, m)
		}
	}

	var buf bytes.Buffer
	writeModuleTable(&buf, modules, a.favorites.IsFavorite)

	if lo.pager {
		return ui.RunPager(&buf)
	}
	_, err = io.Copy(cmd.OutOrStdout(), &buf)
	return err
}

// resolveFilter turns the flag values into a filter. Manufacturer names
// match case-insensitively against the catalog.
func resolveFilter(c *catalog.Catalog, lo *listOptions) (logic.FilterState, error) {
	filter := logic.FilterState{Search: lo.search}
	if lo.manufacturer != "" {
		for _, name := range catalog.BuildIndex(c).Manufacturers {
			if strings.EqualFold(name, lo.manufacturer) {
				filter.Manufacturer = name
				break
			}
		}
		if filter.Manufacturer == "" {
			return filter, fmt.Errorf("unknown manufacturer: %s", lo.manufacturer)
		}
	}
	if lo.tag != "" {
		tag, err := domain.ParseTag(lo.tag)
		if err != nil {
			return filter, err
		}
		filter.Tag = tag
	}
	return filter, nil
}

func writeModuleTable(w io.Writer, modules []*domain.ModuleDescriptor, isFavorite func(domain.ModuleRef) bool) {
	if len(modules) == 0 {
		fmt.Fprintln(w, "No modules match.")
		return
	}

	rows := make([][]string, 0, len(modules))
	for _, m := range modules {
		star := ""
		if isFavorite(m.Ref()) {
			star = "★"
		}
		tags := make([]string, 0, len(m.Tags))
		for _, t := range m.Tags {
			tags = append(tags, t.Label())
		}
		rows = append(rows, []string{star, m.Ref().String(), m.Name, m.Manufacturer, strings.Join(tags, ", ")})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "MODULE", "NAME", "MANUFACTURER", "TAGS").
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "%d modules\n", len(modules))
}
