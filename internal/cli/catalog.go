package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"rackbrowser/internal/catalog"
)

func newTagsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the tags used by the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd.Context(), opts, nil)
			if err != nil {
				return err
			}
			for _, tag := range catalog.BuildIndex(a.catalog).Tags {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", tag.Key(), tag.Label())
			}
			return nil
		},
	}
}

func newManufacturersCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "manufacturers",
		Short: "List the manufacturers in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd.Context(), opts, nil)
			if err != nil {
				return err
			}
			for _, name := range catalog.BuildIndex(a.catalog).Manufacturers {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
