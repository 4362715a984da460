package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/templui/challenge/internal/catalog"
)

func CatalogCmd() *cobra.Command {
	var path string

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the exercise catalog with monthly tier targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				path = loadConfig().CatalogPath
			}

			cat, err := catalog.Load(path)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprint(tw, "EXERCISE\tUNIT")
			for _, t := range catalog.Tiers {
				fmt.Fprintf(tw, "\t%s", t)
			}
			fmt.Fprintln(tw)

			for _, e := range cat.Entries() {
				fmt.Fprintf(tw, "%s\t%s", e.Exercise, e.Unit)
				for _, t := range catalog.Tiers {
					fmt.Fprintf(tw, "\t%g", e.Tiers[t])
				}
				fmt.Fprintln(tw)
			}

			return tw.Flush()
		},
	}

	catalogCmd.Flags().StringVar(&path, "file", "", "Catalog YAML file (default: CATALOG_PATH or embedded)")

	return catalogCmd
}
