// Command catalogctl inspects inventory files and imports them into SQLite.
//
// Usage:
//
//	catalogctl import inventory.yaml --db site.db
//	catalogctl query --db site.db --brand BMW --sort price-asc
//	catalogctl show bmw-m5-competition
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/d-one-motors/site/catalog"
	"github.com/d-one-motors/site/inventory"
)

type options struct {
	dbPath string
	file   string
}

func (o *options) source() inventory.Source {
	return inventory.Source{DatabaseURL: o.dbPath, Path: o.file}
}

func (o *options) catalog() (*catalog.Catalog, error) {
	vehicles, err := inventory.Load(o.source())
	if err != nil {
		return nil, err
	}
	return catalog.New(vehicles), nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Manage the D-ONE Motors vehicle inventory",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite database holding an imported inventory")
	root.PersistentFlags().StringVar(&opts.file, "file", "", "JSON or YAML inventory file (ignored when --db is set)")

	root.AddCommand(
		newImportCmd(opts),
		newBrandsCmd(opts),
		newQueryCmd(opts),
		newShowCmd(opts),
		newValidateCmd(opts),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
