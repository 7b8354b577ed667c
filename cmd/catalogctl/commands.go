package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/d-one-motors/site/catalog"
	"github.com/d-one-motors/site/db"
	"github.com/d-one-motors/site/inventory"
)

func newImportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the database inventory with a JSON or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.dbPath == "" {
				return errors.New("--db is required")
			}

			vehicles, err := inventory.LoadFile(args[0])
			if err != nil {
				return err
			}
			for _, w := range inventory.Validate(vehicles) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
			}

			conn, err := db.Open(opts.dbPath)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := db.EnsureSchema(conn); err != nil {
				return err
			}
			if err := inventory.Save(conn, vehicles); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d vehicles into %s\n", len(vehicles), opts.dbPath)
			return nil
		},
	}
}

func newBrandsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "brands",
		Short: "List the brand filter values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.catalog()
			if err != nil {
				return err
			}
			for _, b := range cat.Brands() {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
			return nil
		},
	}
}

func newQueryCmd(opts *options) *cobra.Command {
	var brand, sort string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "List vehicles the way the catalog page does",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.catalog()
			if err != nil {
				return err
			}

			mode := catalog.ParseSortMode(sort)
			if sort != "" && string(mode) != sort {
				return fmt.Errorf("unknown sort mode %q", sort)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tBRAND\tMODEL\tYEAR\tPRICE")
			for _, v := range cat.Query(brand, mode) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", v.ID, v.Brand, v.Model, v.Year, v.FormatPrice())
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&brand, "brand", catalog.AllBrands, "exact brand to filter by")
	cmd.Flags().StringVar(&sort, "sort", "", "default, price-asc, price-desc or newest")
	return cmd
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print one vehicle and its related vehicles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.catalog()
			if err != nil {
				return err
			}

			v, ok := cat.Resolve(args[0])
			if !ok {
				return fmt.Errorf("vehicle %q not found", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d)\n", v.Title(), v.Year)
			fmt.Fprintf(out, "Price:     %s\n", v.FormatPrice())
			fmt.Fprintf(out, "Category:  %s\n", v.Category)
			fmt.Fprintf(out, "Engine:    %s, %s\n", v.Engine, v.Power)
			fmt.Fprintf(out, "Images:    %d\n", len(v.Gallery))
			if len(v.Highlights) > 0 {
				fmt.Fprintf(out, "Highlights: %s\n", strings.Join(v.Highlights, ", "))
			}

			related := cat.Related(v)
			ids := make([]string, 0, len(related))
			for _, r := range related {
				ids = append(ids, r.ID)
			}
			fmt.Fprintf(out, "Related:   %s\n", strings.Join(ids, ", "))
			return nil
		},
	}
}

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Report data problems in the inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vehicles, err := inventory.Load(opts.source())
			if err != nil {
				return err
			}

			warnings := inventory.Validate(vehicles)
			for _, w := range warnings {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			if len(warnings) > 0 {
				return fmt.Errorf("%d problems in %d vehicles", len(warnings), len(vehicles))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d vehicles OK\n", len(vehicles))
			return nil
		},
	}
}
