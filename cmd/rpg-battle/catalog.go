package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-battle/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the classes and enemies of the loaded catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := catalog.Open(cfg.CatalogPath)
		if err != nil {
			return err
		}
		return printCatalog(cmd.OutOrStdout(), cat)
	},
}

func printCatalog(out io.Writer, cat *catalog.Catalog) error {
	fmt.Fprintln(out, "Classes:")
	for _, id := range cat.ClassIDs() {
		t, err := cat.Class(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %-10s %-8s %s\n", id, t.Resource, skillNames(t))
	}

	fmt.Fprintln(out, "Enemies:")
	for _, id := range cat.EnemyIDs() {
		t, err := cat.Enemy(id)
		if err != nil {
			return err
		}
		boss := ""
		if t.Enemy.Boss {
			boss = " (boss)"
		}
		fmt.Fprintf(out, "  %-10s %v%s %s\n", id, t.Enemy.Categories, boss, skillNames(t))
	}
	return nil
}

func skillNames(t *catalog.Template) string {
	names := make([]string, len(t.Skills))
	for i, sk := range t.Skills {
		names[i] = sk.ID
	}
	return strings.Join(names, ", ")
}
