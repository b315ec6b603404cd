package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	catalogorch "github.com/KirkDiggler/dominions-mapgen/internal/orchestrators/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the nation and unit catalog",
}

var (
	importFile    string
	importReplace bool
	searchTerm    string
	searchModded  []int32
)

var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import nations and units from a YAML document",
	Example: `  mapgen catalog import --file catalog.yaml
  mapgen catalog import --file catalog.yaml --replace`,
	RunE: runCatalogImport,
}

var catalogNationsCmd = &cobra.Command{
	Use:   "nations",
	Short: "Search catalog nations",
	RunE:  runCatalogNations,
}

var catalogUnitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Search catalog units and commanders",
	RunE:  runCatalogUnits,
}

func init() {
	catalogImportCmd.Flags().StringVarP(&importFile, "file", "f", "", "YAML catalog document")
	catalogImportCmd.Flags().BoolVar(&importReplace, "replace", false, "drop existing entries before importing")
	_ = catalogImportCmd.MarkFlagRequired("file")

	for _, c := range []*cobra.Command{catalogNationsCmd, catalogUnitsCmd} {
		c.Flags().StringVarP(&searchTerm, "search", "s", "", "id or name fragment")
		c.Flags().Int32SliceVar(&searchModded, "modded", nil, "modded flags to include (default vanilla only)")
	}

	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogNationsCmd)
	catalogCmd.AddCommand(catalogUnitsCmd)
}

func newCatalogService(a *app) (catalogorch.Service, error) {
	return catalogorch.NewOrchestrator(&catalogorch.Config{
		CatalogRepo: a.catalogRepo,
		Logger:      a.logger,
	})
}

func runCatalogImport(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(importFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", importFile, err)
	}

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	svc, err := newCatalogService(a)
	if err != nil {
		return err
	}

	out, err := svc.Import(cmd.Context(), &catalogorch.ImportInput{
		Data:    data,
		Replace: importReplace,
	})
	if err != nil {
		return err
	}

	cmd.Printf("Imported %d nations and %d units at %s\n",
		out.NationCount, out.UnitCount, out.ImportedAt.Format(time.RFC3339))
	return nil
}

func runCatalogNations(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	svc, err := newCatalogService(a)
	if err != nil {
		return err
	}

	out, err := svc.SearchNations(cmd.Context(), &catalogorch.SearchNationsInput{
		Search: searchTerm,
		Modded: searchModded,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tERA\tNAME")
	for _, n := range out.Nations {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", n.DominionID, n.Era.Code(), n.Name)
	}
	return w.Flush()
}

func runCatalogUnits(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	svc, err := newCatalogService(a)
	if err != nil {
		return err
	}

	out, err := svc.SearchUnits(cmd.Context(), &catalogorch.SearchUnitsInput{
		Search: searchTerm,
		Modded: searchModded,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME")
	for _, u := range out.Units {
		_, _ = fmt.Fprintf(w, "%d\t%s\n", u.DominionID, u.Name)
	}
	return w.Flush()
}
