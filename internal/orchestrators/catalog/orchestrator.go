// Package catalog implements catalog search for autocomplete and catalog imports
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/KirkDiggler/dominions-mapgen/internal/orchestrators/catalog Service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
	catalogrepo "github.com/KirkDiggler/dominions-mapgen/internal/repositories/catalog"
)

// Service defines the catalog operations
type Service interface {
	// SearchNations returns nations matching the search text
	// Returns errors.Internal for storage failures
	SearchNations(ctx context.Context, input *SearchNationsInput) (*SearchNationsOutput, error)

	// SearchUnits returns units and commanders matching the search text
	// Returns errors.Internal for storage failures
	SearchUnits(ctx context.Context, input *SearchUnitsInput) (*SearchUnitsOutput, error)

	// Import loads a YAML catalog document into the repository
	// Returns errors.InvalidArgument for unreadable documents or bad entries
	// Returns errors.Internal for storage failures
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	CatalogRepo catalogrepo.Repository
	Logger      *zap.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}

	return vb.Build()
}

type orchestrator struct {
	catalogRepo catalogrepo.Repository
	logger      *zap.Logger
}

// NewOrchestrator creates a new catalog orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &orchestrator{
		catalogRepo: cfg.CatalogRepo,
		logger:      logger.Named("catalog"),
	}, nil
}

func moddedOrDefault(modded []int32) []int32 {
	if len(modded) == 0 {
		return []int32{dominions.ModdedVanilla}
	}
	return modded
}

// search keeps the entries whose id equals text or whose name contains it,
// ignoring case. Exact id or name matches come first. Both groups are sorted
// by less. Empty text keeps every entry.
func search[T dominions.CatalogEntry](entries []T, text string, less func(a, b T) bool) []T {
	text = strings.TrimSpace(text)
	lowered := strings.ToLower(text)

	var exact, partial []T
	for _, e := range entries {
		switch {
		case text == "":
			partial = append(partial, e)
		case e.GetID() == text || strings.EqualFold(e.GetName(), text):
			exact = append(exact, e)
		case strings.Contains(strings.ToLower(e.GetName()), lowered):
			partial = append(partial, e)
		}
	}

	sort.SliceStable(exact, func(i, j int) bool { return less(exact[i], exact[j]) })
	sort.SliceStable(partial, func(i, j int) bool { return less(partial[i], partial[j]) })
	return append(exact, partial...)
}

func nationLess(a, b *dominions.Nation) bool {
	if a.DominionID != b.DominionID {
		return a.DominionID < b.DominionID
	}
	return a.Era < b.Era
}

func unitLess(a, b *dominions.Unit) bool {
	return a.DominionID < b.DominionID
}

func (o *orchestrator) SearchNations(ctx context.Context, input *SearchNationsInput) (*SearchNationsOutput, error) {
	if input == nil {
		input = &SearchNationsInput{}
	}

	out, err := o.catalogRepo.ListNations(ctx, catalogrepo.ListNationsInput{Modded: moddedOrDefault(input.Modded)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list nations")
	}

	return &SearchNationsOutput{Nations: search(out.Nations, input.Search, nationLess)}, nil
}

func (o *orchestrator) SearchUnits(ctx context.Context, input *SearchUnitsInput) (*SearchUnitsOutput, error) {
	if input == nil {
		input = &SearchUnitsInput{}
	}

	out, err := o.catalogRepo.ListUnits(ctx, catalogrepo.ListUnitsInput{Modded: moddedOrDefault(input.Modded)})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list units")
	}

	return &SearchUnitsOutput{Units: search(out.Units, input.Search, unitLess)}, nil
}

func (o *orchestrator) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil || len(input.Data) == 0 {
		return nil, errors.InvalidArgument("catalog document is required")
	}

	var doc document
	if err := yaml.Unmarshal(input.Data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "catalog document is not valid YAML")
	}

	nations, units, err := doc.entities()
	if err != nil {
		return nil, err
	}

	out, err := o.catalogRepo.Import(ctx, catalogrepo.ImportInput{
		Nations: nations,
		Units:   units,
		Replace: input.Replace,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to import catalog")
	}

	o.logger.Info("catalog imported",
		zap.Int("nations", out.NationCount),
		zap.Int("units", out.UnitCount),
		zap.Bool("replace", input.Replace),
		zap.Time("imported_at", out.ImportedAt),
	)

	return &ImportOutput{
		NationCount: out.NationCount,
		UnitCount:   out.UnitCount,
		ImportedAt:  out.ImportedAt,
	}, nil
}

// entities converts the document, reporting every bad entry at once
func (d *document) entities() ([]*dominions.Nation, []*dominions.Unit, error) {
	vb := errors.NewValidationBuilder()

	nations := make([]*dominions.Nation, 0, len(d.Nations))
	for i, rec := range d.Nations {
		field := fmt.Sprintf("nations[%d]", i)
		errors.ValidatePositive(field+".dominion_id", int64(rec.DominionID), vb)
		errors.ValidateRequired(field+".name", rec.Name, vb)

		era, ok := dominions.ParseEra(strings.ToUpper(strings.TrimSpace(rec.Era)))
		if !ok {
			vb.Fieldf(field+".era", "must be one of: %s", strings.Join(dominions.EraCodes(), ", "))
		}

		nations = append(nations, &dominions.Nation{
			DominionID: rec.DominionID,
			Name:       strings.TrimSpace(rec.Name),
			Era:        era,
			Modded:     moddedValue(rec.Modded),
		})
	}

	units := make([]*dominions.Unit, 0, len(d.Units))
	for i, rec := range d.Units {
		field := fmt.Sprintf("units[%d]", i)
		errors.ValidatePositive(field+".dominion_id", int64(rec.DominionID), vb)
		errors.ValidateRequired(field+".name", rec.Name, vb)

		units = append(units, &dominions.Unit{
			DominionID: rec.DominionID,
			Name:       strings.TrimSpace(rec.Name),
			Modded:     moddedValue(rec.Modded),
		})
	}

	if err := vb.Build(); err != nil {
		return nil, nil, err
	}
	return nations, units, nil
}

func moddedValue(modded *int32) int32 {
	if modded == nil {
		return dominions.ModdedVanilla
	}
	return *modded
}
