// Package mapgen turns a faction, commander and unit selection into a scenario
// map. Generation runs in four steps: validate, group, compose, substitute.
package mapgen

//go:generate mockgen -destination=mock/mock_service.go -package=mapgenmock github.com/KirkDiggler/dominions-mapgen/internal/orchestrators/mapgen Service

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
	"github.com/KirkDiggler/dominions-mapgen/internal/repositories/catalog"
	"github.com/KirkDiggler/dominions-mapgen/internal/templates"
)

// DefaultBaseTemplate is the template family used when none is configured
const DefaultBaseTemplate = "Arena"

// Service defines the map generation operations
type Service interface {
	// GenerateMap validates the request and renders the scenario map
	// Returns errors.InvalidArgument with per-field details for bad selections
	// Returns errors.Internal when the template cannot be loaded or the catalog fails
	GenerateMap(ctx context.Context, input *GenerateMapInput) (*GenerateMapOutput, error)
}

// Config holds the dependencies for the map generation orchestrator
type Config struct {
	CatalogRepo    catalog.Repository
	TemplateLoader templates.Loader
	Logger         *zap.Logger
	// BaseTemplate defaults to DefaultBaseTemplate
	BaseTemplate string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CatalogRepo == nil {
		vb.RequiredField("CatalogRepo")
	}
	if c.TemplateLoader == nil {
		vb.RequiredField("TemplateLoader")
	}

	return vb.Build()
}

type orchestrator struct {
	catalogRepo    catalog.Repository
	templateLoader templates.Loader
	logger         *zap.Logger
	baseTemplate   string
}

// NewOrchestrator creates a new map generation orchestrator
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

	base := cfg.BaseTemplate
	if base == "" {
		base = DefaultBaseTemplate
	}

	return &orchestrator{
		catalogRepo:    cfg.CatalogRepo,
		templateLoader: cfg.TemplateLoader,
		logger:         logger.Named("mapgen"),
		baseTemplate:   base,
	}, nil
}

func (o *orchestrator) GenerateMap(ctx context.Context, input *GenerateMapInput) (*GenerateMapOutput, error) {
	if input == nil || input.Request == nil {
		return nil, errors.InvalidArgument("request is required")
	}

	selection, err := o.validate(ctx, input.Request)
	if err != nil {
		return nil, err
	}

	groups, err := o.group(ctx, selection)
	if err != nil {
		return nil, err
	}
	o.warnUnplaced(selection, groups)

	blocks := compose(groups)

	result, err := o.substitute(ctx, selection, blocks)
	if err != nil {
		o.logger.Error("map substitution failed", zap.Error(err))
		return nil, err
	}

	o.logger.Info("map generated",
		zap.String("map_name", result.mapName),
		zap.String("template", result.templateName),
		zap.Int("factions", len(groups)),
		zap.Int("commanders", len(selection.Commanders)),
		zap.Int("units", len(selection.Units)),
	)

	return &GenerateMapOutput{
		MapName:      result.mapName,
		TemplateName: result.templateName,
		Content:      result.content,
		Factions:     groups,
	}, nil
}

// warnUnplaced logs entries that will not appear in the map: units of a
// faction without commanders, and entries assigned to no selected faction.
func (o *orchestrator) warnUnplaced(selection *dominions.Selection, groups []*dominions.FactionGroup) {
	for _, g := range groups {
		if len(g.Unassigned) > 0 {
			o.logger.Warn("faction has units but no commander to lead them",
				zap.String("faction", g.Display),
				zap.Int("units", len(g.Unassigned)),
			)
		}
	}

	occupied := selection.Occupied()
	matchesAny := func(assigned string) bool {
		for _, f := range occupied {
			if f.Matches(assigned) {
				return true
			}
		}
		return false
	}

	for _, c := range selection.Commanders {
		if !matchesAny(c.AssignedFaction) {
			o.logger.Warn("commander assigned to a faction that is not selected",
				zap.String("commander", c.CatalogID),
				zap.String("assigned_faction", c.AssignedFaction),
			)
		}
	}
	for _, u := range selection.Units {
		if !matchesAny(u.AssignedFaction) {
			o.logger.Warn("unit assigned to a faction that is not selected",
				zap.String("unit", u.CatalogID),
				zap.String("assigned_faction", u.AssignedFaction),
			)
		}
	}
}
