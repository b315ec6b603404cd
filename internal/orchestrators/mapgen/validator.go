package mapgen

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
	"github.com/KirkDiggler/dominions-mapgen/internal/repositories/catalog"
)

// validate checks the request against the catalog and returns the selection.
// Field failures are collected so the caller sees all of them at once.
// Storage failures abort immediately.
func (o *orchestrator) validate(ctx context.Context, req *dominions.MapRequest) (*dominions.Selection, error) {
	vb := errors.NewValidationBuilder()
	selection := &dominions.Selection{
		Commanders: req.Commanders,
		Units:      req.Units,
		UseCaveMap: req.UseCaveMap,
	}

	selected := 0
	for i, raw := range req.FactionFields() {
		slot := dominions.FactionSlot(i)
		if strings.TrimSpace(raw) == "" {
			continue
		}
		selected++

		faction, err := o.validateFaction(ctx, slot, raw)
		if err != nil {
			var unknown *UnknownFactionError
			if errors.As(err, &unknown) {
				vb.FieldError(slot.Field(), unknown)
				continue
			}
			return nil, err
		}
		selection.Factions[slot] = faction
	}

	if selected < MinFactions {
		vb.FieldError("factions", &InsufficientFactionsError{Selected: selected})
	}

	known := make(map[string]bool)
	for i, c := range req.Commanders {
		if err := o.validateUnitID(ctx, c.CatalogID, known); err != nil {
			if !addUnknownUnit(vb, fmt.Sprintf("commanders[%d].catalog_id", i), err) {
				return nil, err
			}
		}
	}

	for i, u := range req.Units {
		if err := o.validateUnitID(ctx, u.CatalogID, known); err != nil {
			if !addUnknownUnit(vb, fmt.Sprintf("units[%d].catalog_id", i), err) {
				return nil, err
			}
		}
		// the game reads the count verbatim, zero included
		if _, err := strconv.ParseInt(string(u.Quantity), 10, 32); err != nil {
			vb.Field(fmt.Sprintf("units[%d].quantity", i), "must be an integer")
		}
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	return selection, nil
}

func (o *orchestrator) validateFaction(ctx context.Context, slot dominions.FactionSlot, raw string) (*dominions.SelectedFaction, error) {
	ref, err := dominions.ParseFactionRef(raw)
	if err != nil {
		return nil, &UnknownFactionError{Input: raw, Reason: err.Error()}
	}

	out, err := o.catalogRepo.GetNation(ctx, catalog.GetNationInput{Era: ref.Era, Name: ref.Name})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, &UnknownFactionError{Input: raw, Era: ref.Era.Code(), Name: ref.Name}
		}
		return nil, errors.Wrapf(err, "failed to look up faction %s", ref)
	}

	return &dominions.SelectedFaction{
		Slot:    slot,
		Input:   raw,
		Ref:     dominions.FactionRef{Era: out.Nation.Era, Name: out.Nation.Name},
		Display: out.Nation.Display(),
	}, nil
}

// validateUnitID checks catalog membership only. Commanders and units share
// one namespace, so a unit id is accepted in the commander list and the
// other way around.
func (o *orchestrator) validateUnitID(ctx context.Context, id string, known map[string]bool) error {
	if known[id] {
		return nil
	}

	dominionID, err := dominions.ParseDominionID(id)
	if err != nil {
		return &UnknownUnitError{ID: id}
	}

	out, err := o.catalogRepo.UnitExists(ctx, catalog.UnitExistsInput{ID: dominionID})
	if err != nil {
		return errors.Wrapf(err, "failed to look up unit %s", id)
	}
	if !out.Exists {
		return &UnknownUnitError{ID: id}
	}

	known[id] = true
	return nil
}

func addUnknownUnit(vb *errors.ValidationBuilder, field string, err error) bool {
	var unknown *UnknownUnitError
	if !errors.As(err, &unknown) {
		return false
	}
	vb.FieldError(field, unknown)
	return true
}
