package mapgen

import (
	"context"
	"strings"

	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
	"github.com/KirkDiggler/dominions-mapgen/internal/repositories/catalog"
)

const magicKeyPrefix = "mag_"

// group builds one record per occupied slot, in slot order
func (o *orchestrator) group(ctx context.Context, selection *dominions.Selection) ([]*dominions.FactionGroup, error) {
	occupied := selection.Occupied()
	groups := make([]*dominions.FactionGroup, 0, len(occupied))

	for _, faction := range occupied {
		out, err := o.catalogRepo.GetNation(ctx, catalog.GetNationInput{Era: faction.Ref.Era, Name: faction.Ref.Name})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve faction %s", faction.Display)
		}

		group := &dominions.FactionGroup{
			FactionID: out.Nation.DominionID,
			Display:   faction.Display,
			LandType:  faction.Slot.LandType(),
		}

		for _, c := range selection.Commanders {
			if faction.Matches(c.AssignedFaction) {
				group.Commanders = append(group.Commanders, newCommanderGroup(c))
			}
		}

		var units []dominions.UnitAssignment
		for _, u := range selection.Units {
			if faction.Matches(u.AssignedFaction) {
				units = append(units, dominions.UnitAssignment{UnitID: u.CatalogID, Quantity: string(u.Quantity)})
			}
		}
		assignUnits(group, units)

		groups = append(groups, group)
	}

	return groups, nil
}

// newCommanderGroup rewrites rune schools to mag_ keys. Schools that only
// differ in case are one key: the last level wins, the first position stays.
func newCommanderGroup(c dominions.CommanderEntry) *dominions.CommanderGroup {
	group := &dominions.CommanderGroup{CommanderID: c.CatalogID}
	if c.SpellcastingRanks == nil {
		return group
	}

	group.Magic = make([]dominions.MagicPath, 0, len(c.SpellcastingRanks))
	index := make(map[string]int, len(c.SpellcastingRanks))
	for _, rank := range c.SpellcastingRanks {
		key := magicKeyPrefix + strings.ToLower(rank.School)
		if i, ok := index[key]; ok {
			group.Magic[i].Value = string(rank.Level)
			continue
		}
		index[key] = len(group.Magic)
		group.Magic = append(group.Magic, dominions.MagicPath{Key: key, Value: string(rank.Level)})
	}
	return group
}

// assignUnits hands units out in batches. The cursor moves before the unit
// at every index divisible by three, including index 0, and never past the
// last commander. With two or more commanders the first one never receives
// a unit.
func assignUnits(group *dominions.FactionGroup, units []dominions.UnitAssignment) {
	if len(group.Commanders) == 0 {
		group.Unassigned = units
		return
	}

	cursor := 0
	maxCursor := len(group.Commanders) - 1
	for i, unit := range units {
		if i%3 == 0 && cursor != maxCursor {
			cursor++
		}
		commander := group.Commanders[cursor]
		commander.Units = append(commander.Units, unit)
	}
}
