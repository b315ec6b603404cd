package testutils

import (
	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
)

// Catalog ids used across tests
const (
	NationTirNaNOg  int32 = 1
	NationTienChi   int32 = 2
	NationOceania   int32 = 3
	NationAtlantis  int32 = 4
	NationModdedUlm int32 = 900

	CommanderSidhe  = "1786"
	CommanderScout  = "7"
	UnitSpearman    = "105"
	UnitCrossbowman = "408"
	UnitModded      = "9001"

	// Faction references as users submit them
	RefTirNaNOg = "(EA) Tir na n'Og"
	RefTienChi  = "(EA) T'ien Ch'i"
	RefOceania  = "(EA) Oceania"
	RefAtlantis = "(EA) Atlantis"
)

// TestNations returns the nations of the test catalog
func TestNations() []*dominions.Nation {
	return []*dominions.Nation{
		{DominionID: NationTirNaNOg, Name: "Tir na n'Og", Era: dominions.EraEarly, Modded: dominions.ModdedVanilla},
		{DominionID: NationTienChi, Name: "T'ien Ch'i", Era: dominions.EraEarly, Modded: dominions.ModdedVanilla},
		{DominionID: NationOceania, Name: "Oceania", Era: dominions.EraEarly, Modded: dominions.ModdedVanilla},
		{DominionID: NationAtlantis, Name: "Atlantis", Era: dominions.EraEarly, Modded: dominions.ModdedVanilla},
		{DominionID: NationModdedUlm, Name: "Ulm Reborn", Era: dominions.EraLate, Modded: 2},
	}
}

// TestUnits returns the units and commanders of the test catalog
func TestUnits() []*dominions.Unit {
	return []*dominions.Unit{
		{DominionID: 7, Name: "Scout", Modded: dominions.ModdedVanilla},
		{DominionID: 105, Name: "Spearman", Modded: dominions.ModdedVanilla},
		{DominionID: 408, Name: "Crossbowman", Modded: dominions.ModdedVanilla},
		{DominionID: 1786, Name: "Sidhe Lord", Modded: dominions.ModdedVanilla},
		{DominionID: 9001, Name: "Clockwork Spearman", Modded: 2},
	}
}

// CreateTestMapRequest returns the two land nation request used by the end to end tests:
// Tir na n'Og with a fire and blood mage leading spearmen, and T'ien Ch'i with a
// scout leading crossbowmen.
func CreateTestMapRequest() *dominions.MapRequest {
	return &dominions.MapRequest{
		LandFaction1: RefTirNaNOg,
		LandFaction2: RefTienChi,
		Commanders: []dominions.CommanderEntry{
			{
				CatalogID:       CommanderSidhe,
				AssignedFaction: RefTirNaNOg,
				SpellcastingRanks: dominions.RuneRanks{
					{School: "Fire", Level: "2"},
					{School: "Blood", Level: "2"},
				},
			},
			{CatalogID: CommanderScout, AssignedFaction: RefTienChi},
		},
		Units: []dominions.UnitEntry{
			{CatalogID: UnitSpearman, AssignedFaction: RefTirNaNOg, Quantity: "10"},
			{CatalogID: UnitCrossbowman, AssignedFaction: RefTienChi, Quantity: "10"},
		},
	}
}
