package dominions

import (
	"fmt"
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// ModdedVanilla marks catalog entries that ship with the base game.
// Any other value identifies a mod pack.
const ModdedVanilla int32 = 1

// Entity types reported through core.Entity
const (
	EntityTypeNation = "nation"
	EntityTypeUnit   = "unit"
)

// Nation is a playable faction in the catalog
type Nation struct {
	DominionID int32  `json:"dominion_id" yaml:"dominion_id"`
	Name       string `json:"name" yaml:"name"`
	Era        Era    `json:"era" yaml:"era"`
	Modded     int32  `json:"modded" yaml:"modded"`
}

// Display returns the canonical faction reference, e.g. "(EA) Ulm"
func (n *Nation) Display() string {
	return FactionRef{Era: n.Era, Name: n.Name}.String()
}

// GetID returns the dominion id as a string
func (n *Nation) GetID() string {
	return strconv.FormatInt(int64(n.DominionID), 10)
}

// GetType returns the entity type for rpg-toolkit
func (n *Nation) GetType() string {
	return EntityTypeNation
}

// GetName returns the catalog name without the era
func (n *Nation) GetName() string {
	return n.Name
}

// Unit is a unit or commander definition. Commanders and regular units share
// one id namespace.
type Unit struct {
	DominionID int32  `json:"dominion_id" yaml:"dominion_id"`
	Name       string `json:"name" yaml:"name"`
	Modded     int32  `json:"modded" yaml:"modded"`
}

// GetID returns the dominion id as a string
func (u *Unit) GetID() string {
	return strconv.FormatInt(int64(u.DominionID), 10)
}

// GetType returns the entity type for rpg-toolkit
func (u *Unit) GetType() string {
	return EntityTypeUnit
}

func (u *Unit) GetName() string {
	return u.Name
}

// ParseDominionID parses a catalog id given as text. Only positive integers
// are valid ids.
func ParseDominionID(id string) (int32, error) {
	n, err := strconv.ParseInt(id, 10, 32)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid dominion id %q", id)
	}
	return int32(n), nil
}

// CatalogEntry is a catalog record that autocomplete can match by id or name
type CatalogEntry interface {
	core.Entity
	GetName() string
}

var (
	_ CatalogEntry = (*Nation)(nil)
	_ CatalogEntry = (*Unit)(nil)
)
