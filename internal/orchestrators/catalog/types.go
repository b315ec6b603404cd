package catalog

import (
	"time"

	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
)

// SearchNationsInput defines the request for nation autocomplete
type SearchNationsInput struct {
	Search string
	// Modded defaults to vanilla only
	Modded []int32
}

// SearchNationsOutput defines the response for nation autocomplete
type SearchNationsOutput struct {
	Nations []*dominions.Nation
}

// SearchUnitsInput defines the request for unit autocomplete
type SearchUnitsInput struct {
	Search string
	Modded []int32
}

// SearchUnitsOutput defines the response for unit autocomplete
type SearchUnitsOutput struct {
	Units []*dominions.Unit
}

// ImportInput defines the request for importing a catalog document
type ImportInput struct {
	// Data is a YAML document with nations and units lists
	Data    []byte
	Replace bool
}

// ImportOutput defines the response for importing a catalog document
type ImportOutput struct {
	NationCount int
	UnitCount   int
	ImportedAt  time.Time
}

// document is the catalog import file format
type document struct {
	Nations []nationRecord `yaml:"nations"`
	Units   []unitRecord   `yaml:"units"`
}

type nationRecord struct {
	DominionID int32  `yaml:"dominion_id"`
	Name       string `yaml:"name"`
	Era        string `yaml:"era"`
	Modded     *int32 `yaml:"modded"`
}

type unitRecord struct {
	DominionID int32  `yaml:"dominion_id"`
	Name       string `yaml:"name"`
	Modded     *int32 `yaml:"modded"`
}
