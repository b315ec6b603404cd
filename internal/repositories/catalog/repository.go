// Package catalog provides the interface for the nation and unit reference catalog
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/dominions-mapgen/internal/repositories/catalog Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
)

// Repository defines read and import access to the catalog
type Repository interface {
	// GetNation looks up a nation by era and exact name
	// Returns errors.InvalidArgument for an unknown era or empty name
	// Returns errors.NotFound if the nation doesn't exist
	// Returns errors.Internal for storage failures
	GetNation(ctx context.Context, input GetNationInput) (*GetNationOutput, error)

	// UnitExists reports whether a unit or commander id is in the catalog
	// Returns errors.InvalidArgument for non-positive ids
	// Returns errors.Internal for storage failures
	UnitExists(ctx context.Context, input UnitExistsInput) (*UnitExistsOutput, error)

	// ListNations returns nations ordered by dominion id
	// An empty Modded filter returns every nation
	// Returns errors.Internal for storage failures
	ListNations(ctx context.Context, input ListNationsInput) (*ListNationsOutput, error)

	// ListUnits returns units ordered by dominion id
	// An empty Modded filter returns every unit
	// Returns errors.Internal for storage failures
	ListUnits(ctx context.Context, input ListUnitsInput) (*ListUnitsOutput, error)

	// Import upserts nations and units, optionally clearing the catalog first
	// Returns errors.InvalidArgument for nil or malformed entries
	// Returns errors.Internal for storage failures
	Import(ctx context.Context, input ImportInput) (*ImportOutput, error)
}

// GetNationInput defines the input for looking up a nation
type GetNationInput struct {
	Era  dominions.Era
	Name string
}

// GetNationOutput defines the output for looking up a nation
type GetNationOutput struct {
	Nation *dominions.Nation
}

// UnitExistsInput defines the input for checking a unit id
type UnitExistsInput struct {
	ID int32
}

// UnitExistsOutput defines the output for checking a unit id
type UnitExistsOutput struct {
	Exists bool
}

// ListNationsInput defines the input for listing nations
type ListNationsInput struct {
	Modded []int32
}

// ListNationsOutput defines the output for listing nations
type ListNationsOutput struct {
	Nations []*dominions.Nation
}

// ListUnitsInput defines the input for listing units
type ListUnitsInput struct {
	Modded []int32
}

// ListUnitsOutput defines the output for listing units
type ListUnitsOutput struct {
	Units []*dominions.Unit
}

// ImportInput defines the input for importing catalog entries
type ImportInput struct {
	Nations []*dominions.Nation
	Units   []*dominions.Unit
	// Replace removes all existing entries before importing
	Replace bool
}

// ImportOutput defines the output for importing catalog entries
type ImportOutput struct {
	NationCount int
	UnitCount   int
	ImportedAt  time.Time
}
