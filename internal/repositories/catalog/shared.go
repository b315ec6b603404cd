package catalog

import (
	"fmt"

	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
)

const (
	metaImportedAt = "imported_at"

	// Error messages
	errNameEmpty = "nation name cannot be empty"
	errUnitID    = "unit id must be positive"
)

func validateGetNation(input GetNationInput) error {
	if !input.Era.Valid() {
		return errors.InvalidArgumentf("unknown era %d", input.Era)
	}
	if input.Name == "" {
		return errors.InvalidArgument(errNameEmpty)
	}
	return nil
}

func validateImport(input ImportInput) error {
	vb := errors.NewValidationBuilder()
	for i, n := range input.Nations {
		field := errorsField("nations", i)
		if n == nil {
			vb.Field(field, "nation cannot be nil")
			continue
		}
		if n.DominionID <= 0 {
			vb.Field(field+".dominion_id", "must be positive")
		}
		if n.Name == "" {
			vb.RequiredField(field + ".name")
		}
		if !n.Era.Valid() {
			vb.Fieldf(field+".era", "unknown era %d", n.Era)
		}
	}
	for i, u := range input.Units {
		field := errorsField("units", i)
		if u == nil {
			vb.Field(field, "unit cannot be nil")
			continue
		}
		if u.DominionID <= 0 {
			vb.Field(field+".dominion_id", "must be positive")
		}
		if u.Name == "" {
			vb.RequiredField(field + ".name")
		}
	}
	return vb.Build()
}

func errorsField(list string, i int) string {
	return fmt.Sprintf("%s[%d]", list, i)
}

func moddedSet(modded []int32) map[int32]bool {
	if len(modded) == 0 {
		return nil
	}
	set := make(map[int32]bool, len(modded))
	for _, m := range modded {
		set[m] = true
	}
	return set
}
