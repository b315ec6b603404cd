package mapgen

import (
	"fmt"
)

// MinFactions is the smallest number of occupied faction slots a map needs
const MinFactions = 2

// UnknownFactionError reports a faction reference that is malformed or not in
// the catalog for its age
type UnknownFactionError struct {
	Input string
	// Era and Name are set when the reference parsed but the lookup failed
	Era    string
	Name   string
	Reason string
}

func (e *UnknownFactionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unknown faction %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("unknown faction %s in age %s", e.Name, e.Era)
}

// UnknownUnitError reports a commander or unit id missing from the catalog
type UnknownUnitError struct {
	ID string
}

func (e *UnknownUnitError) Error() string {
	if e.ID == "" {
		return "catalog id is required"
	}
	return fmt.Sprintf("unknown unit or commander id %q", e.ID)
}

// InsufficientFactionsError reports a selection with too few factions
type InsufficientFactionsError struct {
	Selected int
}

func (e *InsufficientFactionsError) Error() string {
	return fmt.Sprintf("at least %d factions must be selected, got %d", MinFactions, e.Selected)
}

// TemplateLoadError reports a template that could not be read
type TemplateLoadError struct {
	Name string
	Err  error
}

func (e *TemplateLoadError) Error() string {
	return fmt.Sprintf("failed to load template %s: %v", e.Name, e.Err)
}

func (e *TemplateLoadError) Unwrap() error {
	return e.Err
}
