package dominions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FactionRef identifies a nation the way users see it: era plus name
type FactionRef struct {
	Era  Era
	Name string
}

// String renders the reference as "(EA) Name"
func (r FactionRef) String() string {
	return fmt.Sprintf("(%s) %s", r.Era.Code(), r.Name)
}

// ParseFactionRef parses "(AGE) Name" where AGE is EA, MA or LA.
// Whitespace around the name is trimmed.
func ParseFactionRef(value string) (FactionRef, error) {
	value = strings.TrimSpace(value)
	end := strings.Index(value, ")")
	if !strings.HasPrefix(value, "(") || end < 0 {
		return FactionRef{}, fmt.Errorf("%q is not of the form (AGE) Name", value)
	}

	code := value[1:end]
	era, ok := ParseEra(code)
	if !ok {
		return FactionRef{}, fmt.Errorf("unknown age %q, expected one of %s", code, strings.Join(EraCodes(), ", "))
	}

	name := strings.TrimSpace(value[end+1:])
	if name == "" {
		return FactionRef{}, fmt.Errorf("%q has no nation name", value)
	}

	return FactionRef{Era: era, Name: name}, nil
}

// FactionSlot is one of the four nation positions of a selection
type FactionSlot int

// Slots in map order. Land slots come first.
const (
	SlotLand1 FactionSlot = iota
	SlotLand2
	SlotWater1
	SlotWater2

	SlotCount = 4
)

// Field returns the request field name of the slot
func (s FactionSlot) Field() string {
	switch s {
	case SlotLand1:
		return "land_faction_1"
	case SlotLand2:
		return "land_faction_2"
	case SlotWater1:
		return "water_faction_1"
	case SlotWater2:
		return "water_faction_2"
	default:
		return fmt.Sprintf("faction_%d", int(s)+1)
	}
}

// LandType returns land for the first two slots and water otherwise
func (s FactionSlot) LandType() LandType {
	if s < SlotWater1 {
		return LandTypeLand
	}
	return LandTypeWater
}

// FlexString holds a value that clients may send either as a JSON string or
// as a JSON number. It is kept as text.
type FlexString string

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected a string or a number, got %s", data)
		}
		*f = FlexString(n.String())
		return nil
	}
}

// RuneRank is one spellcasting school with its level
type RuneRank struct {
	School string
	Level  FlexString
}

// RuneRanks keeps the schools in the order they were submitted, repeated
// keys included. Map generation merges schools that differ only in case.
type RuneRanks []RuneRank

// UnmarshalJSON reads a JSON object keeping its key order
func (r *RuneRanks) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*r = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("spellcasting ranks must be an object")
	}

	var ranks RuneRanks
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		school, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected spellcasting key %v", keyTok)
		}

		var level FlexString
		if err := dec.Decode(&level); err != nil {
			return fmt.Errorf("spellcasting rank %s: %w", school, err)
		}
		ranks = append(ranks, RuneRank{School: school, Level: level})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = ranks
	return nil
}

// MarshalJSON writes the ranks back as an object in submission order
func (r RuneRanks) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, rank := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(rank.School)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(string(rank.Level))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CommanderEntry is a submitted commander
type CommanderEntry struct {
	CatalogID         string    `json:"catalog_id"`
	AssignedFaction   string    `json:"assigned_faction"`
	SpellcastingRanks RuneRanks `json:"spellcasting_ranks,omitempty"`
}

// UnitEntry is a submitted troop stack
type UnitEntry struct {
	CatalogID       string     `json:"catalog_id"`
	AssignedFaction string     `json:"assigned_faction"`
	Quantity        FlexString `json:"quantity"`
}

// MapRequest is the raw selection a user submits
type MapRequest struct {
	LandFaction1  string           `json:"land_faction_1"`
	LandFaction2  string           `json:"land_faction_2"`
	WaterFaction1 string           `json:"water_faction_1"`
	WaterFaction2 string           `json:"water_faction_2"`
	Commanders    []CommanderEntry `json:"commanders"`
	Units         []UnitEntry      `json:"units"`
	UseCaveMap    bool             `json:"use_cave_map"`
}

// FactionFields returns the four faction fields in slot order
func (r *MapRequest) FactionFields() [SlotCount]string {
	return [SlotCount]string{r.LandFaction1, r.LandFaction2, r.WaterFaction1, r.WaterFaction2}
}

// SelectedFaction is a validated, occupied slot
type SelectedFaction struct {
	Slot FactionSlot
	// Input is the reference exactly as submitted
	Input string
	Ref   FactionRef
	// Display is the canonical "(AGE) Name" built from the catalog entry
	Display string
}

// Matches reports whether an assigned_faction value points at this slot.
// Both the submitted text, trimmed, and the canonical display are accepted.
// The assigned value itself is compared as given.
func (f *SelectedFaction) Matches(assigned string) bool {
	return assigned == strings.TrimSpace(f.Input) || assigned == f.Display
}

// Selection is a validated MapRequest. It is not modified after validation.
type Selection struct {
	Factions   [SlotCount]*SelectedFaction
	Commanders []CommanderEntry
	Units      []UnitEntry
	UseCaveMap bool
}

// Occupied returns the selected factions in slot order, skipping empty slots
func (s *Selection) Occupied() []*SelectedFaction {
	occupied := make([]*SelectedFaction, 0, SlotCount)
	for _, f := range s.Factions {
		if f != nil {
			occupied = append(occupied, f)
		}
	}
	return occupied
}
