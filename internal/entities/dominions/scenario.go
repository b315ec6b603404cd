package dominions

// LandType tells whether a faction starts on a land or an underwater province
type LandType string

// Land types
const (
	LandTypeLand  LandType = "land"
	LandTypeWater LandType = "water"
)

// UnitAssignment is a troop stack placed under a commander
type UnitAssignment struct {
	UnitID   string
	Quantity string
}

// MagicPath is a commander magic directive, e.g. mag_fire = 2
type MagicPath struct {
	Key   string
	Value string
}

// CommanderGroup is a commander with the units it leads
type CommanderGroup struct {
	CommanderID string
	Units       []UnitAssignment
	// Magic is nil when the commander keeps its default paths
	Magic []MagicPath
}

// FactionGroup is one occupied slot with its resolved nation id and commanders
type FactionGroup struct {
	FactionID  int32
	Display    string
	LandType   LandType
	Commanders []*CommanderGroup
	// Unassigned holds units of a faction that has no commander to lead them
	Unassigned []UnitAssignment
}
