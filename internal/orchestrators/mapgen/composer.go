package mapgen

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
)

// Start provinces of the arena templates
var (
	landPositions  = [2]int{5, 8}
	waterPositions = [2]int{12, 14}
)

// slotNumber returns the start province of the record at idx. Land records
// always come first, so water records count from the first water index.
func slotNumber(idx, landCount int, landType dominions.LandType) int {
	if landType == dominions.LandTypeLand {
		return landPositions[idx]
	}
	waterIdx := ((idx-landCount)%len(waterPositions) + len(waterPositions)) % len(waterPositions)
	return waterPositions[waterIdx]
}

// compose renders one directive block per faction record, in order
func compose(groups []*dominions.FactionGroup) []string {
	landCount := 0
	for _, g := range groups {
		if g.LandType == dominions.LandTypeLand {
			landCount++
		}
	}

	blocks := make([]string, len(groups))
	for idx, g := range groups {
		slot := slotNumber(idx, landCount, g.LandType)

		var b strings.Builder
		fmt.Fprintf(&b, "\n#allowedplayer %d\n#specstart %d %d\n#setland %d", g.FactionID, g.FactionID, slot, slot)
		for _, c := range g.Commanders {
			fmt.Fprintf(&b, "\n#commander %s", c.CommanderID)
			for _, u := range c.Units {
				fmt.Fprintf(&b, "\n#units %s %s", u.Quantity, u.UnitID)
			}
			if len(c.Magic) > 0 {
				b.WriteString("\n#clearmagic")
				for _, m := range c.Magic {
					fmt.Fprintf(&b, "\n#%s %s", m.Key, m.Value)
				}
			}
		}
		blocks[idx] = b.String()
	}

	return blocks
}
