package mapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
)

func TestSlotNumber(t *testing.T) {
	land := dominions.LandTypeLand
	water := dominions.LandTypeWater

	testCases := []struct {
		name  string
		types []dominions.LandType
		want  []int
	}{
		{name: "single land", types: []dominions.LandType{land}, want: []int{5}},
		{name: "two land", types: []dominions.LandType{land, land}, want: []int{5, 8}},
		{name: "single water", types: []dominions.LandType{water}, want: []int{12}},
		{name: "two water", types: []dominions.LandType{water, water}, want: []int{12, 14}},
		{name: "land and water", types: []dominions.LandType{land, water}, want: []int{5, 12}},
		{name: "two land two water", types: []dominions.LandType{land, land, water, water}, want: []int{5, 8, 12, 14}},
		{name: "one land two water", types: []dominions.LandType{land, water, water}, want: []int{5, 12, 14}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			landCount := 0
			for _, lt := range tc.types {
				if lt == land {
					landCount++
				}
			}
			got := make([]int, len(tc.types))
			for idx, lt := range tc.types {
				got[idx] = slotNumber(idx, landCount, lt)
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCompose(t *testing.T) {
	groups := []*dominions.FactionGroup{
		{
			FactionID: 1,
			LandType:  dominions.LandTypeLand,
			Commanders: []*dominions.CommanderGroup{
				{
					CommanderID: "1786",
					Units:       []dominions.UnitAssignment{{UnitID: "105", Quantity: "10"}},
					Magic: []dominions.MagicPath{
						{Key: "mag_fire", Value: "2"},
						{Key: "mag_blood", Value: "2"},
					},
				},
			},
		},
		{
			FactionID: 2,
			LandType:  dominions.LandTypeLand,
			Commanders: []*dominions.CommanderGroup{
				{CommanderID: "7", Units: []dominions.UnitAssignment{{UnitID: "408", Quantity: "10"}}},
			},
		},
	}

	blocks := compose(groups)
	require.Len(t, blocks, 2)
	assert.Equal(t, "\n#allowedplayer 1\n#specstart 1 5\n#setland 5\n#commander 1786\n#units 10 105\n#clearmagic\n#mag_fire 2\n#mag_blood 2", blocks[0])
	assert.Equal(t, "\n#allowedplayer 2\n#specstart 2 8\n#setland 8\n#commander 7\n#units 10 408", blocks[1])
}

func TestComposeCommanderWithoutUnits(t *testing.T) {
	blocks := compose([]*dominions.FactionGroup{
		{
			FactionID: 9,
			LandType:  dominions.LandTypeWater,
			Commanders: []*dominions.CommanderGroup{
				{CommanderID: "11", Magic: []dominions.MagicPath{}},
				{CommanderID: "12", Magic: []dominions.MagicPath{{Key: "mag_water", Value: "3"}}},
			},
		},
	})

	require.Len(t, blocks, 1)
	assert.Equal(t, "\n#allowedplayer 9\n#specstart 9 12\n#setland 12\n#commander 11\n#commander 12\n#clearmagic\n#mag_water 3", blocks[0])
}

func TestComposeEmpty(t *testing.T) {
	assert.Empty(t, compose(nil))
}
