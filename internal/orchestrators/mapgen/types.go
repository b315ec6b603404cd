package mapgen

import (
	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
)

// GenerateMapInput defines the request for generating a scenario map
type GenerateMapInput struct {
	Request *dominions.MapRequest
}

// GenerateMapOutput defines the response for generating a scenario map
type GenerateMapOutput struct {
	// MapName is the title written into the map, e.g. "Arena_(EA) Ulm vs (EA) Marverni"
	MapName string
	// TemplateName is the template the map was built from
	TemplateName string
	Content      string
	Factions     []*dominions.FactionGroup
}

// Filename returns the download name of the generated map
func (o *GenerateMapOutput) Filename() string {
	return o.MapName + ".map"
}
