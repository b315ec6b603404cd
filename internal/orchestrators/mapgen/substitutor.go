package mapgen

import (
	"context"
	"fmt"
	"strings"

	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
	"github.com/KirkDiggler/dominions-mapgen/internal/templates"
)

const (
	caveSuffix     = "_with_cave"
	placeholderMap = "map_name"
	titleSeparator = " vs "
)

type substitution struct {
	templateName string
	mapName      string
	content      string
}

func (o *orchestrator) templateName(useCave bool) string {
	if useCave {
		return o.baseTemplate + caveSuffix
	}
	return o.baseTemplate
}

// mapTitle joins the occupied faction displays in slot order. The cave
// suffix is not part of the title.
func (o *orchestrator) mapTitle(selection *dominions.Selection) string {
	occupied := selection.Occupied()
	displays := make([]string, len(occupied))
	for i, f := range occupied {
		displays[i] = f.Display
	}
	return o.baseTemplate + "_" + strings.Join(displays, titleSeparator)
}

func (o *orchestrator) substitute(ctx context.Context, selection *dominions.Selection, blocks []string) (*substitution, error) {
	name := o.templateName(selection.UseCaveMap)

	out, err := o.templateLoader.Load(ctx, &templates.LoadInput{Name: name})
	if err != nil {
		return nil, errors.WrapWithCode(&TemplateLoadError{Name: name, Err: err}, errors.CodeInternal, "template unavailable")
	}

	values := make(map[string]string, dominions.SlotCount+1)
	for k := 1; k <= dominions.SlotCount; k++ {
		values[fmt.Sprintf("nation%d", k)] = ""
	}
	for i, block := range blocks {
		values[fmt.Sprintf("nation%d", i+1)] = block
	}
	mapName := o.mapTitle(selection)
	values[placeholderMap] = mapName

	content, err := templates.Substitute(out.Content, values)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, fmt.Sprintf("template %s is malformed", name))
	}

	return &substitution{
		templateName: name,
		mapName:      mapName,
		content:      content,
	}, nil
}
