// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
	"github.com/KirkDiggler/dominions-mapgen/internal/repositories/catalog"
	catalogmock "github.com/KirkDiggler/dominions-mapgen/internal/repositories/catalog/mock"
)

// ExpectCatalog makes the mock answer GetNation and UnitExists from the given
// entries. Lookups of anything else report NotFound or false.
func ExpectCatalog(mockRepo *catalogmock.MockRepository, nations []*dominions.Nation, units []*dominions.Unit) {
	mockRepo.EXPECT().
		GetNation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input catalog.GetNationInput) (*catalog.GetNationOutput, error) {
			for _, n := range nations {
				if n.Era == input.Era && n.Name == input.Name {
					return &catalog.GetNationOutput{Nation: n}, nil
				}
			}
			return nil, errors.NotFoundf("nation %s not found", dominions.FactionRef{Era: input.Era, Name: input.Name})
		}).
		AnyTimes()

	mockRepo.EXPECT().
		UnitExists(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input catalog.UnitExistsInput) (*catalog.UnitExistsOutput, error) {
			for _, u := range units {
				if u.DominionID == input.ID {
					return &catalog.UnitExistsOutput{Exists: true}, nil
				}
			}
			return &catalog.UnitExistsOutput{Exists: false}, nil
		}).
		AnyTimes()
}
