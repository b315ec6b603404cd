package v0_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
	v0 "github.com/KirkDiggler/dominions-mapgen/internal/handlers/http/v0"
	"github.com/KirkDiggler/dominions-mapgen/internal/orchestrators/catalog"
	catalogmock "github.com/KirkDiggler/dominions-mapgen/internal/orchestrators/catalog/mock"
	"github.com/KirkDiggler/dominions-mapgen/internal/orchestrators/mapgen"
	mapgenmock "github.com/KirkDiggler/dominions-mapgen/internal/orchestrators/mapgen/mock"
	"github.com/KirkDiggler/dominions-mapgen/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockMap     *mapgenmock.MockService
	mockCatalog *catalogmock.MockService
	router      *gin.Engine
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.ctrl = gomock.NewController(s.T())
	s.mockMap = mapgenmock.NewMockService(s.ctrl)
	s.mockCatalog = catalogmock.NewMockService(s.ctrl)

	handler, err := v0.NewHandler(&v0.HandlerConfig{
		MapService:     s.mockMap,
		CatalogService: s.mockCatalog,
	})
	s.Require().NoError(err)

	s.router = gin.New()
	handler.RegisterRoutes(s.router)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) do(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decodeError(rec *httptest.ResponseRecorder) v0.ErrorResponse {
	var resp v0.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func (s *HandlerTestSuite) TestGenerateMapSuccess() {
	body := []byte(`{
		"land_faction_1": "(EA) Tir na n'Og",
		"land_faction_2": "(EA) T'ien Ch'i",
		"commanders": [
			{"catalog_id": "1786", "assigned_faction": "(EA) Tir na n'Og", "spellcasting_ranks": {"fire": 2, "blood": 2}},
			{"catalog_id": "7", "assigned_faction": "(EA) T'ien Ch'i"}
		],
		"units": [
			{"catalog_id": "105", "assigned_faction": "(EA) Tir na n'Og", "quantity": 10},
			{"catalog_id": "408", "assigned_faction": "(EA) T'ien Ch'i", "quantity": "10"}
		],
		"use_cave_map": false
	}`)

	s.mockMap.EXPECT().
		GenerateMap(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, input *mapgen.GenerateMapInput) (*mapgen.GenerateMapOutput, error) {
			req := input.Request
			s.Equal(testutils.RefTirNaNOg, req.LandFaction1)
			s.Require().Len(req.Commanders, 2)
			s.Equal(dominions.RuneRanks{{School: "fire", Level: "2"}, {School: "blood", Level: "2"}}, req.Commanders[0].SpellcastingRanks)
			s.Equal(dominions.FlexString("10"), req.Units[0].Quantity)
			s.False(req.UseCaveMap)

			return &mapgen.GenerateMapOutput{
				MapName:      "Arena_(EA) Tir na n'Og vs (EA) T'ien Ch'i",
				TemplateName: "Arena",
				Content:      "#dom2title Arena_(EA) Tir na n'Og vs (EA) T'ien Ch'i\n",
			}, nil
		})

	rec := s.do(http.MethodPost, "/api/v0/generate_map/", body)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	s.Equal(`attachment; filename="Arena_(EA) Tir na n'Og vs (EA) T'ien Ch'i.map"`, rec.Header().Get("Content-Disposition"))
	s.Equal("#dom2title Arena_(EA) Tir na n'Og vs (EA) T'ien Ch'i\n", rec.Body.String())
}

func (s *HandlerTestSuite) TestGenerateMapValidationError() {
	validation := errors.NewValidationBuilder().
		Field("land_faction_1", "unknown faction Atlantis Reborn in age EA").
		Field("factions", "at least 2 factions must be selected, got 1").
		Build()

	s.mockMap.EXPECT().
		GenerateMap(gomock.Any(), gomock.Any()).
		Return(nil, validation)

	rec := s.do(http.MethodPost, "/api/v0/generate_map/", []byte(`{"land_faction_1": "(EA) Atlantis Reborn"}`))

	s.Equal(http.StatusBadRequest, rec.Code)
	resp := s.decodeError(rec)
	s.Equal("INVALID_ARGUMENT", resp.Code)
	s.Equal([]string{"unknown faction Atlantis Reborn in age EA"}, resp.Fields["land_faction_1"])
	s.Contains(resp.Fields, "factions")
}

func (s *HandlerTestSuite) TestGenerateMapMalformedBody() {
	testCases := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"land_faction_1":`},
		{name: "quantity object", body: `{"units": [{"catalog_id": "1", "quantity": {"n": 1}}]}`},
		{name: "ranks list", body: `{"commanders": [{"catalog_id": "1", "spellcasting_ranks": ["fire"]}]}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			rec := s.do(http.MethodPost, "/api/v0/generate_map/", []byte(tc.body))
			s.Equal(http.StatusBadRequest, rec.Code)
			s.Equal("INVALID_ARGUMENT", s.decodeError(rec).Code)
		})
	}
}

func (s *HandlerTestSuite) TestGenerateMapInternalError() {
	s.mockMap.EXPECT().
		GenerateMap(gomock.Any(), gomock.Any()).
		Return(nil, errors.WrapWithCode(&mapgen.TemplateLoadError{Name: "Arena", Err: errors.NotFound("gone")}, errors.CodeInternal, "template unavailable"))

	rec := s.do(http.MethodPost, "/api/v0/generate_map/", []byte(`{}`))

	s.Equal(http.StatusInternalServerError, rec.Code)
	resp := s.decodeError(rec)
	s.Equal("INTERNAL", resp.Code)
	s.Equal("Internal Server Error", resp.Message)
	s.Nil(resp.Fields)
}

func (s *HandlerTestSuite) TestAutocompleteNations() {
	s.mockCatalog.EXPECT().
		SearchNations(gomock.Any(), &catalog.SearchNationsInput{Search: "ti", Modded: []int32{1, 2}}).
		Return(&catalog.SearchNationsOutput{Nations: testutils.TestNations()[:2]}, nil)

	rec := s.do(http.MethodGet, "/api/v0/autocomplete/nations/?search=ti&modded=1,2", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[
		{"dominion_id": 1, "name": "Tir na n'Og", "era": "EA"},
		{"dominion_id": 2, "name": "T'ien Ch'i", "era": "EA"}
	]`, rec.Body.String())
}

func (s *HandlerTestSuite) TestAutocompleteUnits() {
	s.mockCatalog.EXPECT().
		SearchUnits(gomock.Any(), &catalog.SearchUnitsInput{Search: "spear"}).
		Return(&catalog.SearchUnitsOutput{Units: testutils.TestUnits()[1:2]}, nil)

	rec := s.do(http.MethodGet, "/api/v0/autocomplete/units/?search=spear", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[{"dominion_id": 105, "name": "Spearman"}]`, rec.Body.String())
}

func (s *HandlerTestSuite) TestAutocompleteEmptyResult() {
	s.mockCatalog.EXPECT().
		SearchUnits(gomock.Any(), gomock.Any()).
		Return(&catalog.SearchUnitsOutput{}, nil)

	rec := s.do(http.MethodGet, "/api/v0/autocomplete/units/", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`[]`, rec.Body.String())
}

func (s *HandlerTestSuite) TestAutocompleteBadModded() {
	rec := s.do(http.MethodGet, "/api/v0/autocomplete/nations/?modded=1,vanilla", nil)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decodeError(rec).Fields, "modded")
}

func (s *HandlerTestSuite) TestAutocompleteStorageFailure() {
	s.mockCatalog.EXPECT().
		SearchNations(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	rec := s.do(http.MethodGet, "/api/v0/autocomplete/nations/", nil)

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("UNAVAILABLE", s.decodeError(rec).Code)
}

func TestNewHandlerValidation(t *testing.T) {
	if _, err := v0.NewHandler(nil); !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if _, err := v0.NewHandler(&v0.HandlerConfig{}); !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
