package catalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dominions-mapgen/internal/entities/dominions"
	"github.com/KirkDiggler/dominions-mapgen/internal/errors"
	mockclock "github.com/KirkDiggler/dominions-mapgen/internal/pkg/clock/mock"
	"github.com/KirkDiggler/dominions-mapgen/internal/repositories/catalog"
	"github.com/KirkDiggler/dominions-mapgen/internal/testutils"
)

var importTime = time.Date(2025, 7, 20, 12, 0, 0, 0, time.UTC)

// RepositoryTestSuite runs the same behavior checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(clk *mockclock.MockClock) catalog.Repository

	ctrl  *gomock.Controller
	clock *mockclock.MockClock
	repo  catalog.Repository
	ctx   context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(clk *mockclock.MockClock) catalog.Repository {
			client, cleanup := testutils.CreateTestRedisClient(t)
			t.Cleanup(cleanup)

			repo, err := catalog.NewRedis(&catalog.RedisConfig{Client: client, Clock: clk})
			if err != nil {
				t.Fatalf("failed to create redis repository: %v", err)
			}
			return repo
		},
	})
}

func TestSQLiteRepositorySuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(clk *mockclock.MockClock) catalog.Repository {
			repo, err := catalog.NewSQLite(&catalog.SQLiteConfig{DB: testutils.CreateTestSQLiteDB(t), Clock: clk})
			if err != nil {
				t.Fatalf("failed to create sqlite repository: %v", err)
			}
			return repo
		},
	})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.clock = mockclock.NewMockClock(s.ctrl)
	s.clock.EXPECT().Now().Return(importTime).AnyTimes()
	s.ctx = context.Background()
	s.repo = s.newRepo(s.clock)

	out, err := s.repo.Import(s.ctx, catalog.ImportInput{
		Nations: testutils.TestNations(),
		Units:   testutils.TestUnits(),
	})
	s.Require().NoError(err)
	s.Equal(5, out.NationCount)
	s.Equal(5, out.UnitCount)
	s.Equal(importTime, out.ImportedAt)
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RepositoryTestSuite) TestGetNation() {
	testCases := []struct {
		name     string
		input    catalog.GetNationInput
		wantID   int32
		wantCode errors.Code
	}{
		{
			name:   "found",
			input:  catalog.GetNationInput{Era: dominions.EraEarly, Name: "T'ien Ch'i"},
			wantID: testutils.NationTienChi,
		},
		{
			name:     "wrong era",
			input:    catalog.GetNationInput{Era: dominions.EraMiddle, Name: "T'ien Ch'i"},
			wantCode: errors.CodeNotFound,
		},
		{
			name:     "name is case sensitive",
			input:    catalog.GetNationInput{Era: dominions.EraEarly, Name: "oceania"},
			wantCode: errors.CodeNotFound,
		},
		{
			name:     "empty name",
			input:    catalog.GetNationInput{Era: dominions.EraEarly},
			wantCode: errors.CodeInvalidArgument,
		},
		{
			name:     "unknown era",
			input:    catalog.GetNationInput{Era: dominions.Era(9), Name: "Ulm"},
			wantCode: errors.CodeInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out, err := s.repo.GetNation(s.ctx, tc.input)
			if tc.wantCode != "" {
				s.Require().Error(err)
				s.Equal(tc.wantCode, errors.GetCode(err))
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.wantID, out.Nation.DominionID)
			s.Equal(tc.input.Name, out.Nation.Name)
			s.Equal(tc.input.Era, out.Nation.Era)
		})
	}
}

func (s *RepositoryTestSuite) TestUnitExists() {
	out, err := s.repo.UnitExists(s.ctx, catalog.UnitExistsInput{ID: 1786})
	s.Require().NoError(err)
	s.True(out.Exists)

	out, err = s.repo.UnitExists(s.ctx, catalog.UnitExistsInput{ID: 31337})
	s.Require().NoError(err)
	s.False(out.Exists)

	_, err = s.repo.UnitExists(s.ctx, catalog.UnitExistsInput{ID: 0})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestListNations() {
	out, err := s.repo.ListNations(s.ctx, catalog.ListNationsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Nations, 5)
	s.Equal(testutils.NationTirNaNOg, out.Nations[0].DominionID)
	s.Equal(testutils.NationModdedUlm, out.Nations[4].DominionID)

	out, err = s.repo.ListNations(s.ctx, catalog.ListNationsInput{Modded: []int32{2}})
	s.Require().NoError(err)
	s.Require().Len(out.Nations, 1)
	s.Equal("Ulm Reborn", out.Nations[0].Name)
	s.Equal(dominions.EraLate, out.Nations[0].Era)
}

func (s *RepositoryTestSuite) TestListUnits() {
	out, err := s.repo.ListUnits(s.ctx, catalog.ListUnitsInput{Modded: []int32{dominions.ModdedVanilla}})
	s.Require().NoError(err)
	s.Require().Len(out.Units, 4)
	ids := make([]int32, len(out.Units))
	for i, u := range out.Units {
		ids[i] = u.DominionID
	}
	s.Equal([]int32{7, 105, 408, 1786}, ids)
}

func (s *RepositoryTestSuite) TestImportUpserts() {
	_, err := s.repo.Import(s.ctx, catalog.ImportInput{
		Nations: []*dominions.Nation{
			{DominionID: 42, Name: "Oceania", Era: dominions.EraEarly, Modded: 3},
		},
		Units: []*dominions.Unit{
			{DominionID: 105, Name: "Heavy Spearman", Modded: dominions.ModdedVanilla},
		},
	})
	s.Require().NoError(err)

	nation, err := s.repo.GetNation(s.ctx, catalog.GetNationInput{Era: dominions.EraEarly, Name: "Oceania"})
	s.Require().NoError(err)
	s.Equal(int32(42), nation.Nation.DominionID)
	s.Equal(int32(3), nation.Nation.Modded)

	units, err := s.repo.ListUnits(s.ctx, catalog.ListUnitsInput{})
	s.Require().NoError(err)
	s.Len(units.Units, 5)
}

func (s *RepositoryTestSuite) TestImportReplace() {
	_, err := s.repo.Import(s.ctx, catalog.ImportInput{
		Nations: []*dominions.Nation{
			{DominionID: 5, Name: "Ulm", Era: dominions.EraMiddle, Modded: dominions.ModdedVanilla},
		},
		Replace: true,
	})
	s.Require().NoError(err)

	nations, err := s.repo.ListNations(s.ctx, catalog.ListNationsInput{})
	s.Require().NoError(err)
	s.Require().Len(nations.Nations, 1)
	s.Equal("Ulm", nations.Nations[0].Name)

	units, err := s.repo.ListUnits(s.ctx, catalog.ListUnitsInput{})
	s.Require().NoError(err)
	s.Empty(units.Units)
}

func (s *RepositoryTestSuite) TestImportValidation() {
	_, err := s.repo.Import(s.ctx, catalog.ImportInput{
		Nations: []*dominions.Nation{
			{DominionID: 0, Name: "", Era: dominions.EraUnspecified},
			nil,
		},
		Units: []*dominions.Unit{
			{DominionID: -1, Name: "Ghost"},
		},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	fields := errors.GetFieldErrors(err)
	s.Contains(fields, "nations[0].dominion_id")
	s.Contains(fields, "nations[0].name")
	s.Contains(fields, "nations[0].era")
	s.Contains(fields, "nations[1]")
	s.Contains(fields, "units[0].dominion_id")

	// nothing was written
	units, err := s.repo.ListUnits(s.ctx, catalog.ListUnitsInput{})
	s.Require().NoError(err)
	s.Len(units.Units, 5)
}

func TestNewRedisConfig(t *testing.T) {
	_, err := catalog.NewRedis(nil)
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	_, err = catalog.NewRedis(&catalog.RedisConfig{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestNewSQLiteConfig(t *testing.T) {
	_, err := catalog.NewSQLite(&catalog.SQLiteConfig{})
	if !errors.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
