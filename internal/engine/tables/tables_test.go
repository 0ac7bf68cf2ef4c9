package tables_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/jaroslavtyc/drd-plus-person/internal/engine/tables"
	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

type TablesTestSuite struct {
	suite.Suite
	tables *tables.Tables
}

func TestTablesSuite(t *testing.T) {
	suite.Run(t, new(TablesTestSuite))
}

func (s *TablesTestSuite) SetupTest() {
	t, err := tables.Load()
	s.Require().NoError(err)
	s.tables = t
}

func (s *TablesTestSuite) TestExperiencesForLevel() {
	table := s.tables.ExperiencesTable()

	testCases := []struct {
		rank     int
		expected int
	}{
		{0, 0},
		{1, 0},
		{2, 10},
		{5, 100},
		{21, 13700},
	}

	for _, tc := range testCases {
		got, err := table.ExperiencesForLevel(tc.rank)
		s.Require().NoError(err)
		s.Assert().Equal(tc.expected, got, "level %d", tc.rank)
	}
	s.Assert().Equal(21, table.MaxLevelRank())
}

func (s *TablesTestSuite) TestExperiencesForLevelOutOfRange() {
	_, err := s.tables.ExperiencesTable().ExperiencesForLevel(22)
	s.Assert().True(errors.IsOutOfRange(err))

	_, err = s.tables.ExperiencesTable().ExperiencesForLevel(-1)
	s.Assert().True(errors.IsOutOfRange(err))
}

func (s *TablesTestSuite) TestLevelForExperiences() {
	table := s.tables.ExperiencesTable()
	s.Assert().Equal(1, table.LevelForExperiences(0))
	s.Assert().Equal(3, table.LevelForExperiences(30))
	s.Assert().Equal(5, table.LevelForExperiences(100))
	s.Assert().Equal(21, table.LevelForExperiences(1_000_000))
}

func (s *TablesTestSuite) TestExperiencesBonus() {
	table := s.tables.ExperiencesTable()
	s.Assert().Equal(1, table.ExperiencesFromBonus(0))
	s.Assert().Equal(10, table.ExperiencesFromBonus(20))
	s.Assert().Equal(50, table.ExperiencesFromBonus(34))
	s.Assert().Equal(100, table.ExperiencesFromBonus(40))

	bonus, err := table.BonusFromExperiences(100)
	s.Require().NoError(err)
	s.Assert().Equal(40, bonus)

	_, err = table.BonusFromExperiences(0)
	s.Assert().True(errors.IsOutOfRange(err))
}

func (s *TablesTestSuite) TestExperiencesFromHugeBonusSaturates() {
	table := s.tables.ExperiencesTable()
	s.Assert().Equal(1_000_000_000_000_000, table.ExperiencesFromBonus(300))
	for _, bonus := range []int{380, 400, 1000} {
		s.Assert().Equal(math.MaxInt, table.ExperiencesFromBonus(bonus), "bonus %d", bonus)
	}
}

func (s *TablesTestSuite) TestWeight() {
	table := s.tables.WeightTable()
	s.Assert().Equal(tables.Weight{Kilograms: 1, Bonus: 0}, table.ToWeight(1))
	s.Assert().Equal(tables.Weight{Kilograms: 10, Bonus: 20}, table.ToWeight(10))
	s.Assert().Equal(38, table.ToWeight(80).Bonus)
	s.Assert().Equal(-40, table.ToWeight(0.001).Bonus)
	s.Assert().Equal(-40, table.ToWeight(0).Bonus)
	s.Assert().InDelta(100.0, table.ToKilograms(40), 0.0001)
}

func (s *TablesTestSuite) TestNewRejectsInvalidThresholds() {
	testCases := []struct {
		name string
		cfg  *tables.Config
	}{
		{"nil config", nil},
		{"too few levels", &tables.Config{
			Experiences: tables.ExperiencesConfig{BonusPerDecade: 20, LevelThresholds: []int{0}},
			Weight:      tables.WeightConfig{BonusPerDecade: 20},
		}},
		{"decreasing thresholds", &tables.Config{
			Experiences: tables.ExperiencesConfig{BonusPerDecade: 20, LevelThresholds: []int{0, 10, 5}},
			Weight:      tables.WeightConfig{BonusPerDecade: 20},
		}},
		{"zero weight scale", &tables.Config{
			Experiences: tables.ExperiencesConfig{BonusPerDecade: 20, LevelThresholds: []int{0, 0, 80}},
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := tables.New(tc.cfg)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *TablesTestSuite) TestLoadFile() {
	path := filepath.Join(s.T().TempDir(), "tables.yaml")
	data := []byte(`
experiences:
  bonus_per_decade: 20
  level_thresholds: [0, 0, 80]
weight:
  bonus_per_decade: 20
  min_bonus: -20
`)
	s.Require().NoError(os.WriteFile(path, data, 0o600))

	t, err := tables.LoadFile(path)
	s.Require().NoError(err)

	required, err := t.ExperiencesTable().ExperiencesForLevel(2)
	s.Require().NoError(err)
	s.Assert().Equal(80, required)
	s.Assert().Equal(-20, t.WeightTable().ToWeight(0.01).Bonus)

	_, err = tables.LoadFile(filepath.Join(s.T().TempDir(), "missing.yaml"))
	s.Assert().Error(err)

	_, err = tables.Parse([]byte("experiences: ["))
	s.Assert().True(errors.IsInternal(err))
}
