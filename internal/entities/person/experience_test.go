package person_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/jaroslavtyc/drd-plus-person/internal/engine/tables"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/person"
	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

type thresholds map[int]int

func (t thresholds) ExperiencesForLevel(levelRank int) (int, error) {
	required, ok := t[levelRank]
	if !ok {
		return 0, errors.OutOfRangef("unknown level %d", levelRank)
	}
	return required, nil
}

type ExperienceTestSuite struct {
	suite.Suite
	table thresholds
}

func TestExperienceSuite(t *testing.T) {
	suite.Run(t, new(ExperienceTestSuite))
}

func (s *ExperienceTestSuite) SetupTest() {
	s.table = thresholds{1: 0, 2: 80}
}

func (s *ExperienceTestSuite) TestEnoughExperience() {
	s.Assert().NoError(person.CheckExperiences(2, 100, s.table))
	s.Assert().NoError(person.CheckExperiences(2, 80, s.table))
	s.Assert().NoError(person.CheckExperiences(1, 0, s.table))
}

func (s *ExperienceTestSuite) TestInsufficientExperience() {
	err := person.CheckExperiences(2, 50, s.table)
	s.Require().Error(err)

	s.Assert().True(person.IsInsufficientExperience(err))
	s.Assert().True(errors.IsFailedPrecondition(err))
	s.Assert().Contains(err.Error(), "80")
	s.Assert().Contains(err.Error(), "50")

	meta := errors.GetMeta(err)
	s.Assert().Equal(2, meta["level_rank"])
	s.Assert().Equal(80, meta["required_experiences"])
	s.Assert().Equal(50, meta["available_experiences"])
}

func (s *ExperienceTestSuite) TestTableErrorIsReturned() {
	err := person.CheckExperiences(3, 1000, s.table)
	s.Assert().True(errors.IsOutOfRange(err))
	s.Assert().False(person.IsInsufficientExperience(err))
}

func (s *ExperienceTestSuite) TestWithRulesTable() {
	t, err := tables.Load()
	s.Require().NoError(err)

	s.Assert().NoError(person.CheckExperiences(5, 100, t.ExperiencesTable()))
	s.Assert().True(person.IsInsufficientExperience(person.CheckExperiences(5, 99, t.ExperiencesTable())))
}

func (s *ExperienceTestSuite) TestIsInsufficientExperience() {
	s.Assert().False(person.IsInsufficientExperience(nil))
	s.Assert().False(person.IsInsufficientExperience(errors.FailedPrecondition("other")))
	s.Assert().True(person.IsInsufficientExperience(person.InsufficientExperience(1, 10, 0)))
}
