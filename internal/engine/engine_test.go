package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/jaroslavtyc/drd-plus-person/internal/engine"
	enginemock "github.com/jaroslavtyc/drd-plus-person/internal/engine/mock"
	"github.com/jaroslavtyc/drd-plus-person/internal/engine/tables"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/body"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/equipment"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/professions"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/properties"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/race"
	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

type fixedHealth int

func (h fixedHealth) Malus() int { return int(h) }

type EngineTestSuite struct {
	suite.Suite
	engine   engine.Engine
	tables   *tables.Tables
	levels   *professions.Levels
	armourer engine.Armourer
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	var err error
	s.engine, err = engine.New(&engine.Config{})
	s.Require().NoError(err)

	s.tables, err = tables.Load()
	s.Require().NoError(err)

	s.armourer, err = engine.NewArmourer(nil)
	s.Require().NoError(err)

	fighter, _ := professions.Get(professions.Fighter)
	first, err := professions.NewLevel(fighter, 1, properties.Base{})
	s.Require().NoError(err)
	second, err := professions.NewLevel(fighter, 2, properties.Base{Strength: 1})
	s.Require().NoError(err)
	s.levels, err = professions.NewLevels(first, second)
	s.Require().NoError(err)
}

func (s *EngineTestSuite) byLevelsInput() *engine.PropertiesByLevelsInput {
	human, _ := race.Get(race.Human)
	return &engine.PropertiesByLevelsInput{
		Race:   human,
		Gender: race.Male,
		PropertiesByFate: properties.PropertiesByFate{
			Base: properties.Base{Strength: 2, Agility: 1, Will: 1},
			Fate: properties.FateOfCombinationOfPropertiesAndBackground,
		},
		ProfessionLevels: s.levels,
		WeightAdjustment: body.WeightAdjustment(2),
		HeightInCm:       body.HeightInCm(180),
		Age:              body.Age(25),
		Tables:           s.tables,
	}
}

func (s *EngineTestSuite) TestNew() {
	s.Run("negative carrying capacity", func() {
		e, err := engine.New(&engine.Config{CarryingCapacity: -1})
		s.Assert().Nil(e)
		s.Assert().True(errors.IsInvalidArgument(err))
	})

	s.Run("nil config uses defaults", func() {
		e, err := engine.New(nil)
		s.Require().NoError(err)
		s.Assert().NotNil(e)
	})
}

func (s *EngineTestSuite) TestPropertiesByLevels() {
	result, err := s.engine.PropertiesByLevels(s.byLevelsInput())
	s.Require().NoError(err)

	// fate 2 + fighter first level 1 + second level 1
	s.Assert().Equal(4, result.Strength)
	s.Assert().Equal(2, result.Agility)
	s.Assert().Equal(0, result.Knack)
	s.Assert().Equal(1, result.Will)
	s.Assert().Equal(1, result.Size)
	s.Assert().InDelta(89.1, result.WeightInKg, 0.01)
	s.Assert().Equal(180, result.HeightInCm)
	s.Assert().Equal(25, result.Age)
	s.Assert().Equal(4, result.Toughness)
	s.Assert().Equal(3, result.Endurance)
	s.Assert().Equal(2, result.LevelRank)
}

func (s *EngineTestSuite) TestPropertiesByLevelsAppliesRaceAndGender() {
	input := s.byLevelsInput()
	input.Race, _ = race.Get(race.Dwarf)
	input.Gender = race.Female

	result, err := s.engine.PropertiesByLevels(input)
	s.Require().NoError(err)

	// dwarf +1, female -1
	s.Assert().Equal(4, result.Strength)
	s.Assert().Equal(1, result.Agility)
	s.Assert().Equal(3, result.Will)
	s.Assert().Equal(-1, result.Charisma)
	s.Assert().Equal(0, result.Size)
	s.Assert().Equal(5, result.Toughness)
}

func (s *EngineTestSuite) TestPropertiesByLevelsValidation() {
	testCases := []struct {
		name   string
		modify func(*engine.PropertiesByLevelsInput)
		field  string
	}{
		{"missing levels", func(in *engine.PropertiesByLevelsInput) { in.ProfessionLevels = nil }, "ProfessionLevels"},
		{"missing tables", func(in *engine.PropertiesByLevelsInput) { in.Tables = nil }, "Tables"},
		{"missing race", func(in *engine.PropertiesByLevelsInput) { in.Race = race.Race{} }, "Race"},
		{"unknown gender", func(in *engine.PropertiesByLevelsInput) { in.Gender = "unknown" }, "Gender"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			input := s.byLevelsInput()
			tc.modify(input)

			result, err := s.engine.PropertiesByLevels(input)
			s.Assert().Nil(result)
			s.Assert().True(errors.IsInvalidArgument(err))
			s.Assert().Contains(err.Error(), tc.field)
		})
	}

	s.Run("nil input", func() {
		_, err := s.engine.PropertiesByLevels(nil)
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *EngineTestSuite) currentInput() *engine.CurrentPropertiesInput {
	byLevels, err := s.engine.PropertiesByLevels(s.byLevelsInput())
	s.Require().NoError(err)

	human, _ := race.Get(race.Human)
	return &engine.CurrentPropertiesInput{
		PropertiesByLevels: byLevels,
		Health:             fixedHealth(-1),
		Race:               human,
		BodyArmor: equipment.Armor{
			Code: "chainmail", Slot: equipment.SlotBody, RequiredStrength: 8, Protection: 5, WeightInKg: 15,
		},
		Helm:     equipment.NoArmor(equipment.SlotHelm),
		Weight:   tables.Weight{Kilograms: 56, Bonus: 35},
		Tables:   s.tables,
		Armourer: s.armourer,
	}
}

func (s *EngineTestSuite) TestCurrentProperties() {
	result, err := s.engine.CurrentProperties(s.currentInput())
	s.Require().NoError(err)

	s.Assert().Equal(-1, result.WoundsMalus)
	s.Assert().Equal(3, result.Strength)
	// strength 3 misses 5 of the chainmail
	s.Assert().Equal(-3, result.ArmamentMalus)
	// capacity 3 + 30 against bonus 35
	s.Assert().Equal(-2, result.EncumbranceMalus)
	s.Assert().Equal(-4, result.Agility)
	s.Assert().Equal(-1, result.Knack)
	s.Assert().Equal(1, result.Will)
	s.Assert().Equal(5, result.Protection)
	s.Assert().Equal(1, result.Size)
	s.Assert().Equal(35, result.CarriedWeightBonus)
	s.Assert().InDelta(56.0, result.CarriedWeightInKg, 0.001)
	s.Assert().InDelta(44.7, result.CarryingCapacityInKg, 0.01)
}

func (s *EngineTestSuite) TestCurrentPropertiesWithoutArmament() {
	input := s.currentInput()
	input.BodyArmor = equipment.NoArmor(equipment.SlotBody)
	input.Health = fixedHealth(0)
	input.Weight = tables.Weight{Kilograms: 10, Bonus: 20}

	result, err := s.engine.CurrentProperties(input)
	s.Require().NoError(err)

	s.Assert().Equal(0, result.ArmamentMalus)
	s.Assert().Equal(0, result.EncumbranceMalus)
	s.Assert().Equal(0, result.Protection)
	s.Assert().Equal(input.PropertiesByLevels.Base, result.Base)
}

func (s *EngineTestSuite) TestCurrentPropertiesTooHeavyArmament() {
	input := s.currentInput()
	input.BodyArmor.RequiredStrength = 15

	result, err := s.engine.CurrentProperties(input)
	s.Assert().Nil(result)
	s.Require().Error(err)
	s.Assert().True(engine.IsCannotUseArmament(err))
	s.Assert().Equal(12, errors.GetMeta(err)["missing_strength"])
}

func (s *EngineTestSuite) TestCurrentPropertiesWithMockedArmourer() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	mockArmourer := enginemock.NewMockArmourer(ctrl)
	input := s.currentInput()
	input.Armourer = mockArmourer

	mockArmourer.EXPECT().CheckArmament(input.BodyArmor, 3).Return(nil).Times(1)
	mockArmourer.EXPECT().CheckArmament(input.Helm, 3).Return(nil).Times(1)
	mockArmourer.EXPECT().MissingStrengthForArmament(input.BodyArmor, 3).Return(4).Times(1)
	mockArmourer.EXPECT().MissingStrengthForArmament(input.Helm, 3).Return(0).Times(1)
	mockArmourer.EXPECT().MalusFromMissingStrength(4).Return(-2).Times(1)
	mockArmourer.EXPECT().MalusFromMissingStrength(0).Return(0).Times(1)

	result, err := s.engine.CurrentProperties(input)
	s.Require().NoError(err)
	s.Assert().Equal(-2, result.ArmamentMalus)
}

func (s *EngineTestSuite) TestCurrentPropertiesPropagatesArmourerError() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	mockArmourer := enginemock.NewMockArmourer(ctrl)
	input := s.currentInput()
	input.Armourer = mockArmourer

	expected := engine.CannotUseArmamentBecauseOfMissingStrength("plate", 11)
	mockArmourer.EXPECT().CheckArmament(input.BodyArmor, 3).Return(expected).Times(1)

	_, err := s.engine.CurrentProperties(input)
	s.Assert().Same(expected, err)
}

func (s *EngineTestSuite) TestCurrentPropertiesValidation() {
	input := s.currentInput()
	input.Health = nil
	input.Armourer = nil

	_, err := s.engine.CurrentProperties(input)
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Health")
	s.Assert().Contains(err.Error(), "Armourer")
}
