package equipment_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/jaroslavtyc/drd-plus-person/internal/engine/tables"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/equipment"
	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

type EquipmentTestSuite struct {
	suite.Suite
	weightTable *tables.WeightTable
}

func TestEquipmentSuite(t *testing.T) {
	suite.Run(t, new(EquipmentTestSuite))
}

func (s *EquipmentTestSuite) SetupTest() {
	t, err := tables.Load()
	s.Require().NoError(err)
	s.weightTable = t.WeightTable()
}

func (s *EquipmentTestSuite) TestEmpty() {
	e, err := equipment.New(nil)
	s.Require().NoError(err)

	s.Assert().True(e.WornBodyArmor().IsNone())
	s.Assert().True(e.WornHelm().IsNone())
	s.Assert().Equal(equipment.WithoutHelm, e.WornHelm().Code)
	s.Assert().Equal(-40, e.Weight(s.weightTable).Bonus)
}

func (s *EquipmentTestSuite) TestWeight() {
	e, err := equipment.New(&equipment.Config{
		BodyArmor: equipment.Armor{Code: "chainmail", Slot: equipment.SlotBody, RequiredStrength: 5, Protection: 5, WeightInKg: 8},
		Helm:      equipment.Armor{Code: "cap", Slot: equipment.SlotHelm, RequiredStrength: 0, Protection: 1, WeightInKg: 1},
		Items: []equipment.Item{
			{Name: "torch", WeightInKg: 0.5, Quantity: 2},
		},
	})
	s.Require().NoError(err)

	weight := e.Weight(s.weightTable)
	s.Assert().InDelta(10.0, weight.Kilograms, 0.0001)
	s.Assert().Equal(20, weight.Bonus)
	s.Assert().Equal("chainmail", e.WornBodyArmor().Code)
	s.Assert().Len(e.Items(), 1)
}

func (s *EquipmentTestSuite) TestInvalid() {
	testCases := []struct {
		name string
		cfg  *equipment.Config
	}{
		{"helm worn as body armor", &equipment.Config{
			BodyArmor: equipment.Armor{Code: "cap", Slot: equipment.SlotHelm},
		}},
		{"body armor worn as helm", &equipment.Config{
			Helm: equipment.Armor{Code: "chainmail", Slot: equipment.SlotBody},
		}},
		{"no quantity", &equipment.Config{
			Items: []equipment.Item{{Name: "rope", WeightInKg: 2}},
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := equipment.New(tc.cfg)
			s.Assert().True(errors.IsInvalidArgument(err))
		})
	}
}
