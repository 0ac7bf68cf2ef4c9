package tables

import "github.com/jaroslavtyc/drd-plus-person/internal/errors"

// Weight is a mass in kilograms together with its bonus
type Weight struct {
	Kilograms float64
	Bonus     int
}

// WeightTable converts kilograms to weight bonus and back
type WeightTable struct {
	scale    bonusScale
	minBonus int
}

// NewWeightTable creates a weight table; anything lighter than minBonus gets minBonus
func NewWeightTable(bonusPerDecade, minBonus int) (*WeightTable, error) {
	if bonusPerDecade <= 0 {
		return nil, errors.InvalidArgumentf("bonus per decade must be positive, got %d", bonusPerDecade)
	}
	return &WeightTable{
		scale:    bonusScale{perDecade: bonusPerDecade},
		minBonus: minBonus,
	}, nil
}

// ToWeight returns the weight for given kilograms
func (t *WeightTable) ToWeight(kilograms float64) Weight {
	if kilograms <= 0 {
		return Weight{Kilograms: 0, Bonus: t.minBonus}
	}
	bonus := t.scale.toBonus(kilograms)
	if bonus < t.minBonus {
		bonus = t.minBonus
	}
	return Weight{Kilograms: kilograms, Bonus: bonus}
}

// ToKilograms returns kilograms for a weight bonus
func (t *WeightTable) ToKilograms(bonus int) float64 {
	return t.scale.toValue(bonus)
}
