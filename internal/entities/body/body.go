// Package body holds physical attributes a person is born with
package body

import "github.com/jaroslavtyc/drd-plus-person/internal/errors"

// Limits of physical attributes
const (
	MinHeightInCm = 50
	MaxHeightInCm = 300

	MinAge = 1
	MaxAge = 1000

	// WeightAdjustment is a bonus on the weight table, so ±10 is roughly
	// a body three times lighter or heavier than usual for the race.
	MinWeightAdjustment = -10
	MaxWeightAdjustment = 10
)

// HeightInCm is body height
type HeightInCm int

// NewHeightInCm validates a height
func NewHeightInCm(value int) (HeightInCm, error) {
	if value < MinHeightInCm || value > MaxHeightInCm {
		return 0, errors.OutOfRangef("height %d cm is outside of %d..%d", value, MinHeightInCm, MaxHeightInCm)
	}
	return HeightInCm(value), nil
}

// Value returns height in centimeters
func (h HeightInCm) Value() int {
	return int(h)
}

// Age is age in years
type Age int

// NewAge validates an age
func NewAge(value int) (Age, error) {
	if value < MinAge || value > MaxAge {
		return 0, errors.OutOfRangef("age %d is outside of %d..%d", value, MinAge, MaxAge)
	}
	return Age(value), nil
}

// Value returns age in years
func (a Age) Value() int {
	return int(a)
}

// WeightAdjustment moves body weight away from the race average
type WeightAdjustment int

// NewWeightAdjustment validates a body weight adjustment
func NewWeightAdjustment(value int) (WeightAdjustment, error) {
	if value < MinWeightAdjustment || value > MaxWeightAdjustment {
		return 0, errors.OutOfRangef("body weight adjustment %d is outside of %d..%d",
			value, MinWeightAdjustment, MaxWeightAdjustment)
	}
	return WeightAdjustment(value), nil
}

// Value returns the adjustment as weight bonus
func (w WeightAdjustment) Value() int {
	return int(w)
}
