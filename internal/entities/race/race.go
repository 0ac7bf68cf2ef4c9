// Package race defines races, genders and what they do to a body
package race

import "github.com/jaroslavtyc/drd-plus-person/internal/entities/properties"

// Code names a race
type Code string

// Races
const (
	Human  Code = "human"
	Elf    Code = "elf"
	Dwarf  Code = "dwarf"
	Hobbit Code = "hobbit"
	Kroll  Code = "kroll"
	Orc    Code = "orc"
)

// GenderCode names a gender
type GenderCode string

// Genders
const (
	Male   GenderCode = "male"
	Female GenderCode = "female"
)

// IsValid checks if the gender is known
func (g GenderCode) IsValid() bool {
	return g == Male || g == Female
}

// Race holds what a race gives to its members
type Race struct {
	Code      Code
	modifiers properties.Base
	size      int
	weightKg  float64
	toughness int
	carrying  int
}

var races = map[Code]Race{
	Human:  {Code: Human, size: 0, weightKg: 70},
	Elf:    {Code: Elf, modifiers: properties.Base{Strength: -1, Agility: 1, Knack: 1, Will: -2, Intelligence: 1, Charisma: 1}, size: -1, weightKg: 50, toughness: -1, carrying: -1},
	Dwarf:  {Code: Dwarf, modifiers: properties.Base{Strength: 1, Agility: -1, Will: 2, Intelligence: -1, Charisma: -2}, size: 0, weightKg: 70, toughness: 1, carrying: 2},
	Hobbit: {Code: Hobbit, modifiers: properties.Base{Strength: -3, Agility: 1, Knack: 1, Will: 0, Intelligence: -1, Charisma: 2}, size: -2, weightKg: 40, carrying: -2},
	Kroll:  {Code: Kroll, modifiers: properties.Base{Strength: 3, Agility: -2, Knack: -1, Will: 1, Intelligence: -3, Charisma: -1}, size: 3, weightKg: 120, toughness: 1, carrying: 4},
	Orc:    {Code: Orc, modifiers: properties.Base{Strength: 0, Agility: 2, Knack: 0, Will: -1, Intelligence: 0, Charisma: -2}, size: -1, weightKg: 60},
}

// femaleModifiers apply to every female on top of race modifiers
var femaleModifiers = properties.Base{Strength: -1, Charisma: 1}

const (
	femaleSizeModifier  = -1
	femaleWeightPortion = 0.85
)

// Get returns the race for a code
func Get(code Code) (Race, bool) {
	r, ok := races[code]
	return r, ok
}

// Codes returns all known race codes
func Codes() []Code {
	return []Code{Human, Elf, Dwarf, Hobbit, Kroll, Orc}
}

// Modifiers returns property modifiers of the race for a gender
func (r Race) Modifiers(gender GenderCode) properties.Base {
	if gender == Female {
		return r.modifiers.Add(femaleModifiers)
	}
	return r.modifiers
}

// Size returns the typical size of the race for a gender
func (r Race) Size(gender GenderCode) int {
	if gender == Female {
		return r.size + femaleSizeModifier
	}
	return r.size
}

// WeightInKg returns the typical body weight of the race for a gender
func (r Race) WeightInKg(gender GenderCode) float64 {
	if gender == Female {
		return r.weightKg * femaleWeightPortion
	}
	return r.weightKg
}

// ToughnessModifier returns how much the race adds to toughness
func (r Race) ToughnessModifier() int {
	return r.toughness
}

// CarryingModifier returns how much the race adds to carrying capacity
func (r Race) CarryingModifier() int {
	return r.carrying
}
