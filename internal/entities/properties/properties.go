// Package properties defines the six base properties and the property sets
// derived for a person.
package properties

// Code names a base property
type Code string

// Base properties
const (
	Strength     Code = "strength"
	Agility      Code = "agility"
	Knack        Code = "knack"
	Will         Code = "will"
	Intelligence Code = "intelligence"
	Charisma     Code = "charisma"
)

// All returns base property codes in their canonical order
func All() []Code {
	return []Code{Strength, Agility, Knack, Will, Intelligence, Charisma}
}

// IsValid checks if the code names a base property
func (c Code) IsValid() bool {
	switch c {
	case Strength, Agility, Knack, Will, Intelligence, Charisma:
		return true
	default:
		return false
	}
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Base holds a value for each base property
type Base struct {
	Strength     int `yaml:"strength"`
	Agility      int `yaml:"agility"`
	Knack        int `yaml:"knack"`
	Will         int `yaml:"will"`
	Intelligence int `yaml:"intelligence"`
	Charisma     int `yaml:"charisma"`
}

// Get returns the value of a property
func (b Base) Get(code Code) int {
	switch code {
	case Strength:
		return b.Strength
	case Agility:
		return b.Agility
	case Knack:
		return b.Knack
	case Will:
		return b.Will
	case Intelligence:
		return b.Intelligence
	case Charisma:
		return b.Charisma
	default:
		return 0
	}
}

// With returns a copy with the property set to value
func (b Base) With(code Code, value int) Base {
	switch code {
	case Strength:
		b.Strength = value
	case Agility:
		b.Agility = value
	case Knack:
		b.Knack = value
	case Will:
		b.Will = value
	case Intelligence:
		b.Intelligence = value
	case Charisma:
		b.Charisma = value
	}
	return b
}

// Add returns the sum of both property sets
func (b Base) Add(other Base) Base {
	for _, code := range All() {
		b = b.With(code, b.Get(code)+other.Get(code))
	}
	return b
}

// PropertiesByFate are the innate level-0 rolls of a person
type PropertiesByFate struct {
	Base
	Fate FateCode
}

// PropertiesByLevels are base properties after race, gender, fate and
// profession levels, plus the body the person was born with.
type PropertiesByLevels struct {
	Base
	// Size comes from race, gender and body weight adjustment
	Size       int
	WeightInKg float64
	HeightInCm int
	Age        int
	Toughness  int
	Endurance  int
	LevelRank  int
}

// CurrentProperties are properties as they apply right now, including
// maluses from wounds, armament and carried weight.
type CurrentProperties struct {
	Base
	Size                 int
	Protection           int
	CarriedWeightInKg    float64
	CarriedWeightBonus   int
	CarryingCapacityInKg float64
	EncumbranceMalus     int
	ArmamentMalus        int
	WoundsMalus          int
}
