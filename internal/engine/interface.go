// Package engine calculates derived properties of a person from the rules
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/jaroslavtyc/drd-plus-person/internal/engine Engine,Armourer

import (
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/equipment"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/properties"
)

// Engine derives property sets of a person
type Engine interface {
	// PropertiesByLevels combines race, gender, fate and levels into base properties
	// Returns errors.InvalidArgument for incomplete input
	PropertiesByLevels(input *PropertiesByLevelsInput) (*properties.PropertiesByLevels, error)

	// CurrentProperties applies wounds, armament and carried weight
	// Returns errors.InvalidArgument for incomplete input
	// Returns the armourer error when the armament cannot be used at all
	CurrentProperties(input *CurrentPropertiesInput) (*properties.CurrentProperties, error)
}

// Armourer decides whether a person is strong enough for their armament
type Armourer interface {
	MissingStrengthForArmament(armor equipment.Armor, strength int) int
	MalusFromMissingStrength(missingStrength int) int

	// CheckArmament returns a missing strength error when the armament is too heavy to be used
	CheckArmament(armor equipment.Armor, strength int) error
}
