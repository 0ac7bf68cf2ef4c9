package engine

import (
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/equipment"
	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

// ReasonMissingStrength tags errors of armament too heavy to be used
const ReasonMissingStrength = "missing_strength"

// DefaultMaxMissingStrength is how much strength may be missing before an armament becomes unusable
const DefaultMaxMissingStrength = 10

// CannotUseArmamentBecauseOfMissingStrength creates the error of an unusable armament
func CannotUseArmamentBecauseOfMissingStrength(armament string, missingStrength int) *errors.Error {
	return errors.FailedPreconditionf("cannot use %s, missing %d strength", armament, missingStrength).
		WithReason(ReasonMissingStrength).
		WithMeta("armament", armament).
		WithMeta("missing_strength", missingStrength)
}

// IsCannotUseArmament checks if an error is caused by too heavy armament
func IsCannotUseArmament(err error) bool {
	return errors.HasReason(err, ReasonMissingStrength)
}

type armourer struct {
	maxMissingStrength int
}

// ArmourerConfig configures the armourer
type ArmourerConfig struct {
	// MaxMissingStrength defaults to DefaultMaxMissingStrength
	MaxMissingStrength int
}

// NewArmourer creates the default armourer
func NewArmourer(cfg *ArmourerConfig) (Armourer, error) {
	if cfg == nil {
		cfg = &ArmourerConfig{}
	}
	if cfg.MaxMissingStrength < 0 {
		return nil, errors.InvalidArgumentf("max missing strength cannot be negative, got %d", cfg.MaxMissingStrength)
	}

	limit := cfg.MaxMissingStrength
	if limit == 0 {
		limit = DefaultMaxMissingStrength
	}
	return &armourer{maxMissingStrength: limit}, nil
}

func (a *armourer) MissingStrengthForArmament(armor equipment.Armor, strength int) int {
	if armor.IsNone() {
		return 0
	}
	missing := armor.RequiredStrength - strength
	if missing < 0 {
		return 0
	}
	return missing
}

// MalusFromMissingStrength is half of the missing strength, rounded up
func (a *armourer) MalusFromMissingStrength(missingStrength int) int {
	if missingStrength <= 0 {
		return 0
	}
	return -((missingStrength + 1) / 2)
}

func (a *armourer) CheckArmament(armor equipment.Armor, strength int) error {
	missing := a.MissingStrengthForArmament(armor, strength)
	if missing > a.maxMissingStrength {
		return CannotUseArmamentBecauseOfMissingStrength(armor.Code, missing)
	}
	return nil
}
