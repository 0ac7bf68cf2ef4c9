package properties

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

// FateCode names the fate a person was born under
type FateCode string

// Fates
const (
	FateOfExceptionalProperties                FateCode = "exceptional_properties"
	FateOfCombinationOfPropertiesAndBackground FateCode = "combination_of_properties_and_background"
	FateOfGoodBackground                       FateCode = "good_background"
)

const fateDieSize = 6

// IsValid checks if the fate is known
func (f FateCode) IsValid() bool {
	switch f {
	case FateOfExceptionalProperties, FateOfCombinationOfPropertiesAndBackground, FateOfGoodBackground:
		return true
	default:
		return false
	}
}

// Limits returns the maximum fate value of a primary and of a secondary property
func (f FateCode) Limits() (primary, secondary int) {
	switch f {
	case FateOfExceptionalProperties:
		return 3, 2
	case FateOfCombinationOfPropertiesAndBackground:
		return 2, 1
	case FateOfGoodBackground:
		return 1, 0
	default:
		return 0, 0
	}
}

// NewPropertiesByFate validates chosen fate values against the fate limits
func NewPropertiesByFate(fate FateCode, base Base, primary []Code) (PropertiesByFate, error) {
	if !fate.IsValid() {
		return PropertiesByFate{}, errors.InvalidArgumentf("unknown fate %q", fate)
	}

	primaryMax, secondaryMax := fate.Limits()
	vb := errors.NewValidationBuilder()
	for _, code := range All() {
		limit := secondaryMax
		if isPrimary(code, primary) {
			limit = primaryMax
		}
		errors.ValidateRange(code.String(), base.Get(code), 0, limit, vb)
	}
	if err := vb.Build(); err != nil {
		return PropertiesByFate{}, err
	}

	return PropertiesByFate{Base: base, Fate: fate}, nil
}

// FateRoller rolls properties by fate
type FateRoller struct {
	roller dice.Roller
}

// FateRollerConfig holds the dependencies of a FateRoller
type FateRollerConfig struct {
	Roller dice.Roller
}

// Validate ensures all required dependencies are provided
func (cfg *FateRollerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Roller == nil {
		vb.RequiredField("Roller")
	}
	return vb.Build()
}

// NewFateRoller creates a fate roller
func NewFateRoller(cfg *FateRollerConfig) (*FateRoller, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &FateRoller{roller: cfg.Roller}, nil
}

// Roll rolls a d6 for every property and scales it to the fate limit,
// so a six always reaches the limit and a one never gives anything
// unless the limit is six or more.
func (r *FateRoller) Roll(fate FateCode, primary []Code) (PropertiesByFate, error) {
	if !fate.IsValid() {
		return PropertiesByFate{}, errors.InvalidArgumentf("unknown fate %q", fate)
	}

	primaryMax, secondaryMax := fate.Limits()
	var base Base
	for _, code := range All() {
		rolled, err := r.roller.Roll(fateDieSize)
		if err != nil {
			return PropertiesByFate{}, errors.Wrapf(err, "failed to roll fate of %s", code)
		}
		limit := secondaryMax
		if isPrimary(code, primary) {
			limit = primaryMax
		}
		base = base.With(code, rolled*limit/fateDieSize)
	}

	return PropertiesByFate{Base: base, Fate: fate}, nil
}

func isPrimary(code Code, primary []Code) bool {
	for _, p := range primary {
		if p == code {
			return true
		}
	}
	return false
}
