package engine

import (
	"math"

	"github.com/jaroslavtyc/drd-plus-person/internal/entities/properties"
	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

// DefaultCarryingCapacity is the weight bonus a person with zero strength carries without encumbrance
const DefaultCarryingCapacity = 30

type engine struct {
	carryingCapacity int
}

// Config configures the engine
type Config struct {
	// CarryingCapacity defaults to DefaultCarryingCapacity
	CarryingCapacity int
}

// Validate validates the config
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.CarryingCapacity < 0 {
		vb.Field("CarryingCapacity", "cannot be negative")
	}
	return vb.Build()
}

// New creates the default rules engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	capacity := cfg.CarryingCapacity
	if capacity == 0 {
		capacity = DefaultCarryingCapacity
	}
	return &engine{carryingCapacity: capacity}, nil
}

func (e *engine) PropertiesByLevels(input *PropertiesByLevelsInput) (*properties.PropertiesByLevels, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.ProfessionLevels == nil {
		vb.RequiredField("ProfessionLevels")
	}
	if input.Tables == nil {
		vb.RequiredField("Tables")
	}
	if input.Race.Code == "" {
		vb.RequiredField("Race")
	}
	if !input.Gender.IsValid() {
		vb.InvalidField("Gender", string(input.Gender))
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	base := input.Race.Modifiers(input.Gender).Add(input.PropertiesByFate.Base)
	for _, code := range properties.All() {
		base = base.With(code, base.Get(code)+input.ProfessionLevels.PropertyIncrement(code))
	}

	weightTable := input.Tables.WeightTable()
	raceWeight := weightTable.ToWeight(input.Race.WeightInKg(input.Gender))
	weightInKg := weightTable.ToKilograms(raceWeight.Bonus + input.WeightAdjustment.Value())

	return &properties.PropertiesByLevels{
		Base:       base,
		Size:       input.Race.Size(input.Gender) + input.WeightAdjustment.Value()/2,
		WeightInKg: math.Round(weightInKg*10) / 10,
		HeightInCm: input.HeightInCm.Value(),
		Age:        input.Age.Value(),
		Toughness:  base.Strength + input.Race.ToughnessModifier(),
		Endurance:  int(math.Round(float64(base.Strength+base.Will) / 2)),
		LevelRank:  input.ProfessionLevels.CurrentLevel().LevelRank(),
	}, nil
}

func (e *engine) CurrentProperties(input *CurrentPropertiesInput) (*properties.CurrentProperties, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.PropertiesByLevels == nil {
		vb.RequiredField("PropertiesByLevels")
	}
	if input.Health == nil {
		vb.RequiredField("Health")
	}
	if input.Tables == nil {
		vb.RequiredField("Tables")
	}
	if input.Armourer == nil {
		vb.RequiredField("Armourer")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	byLevels := input.PropertiesByLevels
	woundsMalus := input.Health.Malus()
	strength := byLevels.Strength + woundsMalus

	armourer := input.Armourer
	if err := armourer.CheckArmament(input.BodyArmor, strength); err != nil {
		return nil, err
	}
	if err := armourer.CheckArmament(input.Helm, strength); err != nil {
		return nil, err
	}
	armamentMalus := armourer.MalusFromMissingStrength(armourer.MissingStrengthForArmament(input.BodyArmor, strength)) +
		armourer.MalusFromMissingStrength(armourer.MissingStrengthForArmament(input.Helm, strength))

	capacity := strength + e.carryingCapacity + input.Race.CarryingModifier()
	encumbranceMalus := 0
	if input.Weight.Bonus > capacity {
		encumbranceMalus = capacity - input.Weight.Bonus
	}

	current := byLevels.Base
	current.Strength = strength
	current.Agility = byLevels.Agility + woundsMalus + armamentMalus + encumbranceMalus
	current.Knack = byLevels.Knack + woundsMalus

	return &properties.CurrentProperties{
		Base:                 current,
		Size:                 byLevels.Size,
		Protection:           input.BodyArmor.Protection + input.Helm.Protection,
		CarriedWeightInKg:    input.Weight.Kilograms,
		CarriedWeightBonus:   input.Weight.Bonus,
		CarryingCapacityInKg: math.Round(input.Tables.WeightTable().ToKilograms(capacity)*10) / 10,
		EncumbranceMalus:     encumbranceMalus,
		ArmamentMalus:        armamentMalus,
		WoundsMalus:          woundsMalus,
	}, nil
}
