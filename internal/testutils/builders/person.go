// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/equipment"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/memories"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/professions"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/properties"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/race"
	"github.com/jaroslavtyc/drd-plus-person/internal/orchestrators/person"
)

// PersonSheetBuilder provides a fluent interface for building person creation requests
type PersonSheetBuilder struct {
	input *person.CreatePersonInput
}

// NewPersonSheetBuilder creates a builder of a human commoner on the first level
func NewPersonSheetBuilder() *PersonSheetBuilder {
	return &PersonSheetBuilder{
		input: &person.CreatePersonInput{
			Name:             "Test Person",
			Race:             race.Human,
			Gender:           race.Male,
			PropertiesByFate: &properties.Base{},
			Levels:           []person.LevelInput{{Profession: professions.Commoner}},
			Background:       person.BackgroundInput{Heritage: 4, Belongings: 4, SkillPoints: 4},
			Skills:           map[string]int{},
			HeightInCm:       175,
			Age:              20,
			Equipment:        &equipment.Config{},
		},
	}
}

// WithName sets the name
func (b *PersonSheetBuilder) WithName(name string) *PersonSheetBuilder {
	b.input.Name = name
	return b
}

// WithRace sets race and gender
func (b *PersonSheetBuilder) WithRace(code race.Code, gender race.GenderCode) *PersonSheetBuilder {
	b.input.Race = code
	b.input.Gender = gender
	return b
}

// WithPropertiesByFate sets chosen fate properties; nil lets them be rolled
func (b *PersonSheetBuilder) WithPropertiesByFate(fate properties.FateCode, base *properties.Base) *PersonSheetBuilder {
	b.input.Fate = fate
	b.input.PropertiesByFate = base
	return b
}

// WithFirstLevel replaces the level history by the first level of a profession
func (b *PersonSheetBuilder) WithFirstLevel(profession professions.Code) *PersonSheetBuilder {
	b.input.Levels = []person.LevelInput{{Profession: profession}}
	return b
}

// WithNextLevel adds a level raising one property
func (b *PersonSheetBuilder) WithNextLevel(profession professions.Code, raised properties.Code) *PersonSheetBuilder {
	b.input.Levels = append(b.input.Levels, person.LevelInput{
		Profession: profession,
		Increments: properties.Base{}.With(raised, 1),
	})
	return b
}

// WithMemory adds an adventure worth the experience bonus
func (b *PersonSheetBuilder) WithMemory(description string, experiencesBonus int) *PersonSheetBuilder {
	b.input.Memories = append(b.input.Memories, memories.Memory{
		Description:      description,
		ExperiencesBonus: experiencesBonus,
	})
	return b
}

// WithSkill sets a skill rank
func (b *PersonSheetBuilder) WithSkill(name string, rank int) *PersonSheetBuilder {
	b.input.Skills[name] = rank
	return b
}

// WithBody sets body measures
func (b *PersonSheetBuilder) WithBody(heightInCm, age, weightAdjustment int) *PersonSheetBuilder {
	b.input.HeightInCm = heightInCm
	b.input.Age = age
	b.input.WeightAdjustment = weightAdjustment
	return b
}

// WithBodyArmor puts on body armor
func (b *PersonSheetBuilder) WithBodyArmor(code string, requiredStrength, protection int, weightInKg float64) *PersonSheetBuilder {
	b.input.Equipment.BodyArmor = equipment.Armor{
		Code:             code,
		Slot:             equipment.SlotBody,
		RequiredStrength: requiredStrength,
		Protection:       protection,
		WeightInKg:       weightInKg,
	}
	return b
}

// WithItem adds a carried item
func (b *PersonSheetBuilder) WithItem(name string, weightInKg float64, quantity int) *PersonSheetBuilder {
	b.input.Equipment.Items = append(b.input.Equipment.Items, equipment.Item{
		Name:       name,
		WeightInKg: weightInKg,
		Quantity:   quantity,
	})
	return b
}

// Build returns the request
func (b *PersonSheetBuilder) Build() *person.CreatePersonInput {
	return b.input
}
