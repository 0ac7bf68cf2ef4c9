// Package person holds the person aggregate: who a person is, what they carry
// and how far they got, guarded by the experience they earned
package person

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/jaroslavtyc/drd-plus-person/internal/engine"
	"github.com/jaroslavtyc/drd-plus-person/internal/engine/tables"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/background"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/body"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/equipment"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/professions"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/properties"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/race"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/skills"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/vitals"
	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

// EntityType is the entity type of a person
const EntityType = "person"

var _ core.Entity = (*Person)(nil)

// Memories is the source of experience a person earned
type Memories interface {
	TotalExperiences(table *tables.ExperiencesTable) int
}

// ProfessionLevels is the level history of a person
type ProfessionLevels interface {
	Len() int
	FirstLevel() professions.Level
	CurrentLevel() professions.Level
	PropertyIncrement(code properties.Code) int
}

// Equipment is what a person wears and carries
type Equipment interface {
	WornBodyArmor() equipment.Armor
	WornHelm() equipment.Armor
	Weight(table *tables.WeightTable) tables.Weight
}

// Input contains everything a person is built from
type Input struct {
	ID               string
	Name             string
	Race             race.Race
	Gender           race.GenderCode
	PropertiesByFate properties.PropertiesByFate
	Memories         Memories
	ProfessionLevels ProfessionLevels
	Background       background.Background
	Skills           skills.Skills
	WeightAdjustment body.WeightAdjustment
	HeightInCm       body.HeightInCm
	Age              body.Age
	Equipment        Equipment
	// Tables are used only to check experience of the current level
	Tables *tables.Tables
	Engine engine.Engine
}

// Validate validates the input
func (i *Input) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ID", i.ID, vb)
	errors.ValidateRequired("Name", i.Name, vb)
	if i.Race.Code == "" {
		vb.RequiredField("Race")
	}
	if !i.Gender.IsValid() {
		vb.InvalidField("Gender", string(i.Gender))
	}
	if i.Memories == nil {
		vb.RequiredField("Memories")
	}
	if i.ProfessionLevels == nil {
		vb.RequiredField("ProfessionLevels")
	} else if i.ProfessionLevels.Len() == 0 {
		vb.Field("ProfessionLevels", "at least the first level is required")
	}
	if i.Equipment == nil {
		vb.RequiredField("Equipment")
	}
	if i.Tables == nil {
		vb.RequiredField("Tables")
	}
	if i.Engine == nil {
		vb.RequiredField("Engine")
	}
	return vb.Build()
}

// Person is a character of the game
type Person struct {
	id               string
	name             string
	race             race.Race
	gender           race.GenderCode
	propertiesByFate properties.PropertiesByFate
	memories         Memories
	professionLevels ProfessionLevels
	background       background.Background
	skills           skills.Skills
	weightAdjustment body.WeightAdjustment
	heightInCm       body.HeightInCm
	age              body.Age
	equipment        Equipment
	health           *vitals.Health
	stamina          *vitals.Stamina
	engine           engine.Engine

	mu                 sync.Mutex
	propertiesByLevels *properties.PropertiesByLevels
}

// New creates a person whose experience covers their current level
// Returns errors.InvalidArgument for incomplete input
// Returns an InsufficientExperience error when memories do not justify the level
func New(input *Input) (*Person, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	experiencesTable := input.Tables.ExperiencesTable()
	if err := CheckExperiences(
		input.ProfessionLevels.CurrentLevel().LevelRank(),
		input.Memories.TotalExperiences(experiencesTable),
		experiencesTable,
	); err != nil {
		return nil, err
	}

	return &Person{
		id:               input.ID,
		name:             input.Name,
		race:             input.Race,
		gender:           input.Gender,
		propertiesByFate: input.PropertiesByFate,
		memories:         input.Memories,
		professionLevels: input.ProfessionLevels,
		background:       input.Background,
		skills:           input.Skills,
		weightAdjustment: input.WeightAdjustment,
		heightInCm:       input.HeightInCm,
		age:              input.Age,
		equipment:        input.Equipment,
		health:           vitals.NewHealth(),
		stamina:          vitals.NewStamina(),
		engine:           input.Engine,
	}, nil
}

// GetID implements core.Entity
func (p *Person) GetID() string {
	return p.id
}

// GetType implements core.Entity
func (p *Person) GetType() string {
	return EntityType
}

// Name returns the name
func (p *Person) Name() string {
	return p.name
}

// SetName replaces the name
func (p *Person) SetName(name string) {
	p.name = name
}

// Race returns the race
func (p *Person) Race() race.Race {
	return p.race
}

// GenderCode returns the gender
func (p *Person) GenderCode() race.GenderCode {
	return p.gender
}

// PropertiesByFate returns the properties chosen or rolled by fate
func (p *Person) PropertiesByFate() properties.PropertiesByFate {
	return p.propertiesByFate
}

// Memories returns the remembered adventures
func (p *Person) Memories() Memories {
	return p.memories
}

// ProfessionLevels returns the level history
func (p *Person) ProfessionLevels() ProfessionLevels {
	return p.professionLevels
}

// Profession is the profession of the first level, whatever came later
func (p *Person) Profession() professions.Profession {
	return p.professionLevels.FirstLevel().Profession()
}

// Background returns the background points
func (p *Person) Background() background.Background {
	return p.background
}

// Skills returns the skill ranks
func (p *Person) Skills() skills.Skills {
	return p.skills
}

// WeightAdjustment returns the weight adjustment chosen at creation
func (p *Person) WeightAdjustment() body.WeightAdjustment {
	return p.weightAdjustment
}

// HeightInCm returns the height
func (p *Person) HeightInCm() body.HeightInCm {
	return p.heightInCm
}

// Age returns the age in years
func (p *Person) Age() body.Age {
	return p.age
}

// Equipment returns what the person wears and carries
func (p *Person) Equipment() Equipment {
	return p.equipment
}

// Health returns the health, wounds included
func (p *Person) Health() *vitals.Health {
	return p.health
}

// Stamina returns the stamina
func (p *Person) Stamina() *vitals.Stamina {
	return p.stamina
}
