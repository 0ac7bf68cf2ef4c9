package engine

import (
	"github.com/jaroslavtyc/drd-plus-person/internal/engine/tables"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/body"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/equipment"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/professions"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/properties"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/race"
)

// ProfessionLevels is what the engine reads from the level history
type ProfessionLevels interface {
	CurrentLevel() professions.Level
	PropertyIncrement(code properties.Code) int
}

// Health is what the engine reads from health
type Health interface {
	Malus() int
}

// PropertiesByLevelsInput contains the person state properties by levels depend on
type PropertiesByLevelsInput struct {
	Race             race.Race
	Gender           race.GenderCode
	PropertiesByFate properties.PropertiesByFate
	ProfessionLevels ProfessionLevels
	WeightAdjustment body.WeightAdjustment
	HeightInCm       body.HeightInCm
	Age              body.Age
	Tables           *tables.Tables
}

// CurrentPropertiesInput contains the person state current properties depend on
type CurrentPropertiesInput struct {
	PropertiesByLevels *properties.PropertiesByLevels
	Health             Health
	Race               race.Race
	BodyArmor          equipment.Armor
	Helm               equipment.Armor
	Weight             tables.Weight
	Tables             *tables.Tables
	Armourer           Armourer
}
