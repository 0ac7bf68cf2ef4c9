package person

import (
	"github.com/jaroslavtyc/drd-plus-person/internal/engine"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/equipment"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/memories"
	personentity "github.com/jaroslavtyc/drd-plus-person/internal/entities/person"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/professions"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/properties"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/race"
)

// LevelInput is one taken level; the first one has no increments to choose
type LevelInput struct {
	Profession professions.Code
	Increments properties.Base
}

// BackgroundInput splits background points
type BackgroundInput struct {
	Heritage    int
	Belongings  int
	SkillPoints int
}

// CreatePersonInput defines the request for creating a person
type CreatePersonInput struct {
	Name   string
	Race   race.Code
	Gender race.GenderCode
	// Fate defaults to the configured fate
	Fate properties.FateCode
	// PropertiesByFate are rolled when not given
	PropertiesByFate *properties.Base
	Levels           []LevelInput
	Memories         []memories.Memory
	Background       BackgroundInput
	Skills           map[string]int
	WeightAdjustment int
	HeightInCm       int
	Age              int
	Equipment        *equipment.Config
}

// CreatePersonOutput defines the response for creating a person
type CreatePersonOutput struct {
	Person *personentity.Person
}

// RenamePersonInput defines the request for renaming a person
type RenamePersonInput struct {
	Person *personentity.Person
	Name   string
}

// RenamePersonOutput defines the response for renaming a person
type RenamePersonOutput struct {
	Person       *personentity.Person
	PreviousName string
}

// DescribePersonInput defines the request for describing a person
type DescribePersonInput struct {
	Person *personentity.Person
	// Armourer defaults to the configured one
	Armourer engine.Armourer
}

// DescribePersonOutput defines the response for describing a person
type DescribePersonOutput struct {
	Person             *personentity.Person
	PropertiesByLevels *properties.PropertiesByLevels
	// CurrentProperties is nil when the person cannot use their armament
	CurrentProperties *properties.CurrentProperties
	// UnusableArmament explains why CurrentProperties are missing
	UnusableArmament string
}
