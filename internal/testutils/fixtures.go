// Package testutils provides fixtures shared by tests
package testutils

import (
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/professions"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/properties"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/race"
	"github.com/jaroslavtyc/drd-plus-person/internal/orchestrators/person"
	"github.com/jaroslavtyc/drd-plus-person/internal/testutils/builders"
)

// TestPersonName is the default person name for test fixtures
const TestPersonName = "Ulrich"

// CreateTestFighter creates a human fighter of level 5 in chainmail.
// Memories of 34 and 34 bonus give exactly the 100 experiences level 5 needs.
func CreateTestFighter() *person.CreatePersonInput {
	return builders.NewPersonSheetBuilder().
		WithName(TestPersonName).
		WithRace(race.Human, race.Male).
		WithPropertiesByFate(properties.FateOfCombinationOfPropertiesAndBackground,
			&properties.Base{Strength: 2, Agility: 2, Will: 1}).
		WithFirstLevel(professions.Fighter).
		WithNextLevel(professions.Fighter, properties.Strength).
		WithNextLevel(professions.Fighter, properties.Agility).
		WithNextLevel(professions.Fighter, properties.Strength).
		WithNextLevel(professions.Fighter, properties.Knack).
		WithMemory("bandits at the ford", 34).
		WithMemory("burning mill", 34).
		WithSkill("riding", 2).
		WithBody(180, 24, 0).
		WithBodyArmor("chainmail", 8, 5, 15).
		Build()
}
