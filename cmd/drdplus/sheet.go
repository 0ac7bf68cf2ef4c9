package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jaroslavtyc/drd-plus-person/internal/entities/equipment"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/memories"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/professions"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/properties"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/race"
	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
	"github.com/jaroslavtyc/drd-plus-person/internal/orchestrators/person"
)

// Sheet is a character sheet as written in YAML
type Sheet struct {
	Name             string              `yaml:"name"`
	Race             race.Code           `yaml:"race"`
	Gender           race.GenderCode     `yaml:"gender"`
	Fate             properties.FateCode `yaml:"fate"`
	PropertiesByFate *properties.Base    `yaml:"properties_by_fate"`
	Levels           []SheetLevel        `yaml:"levels"`
	Memories         []memories.Memory   `yaml:"memories"`
	Background       SheetBackground     `yaml:"background"`
	Skills           map[string]int      `yaml:"skills"`
	WeightAdjustment int                 `yaml:"weight_adjustment"`
	HeightInCm       int                 `yaml:"height_in_cm"`
	Age              int                 `yaml:"age"`
	Equipment        *equipment.Config   `yaml:"equipment"`
}

// SheetLevel is one level on a sheet
type SheetLevel struct {
	Profession professions.Code `yaml:"profession"`
	Increments properties.Base  `yaml:"increments"`
}

// SheetBackground is the background split on a sheet
type SheetBackground struct {
	Heritage    int `yaml:"heritage"`
	Belongings  int `yaml:"belongings"`
	SkillPoints int `yaml:"skill_points"`
}

func readSheet(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", path)
	}

	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, errors.InvalidArgumentf("sheet %s is not valid YAML: %v", path, err)
	}
	return &sheet, nil
}

func (s *Sheet) toInput() *person.CreatePersonInput {
	levels := make([]person.LevelInput, len(s.Levels))
	for i, l := range s.Levels {
		levels[i] = person.LevelInput{Profession: l.Profession, Increments: l.Increments}
	}

	return &person.CreatePersonInput{
		Name:             s.Name,
		Race:             s.Race,
		Gender:           s.Gender,
		Fate:             s.Fate,
		PropertiesByFate: s.PropertiesByFate,
		Levels:           levels,
		Memories:         s.Memories,
		Background: person.BackgroundInput{
			Heritage:    s.Background.Heritage,
			Belongings:  s.Background.Belongings,
			SkillPoints: s.Background.SkillPoints,
		},
		Skills:           s.Skills,
		WeightAdjustment: s.WeightAdjustment,
		HeightInCm:       s.HeightInCm,
		Age:              s.Age,
		Equipment:        s.Equipment,
	}
}
