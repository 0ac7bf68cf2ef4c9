// Package person implements the person orchestrator: it turns a character
// sheet into a person and answers what the person is capable of
package person

//go:generate mockgen -destination=mock/mock_service.go -package=personmock github.com/jaroslavtyc/drd-plus-person/internal/orchestrators/person Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/jaroslavtyc/drd-plus-person/internal/engine"
	"github.com/jaroslavtyc/drd-plus-person/internal/engine/tables"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/background"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/body"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/equipment"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/memories"
	personentity "github.com/jaroslavtyc/drd-plus-person/internal/entities/person"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/professions"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/properties"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/race"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/skills"
	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
	"github.com/jaroslavtyc/drd-plus-person/internal/pkg/idgen"
)

const (
	// EventPersonCreated is published after a person is created
	EventPersonCreated = "person.created"
	// EventPersonRenamed is published after a person got a new name
	EventPersonRenamed = "person.renamed"
)

// Service defines the interface for person operations
type Service interface {
	CreatePerson(ctx context.Context, input *CreatePersonInput) (*CreatePersonOutput, error)
	RenamePerson(ctx context.Context, input *RenamePersonInput) (*RenamePersonOutput, error)
	DescribePerson(ctx context.Context, input *DescribePersonInput) (*DescribePersonOutput, error)
}

// FateRoller rolls properties given by fate
type FateRoller interface {
	Roll(fate properties.FateCode, primary []properties.Code) (properties.PropertiesByFate, error)
}

// Config holds the dependencies for the person orchestrator
type Config struct {
	Tables      *tables.Tables
	Engine      engine.Engine
	Armourer    engine.Armourer
	FateRoller  FateRoller
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	DefaultFate properties.FateCode
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Tables == nil {
		vb.RequiredField("Tables")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Armourer == nil {
		vb.RequiredField("Armourer")
	}
	if c.FateRoller == nil {
		vb.RequiredField("FateRoller")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if !c.DefaultFate.IsValid() {
		vb.InvalidField("DefaultFate", string(c.DefaultFate))
	}

	return vb.Build()
}

type orchestrator struct {
	tables      *tables.Tables
	engine      engine.Engine
	armourer    engine.Armourer
	fateRoller  FateRoller
	eventBus    events.EventBus
	idGen       idgen.Generator
	defaultFate properties.FateCode
}

// New creates a new person orchestrator with the provided dependencies
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		tables:      cfg.Tables,
		engine:      cfg.Engine,
		armourer:    cfg.Armourer,
		fateRoller:  cfg.FateRoller,
		eventBus:    cfg.EventBus,
		idGen:       cfg.IDGenerator,
		defaultFate: cfg.DefaultFate,
	}, nil
}

// CreatePerson builds a person from a character sheet
func (o *orchestrator) CreatePerson(ctx context.Context, input *CreatePersonInput) (*CreatePersonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	personInput, err := o.buildPersonInput(input)
	if err != nil {
		return nil, err
	}

	p, err := personentity.New(personInput)
	if err != nil {
		if personentity.IsInsufficientExperience(err) {
			slog.InfoContext(ctx, "person rejected for missing experience",
				"name", input.Name,
				"meta", errors.GetMeta(err))
		}
		return nil, err
	}

	if err := o.publish(ctx, EventPersonCreated, p); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "person created",
		"person_id", p.GetID(),
		"name", p.Name(),
		"race", p.Race().Code,
		"profession", p.Profession().Code,
		"level", p.ProfessionLevels().CurrentLevel().LevelRank())

	return &CreatePersonOutput{Person: p}, nil
}

// RenamePerson replaces the name of a person
func (o *orchestrator) RenamePerson(ctx context.Context, input *RenamePersonInput) (*RenamePersonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	if input.Person == nil {
		vb.RequiredField("Person")
	}
	errors.ValidateRequired("Name", input.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	previous := input.Person.Name()
	input.Person.SetName(input.Name)

	if err := o.publish(ctx, EventPersonRenamed, input.Person); err != nil {
		input.Person.SetName(previous)
		return nil, err
	}

	slog.InfoContext(ctx, "person renamed",
		"person_id", input.Person.GetID(),
		"from", previous,
		"to", input.Name)

	return &RenamePersonOutput{Person: input.Person, PreviousName: previous}, nil
}

// DescribePerson calculates properties of a person.
// Armament the person is too weak for is reported in the output, not as an error.
func (o *orchestrator) DescribePerson(ctx context.Context, input *DescribePersonInput) (*DescribePersonOutput, error) {
	if input == nil || input.Person == nil {
		return nil, errors.InvalidArgument("person is required")
	}

	armourer := input.Armourer
	if armourer == nil {
		armourer = o.armourer
	}

	byLevels, err := input.Person.PropertiesByLevels(o.tables)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to calculate properties by levels of %s", input.Person.GetID())
	}
	slog.DebugContext(ctx, "properties by levels ready",
		"person_id", input.Person.GetID(),
		"level", byLevels.LevelRank)

	output := &DescribePersonOutput{
		Person:             input.Person,
		PropertiesByLevels: byLevels,
	}

	current, err := input.Person.CurrentProperties(o.tables, armourer)
	if err != nil {
		if !engine.IsCannotUseArmament(err) || !errors.GetCode(err).Recoverable() {
			return nil, errors.Wrapf(err, "failed to calculate current properties of %s", input.Person.GetID())
		}
		slog.WarnContext(ctx, "person cannot use armament",
			"person_id", input.Person.GetID(),
			"armament", errors.GetMeta(err)["armament"],
			"missing_strength", errors.GetMeta(err)["missing_strength"])
		output.UnusableArmament = errors.GetMessage(err)
		return output, nil
	}

	output.CurrentProperties = current
	return output, nil
}

func (o *orchestrator) publish(ctx context.Context, eventType string, p *personentity.Person) error {
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, p, nil)); err != nil {
		return errors.Wrapf(err, "failed to publish %s", eventType)
	}
	return nil
}

func (o *orchestrator) buildPersonInput(input *CreatePersonInput) (*personentity.Input, error) {
	vb := errors.NewValidationBuilder()
	r, ok := race.Get(input.Race)
	if !ok {
		vb.InvalidField("Race", string(input.Race))
	}
	if len(input.Levels) == 0 {
		vb.RequiredField("Levels")
	}
	fate := input.Fate
	if fate == "" {
		fate = o.defaultFate
	}
	if !fate.IsValid() {
		vb.InvalidField("Fate", string(fate))
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	levels, err := buildLevels(input.Levels)
	if err != nil {
		return nil, err
	}

	primary := levels.FirstLevel().Profession().PrimaryProperties()
	var byFate properties.PropertiesByFate
	if input.PropertiesByFate != nil {
		byFate, err = properties.NewPropertiesByFate(fate, *input.PropertiesByFate, primary)
	} else {
		byFate, err = o.fateRoller.Roll(fate, primary)
	}
	if err != nil {
		return nil, err
	}

	mem, err := memories.New(input.Memories...)
	if err != nil {
		return nil, err
	}
	bg, err := background.New(input.Background.Heritage, input.Background.Belongings, input.Background.SkillPoints)
	if err != nil {
		return nil, err
	}
	sk, err := skills.New(input.Skills)
	if err != nil {
		return nil, err
	}
	weightAdjustment, err := body.NewWeightAdjustment(input.WeightAdjustment)
	if err != nil {
		return nil, err
	}
	height, err := body.NewHeightInCm(input.HeightInCm)
	if err != nil {
		return nil, err
	}
	age, err := body.NewAge(input.Age)
	if err != nil {
		return nil, err
	}
	eq, err := equipment.New(input.Equipment)
	if err != nil {
		return nil, err
	}

	return &personentity.Input{
		ID:               o.idGen.Generate(),
		Name:             input.Name,
		Race:             r,
		Gender:           input.Gender,
		PropertiesByFate: byFate,
		Memories:         mem,
		ProfessionLevels: levels,
		Background:       bg,
		Skills:           sk,
		WeightAdjustment: weightAdjustment,
		HeightInCm:       height,
		Age:              age,
		Equipment:        eq,
		Tables:           o.tables,
		Engine:           o.engine,
	}, nil
}

func buildLevels(inputs []LevelInput) (*professions.Levels, error) {
	all := make([]professions.Level, 0, len(inputs))
	for i, in := range inputs {
		profession, ok := professions.Get(in.Profession)
		if !ok {
			return nil, errors.InvalidArgumentf("unknown profession %q of level %d", in.Profession, i+1)
		}
		level, err := professions.NewLevel(profession, i+1, in.Increments)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid level %d", i+1)
		}
		all = append(all, level)
	}
	return professions.NewLevels(all[0], all[1:]...)
}
