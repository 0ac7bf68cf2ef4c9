// Package tables provides the rules tables a person is evaluated against
package tables

import (
	_ "embed"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

//go:embed data/tables.yaml
var defaultTablesYAML []byte

// Tables bundles the rules tables
type Tables struct {
	experiences *ExperiencesTable
	weight      *WeightTable
}

// Config describes the tables data
type Config struct {
	Experiences ExperiencesConfig `yaml:"experiences"`
	Weight      WeightConfig      `yaml:"weight"`
}

// ExperiencesConfig describes the experiences table
type ExperiencesConfig struct {
	BonusPerDecade  int   `yaml:"bonus_per_decade"`
	LevelThresholds []int `yaml:"level_thresholds"`
}

// WeightConfig describes the weight table
type WeightConfig struct {
	BonusPerDecade int `yaml:"bonus_per_decade"`
	MinBonus       int `yaml:"min_bonus"`
}

// New builds the tables from config
func New(cfg *Config) (*Tables, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	experiences, err := NewExperiencesTable(cfg.Experiences.LevelThresholds, cfg.Experiences.BonusPerDecade)
	if err != nil {
		return nil, errors.Wrap(err, "invalid experiences table")
	}

	weight, err := NewWeightTable(cfg.Weight.BonusPerDecade, cfg.Weight.MinBonus)
	if err != nil {
		return nil, errors.Wrap(err, "invalid weight table")
	}

	return &Tables{
		experiences: experiences,
		weight:      weight,
	}, nil
}

// Parse builds the tables from YAML
func Parse(data []byte) (*Tables, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse tables")
	}
	return New(&cfg)
}

// Load returns the default tables shipped with the module
func Load() (*Tables, error) {
	return Parse(defaultTablesYAML)
}

// LoadFile reads tables from a YAML file
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read tables file %s", path)
	}
	return Parse(data)
}

// ExperiencesTable returns the experiences table
func (t *Tables) ExperiencesTable() *ExperiencesTable {
	return t.experiences
}

// WeightTable returns the weight table
func (t *Tables) WeightTable() *WeightTable {
	return t.weight
}
