package professions

import (
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/properties"
	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

// maxIncrementPerLevel is how much one level may raise a single property
const maxIncrementPerLevel = 1

// Level is one level a person took
type Level struct {
	profession Profession
	levelRank  int
	increments properties.Base
}

// NewLevel creates a level. The first level of a profession always raises
// both primary properties, so increments given for it are ignored.
func NewLevel(profession Profession, levelRank int, increments properties.Base) (Level, error) {
	if levelRank < 1 {
		return Level{}, errors.InvalidArgumentf("level rank has to be at least 1, got %d", levelRank)
	}

	if levelRank == 1 {
		increments = properties.Base{}
		for _, code := range profession.PrimaryProperties() {
			increments = increments.With(code, 1)
		}
		return Level{profession: profession, levelRank: levelRank, increments: increments}, nil
	}

	sum := 0
	vb := errors.NewValidationBuilder()
	for _, code := range properties.All() {
		value := increments.Get(code)
		errors.ValidateRange(code.String(), value, 0, maxIncrementPerLevel, vb)
		sum += value
	}
	if sum != 1 {
		vb.Fieldf("increments", "exactly one property has to be raised, got %d", sum)
	}
	if err := vb.Build(); err != nil {
		return Level{}, err
	}

	return Level{profession: profession, levelRank: levelRank, increments: increments}, nil
}

// Profession returns the profession the level was taken in
func (l Level) Profession() Profession {
	return l.profession
}

// LevelRank returns the rank of the level
func (l Level) LevelRank() int {
	return l.levelRank
}

// Increments returns property increments gained by the level
func (l Level) Increments() properties.Base {
	return l.increments
}

// Levels is the ordered history of levels; ranks go 1, 2, 3... without gaps
type Levels struct {
	levels []Level
}

// NewLevels creates the history starting with the first level
func NewLevels(first Level, next ...Level) (*Levels, error) {
	l := &Levels{levels: []Level{}}
	for _, level := range append([]Level{first}, next...) {
		if err := l.AddLevel(level); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// AddLevel appends the next level
func (l *Levels) AddLevel(level Level) error {
	expected := len(l.levels) + 1
	if level.LevelRank() != expected {
		return errors.InvalidArgumentf("expected level rank %d, got %d", expected, level.LevelRank())
	}
	l.levels = append(l.levels, level)
	return nil
}

// Len returns how many levels were taken
func (l *Levels) Len() int {
	return len(l.levels)
}

// FirstLevel returns the earliest level
func (l *Levels) FirstLevel() Level {
	return l.levels[0]
}

// CurrentLevel returns the most recent level
func (l *Levels) CurrentLevel() Level {
	return l.levels[len(l.levels)-1]
}

// All returns a copy of the level history
func (l *Levels) All() []Level {
	out := make([]Level, len(l.levels))
	copy(out, l.levels)
	return out
}

// PropertyIncrement sums increments of a property over all levels
func (l *Levels) PropertyIncrement(code properties.Code) int {
	sum := 0
	for _, level := range l.levels {
		sum += level.Increments().Get(code)
	}
	return sum
}
