package tables

import (
	"math"

	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

// ExperiencesTable maps level ranks to cumulative experience thresholds and
// converts experience bonuses recorded in memories to experiences.
type ExperiencesTable struct {
	levelThresholds []int
	scale           bonusScale
}

// NewExperiencesTable creates a table from thresholds indexed by level rank
func NewExperiencesTable(levelThresholds []int, bonusPerDecade int) (*ExperiencesTable, error) {
	if len(levelThresholds) < 2 {
		return nil, errors.InvalidArgument("experiences table needs thresholds for at least level 0 and 1")
	}
	if bonusPerDecade <= 0 {
		return nil, errors.InvalidArgumentf("bonus per decade must be positive, got %d", bonusPerDecade)
	}
	for rank, threshold := range levelThresholds {
		if threshold < 0 {
			return nil, errors.InvalidArgumentf("threshold of level %d is negative", rank)
		}
		if rank > 0 && threshold < levelThresholds[rank-1] {
			return nil, errors.InvalidArgumentf("threshold of level %d is lower than of level %d", rank, rank-1)
		}
	}

	thresholds := make([]int, len(levelThresholds))
	copy(thresholds, levelThresholds)

	return &ExperiencesTable{
		levelThresholds: thresholds,
		scale:           bonusScale{perDecade: bonusPerDecade},
	}, nil
}

// MaxLevelRank is the highest level rank the table knows
func (t *ExperiencesTable) MaxLevelRank() int {
	return len(t.levelThresholds) - 1
}

// ExperiencesForLevel returns the cumulative experiences needed for a level rank
func (t *ExperiencesTable) ExperiencesForLevel(levelRank int) (int, error) {
	if levelRank < 0 || levelRank > t.MaxLevelRank() {
		return 0, errors.OutOfRangef("level rank %d is outside of 0..%d", levelRank, t.MaxLevelRank())
	}
	return t.levelThresholds[levelRank], nil
}

// LevelForExperiences returns the highest level rank reachable with given experiences
func (t *ExperiencesTable) LevelForExperiences(experiences int) int {
	rank := 0
	for i, threshold := range t.levelThresholds {
		if threshold > experiences {
			break
		}
		rank = i
	}
	return rank
}

// ExperiencesFromBonus converts an experience bonus to experiences.
// Bonuses beyond what an int can hold saturate at math.MaxInt.
func (t *ExperiencesTable) ExperiencesFromBonus(bonus int) int {
	value := math.Round(t.scale.toValue(bonus))
	if value >= float64(math.MaxInt) {
		return math.MaxInt
	}
	return int(value)
}

// BonusFromExperiences converts experiences to the nearest bonus
func (t *ExperiencesTable) BonusFromExperiences(experiences int) (int, error) {
	if experiences <= 0 {
		return 0, errors.OutOfRangef("experiences have to be positive to get a bonus, got %d", experiences)
	}
	return t.scale.toBonus(float64(experiences)), nil
}
