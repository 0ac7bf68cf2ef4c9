package memories_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaroslavtyc/drd-plus-person/internal/engine/tables"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/memories"
	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

func TestMemories_TotalExperiences(t *testing.T) {
	tbl, err := tables.Load()
	require.NoError(t, err)

	m, err := memories.New(
		memories.Memory{Description: "goblin cave", ExperiencesBonus: 34},
		memories.Memory{Description: "lost caravan", ExperiencesBonus: 40},
	)
	require.NoError(t, err)
	assert.Equal(t, 150, m.TotalExperiences(tbl.ExperiencesTable()))

	require.NoError(t, m.Add(memories.Memory{Description: "tavern brawl", ExperiencesBonus: 0}))
	assert.Equal(t, 151, m.TotalExperiences(tbl.ExperiencesTable()))
	assert.Len(t, m.Records(), 3)
}

func TestMemories_Empty(t *testing.T) {
	tbl, err := tables.Load()
	require.NoError(t, err)

	m, err := memories.New()
	require.NoError(t, err)
	assert.Equal(t, 0, m.TotalExperiences(tbl.ExperiencesTable()))
}

func TestMemories_RejectsNegativeBonus(t *testing.T) {
	_, err := memories.New(memories.Memory{Description: "nightmare", ExperiencesBonus: -1})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestMemories_RejectsBonusAboveMax(t *testing.T) {
	_, err := memories.New(memories.Memory{Description: "dragon slain", ExperiencesBonus: memories.MaxExperiencesBonus + 1})
	assert.True(t, errors.IsInvalidArgument(err))

	m, err := memories.New(memories.Memory{Description: "dragon slain", ExperiencesBonus: memories.MaxExperiencesBonus})
	require.NoError(t, err)
	assert.Error(t, m.Add(memories.Memory{Description: "demigod slain", ExperiencesBonus: 1000}))
	assert.Len(t, m.Records(), 1)
}

func TestMemories_TotalExperiencesSaturates(t *testing.T) {
	tbl, err := tables.Load()
	require.NoError(t, err)

	m, err := memories.New()
	require.NoError(t, err)
	for i := 0; i < 10_000; i++ {
		require.NoError(t, m.Add(memories.Memory{Description: "war", ExperiencesBonus: memories.MaxExperiencesBonus}))
	}
	total := m.TotalExperiences(tbl.ExperiencesTable())
	assert.Equal(t, math.MaxInt, total)
	assert.Positive(t, total)
}
