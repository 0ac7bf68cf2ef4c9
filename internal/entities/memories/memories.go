// Package memories keeps what a person lived through and how much it taught them
package memories

import (
	"math"

	"github.com/jaroslavtyc/drd-plus-person/internal/engine/tables"
	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

// MaxExperiencesBonus is the highest bonus a single memory may carry
const MaxExperiencesBonus = 300

// Memory is a single adventure remembered with its experience bonus
type Memory struct {
	Description      string `yaml:"description"`
	ExperiencesBonus int    `yaml:"experiences_bonus"`
}

// Memories is the ordered list of remembered adventures
type Memories struct {
	records []Memory
}

// New creates memories from records
func New(records ...Memory) (*Memories, error) {
	m := &Memories{records: make([]Memory, 0, len(records))}
	for _, record := range records {
		if err := m.Add(record); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Add remembers another adventure
func (m *Memories) Add(memory Memory) error {
	if memory.ExperiencesBonus < 0 {
		return errors.InvalidArgumentf("experiences bonus of %q cannot be negative", memory.Description)
	}
	if memory.ExperiencesBonus > MaxExperiencesBonus {
		return errors.InvalidArgumentf("experiences bonus of %q cannot exceed %d, got %d",
			memory.Description, MaxExperiencesBonus, memory.ExperiencesBonus)
	}
	m.records = append(m.records, memory)
	return nil
}

// Records returns a copy of the remembered adventures
func (m *Memories) Records() []Memory {
	out := make([]Memory, len(m.records))
	copy(out, m.records)
	return out
}

// TotalExperiences sums experiences of all memories through the table.
// The sum saturates at math.MaxInt.
func (m *Memories) TotalExperiences(table *tables.ExperiencesTable) int {
	total := 0
	for _, record := range m.records {
		experiences := table.ExperiencesFromBonus(record.ExperiencesBonus)
		if experiences > math.MaxInt-total {
			return math.MaxInt
		}
		total += experiences
	}
	return total
}
