// Package skills holds skill ranks of a person
package skills

import (
	"sort"

	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

// MaxRank is the highest rank of a skill
const MaxRank = 3

// Skills maps skill names to ranks
type Skills struct {
	ranks map[string]int
}

// New validates skill ranks
func New(ranks map[string]int) (Skills, error) {
	vb := errors.NewValidationBuilder()
	copied := make(map[string]int, len(ranks))
	for name, rank := range ranks {
		errors.ValidateRequired("skill", name, vb)
		errors.ValidateRange(name, rank, 1, MaxRank, vb)
		copied[name] = rank
	}
	if err := vb.Build(); err != nil {
		return Skills{}, err
	}
	return Skills{ranks: copied}, nil
}

// Rank returns the rank of a skill, 0 when the skill is not known
func (s Skills) Rank(name string) int {
	return s.ranks[name]
}

// Names returns known skills sorted by name
func (s Skills) Names() []string {
	names := make([]string, 0, len(s.ranks))
	for name := range s.ranks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
