// Package background describes where a person comes from
package background

import "github.com/jaroslavtyc/drd-plus-person/internal/errors"

const (
	maxPointsPerPart = 8
	maxPointsTotal   = 12
)

// Background splits background points between heritage, belongings and skills
type Background struct {
	heritage   int
	belongings int
	skills     int
}

// New validates background points
func New(heritage, belongings, skills int) (Background, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("heritage", heritage, 0, maxPointsPerPart, vb)
	errors.ValidateRange("belongings", belongings, 0, maxPointsPerPart, vb)
	errors.ValidateRange("skills", skills, 0, maxPointsPerPart, vb)
	if total := heritage + belongings + skills; total > maxPointsTotal {
		vb.Fieldf("total", "cannot exceed %d points, got %d", maxPointsTotal, total)
	}
	if err := vb.Build(); err != nil {
		return Background{}, err
	}
	return Background{heritage: heritage, belongings: belongings, skills: skills}, nil
}

// Heritage returns points spent on heritage
func (b Background) Heritage() int { return b.heritage }

// Belongings returns points spent on belongings
func (b Background) Belongings() int { return b.belongings }

// SkillPoints returns points spent on skills
func (b Background) SkillPoints() int { return b.skills }
