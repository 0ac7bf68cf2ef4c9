package person

import (
	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

// ReasonInsufficientExperience tags errors of a level claimed without enough experience
const ReasonInsufficientExperience = "insufficient_experience"

// ExperienceThresholds converts a level rank to the experience required to reach it
type ExperienceThresholds interface {
	ExperiencesForLevel(levelRank int) (int, error)
}

// InsufficientExperience creates the error of a level not covered by experience
func InsufficientExperience(levelRank, required, available int) *errors.Error {
	return errors.FailedPreconditionf(
		"level %d requires %d experiences, only %d available", levelRank, required, available).
		WithReason(ReasonInsufficientExperience).
		WithMeta("level_rank", levelRank).
		WithMeta("required_experiences", required).
		WithMeta("available_experiences", available)
}

// IsInsufficientExperience checks if an error was caused by missing experience
func IsInsufficientExperience(err error) bool {
	return errors.HasReason(err, ReasonInsufficientExperience)
}

// CheckExperiences verifies available experience covers the level rank.
// Errors of the table are returned as they are.
func CheckExperiences(levelRank, available int, table ExperienceThresholds) error {
	required, err := table.ExperiencesForLevel(levelRank)
	if err != nil {
		return err
	}
	if available < required {
		return InsufficientExperience(levelRank, required, available)
	}
	return nil
}
