// Package vitals tracks wounds and fatigue of a person during their life
package vitals

import "github.com/jaroslavtyc/drd-plus-person/internal/errors"

// woundsPerMalusPoint is how many wound points lower properties by one
const woundsPerMalusPoint = 5

// Health keeps wounds a person suffered
type Health struct {
	wounds int
}

// NewHealth creates an unwounded health
func NewHealth() *Health {
	return &Health{}
}

// Wounds returns the sum of suffered wounds
func (h *Health) Wounds() int {
	return h.wounds
}

// Wound adds a wound
func (h *Health) Wound(points int) error {
	if points < 0 {
		return errors.InvalidArgumentf("wound cannot be negative, got %d", points)
	}
	h.wounds += points
	return nil
}

// Heal removes wounds, never below zero
func (h *Health) Heal(points int) error {
	if points < 0 {
		return errors.InvalidArgumentf("healing cannot be negative, got %d", points)
	}
	h.wounds -= points
	if h.wounds < 0 {
		h.wounds = 0
	}
	return nil
}

// Malus returns the penalty wounds give to physical properties, zero or lower
func (h *Health) Malus() int {
	return -(h.wounds / woundsPerMalusPoint)
}
