package vitals

import "github.com/jaroslavtyc/drd-plus-person/internal/errors"

const fatiguePerMalusPoint = 5

// Stamina keeps fatigue a person gathered
type Stamina struct {
	fatigue int
}

// NewStamina creates a rested stamina
func NewStamina() *Stamina {
	return &Stamina{}
}

// Fatigue returns gathered fatigue
func (s *Stamina) Fatigue() int {
	return s.fatigue
}

// Tire adds fatigue
func (s *Stamina) Tire(points int) error {
	if points < 0 {
		return errors.InvalidArgumentf("fatigue cannot be negative, got %d", points)
	}
	s.fatigue += points
	return nil
}

// Rest removes fatigue, never below zero
func (s *Stamina) Rest(points int) error {
	if points < 0 {
		return errors.InvalidArgumentf("rest cannot be negative, got %d", points)
	}
	s.fatigue -= points
	if s.fatigue < 0 {
		s.fatigue = 0
	}
	return nil
}

// Malus returns the penalty fatigue gives, zero or lower
func (s *Stamina) Malus() int {
	return -(s.fatigue / fatiguePerMalusPoint)
}
