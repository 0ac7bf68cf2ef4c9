// Package professions defines professions and the history of levels a person took in them
package professions

import "github.com/jaroslavtyc/drd-plus-person/internal/entities/properties"

// Code names a profession
type Code string

// Professions
const (
	Commoner  Code = "commoner"
	Fighter   Code = "fighter"
	Thief     Code = "thief"
	Ranger    Code = "ranger"
	Wizard    Code = "wizard"
	Theurgist Code = "theurgist"
	Priest    Code = "priest"
)

// Profession is a profession with its primary properties
type Profession struct {
	Code    Code
	Primary [2]properties.Code
}

var primaryProperties = map[Code][2]properties.Code{
	Fighter:   {properties.Strength, properties.Agility},
	Thief:     {properties.Agility, properties.Knack},
	Ranger:    {properties.Strength, properties.Knack},
	Wizard:    {properties.Will, properties.Intelligence},
	Theurgist: {properties.Intelligence, properties.Charisma},
	Priest:    {properties.Will, properties.Charisma},
}

// Get returns the profession for a code
func Get(code Code) (Profession, bool) {
	if code == Commoner {
		return Profession{Code: Commoner}, true
	}
	primary, ok := primaryProperties[code]
	if !ok {
		return Profession{}, false
	}
	return Profession{Code: code, Primary: primary}, true
}

// Codes returns all known profession codes
func Codes() []Code {
	return []Code{Commoner, Fighter, Thief, Ranger, Wizard, Theurgist, Priest}
}

// PrimaryProperties returns primary properties as a slice; commoners have none
func (p Profession) PrimaryProperties() []properties.Code {
	if p.Code == Commoner {
		return nil
	}
	return p.Primary[:]
}

// IsPrimary checks if a property is primary for the profession
func (p Profession) IsPrimary(code properties.Code) bool {
	for _, primary := range p.PrimaryProperties() {
		if primary == code {
			return true
		}
	}
	return false
}
