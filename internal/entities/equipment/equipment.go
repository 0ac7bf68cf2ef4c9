// Package equipment holds what a person wears and carries
package equipment

import (
	"github.com/jaroslavtyc/drd-plus-person/internal/engine/tables"
	"github.com/jaroslavtyc/drd-plus-person/internal/errors"
)

// Slot represents where an armor is worn
type Slot string

// Armor slots
const (
	SlotBody Slot = "body"
	SlotHelm Slot = "helm"
)

// IsValid checks if the slot is known
func (s Slot) IsValid() bool {
	return s == SlotBody || s == SlotHelm
}

// Codes of the empty armor in each slot
const (
	WithoutArmor = "without_armor"
	WithoutHelm  = "without_helm"
)

// Armor is a body armor or a helm
type Armor struct {
	Code             string  `yaml:"code"`
	Slot             Slot    `yaml:"slot"`
	RequiredStrength int     `yaml:"required_strength"`
	Protection       int     `yaml:"protection"`
	WeightInKg       float64 `yaml:"weight_in_kg"`
}

// NoArmor returns the empty armor for a slot
func NoArmor(slot Slot) Armor {
	if slot == SlotHelm {
		return Armor{Code: WithoutHelm, Slot: SlotHelm, RequiredStrength: -20}
	}
	return Armor{Code: WithoutArmor, Slot: SlotBody, RequiredStrength: -20}
}

// IsNone reports whether nothing is worn
func (a Armor) IsNone() bool {
	return a.Code == WithoutArmor || a.Code == WithoutHelm
}

// Item is anything carried besides armor
type Item struct {
	Name       string  `yaml:"name"`
	WeightInKg float64 `yaml:"weight_in_kg"`
	Quantity   int     `yaml:"quantity"`
}

// Equipment is the worn armor and helm plus carried items
type Equipment struct {
	bodyArmor Armor
	helm      Armor
	items     []Item
}

// Config describes equipment; a zero armor means none is worn
type Config struct {
	BodyArmor Armor  `yaml:"body_armor"`
	Helm      Armor  `yaml:"helm"`
	Items     []Item `yaml:"items"`
}

// Validate checks armor slots and item quantities
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.BodyArmor.Code != "" && cfg.BodyArmor.Slot != SlotBody {
		vb.InvalidField("body_armor", "has to be worn on body")
	}
	if cfg.Helm.Code != "" && cfg.Helm.Slot != SlotHelm {
		vb.InvalidField("helm", "has to be worn on head")
	}
	for _, item := range cfg.Items {
		if item.Quantity < 1 {
			vb.Fieldf("items", "%s has to be carried at least once", item.Name)
		}
		if item.WeightInKg < 0 {
			vb.Fieldf("items", "%s cannot weigh less than nothing", item.Name)
		}
	}
	return vb.Build()
}

// New creates equipment
func New(cfg *Config) (*Equipment, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Equipment{
		bodyArmor: cfg.BodyArmor,
		helm:      cfg.Helm,
		items:     make([]Item, len(cfg.Items)),
	}
	copy(e.items, cfg.Items)
	if e.bodyArmor.Code == "" {
		e.bodyArmor = NoArmor(SlotBody)
	}
	if e.helm.Code == "" {
		e.helm = NoArmor(SlotHelm)
	}
	return e, nil
}

// WornBodyArmor returns the body armor, an empty armor when none is worn
func (e *Equipment) WornBodyArmor() Armor {
	return e.bodyArmor
}

// WornHelm returns the helm, an empty helm when none is worn
func (e *Equipment) WornHelm() Armor {
	return e.helm
}

// Items returns a copy of carried items
func (e *Equipment) Items() []Item {
	out := make([]Item, len(e.items))
	copy(out, e.items)
	return out
}

// Weight returns the total weight of worn and carried equipment
func (e *Equipment) Weight(table *tables.WeightTable) tables.Weight {
	kg := e.bodyArmor.WeightInKg + e.helm.WeightInKg
	for _, item := range e.items {
		kg += item.WeightInKg * float64(item.Quantity)
	}
	return table.ToWeight(kg)
}
