package person

import (
	"github.com/jaroslavtyc/drd-plus-person/internal/engine"
	"github.com/jaroslavtyc/drd-plus-person/internal/engine/tables"
	"github.com/jaroslavtyc/drd-plus-person/internal/entities/properties"
)

// PropertiesByLevels calculates properties by levels on the first call and
// returns the same result afterwards. Tables of later calls are not used.
// A failed calculation is not remembered.
func (p *Person) PropertiesByLevels(t *tables.Tables) (*properties.PropertiesByLevels, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.propertiesByLevels != nil {
		return p.propertiesByLevels, nil
	}

	result, err := p.engine.PropertiesByLevels(&engine.PropertiesByLevelsInput{
		Race:             p.race,
		Gender:           p.gender,
		PropertiesByFate: p.propertiesByFate,
		ProfessionLevels: p.professionLevels,
		WeightAdjustment: p.weightAdjustment,
		HeightInCm:       p.heightInCm,
		Age:              p.age,
		Tables:           t,
	})
	if err != nil {
		return nil, err
	}

	p.propertiesByLevels = result
	return result, nil
}

// CurrentProperties calculates properties as they are right now, on every call.
// Armament the person is too weak for fails with the armourer error.
func (p *Person) CurrentProperties(t *tables.Tables, armourer engine.Armourer) (*properties.CurrentProperties, error) {
	byLevels, err := p.PropertiesByLevels(t)
	if err != nil {
		return nil, err
	}

	var weight tables.Weight
	if t != nil {
		weight = p.equipment.Weight(t.WeightTable())
	}

	return p.engine.CurrentProperties(&engine.CurrentPropertiesInput{
		PropertiesByLevels: byLevels,
		Health:             p.health,
		Race:               p.race,
		BodyArmor:          p.equipment.WornBodyArmor(),
		Helm:               p.equipment.WornHelm(),
		Weight:             weight,
		Tables:             t,
		Armourer:           armourer,
	})
}
