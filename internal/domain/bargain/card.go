package bargain

import "fmt"

// CardKind controls how much of the bargain the player may still adjust on
// the negotiation screen.
type CardKind string

const (
	CardFixed                 CardKind = "fixed"
	CardIntensityOnly         CardKind = "intensity_only"
	CardAttributeAndIntensity CardKind = "attribute_and_intensity"
)

// Card pairs one benefit offer with one cost offer as a single player
// choice. Cards are not persisted; they live for one negotiation screen.
type Card struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Kind           CardKind    `json:"kind"`
	Benefit        Offer       `json:"benefit"`
	Cost           Offer       `json:"cost"`
	BenefitChoices []Attribute `json:"benefit_choices,omitempty"`
	CostChoices    []Attribute `json:"cost_choices,omitempty"`
	Intensities    []Intensity `json:"intensities,omitempty"`
}

// BuildCard composes the player-facing card from a matched pair. Selectable
// attribute lists come from the attribute table's related entries; the
// originally matched attribute is always the first choice.
func BuildCard(id string, kind CardKind, benefit, cost Offer) Card {
	c := Card{
		ID:          id,
		Name:        benefit.Name,
		Description: fmt.Sprintf("%s In exchange: %s", benefit.Description, cost.Description),
		Kind:        kind,
		Benefit:     benefit,
		Cost:        cost,
	}
	switch kind {
	case CardAttributeAndIntensity:
		c.BenefitChoices = attributeChoices(benefit.Target)
		c.CostChoices = attributeChoices(cost.Target)
		c.Intensities = AllIntensities()
	case CardIntensityOnly:
		c.Intensities = AllIntensities()
	}
	return c
}

func attributeChoices(attr Attribute) []Attribute {
	info, ok := Info(attr)
	if !ok {
		return nil
	}
	out := make([]Attribute, 0, len(info.Related)+1)
	out = append(out, attr)
	out = append(out, info.Related...)
	return out
}
