// Package product defines the normalized product record the pipeline
// operates on.
package product

import (
	"encoding/json"
	"strings"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/validation"
)

// Product is the validated internal representation of one product record.
// Price and side effects are optional at parse time: only the stages that
// need them require their presence.
type Product struct {
	Name           string   `json:"product_name" validate:"required"`
	Concentration  string   `json:"concentration" validate:"required"`
	SkinTypes      []string `json:"skin_type" validate:"required,min=1,dive,required"`
	KeyIngredients []string `json:"key_ingredients" validate:"required,min=1,dive,required"`
	Benefits       []string `json:"benefits" validate:"required,min=1,dive,required"`
	HowToUse       string   `json:"how_to_use" validate:"required"`
	SideEffects    string   `json:"side_effects,omitempty"`
	Price          string   `json:"price,omitempty"`
	Category       string   `json:"category,omitempty"`
	Description    string   `json:"description,omitempty"`
	TargetAudience string   `json:"target_audience,omitempty"`
}

// ComparisonProduct is a competitor record used by the comparison page. It
// may be fictional but must still be structurally complete.
type ComparisonProduct struct {
	Name           string   `json:"product_name" validate:"required"`
	Concentration  string   `json:"concentration,omitempty"`
	SkinTypes      []string `json:"skin_type" validate:"required,min=1,dive,required"`
	KeyIngredients []string `json:"key_ingredients" validate:"required,min=1,dive,required"`
	Benefits       []string `json:"benefits" validate:"required,min=1,dive,required"`
	HowToUse       string   `json:"how_to_use" validate:"required"`
	SideEffects    string   `json:"side_effects,omitempty"`
	Price          string   `json:"price" validate:"required"`
}

// Normalize trims whitespace and drops empty list entries in place.
func (p *Product) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Concentration = strings.TrimSpace(p.Concentration)
	p.HowToUse = strings.TrimSpace(p.HowToUse)
	p.SideEffects = strings.TrimSpace(p.SideEffects)
	p.Price = strings.TrimSpace(p.Price)
	p.Category = strings.TrimSpace(p.Category)
	p.Description = strings.TrimSpace(p.Description)
	p.TargetAudience = strings.TrimSpace(p.TargetAudience)
	p.SkinTypes = normalizeList(p.SkinTypes)
	p.KeyIngredients = normalizeList(p.KeyIngredients)
	p.Benefits = normalizeList(p.Benefits)
}

// Validate checks structural completeness.
func (p *Product) Validate() error {
	return validation.Validate(p)
}

// Normalize trims whitespace and drops empty list entries in place.
func (c *ComparisonProduct) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Concentration = strings.TrimSpace(c.Concentration)
	c.HowToUse = strings.TrimSpace(c.HowToUse)
	c.SideEffects = strings.TrimSpace(c.SideEffects)
	c.Price = strings.TrimSpace(c.Price)
	c.SkinTypes = normalizeList(c.SkinTypes)
	c.KeyIngredients = normalizeList(c.KeyIngredients)
	c.Benefits = normalizeList(c.Benefits)
}

// Validate checks structural completeness.
func (c *ComparisonProduct) Validate() error {
	return validation.Validate(c)
}

// DecodeRecord converts a raw record into a normalized, validated Product.
// The caller decides what to do on failure; no content is ever invented to
// fill gaps.
func DecodeRecord(record map[string]any) (*Product, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var p Product
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func normalizeList(items []string) []string {
	out := items[:0]
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
