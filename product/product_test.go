package product

import (
	"testing"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
)

func validRecord() map[string]any {
	return map[string]any{
		"product_name":    "GlowBoost Vitamin C Serum",
		"concentration":   "10% Vitamin C",
		"skin_type":       []string{"Oily", "Combination"},
		"key_ingredients": []string{"Vitamin C", "Hyaluronic Acid"},
		"benefits":        []string{"Brightening", "Fades dark spots"},
		"how_to_use":      "Apply 2-3 drops in the morning before sunscreen",
		"side_effects":    "Mild tingling for sensitive skin",
		"price":           "$29",
	}
}

func TestDecodeRecord(t *testing.T) {
	p, err := DecodeRecord(validRecord())
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	if p.Name != "GlowBoost Vitamin C Serum" {
		t.Errorf("name = %q", p.Name)
	}
	if len(p.KeyIngredients) != 2 {
		t.Errorf("ingredients = %v", p.KeyIngredients)
	}
}

func TestDecodeRecord_PriceIsOptional(t *testing.T) {
	rec := validRecord()
	delete(rec, "price")
	p, err := DecodeRecord(rec)
	if err != nil {
		t.Fatalf("price should be optional at parse time: %v", err)
	}
	if p.Price != "" {
		t.Errorf("price = %q", p.Price)
	}
}

func TestDecodeRecord_MissingName(t *testing.T) {
	rec := validRecord()
	delete(rec, "product_name")
	_, err := DecodeRecord(rec)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if code := errors.CodeOf(err); code != errors.ErrCodeInvalidInput {
		t.Errorf("code = %s", code)
	}
}

func TestDecodeRecord_EmptyBenefits(t *testing.T) {
	rec := validRecord()
	rec["benefits"] = []string{}
	if _, err := DecodeRecord(rec); err == nil {
		t.Fatal("expected validation error for empty benefits")
	}
}

func TestNormalize(t *testing.T) {
	p := &Product{
		Name:           "  Serum  ",
		Concentration:  "10%",
		SkinTypes:      []string{" Oily ", "", "Dry"},
		KeyIngredients: []string{"Vitamin C"},
		Benefits:       []string{"Brightening"},
		HowToUse:       "Apply daily",
	}
	p.Normalize()
	if p.Name != "Serum" {
		t.Errorf("name = %q", p.Name)
	}
	if len(p.SkinTypes) != 2 || p.SkinTypes[0] != "Oily" {
		t.Errorf("skin types = %v", p.SkinTypes)
	}
}

func TestComparisonProduct_RequiresPrice(t *testing.T) {
	c := &ComparisonProduct{
		Name:           "Competitor Serum",
		SkinTypes:      []string{"All"},
		KeyIngredients: []string{"Vitamin C"},
		Benefits:       []string{"Brightening"},
		HowToUse:       "Apply daily",
	}
	if err := c.Validate(); err == nil {
		t.Fatal("comparison product without price should fail validation")
	}
	c.Price = "$25"
	if err := c.Validate(); err != nil {
		t.Fatalf("valid comparison product rejected: %v", err)
	}
}
