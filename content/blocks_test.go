package content

import (
	"reflect"
	"testing"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/product"
)

func testProduct() *product.Product {
	return &product.Product{
		Name:           "GlowBoost Vitamin C Serum",
		Concentration:  "10% Vitamin C",
		SkinTypes:      []string{"Oily", "Combination"},
		KeyIngredients: []string{"Vitamin C", "Hyaluronic Acid"},
		Benefits:       []string{"Brightening", "Fades dark spots", "Vitamin C boost"},
		HowToUse:       "Apply 2-3 drops in the morning before sunscreen",
		SideEffects:    "Mild tingling for sensitive skin",
		Price:          "$29",
	}
}

func TestBenefitsFor(t *testing.T) {
	b := BenefitsFor(testProduct())

	if b.BenefitCount != 3 {
		t.Errorf("count = %d", b.BenefitCount)
	}
	// "Vitamin C boost" mentions the ingredient, so it maps.
	if got := b.IngredientBenefits["Vitamin C"]; got != "Vitamin C boost" {
		t.Errorf("ingredient benefits = %q", got)
	}
	if len(b.FormattedBenefits) != 3 {
		t.Fatalf("formatted = %d", len(b.FormattedBenefits))
	}
	// Unmatched benefit falls back to all ingredients, not invented text.
	first := b.FormattedBenefits[0]
	if first.Benefit != "Brightening" {
		t.Errorf("first benefit = %q", first.Benefit)
	}
	if !reflect.DeepEqual(first.SupportedBy, testProduct().KeyIngredients) {
		t.Errorf("supported by = %v", first.SupportedBy)
	}
}

func TestUsageFor(t *testing.T) {
	u := UsageFor(testProduct())

	if u.Frequency != "Daily (morning)" {
		t.Errorf("frequency = %q", u.Frequency)
	}
	if len(u.Steps) == 0 {
		t.Error("no steps extracted")
	}
	// 10% concentration drives patch-test tips.
	if len(u.ApplicationTips) == 0 {
		t.Fatal("no tips")
	}
	if u.ApplicationTips[0] != "Start with a patch test due to 10% concentration" {
		t.Errorf("first tip = %q", u.ApplicationTips[0])
	}
	if len(u.Precautions) == 0 {
		t.Error("tingling side effect should produce precautions")
	}
}

func TestUsageFor_Frequency(t *testing.T) {
	cases := []struct {
		instructions string
		want         string
	}{
		{"Apply at night after cleansing", "Daily (night)"},
		{"Use twice a day", "Twice daily"},
		{"Apply once to damp skin", "Daily"},
		{"Dab gently", "Dab gently"},
	}
	for _, tc := range cases {
		if got := determineFrequency(tc.instructions); got != tc.want {
			t.Errorf("determineFrequency(%q) = %q, want %q", tc.instructions, got, tc.want)
		}
	}
}

func TestIngredientsFor(t *testing.T) {
	i := IngredientsFor(testProduct())

	if i.IngredientCount != 2 {
		t.Errorf("count = %d", i.IngredientCount)
	}
	// Named in the concentration field, so it gets the extracted percentage.
	if d := i.IngredientDetails["Vitamin C"]; d.Concentration != "10%" {
		t.Errorf("vitamin c concentration = %q", d.Concentration)
	}
	// Not named, so no concentration is claimed for it.
	if d := i.IngredientDetails["Hyaluronic Acid"]; d.Concentration != "As listed" {
		t.Errorf("hyaluronic acid concentration = %q", d.Concentration)
	}
	if len(i.ActiveIngredients) != 2 {
		t.Errorf("active = %v", i.ActiveIngredients)
	}
}

func TestSafetyFor(t *testing.T) {
	s := SafetyFor(testProduct())

	if !s.PatchTestRecommended {
		t.Error("patch test should be recommended")
	}
	if len(s.SafetyNotes) < 2 {
		t.Errorf("notes = %v", s.SafetyNotes)
	}
	if len(s.Warnings) == 0 {
		t.Error("no warnings")
	}
	// No "Sensitive" in skin types, so the contraindication applies.
	if len(s.Contraindications) != 1 {
		t.Errorf("contraindications = %v", s.Contraindications)
	}
}

func TestSafetyFor_LowConcentration(t *testing.T) {
	p := testProduct()
	p.Concentration = "5% Niacinamide"
	s := SafetyFor(p)

	found := false
	for _, note := range s.SafetyNotes {
		if note == "5% concentration is generally well-tolerated" {
			found = true
		}
	}
	if !found {
		t.Errorf("notes = %v", s.SafetyNotes)
	}
}

func TestConcentrationPercent(t *testing.T) {
	if pct, ok := concentrationPercent("10% Vitamin C"); !ok || pct != 10 {
		t.Errorf("got %d, %v", pct, ok)
	}
	if _, ok := concentrationPercent("pure retinol"); ok {
		t.Error("no percentage should be found")
	}
}

func TestBuildBlocks_Deterministic(t *testing.T) {
	a := BuildBlocks(testProduct())
	b := BuildBlocks(testProduct())
	if !reflect.DeepEqual(a, b) {
		t.Error("identical input should produce identical blocks")
	}
}
