package content

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/product"
)

// Blocks bundles the four reusable content blocks built from one product.
type Blocks struct {
	Benefits    BenefitsBlock    `json:"benefits"`
	Usage       UsageBlock       `json:"usage"`
	Ingredients IngredientsBlock `json:"ingredients"`
	Safety      SafetyBlock      `json:"safety"`
}

// BenefitsBlock structures the product's benefits and ties them to the
// ingredients that plausibly support them.
type BenefitsBlock struct {
	PrimaryBenefits    []string           `json:"primary_benefits"`
	BenefitCount       int                `json:"benefit_count"`
	IngredientBenefits map[string]string  `json:"ingredient_benefits"`
	FormattedBenefits  []FormattedBenefit `json:"formatted_benefits"`
}

// FormattedBenefit is one display-ready benefit entry.
type FormattedBenefit struct {
	Benefit     string   `json:"benefit"`
	Description string   `json:"description"`
	SupportedBy []string `json:"supported_by"`
}

// UsageBlock structures application instructions.
type UsageBlock struct {
	Instructions     string   `json:"instructions"`
	Steps            []string `json:"steps"`
	Frequency        string   `json:"frequency"`
	BestForSkinTypes []string `json:"best_for_skin_types"`
	ApplicationTips  []string `json:"application_tips"`
	Precautions      []string `json:"precautions"`
}

// IngredientsBlock structures ingredient information.
type IngredientsBlock struct {
	KeyIngredients        []string                    `json:"key_ingredients"`
	Concentration         string                      `json:"concentration"`
	IngredientDetails     map[string]IngredientDetail `json:"ingredient_details"`
	IngredientCount       int                         `json:"ingredient_count"`
	ActiveIngredients     []string                    `json:"active_ingredients"`
	SupportingIngredients []string                    `json:"supporting_ingredients"`
}

// IngredientDetail describes one ingredient.
type IngredientDetail struct {
	Type          string   `json:"type"`
	Benefits      []string `json:"benefits"`
	Concentration string   `json:"concentration"`
	Description   string   `json:"description"`
}

// SafetyBlock structures safety information.
type SafetyBlock struct {
	SideEffects          string   `json:"side_effects"`
	SafetyNotes          []string `json:"safety_notes"`
	Warnings             []string `json:"warnings"`
	Contraindications    []string `json:"contraindications"`
	PatchTestRecommended bool     `json:"patch_test_recommended"`
}

// BuildBlocks derives all four content blocks from a product.
func BuildBlocks(p *product.Product) Blocks {
	return Blocks{
		Benefits:    BenefitsFor(p),
		Usage:       UsageFor(p),
		Ingredients: IngredientsFor(p),
		Safety:      SafetyFor(p),
	}
}

// BenefitsFor maps ingredients to the benefits they support by keyword
// overlap. No benefit text is invented; only the product's own claims are
// reorganized.
func BenefitsFor(p *product.Product) BenefitsBlock {
	block := BenefitsBlock{
		PrimaryBenefits:    p.Benefits,
		BenefitCount:       len(p.Benefits),
		IngredientBenefits: map[string]string{},
	}

	for _, ingredient := range p.KeyIngredients {
		if related := relatedBenefits(ingredient, p.Benefits); len(related) > 0 {
			block.IngredientBenefits[ingredient] = strings.Join(related, ", ")
		}
	}

	for _, benefit := range p.Benefits {
		var supportedBy []string
		for _, ingredient := range p.KeyIngredients {
			if len(relatedBenefits(ingredient, []string{benefit})) > 0 {
				supportedBy = append(supportedBy, ingredient)
			}
		}
		if len(supportedBy) == 0 {
			supportedBy = p.KeyIngredients
		}
		block.FormattedBenefits = append(block.FormattedBenefits, FormattedBenefit{
			Benefit:     benefit,
			Description: fmt.Sprintf("Provides %s benefits", strings.ToLower(benefit)),
			SupportedBy: supportedBy,
		})
	}

	return block
}

// UsageFor structures the usage instructions: step extraction, frequency
// detection, and tips driven by concentration and skin type.
func UsageFor(p *product.Product) UsageBlock {
	return UsageBlock{
		Instructions:     p.HowToUse,
		Steps:            extractSteps(p.HowToUse),
		Frequency:        determineFrequency(p.HowToUse),
		BestForSkinTypes: p.SkinTypes,
		ApplicationTips:  applicationTips(p.Concentration, p.SkinTypes),
		Precautions:      precautions(p.SideEffects),
	}
}

// IngredientsFor structures ingredient details. A concentration value is
// attached to an ingredient only when the product's concentration field
// actually names it.
func IngredientsFor(p *product.Product) IngredientsBlock {
	block := IngredientsBlock{
		KeyIngredients:    p.KeyIngredients,
		Concentration:     p.Concentration,
		IngredientDetails: map[string]IngredientDetail{},
		IngredientCount:   len(p.KeyIngredients),
	}

	concentrationText := strings.ToLower(p.Concentration)

	for _, ingredient := range p.KeyIngredients {
		conc := "As listed"
		if strings.Contains(concentrationText, strings.ToLower(ingredient)) {
			if pct, ok := concentrationPercent(p.Concentration); ok {
				conc = strconv.Itoa(pct) + "%"
			} else {
				conc = p.Concentration
			}
		}

		related := relatedBenefits(ingredient, p.Benefits)
		if len(related) == 0 && len(p.Benefits) > 0 {
			related = p.Benefits[:min(2, len(p.Benefits))]
		}

		block.IngredientDetails[ingredient] = IngredientDetail{
			Type:          "active",
			Benefits:      related,
			Concentration: conc,
			Description:   fmt.Sprintf("%s - Key active ingredient in this product", ingredient),
		}
		block.ActiveIngredients = append(block.ActiveIngredients, ingredient)
	}

	return block
}

// SafetyFor derives safety notes and warnings from the product's own side
// effect text and concentration.
func SafetyFor(p *product.Product) SafetyBlock {
	block := SafetyBlock{
		SideEffects:          p.SideEffects,
		PatchTestRecommended: true,
	}

	sideEffects := strings.ToLower(p.SideEffects)

	if strings.Contains(sideEffects, "tingling") {
		block.SafetyNotes = append(block.SafetyNotes,
			fmt.Sprintf("Mild tingling may occur as mentioned: %s", p.SideEffects))
		block.Warnings = append(block.Warnings,
			"Discontinue use if severe irritation or persistent discomfort occurs")
	}
	if strings.Contains(sideEffects, "irritat") {
		block.Warnings = append(block.Warnings, "May cause irritation - use with caution")
	}

	if pct, ok := concentrationPercent(p.Concentration); ok {
		switch {
		case pct >= 10:
			block.SafetyNotes = append(block.SafetyNotes,
				fmt.Sprintf("%d%% concentration - start with patch test", pct))
			block.Warnings = append(block.Warnings,
				"Begin with lower frequency if you have sensitive skin")
		case pct >= 5:
			block.SafetyNotes = append(block.SafetyNotes,
				fmt.Sprintf("%d%% concentration is generally well-tolerated", pct))
		}
	}

	if p.SideEffects != "" {
		block.Warnings = append(block.Warnings,
			"Follow product instructions and discontinue if adverse reactions occur")
	}

	if !containsFold(p.SkinTypes, "sensitive") {
		block.Contraindications = append(block.Contraindications,
			"May cause irritation for very sensitive skin types not listed in product specifications")
	}

	return block
}

var percentRe = regexp.MustCompile(`(\d+)%`)

// concentrationPercent extracts the leading numeric percentage from a
// concentration string like "10% Vitamin C".
func concentrationPercent(concentration string) (int, bool) {
	m := percentRe.FindStringSubmatch(concentration)
	if m == nil {
		return 0, false
	}
	pct, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return pct, true
}

// relatedBenefits returns the benefits whose text mentions the ingredient or
// one of its words.
func relatedBenefits(ingredient string, benefits []string) []string {
	ingredientLower := strings.ToLower(ingredient)
	words := strings.Fields(ingredientLower)

	var related []string
	for _, benefit := range benefits {
		benefitLower := strings.ToLower(benefit)
		if strings.Contains(benefitLower, ingredientLower) {
			related = append(related, benefit)
			continue
		}
		for _, word := range words {
			if strings.Contains(benefitLower, word) {
				related = append(related, benefit)
				break
			}
		}
	}
	return related
}

var stepSplitRe = regexp.MustCompile(`[.,;]\s+|\band\s+|\bthen\s+`)

func extractSteps(instructions string) []string {
	var steps []string
	for _, part := range stepSplitRe.Split(instructions, -1) {
		part = strings.TrimSpace(part)
		if len(part) <= 5 {
			continue
		}
		r := []rune(part)
		if r[0] >= 'a' && r[0] <= 'z' {
			r[0] = r[0] - 'a' + 'A'
		}
		steps = append(steps, string(r))
	}
	if len(steps) == 0 {
		return []string{instructions}
	}
	return steps
}

func determineFrequency(instructions string) string {
	lower := strings.ToLower(instructions)
	switch {
	case strings.Contains(lower, "morning"):
		return "Daily (morning)"
	case strings.Contains(lower, "night"), strings.Contains(lower, "evening"):
		return "Daily (night)"
	case strings.Contains(lower, "twice"), strings.Contains(lower, "2 times"):
		return "Twice daily"
	case strings.Contains(lower, "once"), strings.Contains(lower, "daily"):
		return "Daily"
	case len(instructions) < 50:
		return instructions
	default:
		return "As directed"
	}
}

func applicationTips(concentration string, skinTypes []string) []string {
	var tips []string

	if pct, ok := concentrationPercent(concentration); ok {
		switch {
		case pct >= 10:
			tips = append(tips,
				fmt.Sprintf("Start with a patch test due to %d%% concentration", pct),
				"Begin with every other day, then increase frequency gradually")
		case pct >= 5:
			tips = append(tips, "Suitable for regular use")
		}
	}

	if len(skinTypes) > 0 {
		joined := strings.Join(skinTypes, ", ")
		if containsFold(skinTypes, "oily") || containsFold(skinTypes, "combination") {
			tips = append(tips,
				fmt.Sprintf("Apply to clean, dry skin for best absorption (%s skin)", joined))
		}
		if containsFold(skinTypes, "sensitive") {
			tips = append(tips, "Perform patch test before first use (sensitive skin)")
		}
	}

	if strings.Contains(strings.ToLower(concentration), "serum") {
		tips = append(tips, "Allow product to absorb before applying other products")
	}

	return tips
}

func precautions(sideEffects string) []string {
	var out []string
	lower := strings.ToLower(sideEffects)

	if strings.Contains(lower, "tingling") {
		out = append(out,
			"Mild tingling may occur, especially for sensitive skin",
			"Discontinue use if irritation persists or worsens")
	}
	if strings.Contains(lower, "irritat") || strings.Contains(lower, "sensitive") {
		out = append(out,
			"Perform patch test before first use",
			"Reduce frequency if irritation occurs")
	}
	if strings.Contains(lower, "dry") {
		out = append(out, "May cause dryness - use moisturizer as needed")
	}
	if sideEffects != "" {
		out = append(out,
			"Follow usage instructions carefully",
			"Discontinue if adverse reactions occur")
	}

	return out
}

func containsFold(items []string, want string) bool {
	for _, item := range items {
		if strings.EqualFold(item, want) {
			return true
		}
	}
	return false
}
