package template

import (
	"fmt"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/content"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/product"
)

// BuildProductPage assembles the product description page from the parsed
// product and its content blocks.
func BuildProductPage(p *product.Product, blocks content.Blocks) (*ProductPage, error) {
	if p == nil {
		return nil, errors.IncompleteAssembly("product_page", "parsed_product")
	}

	// Records carrying their own description keep it; otherwise one is
	// derived from the name and concentration.
	description := p.Description
	if description == "" {
		description = fmt.Sprintf("%s - %s", p.Name, p.Concentration)
	}

	return &ProductPage{
		PageType:      PageTypeProduct,
		ProductName:   p.Name,
		Price:         p.Price,
		Concentration: p.Concentration,
		Sections: ProductSections{
			Overview: OverviewSection{
				Description:   description,
				KeyHighlights: p.Benefits,
			},
			Ingredients: IngredientsSection{
				KeyIngredients:    blocks.Ingredients.KeyIngredients,
				IngredientDetails: blocks.Ingredients.IngredientDetails,
				Concentration:     blocks.Ingredients.Concentration,
			},
			Benefits: BenefitsSection{
				PrimaryBenefits:   blocks.Benefits.PrimaryBenefits,
				FormattedBenefits: blocks.Benefits.FormattedBenefits,
			},
			Usage: UsageSection{
				Instructions: blocks.Usage.Instructions,
				Steps:        blocks.Usage.Steps,
				Frequency:    blocks.Usage.Frequency,
				Tips:         blocks.Usage.ApplicationTips,
			},
			Safety: SafetySection{
				SideEffects: blocks.Safety.SideEffects,
				Warnings:    blocks.Safety.Warnings,
				Precautions: blocks.Safety.SafetyNotes,
			},
			SkinType: SkinTypeSection{
				SuitableFor: p.SkinTypes,
			},
		},
	}, nil
}
