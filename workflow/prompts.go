package workflow

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/product"
)

func repairRecordPrompt(record map[string]any) (system, user string) {
	raw, _ := json.Marshal(record)
	system = "You are a data parser. Fix product records so they contain the fields " +
		"product_name, concentration, skin_type, key_ingredients, benefits and how_to_use. " +
		"Reuse the record's own values; never invent facts that are not in the input."
	user = fmt.Sprintf(`Parse and fix this product record to match the required structure:

%s

Return the corrected record as a single JSON object with keys:
product_name (string), concentration (string), skin_type (array of strings),
key_ingredients (array of strings), benefits (array of strings),
how_to_use (string), side_effects (string, optional), price (string, optional).`, raw)
	return system, user
}

func questionsPrompt(p *product.Product, count int) (system, user string) {
	system = "You are a question generator for skincare products. " +
		"You MUST return ONLY a valid JSON array. No markdown, no code blocks, no explanations."
	user = fmt.Sprintf(`Generate exactly %d questions about this skincare product.

Product Details:
- Name: %s
- Concentration: %s
- Key Ingredients: %s
- Benefits: %s
- Suitable for Skin Types: %s
- Price: %s
- Side Effects: %s
- How to Use: %s

Required format (JSON array):
[
  {"question": "What is this product?", "category": "Informational", "answer": "..."},
  {"question": "Is it safe for sensitive skin?", "category": "Safety", "answer": "..."}
]

Generate %d questions total, distributed across these categories:
- Informational: questions about ingredients, benefits, how it works
- Safety: questions about side effects, skin compatibility, warnings
- Usage: questions about application, frequency, best practices
- Purchase: questions about price, availability, value
- Comparison: questions comparing with other products`,
		count,
		p.Name,
		p.Concentration,
		strings.Join(p.KeyIngredients, ", "),
		strings.Join(p.Benefits, ", "),
		strings.Join(p.SkinTypes, ", "),
		p.Price,
		p.SideEffects,
		p.HowToUse,
		count,
	)
	return system, user
}

func fictionalProductPrompt(p *product.Product) (system, user string) {
	system = "You are a product generation agent. Create a fictional skincare product " +
		"that is similar but different from the given product: same category, some " +
		"overlapping and some unique ingredients and benefits, and a different price."
	user = fmt.Sprintf(`Create a fictional skincare product for comparison with: %s

Return ONLY valid JSON with this exact structure:
{
  "product_name": "fictional product name",
  "concentration": "concentration",
  "skin_type": ["type1", "type2"],
  "key_ingredients": ["ingredient1", "ingredient2"],
  "benefits": ["benefit1", "benefit2"],
  "how_to_use": "usage instructions",
  "side_effects": "side effects",
  "price": "price with currency symbol"
}`, p.Name)
	return system, user
}
