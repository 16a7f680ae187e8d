package template

import "github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/content"

// Page type discriminators.
const (
	PageTypeFAQ        = "faq"
	PageTypeProduct    = "product_description"
	PageTypeComparison = "comparison"
)

// FAQPage is the structured FAQ output.
type FAQPage struct {
	PageType       string    `json:"page_type"`
	ProductName    string    `json:"product_name"`
	FAQItems       []FAQItem `json:"faq_items"`
	TotalQuestions int       `json:"total_questions"`
	Categories     []string  `json:"categories"`
}

// FAQItem is one question/answer pair on the FAQ page.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// ProductPage is the structured product description output.
type ProductPage struct {
	PageType      string          `json:"page_type"`
	ProductName   string          `json:"product_name"`
	Price         string          `json:"price"`
	Concentration string          `json:"concentration"`
	Sections      ProductSections `json:"sections"`
}

// ProductSections groups the product page content.
type ProductSections struct {
	Overview    OverviewSection    `json:"overview"`
	Ingredients IngredientsSection `json:"ingredients"`
	Benefits    BenefitsSection    `json:"benefits"`
	Usage       UsageSection       `json:"usage"`
	Safety      SafetySection      `json:"safety"`
	SkinType    SkinTypeSection    `json:"skin_type"`
}

type OverviewSection struct {
	Description   string   `json:"description"`
	KeyHighlights []string `json:"key_highlights"`
}

type IngredientsSection struct {
	KeyIngredients    []string                            `json:"key_ingredients"`
	IngredientDetails map[string]content.IngredientDetail `json:"ingredient_details"`
	Concentration     string                              `json:"concentration"`
}

type BenefitsSection struct {
	PrimaryBenefits   []string                   `json:"primary_benefits"`
	FormattedBenefits []content.FormattedBenefit `json:"formatted_benefits"`
}

type UsageSection struct {
	Instructions string   `json:"instructions"`
	Steps        []string `json:"steps"`
	Frequency    string   `json:"frequency"`
	Tips         []string `json:"tips"`
}

type SafetySection struct {
	SideEffects string   `json:"side_effects"`
	Warnings    []string `json:"warnings"`
	Precautions []string `json:"precautions"`
}

type SkinTypeSection struct {
	SuitableFor []string `json:"suitable_for"`
}

// ComparisonPage is the structured comparison output.
type ComparisonPage struct {
	PageType       string            `json:"page_type"`
	Products       ComparedProducts  `json:"products"`
	Comparison     ComparisonDetail  `json:"comparison"`
	Recommendation string            `json:"recommendation"`
}

// ComparedProducts holds the side-by-side summaries.
type ComparedProducts struct {
	Product1 ProductSummary `json:"product1"`
	Product2 ProductSummary `json:"product2"`
}

// ProductSummary is the comparison view of one product.
type ProductSummary struct {
	Name           string   `json:"name"`
	Price          string   `json:"price"`
	Concentration  string   `json:"concentration"`
	KeyIngredients []string `json:"key_ingredients"`
	Benefits       []string `json:"benefits"`
	SkinTypes      []string `json:"skin_type"`
}

// ComparisonDetail holds the computed comparison sections.
type ComparisonDetail struct {
	Ingredients content.IngredientComparison `json:"ingredients"`
	Price       PriceComparison              `json:"price"`
	Benefits    BenefitsComparison           `json:"benefits"`
}

type PriceComparison struct {
	Product1Price   string `json:"product1_price"`
	Product2Price   string `json:"product2_price"`
	PriceDifference string `json:"price_difference"`
}

type BenefitsComparison struct {
	Product1Benefits []string `json:"product1_benefits"`
	Product2Benefits []string `json:"product2_benefits"`
	SharedBenefits   []string `json:"shared_benefits"`
}
