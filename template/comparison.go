package template

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/content"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/product"
)

// BuildComparisonPage assembles the comparison page. Both prices are
// required here: comparing without them would force invented numbers.
func BuildComparisonPage(a *product.Product, b *product.ComparisonProduct) (*ComparisonPage, error) {
	if a == nil {
		return nil, errors.IncompleteAssembly("comparison_page", "parsed_product")
	}
	if b == nil {
		return nil, errors.IncompleteAssembly("comparison_page", "comparison_product")
	}
	if a.Price == "" {
		return nil, errors.MissingField("price")
	}

	ingredients := content.CompareIngredients(a.KeyIngredients, b.KeyIngredients)

	return &ComparisonPage{
		PageType: PageTypeComparison,
		Products: ComparedProducts{
			Product1: ProductSummary{
				Name:           a.Name,
				Price:          a.Price,
				Concentration:  a.Concentration,
				KeyIngredients: a.KeyIngredients,
				Benefits:       a.Benefits,
				SkinTypes:      a.SkinTypes,
			},
			Product2: ProductSummary{
				Name:           b.Name,
				Price:          b.Price,
				Concentration:  b.Concentration,
				KeyIngredients: b.KeyIngredients,
				Benefits:       b.Benefits,
				SkinTypes:      b.SkinTypes,
			},
		},
		Comparison: ComparisonDetail{
			Ingredients: ingredients,
			Price: PriceComparison{
				Product1Price:   a.Price,
				Product2Price:   b.Price,
				PriceDifference: priceDifference(a.Price, b.Price),
			},
			Benefits: BenefitsComparison{
				Product1Benefits: a.Benefits,
				Product2Benefits: b.Benefits,
				SharedBenefits:   sharedBenefits(a.Benefits, b.Benefits),
			},
		},
		Recommendation: recommendation(ingredients.SimilarityScore),
	}, nil
}

var numberRe = regexp.MustCompile(`\d+`)

// priceDifference extracts the first number from each price string and
// formats the absolute difference with the first price's currency prefix.
// Unparseable prices yield an empty difference rather than a made-up one.
func priceDifference(price1, price2 string) string {
	n1, ok1 := firstNumber(price1)
	n2, ok2 := firstNumber(price2)
	if !ok1 || !ok2 {
		return ""
	}
	diff := n1 - n2
	if diff < 0 {
		diff = -diff
	}
	return currencyPrefix(price1) + strconv.FormatFloat(diff, 'f', 0, 64)
}

func firstNumber(price string) (float64, bool) {
	m := numberRe.FindString(strings.ReplaceAll(price, ",", ""))
	if m == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func currencyPrefix(price string) string {
	price = strings.TrimSpace(price)
	if idx := numberRe.FindStringIndex(price); idx != nil {
		return strings.TrimSpace(price[:idx[0]])
	}
	return ""
}

func sharedBenefits(ours, theirs []string) []string {
	theirSet := make(map[string]bool, len(theirs))
	for _, b := range theirs {
		theirSet[b] = true
	}
	var shared []string
	for _, b := range ours {
		if theirSet[b] {
			shared = append(shared, b)
		}
	}
	sort.Strings(shared)
	return shared
}

func recommendation(similarity float64) string {
	if similarity > 70 {
		return "Both products are similar. Choose based on price and specific needs."
	}
	return "Products differ significantly. Consider your specific skin concerns and budget."
}
