package template

import (
	"sort"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/content"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/product"
)

// BuildFAQPage assembles the FAQ page from the question set, selecting the
// most informative questions across categories.
func BuildFAQPage(p *product.Product, questions []content.Question, size int) (*FAQPage, error) {
	if p == nil {
		return nil, errors.IncompleteAssembly("faq_page", "parsed_product")
	}
	if len(questions) == 0 {
		return nil, errors.IncompleteAssembly("faq_page", "questions")
	}

	selected := content.SelectBest(questions, size)

	items := make([]FAQItem, 0, len(selected))
	seen := make(map[string]bool)
	var categories []string
	for _, q := range selected {
		items = append(items, FAQItem{
			Question: q.Question,
			Answer:   q.Answer,
			Category: q.Category,
		})
		if !seen[q.Category] {
			seen[q.Category] = true
			categories = append(categories, q.Category)
		}
	}
	sort.Strings(categories)

	return &FAQPage{
		PageType:       PageTypeFAQ,
		ProductName:    p.Name,
		FAQItems:       items,
		TotalQuestions: len(items),
		Categories:     categories,
	}, nil
}
