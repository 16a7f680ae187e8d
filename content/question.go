package content

import (
	"fmt"
	"sort"
	"strings"

	"github.com/HackWGaveesh/kasparro-agentic-Gaveesha-GS/errors"
)

// Question categories. Generated questions must use one of these.
const (
	CategoryInformational = "Informational"
	CategorySafety        = "Safety"
	CategoryUsage         = "Usage"
	CategoryPurchase      = "Purchase"
	CategoryComparison    = "Comparison"
)

// Categories returns the taxonomy in canonical order.
func Categories() []string {
	return []string{
		CategoryInformational,
		CategorySafety,
		CategoryUsage,
		CategoryPurchase,
		CategoryComparison,
	}
}

// KnownCategory reports whether c belongs to the taxonomy.
func KnownCategory(c string) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Question is one categorized question with its answer.
type Question struct {
	Question string `json:"question"`
	Category string `json:"category"`
	Answer   string `json:"answer"`
}

// ValidateQuestions checks a generated question set structurally: at least
// min entries, and every entry complete with a known category. A failure
// here means the generation was malformed; the set is rejected rather than
// patched.
func ValidateQuestions(questions []Question, min int) error {
	if len(questions) < min {
		return errors.MalformedGeneration(
			fmt.Sprintf("generated %d questions, need at least %d", len(questions), min))
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return errors.MalformedGeneration(fmt.Sprintf("question %d has empty text", i))
		}
		if !strings.Contains(q.Question, "?") {
			return errors.MalformedGeneration(fmt.Sprintf("question %d (%q) is not a question", i, q.Question))
		}
		if strings.TrimSpace(q.Answer) == "" {
			return errors.MalformedGeneration(fmt.Sprintf("question %d (%q) has no answer", i, q.Question))
		}
		if !KnownCategory(q.Category) {
			return errors.MalformedGeneration(
				fmt.Sprintf("question %d (%q) has unknown category %q", i, q.Question, q.Category))
		}
	}
	return nil
}

// SelectBest picks count questions for the FAQ: first the most informative
// question (longest answer) from each category in canonical order, then the
// remaining slots by answer length. Ties keep input order, so selection is
// deterministic.
func SelectBest(questions []Question, count int) []Question {
	if len(questions) <= count {
		return questions
	}

	byCategory := make(map[string][]int)
	for i, q := range questions {
		byCategory[q.Category] = append(byCategory[q.Category], i)
	}

	taken := make(map[int]bool)
	var selected []Question

	for _, cat := range Categories() {
		if len(selected) >= count {
			break
		}
		indices := byCategory[cat]
		if len(indices) == 0 {
			continue
		}
		best := indices[0]
		for _, i := range indices[1:] {
			if len(questions[i].Answer) > len(questions[best].Answer) {
				best = i
			}
		}
		taken[best] = true
		selected = append(selected, questions[best])
	}

	var remaining []int
	for i := range questions {
		if !taken[i] {
			remaining = append(remaining, i)
		}
	}
	sort.SliceStable(remaining, func(a, b int) bool {
		return len(questions[remaining[a]].Answer) > len(questions[remaining[b]].Answer)
	})
	for _, i := range remaining {
		if len(selected) >= count {
			break
		}
		selected = append(selected, questions[i])
	}

	return selected
}

// CountByCategory tallies questions per category.
func CountByCategory(questions []Question) map[string]int {
	counts := make(map[string]int)
	for _, q := range questions {
		counts[q.Category]++
	}
	return counts
}
