package content

import "sort"

// IngredientComparison is the set comparison of two ingredient lists.
// All three sets are sorted so the comparison is deterministic.
type IngredientComparison struct {
	CommonIngredients  []string `json:"common_ingredients"`
	UniqueToProduct    []string `json:"unique_to_product1"`
	UniqueToCompetitor []string `json:"unique_to_product2"`
	SimilarityScore    float64  `json:"similarity_score"`
}

// CompareIngredients computes common and unique ingredients and a similarity
// score: common count over the larger list, as a percentage.
func CompareIngredients(ours, theirs []string) IngredientComparison {
	ourSet := toSet(ours)
	theirSet := toSet(theirs)

	var common, uniqueOurs, uniqueTheirs []string
	for item := range ourSet {
		if theirSet[item] {
			common = append(common, item)
		} else {
			uniqueOurs = append(uniqueOurs, item)
		}
	}
	for item := range theirSet {
		if !ourSet[item] {
			uniqueTheirs = append(uniqueTheirs, item)
		}
	}

	sort.Strings(common)
	sort.Strings(uniqueOurs)
	sort.Strings(uniqueTheirs)

	denom := max(len(ourSet), len(theirSet), 1)
	return IngredientComparison{
		CommonIngredients:  common,
		UniqueToProduct:    uniqueOurs,
		UniqueToCompetitor: uniqueTheirs,
		SimilarityScore:    float64(len(common)) / float64(denom) * 100,
	}
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
