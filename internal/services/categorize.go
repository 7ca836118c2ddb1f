package services

import "regexp"

// inferenceRule pairs a merchant-name pattern with the category it implies.
// Rules are evaluated in order and the first hit wins, so broad patterns must
// come after narrow ones.
type inferenceRule struct {
	pattern  *regexp.Regexp
	category string
}

var inferenceRules = []inferenceRule{
	{regexp.MustCompile(`(?i)(mcdonald|burger|cafe|bar|restaurant|pizza|dishoom|nando|chez|trattoria|gelato|caffe|pub)`), "Restaurants"},
	{regexp.MustCompile(`(?i)(uber|taxi|train|tfl|heathrow|express|bus|sncf|tram|ferry)`), "Transport"},
	{regexp.MustCompile(`(?i)(hotel|resort|airbnb|hostel)`), "Accommodation"},
	{regexp.MustCompile(`(?i)(market|grocer|waitrose|marks|spencer|selfridges|galeries)`), "Shopping"},
	{regexp.MustCompile(`(?i)(museum|tickets|tour|storehouse|abbey|beach|club)`), "Entertainment"},
}

// CategoryUncategorized is the fallback for merchants no rule recognises.
const CategoryUncategorized = "Uncategorized"

// InferCategory derives a category from the merchant name alone. It is only
// consulted when neither a preference override nor an explicit record
// category is present.
func InferCategory(merchant string) string {
	for _, rule := range inferenceRules {
		if rule.pattern.MatchString(merchant) {
			return rule.category
		}
	}
	return CategoryUncategorized
}
