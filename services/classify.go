package services

import "strings"

// Category is one of the fixed section headings a service can appear
// under on a quotation.
type Category string

const (
	CategoryPhotography Category = "Photography Services"
	CategoryVideography Category = "Videography Services"
	CategoryAddOns      Category = "Premium Add-ons"
)

// categoryOrder fixes the order sections appear in rendered documents.
var categoryOrder = []Category{
	CategoryPhotography,
	CategoryVideography,
	CategoryAddOns,
}

// categoryKeywords maps name fragments to categories. Matching is
// case-insensitive and the first hit wins, so "Photo & Video Package"
// lands under Photography.
var categoryKeywords = []struct {
	fragment string
	category Category
}{
	{"photo", CategoryPhotography},
	{"video", CategoryVideography},
	{"mixing", CategoryVideography},
}

// Classify returns the category for a service name. Names matching no
// keyword fall through to Premium Add-ons.
func Classify(name string) Category {
	lower := strings.ToLower(name)
	for _, kw := range categoryKeywords {
		if strings.Contains(lower, kw.fragment) {
			return kw.category
		}
	}
	return CategoryAddOns
}

// CategoryGroup is a quotation section: a category heading and the
// selected lines under it, catalog order preserved.
type CategoryGroup struct {
	Category Category
	Lines    []QuotationLine
}

// GroupByCategory splits lines into sections in the fixed category
// order. Categories with no lines are omitted entirely.
func GroupByCategory(lines []QuotationLine) []CategoryGroup {
	byCategory := make(map[Category][]QuotationLine)
	for _, line := range lines {
		cat := Classify(line.Name)
		byCategory[cat] = append(byCategory[cat], line)
	}

	var groups []CategoryGroup
	for _, cat := range categoryOrder {
		if len(byCategory[cat]) == 0 {
			continue
		}
		groups = append(groups, CategoryGroup{Category: cat, Lines: byCategory[cat]})
	}
	return groups
}
