package engine

import "strings"

// CategoryRule maps a set of description keywords to a category name.
// Rules are evaluated in order; the first rule with a matching keyword wins.
type CategoryRule struct {
	Keywords []string
	Category string
}

// DefaultCategoryRules is the stock keyword-to-category mapping used to
// suggest a category from a transaction description. This is configuration
// data: callers may pass their own rule set to SuggestCategory.
var DefaultCategoryRules = []CategoryRule{
	{Keywords: []string{"rent"}, Category: "Rent"},
	{Keywords: []string{"emi", "loan"}, Category: "EMI"},
	{Keywords: []string{"wifi", "broadband", "internet"}, Category: "Wifi"},
	{Keywords: []string{"recharge", "mobile", "prepaid"}, Category: "Recharge"},
	{Keywords: []string{"grocer", "vegetable", "supermarket"}, Category: "Groceries"},
	{Keywords: []string{"snack", "chips", "biscuit"}, Category: "Snacks"},
	{Keywords: []string{"gym", "workout"}, Category: "Gym"},
	{Keywords: []string{"bus", "train", "metro", "cab", "auto"}, Category: "Public Transport"},
	{Keywords: []string{"fuel", "petrol", "diesel"}, Category: "Fuel"},
	{Keywords: []string{"service", "repair", "puncture"}, Category: "Vehicle Maintenance"},
	{Keywords: []string{"tea", "coffee", "chai"}, Category: "Tea/Coffee"},
	{Keywords: []string{"dinner"}, Category: "Dinner"},
	{Keywords: []string{"lunch"}, Category: "Lunch"},
	{Keywords: []string{"breakfast"}, Category: "Breakfast"},
	{Keywords: []string{"shirt", "jeans", "clothing", "clothes"}, Category: "Clothing"},
	{Keywords: []string{"movie", "cinema"}, Category: "Movies"},
	{Keywords: []string{"sport", "cricket", "football"}, Category: "Sports"},
	{Keywords: []string{"medicine", "pharmacy", "doctor"}, Category: "Medicine"},
	{Keywords: []string{"egg"}, Category: "Eggs"},
	{Keywords: []string{"atm", "withdraw"}, Category: "Cash ATM"},
	{Keywords: []string{"invest", "sip", "mutual fund"}, Category: "Invest"},
	{Keywords: []string{"settle"}, Category: "Settle"},
}

// SuggestCategory returns the category of the first rule whose keyword
// appears in the description (case-insensitive), or "" when none match.
func SuggestCategory(desc string, rules []CategoryRule) string {
	lower := strings.ToLower(desc)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Category
			}
		}
	}
	return ""
}
