package services

import "testing"

func TestInferCategory(t *testing.T) {
	cases := []struct {
		merchant string
		want     string
	}{
		{"McDonald's", "Restaurants"},
		{"Trattoria da Enzo", "Restaurants"},
		{"Uber *Trip", "Transport"},
		{"SNCF", "Transport"},
		{"Hotel du Cap", "Accommodation"},
		{"Waitrose", "Shopping"},
		{"Borough Market", "Shopping"},
		{"Museum of Modern Art", "Entertainment"},
		{"Unknown Shop 123", "Uncategorized"},
		{"", "Uncategorized"},
	}
	for _, tc := range cases {
		if got := InferCategory(tc.merchant); got != tc.want {
			t.Errorf("InferCategory(%q) = %q, want %q", tc.merchant, got, tc.want)
		}
	}
}

// Rule order is part of the contract: a merchant matching several rules takes
// the first.
func TestInferCategoryRuleOrder(t *testing.T) {
	if got := InferCategory("Hotel Bar"); got != "Restaurants" {
		t.Fatalf("InferCategory(\"Hotel Bar\") = %q, want Restaurants", got)
	}
	if got := InferCategory("Heathrow Hotel"); got != "Transport" {
		t.Fatalf("InferCategory(\"Heathrow Hotel\") = %q, want Transport", got)
	}
}
