package dto

import "github.com/thomasrocks006-cmyk/Revoclone/internal/models"

// TransactionQuery carries the shareable filter state: free-text search term,
// inclusive ISO date bounds, and selected effective categories. Zero values
// mean "no filter"; filters compose by AND.
type TransactionQuery struct {
	Term       string
	DateFrom   *string // YYYY-MM-DD, inclusive from local midnight
	DateTo     *string // YYYY-MM-DD, inclusive through 23:59:59.999
	Categories []string
}

// MatchSpan is a half-open [Start, End) byte range of a search hit, consumed
// by the presentation layer for highlighting.
type MatchSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// TransactionMatches annotates where the active search term hit a record.
type TransactionMatches struct {
	Merchant    []MatchSpan `json:"merchant,omitempty"`
	Description []MatchSpan `json:"description,omitempty"`
}

// TransactionListItem is one row of the filtered list: the record plus its
// resolved category and, when a search term is active, the highlight spans.
type TransactionListItem struct {
	models.Transaction
	EffectiveCategory string              `json:"effectiveCategory"`
	Matches           *TransactionMatches `json:"matches,omitempty"`
}

// FilterEcho is the canonical filter state included on list responses so a
// client can reproduce the request as a shareable URL.
type FilterEcho struct {
	Q    string `json:"q,omitempty"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
	Cats string `json:"cats,omitempty"`
}

// TransactionList is the flat list response.
type TransactionList struct {
	Items  []TransactionListItem `json:"items"`
	Count  int                   `json:"count"`
	Filter FilterEcho            `json:"filter"`
}
