package services

import (
	"regexp"
	"strings"

	"github.com/thomasrocks006-cmyk/Revoclone/internal/dto"
	"github.com/thomasrocks006-cmyk/Revoclone/internal/models"
)

// matchesTerm reports whether a record survives the free-text filter: a
// case-insensitive literal substring test over merchant and description. An
// empty term matches everything.
func matchesTerm(t models.Transaction, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(t.Merchant), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle)
}

// MatchSpans returns every non-overlapping occurrence of term in text as a
// half-open byte range. The term is matched literally; regexp metacharacters
// in user input carry no special meaning.
func MatchSpans(text, term string) []dto.MatchSpan {
	if term == "" || text == "" {
		return nil
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(term))
	if err != nil {
		return nil
	}
	var spans []dto.MatchSpan
	for _, loc := range re.FindAllStringIndex(text, -1) {
		spans = append(spans, dto.MatchSpan{Start: loc[0], End: loc[1]})
	}
	return spans
}

// matchTransaction annotates where the term hit a record. Only called for
// records that already passed matchesTerm.
func matchTransaction(t models.Transaction, term string) dto.TransactionMatches {
	return dto.TransactionMatches{
		Merchant:    MatchSpans(t.Merchant, term),
		Description: MatchSpans(t.Description, term),
	}
}
