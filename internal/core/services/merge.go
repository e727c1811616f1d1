package services

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/custodia-labs/ghsuggest/internal/core/domain"
)

// MergeSuggestions concatenates repositories then users and sorts the result
// ascending by display name using the collation rules of locale.
// The sort is stable, so equal names keep repositories before users.
// An unparseable locale falls back to en-US.
func MergeSuggestions(repos, users []domain.Suggestion, locale string) []domain.Suggestion {
	merged := make([]domain.Suggestion, 0, len(repos)+len(users))
	merged = append(merged, repos...)
	merged = append(merged, users...)

	// A Collator is not safe for concurrent use; build one per merge.
	c := collate.New(collationTag(locale))
	slices.SortStableFunc(merged, func(a, b domain.Suggestion) int {
		return c.CompareString(a.Name(), b.Name())
	})
	return merged
}

func collationTag(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}
