// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"github.com/sahilm/fuzzy"
)

// Matcher scores a candidate title against a query. Zero means no match.
type Matcher interface {
	Score(query, title string) int
}

// FuzzyMatcher matches the query characters in order, as typed in a picker.
type FuzzyMatcher struct{}

// Score implements Matcher. Any match scores at least 1.
func (FuzzyMatcher) Score(query, title string) int {
	matches := fuzzy.Find(query, []string{title})
	if len(matches) == 0 {
		return 0
	}
	return max(matches[0].Score, 1)
}
