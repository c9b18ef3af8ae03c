// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"strings"

	"github.com/codehop/codehop/pkg/workspaces"
)

// Query is what the user typed.
type Query struct {
	// Search is the text after the action keyword.
	Search string
	// ActionKeyword is the keyword the query was issued with, empty for a global query.
	ActionKeyword string
}

// browsing reports whether the query only names the keyword, in which case
// every candidate is listed unscored.
func (q Query) browsing() bool {
	return q.ActionKeyword != "" && q.Search == ""
}

// Filter scores candidates against the query and drops the ones that do not
// match. A title that contains the search text scores 1 even when the
// matcher rejects it. Order is preserved.
func Filter(candidates []Candidate, query Query, matcher Matcher) []Candidate {
	if query.browsing() {
		return candidates
	}

	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		c.Score = matcher.Score(query.Search, c.Title)
		if c.Score == 0 && strings.TrimSpace(query.Search) != "" &&
			strings.Contains(strings.ToLower(c.Title), strings.ToLower(query.Search)) {
			c.Score = 1
		}
		if c.Score > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Dedupe returns the workspaces with structural duplicates removed. The first
// occurrence wins, so its owning instance is the one kept.
func Dedupe(list []workspaces.Workspace) []workspaces.Workspace {
	seen := make(map[string]bool, len(list))
	out := make([]workspaces.Workspace, 0, len(list))
	for _, ws := range list {
		key := ws.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ws)
	}
	return out
}
