// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package curate classifies fetched candidate records and normalizes the
// accepted ones into the persisted corpus schema.
//
// The inclusion test is a literal substring heuristic, not a semantic
// classifier. Broad exclude terms ("ovulation", "embryo") veto any record
// containing them, even where the surrounding abstract is legitimately
// hair-related, and an exclude term matching inside an unrelated word also
// vetoes. That precision/recall tradeoff is accepted and the behavior is
// pinned by tests rather than smoothed over.
package curate

import (
	"strings"

	"github.com/pdiddy/geo-curator/pkg/types"
)

// PassesFilter reports whether record belongs to the hair follicle domain.
// The lowercased concatenation of title and summary must contain at least
// one require-keyword and no exclude-keyword; exclusion dominates
// inclusion. Keywords are matched as given: the haystack is
// case-normalized, the term lists are not.
func PassesFilter(record types.CandidateRecord, terms types.SearchTerms) bool {
	haystack := strings.ToLower(record.Title) + " " + strings.ToLower(record.Summary)

	required := false
	for _, kw := range terms.RequireKeywords {
		if strings.Contains(haystack, kw) {
			required = true
			break
		}
	}
	if !required {
		return false
	}

	for _, kw := range terms.ExcludeKeywords {
		if strings.Contains(haystack, kw) {
			return false
		}
	}
	return true
}
