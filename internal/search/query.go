// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search composes the Entrez query for the GEO DataSets database
// from the configured term sets.
package search

import (
	"fmt"
	"strings"

	"github.com/pdiddy/geo-curator/pkg/types"
)

const defaultWindowDays = 30

// BuildQuery composes the boolean GEO query: a disjunction of quoted
// domain keywords, a disjunction of organism-scoped terms, a disjunction
// of dataset-type-scoped terms, and a recency clause bounding results to
// records modified within the last windowDays days. Pure function of its
// arguments.
//
// The conjunction keeps recall high inside the domain while the recency
// bound keeps each run's fetch volume small enough for repeated
// incremental runs.
func BuildQuery(terms types.SearchTerms, windowDays int) string {
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}

	keywords := quotedClause(terms.Keywords, "")
	organisms := quotedClause(terms.Organisms, "[Organism]")
	dataTypes := quotedClause(terms.DataTypes, "[DataSet Type]")
	recency := fmt.Sprintf("%04d[MDAT]", windowDays)

	return fmt.Sprintf("(%s) AND (%s) AND (%s) AND %s",
		keywords, organisms, dataTypes, recency)
}

// quotedClause joins terms into a disjunction of quoted, optionally
// field-scoped Entrez terms (e.g. `"Homo sapiens"[Organism] OR ...`).
func quotedClause(terms []string, field string) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = `"` + t + `"` + field
	}
	return strings.Join(parts, " OR ")
}
