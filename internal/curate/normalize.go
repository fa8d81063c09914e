// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package curate

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/geo-curator/pkg/types"
)

// seriesPrefix identifies series-level GEO records. The gds database also
// returns GDS, GPL, and GSM entries; only series are curated.
const seriesPrefix = "GSE"

// geoLinkFmt is the canonical record URL, parameterized only by accession.
const geoLinkFmt = "https://www.ncbi.nlm.nih.gov/geo/query/acc.cgi?acc=%s"

// Summarizer generates a short research summary for a dataset. The backend
// in internal/summarize implements it; tests supply mocks.
type Summarizer interface {
	Summarize(ctx context.Context, title, dataType, summary string) (string, error)
}

// IsSeries reports whether accession names a series-level record.
func IsSeries(accession string) bool {
	return strings.HasPrefix(accession, seriesPrefix)
}

// Normalize converts an accepted candidate into a CuratedRecord. It
// returns nil for records that are not series-level; that is a routine
// skip, not an error. The summarizer output is stored verbatim in both AI
// summary fields; when the summarizer fails or is absent both fields are
// empty strings and the record is still kept.
func Normalize(ctx context.Context, cand types.CandidateRecord, summarizer Summarizer, w io.Writer) *types.CuratedRecord {
	if !IsSeries(cand.Accession) {
		return nil
	}

	aiSummary := ""
	if summarizer != nil {
		text, err := summarizer.Summarize(ctx, cand.Title, types.DataTypeBulkRNASeq, cand.Summary)
		if err != nil {
			fmt.Fprintf(w, "  warning: summary generation failed for %s: %v\n", cand.Accession, err)
		} else {
			aiSummary = text
		}
	}

	return &types.CuratedRecord{
		Accession:         cand.Accession,
		Title:             cand.Title,
		Organism:          cand.Taxon,
		DataType:          types.DataTypeBulkRNASeq,
		SampleCount:       cand.SampleCount,
		Platform:          cand.Platform,
		PubMedIDs:         CleanPubMedIDs(cand.PubMedIDs),
		SupplementarySize: "N/A",
		Summary:           cand.Summary,
		AISummaryCN:       aiSummary,
		AISummary:         aiSummary,
		GEOLink:           fmt.Sprintf(geoLinkFmt, cand.Accession),
		SubmissionDate:    cand.SubmissionDate,
	}
}

var (
	integerElementRe = regexp.MustCompile(`IntegerElement\((\d+)`)
	digitRunRe       = regexp.MustCompile(`\d+`)
)

// CleanPubMedIDs extracts publication identifiers from the raw esummary
// value. The upstream rendering is inconsistent: a plain list of numeric
// ids, or a string-serialized wrapper embedding the ids in notation like
// "IntegerElement(12345)". Wrapper ids win when present, then bare digit
// runs; a value with no digits at all passes through as text.
func CleanPubMedIDs(raw any) string {
	text := rawText(raw)
	if text == "" {
		return ""
	}

	if matches := integerElementRe.FindAllStringSubmatch(text, -1); len(matches) > 0 {
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = m[1]
		}
		return strings.Join(ids, "; ")
	}

	if ids := digitRunRe.FindAllString(text, -1); len(ids) > 0 {
		return strings.Join(ids, "; ")
	}
	return text
}

// rawText renders the loosely typed PubMed value as a single string.
// Lists are joined with "; " before digit extraction, mirroring the
// upstream join.
func rawText(raw any) string {
	switch v := raw.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any:
		parts := make([]string, len(v))
		for i, e := range v {
			parts[i] = rawText(e)
		}
		return strings.Join(parts, "; ")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
