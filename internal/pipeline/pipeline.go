// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences one incremental discovery-filter-merge run:
// build query, fetch candidates, filter, normalize, and merge new records
// into the persisted corpus. Execution is single-threaded and sequential;
// persistence happens exactly once, at the end, so a mid-run failure never
// touches the previously saved corpus.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/geo-curator/internal/corpus"
	"github.com/pdiddy/geo-curator/internal/curate"
	"github.com/pdiddy/geo-curator/internal/search"
	"github.com/pdiddy/geo-curator/pkg/types"
)

// Registry is the external search collaborator: id discovery and batched
// document summary retrieval.
type Registry interface {
	Search(ctx context.Context, query string) ([]string, error)
	Summaries(ctx context.Context, ids []string) ([]types.CandidateRecord, error)
}

// summaryDelay is the pause after each successful summarization call,
// respecting the external service's rate limit. Tests override it.
var summaryDelay = time.Second

// Summary holds counts from one pipeline run.
type Summary struct {
	// Existing is the corpus size at run start.
	Existing int
	// Fetched is the number of candidate ids the search returned.
	Fetched int
	// Known counts candidates skipped because their accession is
	// already curated.
	Known int
	// NonSeries counts candidates skipped for not being series-level
	// records.
	NonSeries int
	// Rejected counts candidates the domain filter excluded.
	Rejected int
	// Added is the number of newly curated records.
	Added int
	// Total is the corpus size after the run.
	Total int
}

// Query returns the Entrez query the run will execute, for reporting.
func Query(cfg types.PipelineConfig) string {
	return search.BuildQuery(cfg.Terms, cfg.Entrez.WindowDays)
}

// Run executes one incremental update. The corpus file is rewritten only
// when at least one record was added and DryRun is unset; in every other
// outcome the persisted state is left untouched. Candidates are processed
// in registry order, so re-running against an unchanged registry adds
// nothing.
func Run(ctx context.Context, registry Registry, summarizer curate.Summarizer, cfg types.PipelineConfig, w io.Writer) (Summary, error) {
	if cfg.Entrez.Email == "" {
		return Summary{}, fmt.Errorf("NCBI contact email is not configured")
	}

	store, err := corpus.Load(cfg.DataFile)
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{Existing: store.Len(), Total: store.Len()}
	fmt.Fprintf(w, "existing records: %d\n", store.Len())

	query := Query(cfg)

	ids, err := registry.Search(ctx, query)
	if err != nil {
		return sum, fmt.Errorf("searching GEO: %w", err)
	}
	sum.Fetched = len(ids)
	fmt.Fprintf(w, "search returned %d records\n", len(ids))

	if len(ids) == 0 {
		fmt.Fprintln(w, "no results in the current window")
		return sum, nil
	}

	candidates, err := registry.Summaries(ctx, ids)
	if err != nil {
		return sum, fmt.Errorf("fetching record summaries: %w", err)
	}

	for _, cand := range candidates {
		if !store.IsNew(cand.Accession) {
			sum.Known++
			continue
		}
		if !curate.IsSeries(cand.Accession) {
			sum.NonSeries++
			continue
		}
		if !curate.PassesFilter(cand, cfg.Terms) {
			sum.Rejected++
			continue
		}

		record := curate.Normalize(ctx, cand, summarizer, w)
		if record == nil {
			sum.NonSeries++
			continue
		}
		if record.AISummary != "" {
			time.Sleep(summaryDelay)
		}

		store.Insert(*record)
		sum.Added++
		fmt.Fprintf(w, "  added %s\n", record.Accession)
	}

	sum.Total = store.Len()

	if sum.Added == 0 {
		fmt.Fprintln(w, "nothing new to add")
		return sum, nil
	}
	if cfg.DryRun {
		fmt.Fprintf(w, "dry run: %d record(s) would be added (total %d)\n", sum.Added, sum.Total)
		return sum, nil
	}

	if err := store.Save(cfg.DataFile); err != nil {
		return sum, fmt.Errorf("saving corpus: %w", err)
	}
	fmt.Fprintf(w, "added %d record(s), total %d\n", sum.Added, sum.Total)
	return sum, nil
}
