// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus owns the persisted curated-record collection: loading,
// accession membership, prepend insertion, and full-rewrite saves. The
// corpus is a single JSON document, newest record first; entries are only
// ever added, never updated or deleted.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/pdiddy/geo-curator/pkg/types"
)

// Corpus is the ordered record collection plus an accession index so
// membership tests stay O(1) as the corpus grows.
type Corpus struct {
	Records []types.CuratedRecord

	seen map[string]struct{}
}

// Load reads the corpus file at path. A missing file yields an empty
// corpus, the normal first-run state, not an error. An existing but
// unparseable file is an error, reported before anything is mutated.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(nil), nil
		}
		return nil, fmt.Errorf("reading corpus %s: %w", path, err)
	}

	var records []types.CuratedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing corpus %s: %w", path, err)
	}
	return New(records), nil
}

// New builds a Corpus over records, indexing their accessions.
func New(records []types.CuratedRecord) *Corpus {
	c := &Corpus{
		Records: records,
		seen:    make(map[string]struct{}, len(records)),
	}
	for _, r := range records {
		c.seen[r.Accession] = struct{}{}
	}
	return c
}

// Len returns the number of curated records.
func (c *Corpus) Len() int { return len(c.Records) }

// IsNew reports whether accession has not been curated before.
func (c *Corpus) IsNew(accession string) bool {
	_, ok := c.seen[accession]
	return !ok
}

// Insert prepends record, most recently discovered first, and registers
// its accession so the ordered sequence and the membership index stay
// consistent.
func (c *Corpus) Insert(record types.CuratedRecord) {
	c.Records = slices.Insert(c.Records, 0, record)
	c.seen[record.Accession] = struct{}{}
}

// Save rewrites the corpus file in full. The document is written to a
// temporary file and renamed into place, so a failed write leaves the
// previous corpus intact. Output is indented with stable field order, and
// non-ASCII text is written as-is.
func (c *Corpus) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".corpus-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	records := c.Records
	if records == nil {
		records = []types.CuratedRecord{}
	}

	enc := json.NewEncoder(tmpFile)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	encErr := enc.Encode(records)
	closeErr := tmpFile.Close()
	if encErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("encoding corpus: %w", encErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing corpus file: %w", err)
	}
	return nil
}
