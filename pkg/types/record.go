// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the geo-curator pipeline.
package types

// DataTypeBulkRNASeq is the fixed classification written to every curated
// record. Per-record assay inference is out of scope for the update path.
const DataTypeBulkRNASeq = "bulk RNA-seq"

// CandidateRecord is a GEO DataSets document summary as returned by the
// Entrez esummary endpoint, before filtering. It is transient: candidates
// exist only for the duration of a single pipeline run.
type CandidateRecord struct {
	// Accession is the GEO accession (GSE, GDS, GPL, or GSM prefixed).
	Accession string

	// Title is the submitter-provided dataset title.
	Title string

	// Summary is the free-text study abstract.
	Summary string

	// Taxon is the organism name as reported by GEO (e.g. "Homo sapiens").
	Taxon string

	// Platform is the GEO platform identifier for the series.
	Platform string

	// SampleCount is the number of samples in the series.
	SampleCount int

	// PubMedIDs carries the raw linked-publication value. Upstream
	// renderings are inconsistent: a plain list of numeric ids, or a
	// string-serialized wrapper that embeds the ids inside other notation.
	// The normalizer extracts the digit runs; nothing else reads this.
	PubMedIDs any

	// SubmissionDate is the PDAT field as a string (e.g. "2025/08/01").
	SubmissionDate string
}

// CuratedRecord is one persisted corpus entry. The JSON keys match the
// historical geo_data.json layout so existing corpus files and the
// front-end keep reading unchanged; the provenance columns the update
// path does not populate are written empty.
type CuratedRecord struct {
	// Accession is the unique GSE accession keying the corpus.
	Accession string `json:"Accession"`

	Title    string `json:"Title"`
	Organism string `json:"Organism"`

	// DataType is always DataTypeBulkRNASeq in records produced here.
	DataType string `json:"Data_Type"`

	SampleCount  int    `json:"Sample_Count"`
	Platform     string `json:"Platform"`
	Country      string `json:"Country"`
	Lab          string `json:"Lab"`
	Institute    string `json:"Institute"`
	Contributors string `json:"Contributors"`

	// PubMedIDs is the cleaned publication id list joined with "; ".
	PubMedIDs string `json:"PubMed_IDs"`

	SupplementarySize string `json:"Supplementary_Size"`
	Summary           string `json:"Summary"`
	OverallDesign     string `json:"Overall_Design"`

	// AISummaryCN and AISummary hold the same generated text, duplicated
	// for two downstream readers. Both are empty strings, never omitted,
	// when summarization is unavailable.
	AISummaryCN string `json:"AI_Summary_CN"`
	AISummary   string `json:"AI_Summary"`

	// GEOLink is derived deterministically from the accession.
	GEOLink string `json:"GEO_Link"`

	SubmissionDate string `json:"Submission_Date"`
}
