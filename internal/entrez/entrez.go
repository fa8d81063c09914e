// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package entrez queries the NCBI E-utilities endpoints for the GEO
// DataSets (gds) database: esearch for candidate ids and esummary for
// batched document summaries. The heterogeneous esummary documents are
// converted into CandidateRecords here, at the system boundary; nothing
// downstream touches raw registry JSON.
package entrez

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/geo-curator/internal/httputil"
	"github.com/pdiddy/geo-curator/pkg/types"
)

// E-utilities endpoints. Declared as vars so tests can substitute an
// httptest server.
var (
	esearchBase  = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esearch.fcgi"
	esummaryBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/esummary.fcgi"
)

const (
	gdsDB         = "gds"
	defaultRetMax = 500
)

// Client queries NCBI E-utilities for the GEO DataSets database.
type Client struct {
	HTTP   *http.Client
	Config types.EntrezConfig
}

// Search runs an esearch query and returns the matching internal uids in
// registry order. An empty id list is a valid result, not an error.
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	retMax := c.Config.RetMax
	if retMax <= 0 {
		retMax = defaultRetMax
	}

	params := url.Values{
		"db":      {gdsDB},
		"term":    {query},
		"retmax":  {fmt.Sprintf("%d", retMax)},
		"retmode": {"json"},
	}
	c.identify(params)

	body, err := c.get(ctx, esearchBase, params)
	if err != nil {
		return nil, fmt.Errorf("esearch request: %w", err)
	}

	var er esearchResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return nil, fmt.Errorf("parsing esearch response: %w", err)
	}
	return er.Result.IDList, nil
}

// Summaries fetches the full document summaries for ids in a single batch
// call and returns them in the order the registry lists them.
func (c *Client) Summaries(ctx context.Context, ids []string) ([]types.CandidateRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	params := url.Values{
		"db":      {gdsDB},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"json"},
		"version": {"2.0"},
	}
	c.identify(params)

	body, err := c.get(ctx, esummaryBase, params)
	if err != nil {
		return nil, fmt.Errorf("esummary request: %w", err)
	}

	var es esummaryResponse
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&es); err != nil {
		return nil, fmt.Errorf("parsing esummary response: %w", err)
	}

	var uids []string
	if raw, ok := es.Result["uids"]; ok {
		if err := json.Unmarshal(raw, &uids); err != nil {
			return nil, fmt.Errorf("parsing esummary uid list: %w", err)
		}
	}

	records := make([]types.CandidateRecord, 0, len(uids))
	for _, uid := range uids {
		raw, ok := es.Result[uid]
		if !ok {
			continue
		}
		var doc gdsDocSummary
		docDec := json.NewDecoder(bytes.NewReader(raw))
		docDec.UseNumber()
		if err := docDec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parsing document summary %s: %w", uid, err)
		}
		records = append(records, doc.toCandidate())
	}
	return records, nil
}

// identify attaches the caller identity parameters NCBI asks for. The
// email is mandatory for update runs and validated upstream; the API key
// is optional and simply raises the rate limit.
func (c *Client) identify(params url.Values) {
	if c.Config.Email != "" {
		params.Set("email", c.Config.Email)
	}
	if c.Config.APIKey != "" {
		params.Set("api_key", c.Config.APIKey)
	}
}

// get performs a GET with 429 backoff and returns the response body.
func (c *Client) get(ctx context.Context, base string, params url.Values) ([]byte, error) {
	reqURL := base + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, 0)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("E-utilities returned HTTP %d", resp.StatusCode)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return buf.Bytes(), nil
}

// E-utilities JSON structures.
type esearchResponse struct {
	Result esearchResult `json:"esearchresult"`
}

type esearchResult struct {
	Count  string   `json:"count"`
	IDList []string `json:"idlist"`
}

// esummaryResponse keeps the per-uid documents raw: the "result" object
// mixes the "uids" order array with one heterogeneous document per uid.
type esummaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

// gdsDocSummary is the subset of a gds document summary the pipeline
// consumes. The pubmedids field is loosely typed on purpose; upstream
// renderings vary and the normalizer handles the shapes.
type gdsDocSummary struct {
	Accession string `json:"accession"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Taxon     string `json:"taxon"`
	GPL       string `json:"gpl"`
	NSamples  int    `json:"n_samples"`
	PubMedIDs any    `json:"pubmedids"`
	PDAT      string `json:"pdat"`
}

func (d gdsDocSummary) toCandidate() types.CandidateRecord {
	return types.CandidateRecord{
		Accession:      d.Accession,
		Title:          d.Title,
		Summary:        d.Summary,
		Taxon:          d.Taxon,
		Platform:       d.GPL,
		SampleCount:    d.NSamples,
		PubMedIDs:      d.PubMedIDs,
		SubmissionDate: d.PDAT,
	}
}
