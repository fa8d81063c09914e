package search

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pdiddy/geo-curator/pkg/types"
)

func testTerms() types.SearchTerms {
	return types.SearchTerms{
		Keywords:        []string{"hair follicle", "alopecia"},
		Organisms:       []string{"Homo sapiens", "Mus musculus"},
		DataTypes:       []string{"Expression profiling by high throughput sequencing"},
		RequireKeywords: []string{"scalp"},
		ExcludeKeywords: []string{"ovary"},
	}
}

// --- BuildQuery ---

func TestBuildQueryClauses(t *testing.T) {
	q := BuildQuery(testTerms(), 30)

	want := `("hair follicle" OR "alopecia") AND ` +
		`("Homo sapiens"[Organism] OR "Mus musculus"[Organism]) AND ` +
		`("Expression profiling by high throughput sequencing"[DataSet Type]) AND ` +
		`0030[MDAT]`
	if q != want {
		t.Errorf("BuildQuery() =\n%s\nwant\n%s", q, want)
	}
}

func TestBuildQueryDefaultWindow(t *testing.T) {
	q := BuildQuery(testTerms(), 0)
	if !strings.HasSuffix(q, "0030[MDAT]") {
		t.Errorf("zero window should default to 30 days, got %q", q)
	}
}

func TestBuildQueryCustomWindow(t *testing.T) {
	q := BuildQuery(testTerms(), 7)
	if !strings.HasSuffix(q, "0007[MDAT]") {
		t.Errorf("window = 7 should produce 0007[MDAT], got %q", q)
	}
}

func TestBuildQueryDeterministic(t *testing.T) {
	terms := testTerms()
	if BuildQuery(terms, 30) != BuildQuery(terms, 30) {
		t.Error("BuildQuery should be a pure function of its arguments")
	}
}

// --- Terms ---

func TestDefaultTermsComplete(t *testing.T) {
	terms := DefaultTerms()
	if len(terms.Keywords) == 0 || len(terms.Organisms) == 0 ||
		len(terms.DataTypes) == 0 || len(terms.RequireKeywords) == 0 ||
		len(terms.ExcludeKeywords) == 0 {
		t.Fatalf("DefaultTerms returned an incomplete term set: %+v", terms)
	}
	// The require list carries anatomical vocabulary absent from the
	// query keywords.
	found := false
	for _, kw := range terms.RequireKeywords {
		if kw == "anagen" {
			found = true
		}
	}
	if !found {
		t.Error("require keywords should include biological-process terms like \"anagen\"")
	}
}

func TestLoadTermsOverridesAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.yaml")
	content := "exclude_keywords:\n  - ovary\n  - placenta\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	terms, err := LoadTerms(path)
	if err != nil {
		t.Fatalf("LoadTerms() error: %v", err)
	}
	if len(terms.ExcludeKeywords) != 2 {
		t.Errorf("exclude keywords = %v, want the two from the file", terms.ExcludeKeywords)
	}
	defaults := DefaultTerms()
	if fmt.Sprint(terms.Keywords) != fmt.Sprint(defaults.Keywords) {
		t.Errorf("unset lists should fall back to defaults, got keywords %v", terms.Keywords)
	}
}

func TestLoadTermsMissingFile(t *testing.T) {
	if _, err := LoadTerms(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadTerms on a missing file should error")
	}
}

func TestLoadTermsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terms.yaml")
	if err := os.WriteFile(path, []byte("keywords: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTerms(path); err == nil {
		t.Error("LoadTerms on invalid YAML should error")
	}
}
