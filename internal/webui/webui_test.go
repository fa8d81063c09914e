package webui

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestHandlerServesCorpusFile(t *testing.T) {
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := `[{"Accession":"GSE99999"}]`
	if err := os.WriteFile(filepath.Join(dataDir, "geo_data.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	ts := httptest.NewServer(Handler(dir))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/data/geo_data.json")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != content {
		t.Errorf("body = %q, want the corpus file verbatim", body)
	}
}

func TestHandlerMissingFile(t *testing.T) {
	ts := httptest.NewServer(Handler(t.TempDir()))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/data/geo_data.json")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}
