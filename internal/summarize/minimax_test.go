package summarize

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSummarizeSuccess(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		fmt.Fprint(w, `{"choices":[{"message":{"role":"assistant","content":"  本研究构建了人类头皮毛囊单细胞图谱。  "}}]}`)
	}))
	defer ts.Close()

	old := miniMaxAPIURL
	miniMaxAPIURL = ts.URL
	defer func() { miniMaxAPIURL = old }()

	b := &MiniMaxBackend{APIKey: "key", Client: ts.Client()}
	got, err := b.Summarize(context.Background(), "Scalp atlas", "bulk RNA-seq", "We profiled cells.")
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if got != "本研究构建了人类头皮毛囊单细胞图谱。" {
		t.Errorf("summary = %q", got)
	}
	if gotAuth != "Bearer key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotReq.Model != defaultModel {
		t.Errorf("model = %q, want default %q", gotReq.Model, defaultModel)
	}
	if len(gotReq.Messages) != 1 || !strings.Contains(gotReq.Messages[0].Content, "Scalp atlas") {
		t.Errorf("prompt should embed the title, got %+v", gotReq.Messages)
	}
	if !strings.Contains(gotReq.Messages[0].Content, "bulk RNA-seq") {
		t.Error("prompt should embed the data type label")
	}
}

func TestSummarizeStripsThinkBlocks(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		resp := chatResponse{Choices: []chatChoice{{Message: chatMessage{
			Role:    "assistant",
			Content: "<think>let me\nreason</think>摘要正文",
		}}}}
		json.NewEncoder(w).Encode(resp)
	}))
	defer ts.Close()

	old := miniMaxAPIURL
	miniMaxAPIURL = ts.URL
	defer func() { miniMaxAPIURL = old }()

	b := &MiniMaxBackend{APIKey: "key", Client: ts.Client()}
	got, err := b.Summarize(context.Background(), "t", "d", "s")
	if err != nil {
		t.Fatal(err)
	}
	if got != "摘要正文" {
		t.Errorf("summary = %q, want think block removed", got)
	}
}

func TestSummarizeNoAPIKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request should be made without an API key")
	}))
	defer ts.Close()

	old := miniMaxAPIURL
	miniMaxAPIURL = ts.URL
	defer func() { miniMaxAPIURL = old }()

	b := &MiniMaxBackend{Client: ts.Client()}
	got, err := b.Summarize(context.Background(), "t", "d", "s")
	if err != nil || got != "" {
		t.Errorf("Summarize without key = (%q, %v), want empty and nil", got, err)
	}
}

func TestSummarizeHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "over quota", http.StatusPaymentRequired)
	}))
	defer ts.Close()

	old := miniMaxAPIURL
	miniMaxAPIURL = ts.URL
	defer func() { miniMaxAPIURL = old }()

	b := &MiniMaxBackend{APIKey: "key", Client: ts.Client()}
	if _, err := b.Summarize(context.Background(), "t", "d", "s"); err == nil {
		t.Error("non-200 response should error")
	}
}

func TestSummarizeEmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer ts.Close()

	old := miniMaxAPIURL
	miniMaxAPIURL = ts.URL
	defer func() { miniMaxAPIURL = old }()

	b := &MiniMaxBackend{APIKey: "key", Client: ts.Client()}
	if _, err := b.Summarize(context.Background(), "t", "d", "s"); err == nil {
		t.Error("empty choices should error")
	}
}

func TestSummarizeTruncatesAbstract(t *testing.T) {
	var gotPrompt string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		json.NewDecoder(r.Body).Decode(&req)
		gotPrompt = req.Messages[0].Content
		fmt.Fprint(w, `{"choices":[{"message":{"content":"ok"}}]}`)
	}))
	defer ts.Close()

	old := miniMaxAPIURL
	miniMaxAPIURL = ts.URL
	defer func() { miniMaxAPIURL = old }()

	b := &MiniMaxBackend{APIKey: "key", MaxChars: 10, Client: ts.Client()}
	long := strings.Repeat("研", 50)
	if _, err := b.Summarize(context.Background(), "t", "d", long); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(gotPrompt, strings.Repeat("研", 11)) {
		t.Error("abstract should be truncated to MaxChars runes")
	}
	if !strings.Contains(gotPrompt, strings.Repeat("研", 10)) {
		t.Error("truncated abstract should keep the first MaxChars runes intact")
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		s    string
		n    int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 3, "hel"},
		{"毛囊研究", 2, "毛囊"},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := truncateRunes(tt.s, tt.n); got != tt.want {
			t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
		}
	}
}
