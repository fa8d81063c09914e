// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize generates short Chinese research summaries for curated
// records through a chat-completions API. Failures here never abort a
// pipeline run; the caller degrades to empty summary fields.
package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"text/template"
)

// summaryPromptTmpl is the fixed instruction template populated with the
// record title, the fixed data-type label, and the truncated study
// abstract.
var summaryPromptTmpl = template.Must(template.New("summary").Parse(`请用中文为以下GEO数据集生成一个精炼的科研摘要（80-120字）：

标题: {{.Title}}
数据类型: {{.DataType}}
研究摘要: {{.Summary}}

要求：
1. 概述研究目的和科学问题
2. 说明使用的技术方法
3. 总结主要发现或研究价值
4. 使用专业但易懂的中文表达

请直接输出中文摘要：`))

// miniMaxAPIURL is the chat completions endpoint. Package-level var for
// test substitution.
var miniMaxAPIURL = "https://api.minimaxi.com/v1/chat/completions"

// thinkBlockRe strips the reasoning traces some models wrap in <think>
// tags before the answer text.
var thinkBlockRe = regexp.MustCompile(`(?s)<think>.*?</think>`)

const (
	defaultModel    = "MiniMax-M2.1"
	defaultMaxChars = 800
	maxTokens       = 1500
	temperature     = 0.7
)

// MiniMaxBackend calls the MiniMax chat completions API to generate a
// record summary. It implements curate.Summarizer.
type MiniMaxBackend struct {
	APIKey string
	Model  string
	// MaxChars bounds the abstract text inserted into the prompt,
	// counted in runes (default 800).
	MaxChars int
	Client   *http.Client
}

// chatRequest is the request body for the chat completions API.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

// chatMessage is a single message in the conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the response body from the chat completions API.
type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

// Summarize renders the prompt and calls the API. When no API key is
// configured it returns an empty summary without any network call, which
// the caller treats the same as a degraded response.
func (b *MiniMaxBackend) Summarize(ctx context.Context, title, dataType, summary string) (string, error) {
	if b.APIKey == "" {
		return "", nil
	}

	maxChars := b.MaxChars
	if maxChars <= 0 {
		maxChars = defaultMaxChars
	}

	prompt, err := renderPrompt(title, dataType, truncateRunes(summary, maxChars))
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	model := b.Model
	if model == "" {
		model = defaultModel
	}

	reqBody := chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, miniMaxAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.APIKey)

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling summarization API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("summarization API returned %d: %s", resp.StatusCode, string(body))
	}

	var cResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return "", fmt.Errorf("decoding summarization response: %w", err)
	}

	if len(cResp.Choices) == 0 {
		return "", fmt.Errorf("summarization API returned no choices")
	}

	content := thinkBlockRe.ReplaceAllString(cResp.Choices[0].Message.Content, "")
	return strings.TrimSpace(content), nil
}

// renderPrompt executes the summary prompt template.
func renderPrompt(title, dataType, summary string) (string, error) {
	var buf bytes.Buffer
	err := summaryPromptTmpl.Execute(&buf, struct {
		Title    string
		DataType string
		Summary  string
	}{Title: title, DataType: dataType, Summary: summary})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// truncateRunes bounds s to n runes without splitting a UTF-8 sequence.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
