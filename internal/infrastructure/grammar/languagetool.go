package grammar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"resume-insight/internal/domain/scoring"
)

// Client checks text against a LanguageTool server. It implements
// scoring.GrammarChecker; the scoring engine treats any error here as a
// degraded checker and falls back to its neutral sub-score.
type Client struct {
	baseURL  string
	language string
	http     *http.Client
}

func NewClient(baseURL, language string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if language = strings.TrimSpace(language); language == "" {
		language = "en-US"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:  baseURL,
		language: language,
		http:     &http.Client{Timeout: timeout},
	}
}

type checkResponse struct {
	Matches []struct {
		Message string `json:"message"`
		Offset  int    `json:"offset"`
		Length  int    `json:"length"`
		Context struct {
			Text string `json:"text"`
		} `json:"context"`
	} `json:"matches"`
}

func (c *Client) Check(ctx context.Context, text string) ([]scoring.Issue, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	form := url.Values{}
	form.Set("text", text)
	form.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/check", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("languagetool: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("languagetool: decode response: %w", err)
	}

	issues := make([]scoring.Issue, 0, len(out.Matches))
	for _, m := range out.Matches {
		issues = append(issues, scoring.Issue{
			Message: m.Message,
			Context: m.Context.Text,
			Offset:  m.Offset,
			Length:  m.Length,
		})
	}
	return issues, nil
}
