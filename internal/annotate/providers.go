package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/florafind/florasearch/pkg/types"
)

// Provider configuration
const (
	ProviderHTTP  = "http"
	ProviderLocal = "local"

	// Retry configuration
	MaxRetries        = 3
	InitialBackoffMs  = 100
	MaxBackoffMs      = 2000
	BackoffMultiplier = 2.0
)

// HTTPProvider implements Annotator against a spaCy-style annotation
// service exposing POST /annotate.
type HTTPProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPProvider creates an annotator that calls an external annotation
// service.
func NewHTTPProvider(baseURL string) (*HTTPProvider, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("%w: annotation service URL not set", ErrNoProviderEnabled)
	}

	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (p *HTTPProvider) Annotate(ctx context.Context, text string) ([]types.Token, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	config := DefaultRetryConfig()
	tokens, err := retryWithBackoff(ctx, config, func() ([]types.Token, error) {
		return p.callAPI(ctx, text)
	})
	if err != nil {
		return nil, fmt.Errorf("%w after %d retries: %v", ErrProviderFailed, MaxRetries, err)
	}

	return tokens, nil
}

func (p *HTTPProvider) callAPI(ctx context.Context, text string) ([]types.Token, error) {
	reqBody := map[string]interface{}{
		"text": text,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/annotate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api call: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("api error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var apiResp struct {
		Tokens []struct {
			Text  string `json:"text"`
			Lemma string `json:"lemma"`
			POS   string `json:"pos"`
			Stop  bool   `json:"is_stop"`
			Punct bool   `json:"is_punct"`
		} `json:"tokens"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	tokens := make([]types.Token, 0, len(apiResp.Tokens))
	for _, t := range apiResp.Tokens {
		lemma := t.Lemma
		if lemma == "" {
			lemma = t.Text
		}
		pos := t.POS
		if pos == "" {
			pos = types.POSUnknown
		}
		tokens = append(tokens, types.Token{
			Text:  strings.ToLower(t.Text),
			Lemma: strings.ToLower(lemma),
			POS:   pos,
			Stop:  t.Stop || t.Punct || len(t.Text) <= 1,
		})
	}

	return tokens, nil
}

func (p *HTTPProvider) Provider() string {
	return ProviderHTTP
}

func (p *HTTPProvider) Close() error {
	p.httpClient.CloseIdleConnections()
	return nil
}

// wordPattern matches word tokens on \b boundaries, mirroring the
// degraded-mode contract: surface tokens only.
var wordPattern = regexp.MustCompile(`\b[\w'-]+\b`)

// stopwords is a small English function-word table used by the local
// provider to flag tokens excluded from keyword extraction.
var stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true, "but": true,
	"for": true, "of": true, "in": true, "on": true, "at": true, "to": true,
	"with": true, "my": true, "me": true, "i": true, "is": true, "are": true,
	"was": true, "be": true, "this": true, "that": true, "it": true,
	"do": true, "does": true, "can": true, "should": true, "need": true,
	"want": true, "some": true, "any": true, "about": true,
}

// LocalProvider is the degraded-mode tokenizer: word-boundary splitting,
// identity lemma, unknown part-of-speech. Always available.
type LocalProvider struct{}

// NewLocalProvider creates the fallback tokenizer.
func NewLocalProvider() (*LocalProvider, error) {
	return &LocalProvider{}, nil
}

func (l *LocalProvider) Annotate(ctx context.Context, text string) ([]types.Token, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}

	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]types.Token, 0, len(words))
	for _, w := range words {
		tokens = append(tokens, types.Token{
			Text:  w,
			Lemma: w,
			POS:   types.POSUnknown,
			Stop:  stopwords[w] || len(w) <= 1,
		})
	}

	return tokens, nil
}

func (l *LocalProvider) Provider() string {
	return ProviderLocal
}

func (l *LocalProvider) Close() error {
	return nil
}
