package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

const (
	serpEngine   = "google_news"
	serpCountry  = "us"
	serpLanguage = "en"
	redactedKey  = "[API_KEY]"
)

type SerpAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewSerpAPIClient builds a Google News search client. The HTTP client has no
// timeout of its own; callers bound each lookup through the context.
func NewSerpAPIClient(apiKey, baseURL string) *SerpAPIClient {
	return &SerpAPIClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

func (c *SerpAPIClient) Name() string {
	return "SerpAPI"
}

func (c *SerpAPIClient) Search(ctx context.Context, country string) ([]Headline, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, ErrMissingCountry
	}

	target := c.buildURL(country, c.apiKey)
	slog.Debug("calling search provider", "provider", c.Name(), "url", redact(target, c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("serpapi request: %w: %s", ErrNetwork, redact(err.Error(), c.apiKey))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("serpapi fetch: %w: %s", ErrNetwork, redact(err.Error(), c.apiKey))
	}
	defer resp.Body.Close()

	slog.Debug("search provider responded", "provider", c.Name(), "status", resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("serpapi read: %w: %v", ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{
			Provider:   c.Name(),
			StatusCode: resp.StatusCode,
			Body:       redact(string(body), c.apiKey),
		}
	}

	var raw serpResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("serpapi decode: %w: %v", ErrUnexpectedShape, err)
	}

	if raw.NewsResults == nil {
		return nil, fmt.Errorf("serpapi decode: %w: no news_results in response", ErrUnexpectedShape)
	}

	headlines := make([]Headline, 0, len(*raw.NewsResults))
	for _, item := range *raw.NewsResults {
		headlines = append(headlines, Headline{
			Title:   item.Title,
			Snippet: item.Snippet,
			Link:    item.Link,
		})
	}

	return headlines, nil
}

func (c *SerpAPIClient) buildURL(country, key string) string {
	params := url.Values{}
	params.Set("engine", serpEngine)
	params.Set("q", country+" news")
	params.Set("gl", serpCountry)
	params.Set("hl", serpLanguage)
	params.Set("api_key", key)
	return c.baseURL + "?" + params.Encode()
}

// redact strips the key from s in both raw and query-escaped form.
func redact(s, key string) string {
	if key == "" {
		return s
	}
	s = strings.ReplaceAll(s, key, redactedKey)
	return strings.ReplaceAll(s, url.QueryEscape(key), redactedKey)
}

type serpResponse struct {
	NewsResults *[]serpResult `json:"news_results"`
}

type serpResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}
