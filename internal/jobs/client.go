// Package jobs provides the job-search collaborator: a JSearch
// (RapidAPI) client with a fixed sample fallback for unconfigured runs.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/career-mentor/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 8 * time.Second

// DefaultHost is the JSearch RapidAPI host.
const DefaultHost = "jsearch.p.rapidapi.com"

// DefaultRegion scopes the search query ("<role> in <region>").
const DefaultRegion = "India"

// Error represents an error during a job search.
type Error struct {
	Query   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job search error for %q: %s: %v", e.Query, e.Message, e.Cause)
	}
	return fmt.Sprintf("job search error for %q: %s", e.Query, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the job-search client.
type Options struct {
	APIKey  string
	Host    string
	Region  string
	Timeout time.Duration
	BaseURL string // overridable for tests; defaults to https://<Host>/search
}

// DefaultOptions returns sensible defaults for the JSearch API.
func DefaultOptions() *Options {
	return &Options{
		Host:    DefaultHost,
		Region:  DefaultRegion,
		Timeout: DefaultTimeout,
	}
}

// Client searches live job listings for a role title.
type Client struct {
	opts *Options
	http *http.Client
}

// NewClient creates a job-search client. An empty API key is allowed;
// searches then return the fixed sample listings instead of calling
// the provider.
func NewClient(opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Host == "" {
		opts.Host = DefaultHost
	}
	if opts.Region == "" {
		opts.Region = DefaultRegion
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Client{
		opts: opts,
		http: &http.Client{Timeout: opts.Timeout},
	}
}

// Configured reports whether a provider API key is present.
func (c *Client) Configured() bool {
	return c.opts.APIKey != ""
}

// searchResponse mirrors the JSearch response envelope.
type searchResponse struct {
	Data []struct {
		JobTitle       string `json:"job_title"`
		EmployerName   string `json:"employer_name"`
		JobCity        string `json:"job_city"`
		JobApplyLink   string `json:"job_apply_link"`
		JobDescription string `json:"job_description"`
	} `json:"data"`
}

// Search fetches listings for a role title, templated as
// "<role> in <region>". Unconfigured clients return the sample
// listings; provider or network failures return a typed *Error that
// the caller is expected to log and degrade to an empty list.
func (c *Client) Search(ctx context.Context, role string) ([]types.Listing, error) {
	query := fmt.Sprintf("%s in %s", role, c.opts.Region)

	if !c.Configured() {
		return SampleListings(), nil
	}

	baseURL := c.opts.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s/search", c.opts.Host)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("num_pages", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, &Error{Query: query, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("X-RapidAPI-Key", c.opts.APIKey)
	req.Header.Set("X-RapidAPI-Host", c.opts.Host)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Query: query, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Query: query, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &Error{Query: query, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &Error{Query: query, Message: "failed to parse response JSON", Cause: err}
	}

	listings := make([]types.Listing, 0, len(parsed.Data))
	for _, j := range parsed.Data {
		title := j.JobTitle
		if title == "" {
			title = "Job"
		}
		company := j.EmployerName
		if company == "" {
			company = "Company"
		}
		listings = append(listings, types.Listing{
			Title:       title,
			Company:     company,
			City:        j.JobCity,
			ApplyURL:    j.JobApplyLink,
			Description: flattenDescription(j.JobDescription),
		})
	}
	return listings, nil
}

// SampleListings returns the fixed two-item list shown when no
// provider key is configured.
func SampleListings() []types.Listing {
	return []types.Listing{
		{Title: "Data Analyst", Company: "Contoso Analytics", City: "Bangalore", ApplyURL: "https://example.com"},
		{Title: "Data Engineer", Company: "Atlas Systems", City: "Pune", ApplyURL: "https://example.com"},
	}
}

// flattenDescription reduces a job description, which some providers
// return as an HTML fragment, to whitespace-normalized plain text.
func flattenDescription(desc string) string {
	desc = strings.TrimSpace(desc)
	if desc == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(desc))
	if err != nil {
		return cleanWhitespace(desc)
	}
	return cleanWhitespace(doc.Text())
}

// cleanWhitespace normalizes whitespace in text.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
