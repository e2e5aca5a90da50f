// cmd/veracity/extractor.go
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
	"golang.org/x/time/rate"
)

// bodyTextLimit caps the fallback body-text extraction.
const bodyTextLimit = 5000

// Extractor fetches a page and pulls out the best available title and body
// text. It is a best-effort collaborator: the scoring engine tolerates empty
// or partial text, so extraction failures degrade instead of aborting.
type Extractor struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// NewExtractor builds an extractor with a politeness rate limit on
// outbound fetches.
func NewExtractor(config *Config) *Extractor {
	return &Extractor{
		client: &http.Client{
			Timeout: time.Duration(config.FetchTimeoutSeconds) * time.Second,
		},
		limiter:   rate.NewLimiter(rate.Limit(config.FetchRatePerSecond), 1),
		userAgent: config.UserAgent,
	}
}

// Extract retrieves the page and returns (title, content). The title
// preference order is og:title, then <title>, then the raw URL; content
// preference is readability article text, then <article>/<main> text, then
// the first paragraph, then truncated body text.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (string, string, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return "", "", err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("Accept", "text/html, application/xhtml+xml")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch page: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxContentBytes))
	if err != nil {
		return "", "", fmt.Errorf("failed to read response: %v", err)
	}

	pageURL, _ := url.Parse(rawURL)

	// Readability first; it does the heavy lifting on most article pages.
	var title, content string
	if article, err := readability.FromReader(bytes.NewReader(body), pageURL); err == nil {
		title = strings.TrimSpace(article.Title)
		content = strings.TrimSpace(article.TextContent)
	}

	if title == "" || content == "" {
		fbTitle, fbContent := extractFallback(body)
		if title == "" {
			title = fbTitle
		}
		if content == "" {
			content = fbContent
		}
	}

	if title == "" {
		title = rawURL
	}
	return title, content, nil
}

// extractFallback pulls title and content out of raw HTML with goquery,
// falling back to a plain body-text walk.
func extractFallback(body []byte) (string, string) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", bodyText(body)
	}

	title, _ := doc.Find(`meta[property="og:title"]`).First().Attr("content")
	title = strings.TrimSpace(title)
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	content := strings.TrimSpace(doc.Find("article").First().Text())
	if content == "" {
		content = strings.TrimSpace(doc.Find("main").First().Text())
	}
	if content == "" {
		content = strings.TrimSpace(doc.Find("p").First().Text())
	}
	if content == "" {
		content = bodyText(body)
	}

	return title, content
}

// bodyText walks the HTML tree collecting text nodes, skipping script and
// style, truncated at bodyTextLimit.
func bodyText(body []byte) string {
	root, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if b.Len() >= bodyTextLimit {
			return
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "noscript") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				b.WriteString(text)
				b.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	text := strings.TrimSpace(b.String())
	if len(text) > bodyTextLimit {
		text = text[:bodyTextLimit]
	}
	return text
}

// NormalizeDomain lowercases a hostname and strips the www prefix.
func NormalizeDomain(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	host = strings.TrimPrefix(host, "www.")
	return host
}

// DomainFromURL extracts the normalized domain from a raw URL, returning ""
// when the URL cannot be parsed. A missing scheme is tolerated.
func DomainFromURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}
	if !strings.Contains(rawURL, "://") {
		rawURL = "https://" + rawURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return NormalizeDomain(parsed.Hostname())
}
