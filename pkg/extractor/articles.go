// Package extractor turns externally linked pages into plain text so
// link posts can contribute their article's words to the analysis.
package extractor

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/cmcdowell/reddit-analysis/models"
)

// Articles fetches linked pages and distills them to readable text.
type Articles struct {
	client    *http.Client
	userAgent string
}

func NewArticles(userAgent string) *Articles {
	return &Articles{
		client:    &http.Client{},
		userAgent: userAgent,
	}
}

// Text fetches rawURL and returns the page's main content as plain text.
func (a *Articles) Text(rawURL string) (string, error) {
	html, err := a.fetch(rawURL)
	if err != nil {
		return "", err
	}
	return Distill(rawURL, html)
}

func (a *Articles) fetch(rawURL string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", a.userAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &models.FetchError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}

// Distill reduces raw HTML to the text of its main article content, one
// line per content-bearing element.
func Distill(rawURL, html string) (string, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return "", fmt.Errorf("failed to distill article: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return "", fmt.Errorf("failed to parse article content: %w", err)
	}

	var blocks []string
	if title := normalizeText(article.Title); title != "" {
		blocks = append(blocks, title)
	}
	doc.Find("h1,h2,h3,h4,p,li,table,pre").Each(func(i int, s *goquery.Selection) {
		if text := normalizeText(s.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})

	return strings.Join(blocks, "\n"), nil
}

// normalizeText collapses a multi-line string into single-spaced text.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
