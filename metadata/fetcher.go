// Package metadata retrieves best-effort page titles for bookmarks created
// without one. Every failure degrades to an empty result; a broken remote
// page must never fail a bookmark create.
package metadata

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"notemark/middleware"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

const (
	fetchTimeout = 5 * time.Second

	// Some sites serve stripped-down or empty pages to unknown clients.
	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

	// maxBodyBytes caps how much of the page is read. Titles live in the
	// document head, well inside the first megabyte.
	maxBodyBytes = 1 << 20
)

type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: fetchTimeout,
		},
	}
}

// PageTitle fetches the page at url and extracts a title candidate, checking
// og:title, twitter:title, the title element, then the first h1. Returns ""
// when nothing usable is found or the fetch fails for any reason.
func (f *Fetcher) PageTitle(ctx context.Context, url string) string {
	title := f.pageTitle(ctx, url)
	middleware.TrackMetadataFetch(title != "")
	return title
}

func (f *Fetcher) pageTitle(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("url", url).Msg("metadata fetch failed")
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ""
	}
	if contentType := resp.Header.Get("Content-Type"); contentType != "" &&
		!strings.Contains(contentType, "html") {
		return ""
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return ""
	}

	candidates := extractCandidates(doc)
	for _, key := range []string{"og:title", "twitter:title", "title", "h1"} {
		if title := collapseWhitespace(candidates[key]); title != "" {
			return title
		}
	}
	return ""
}

// extractCandidates walks the document once, recording the first occurrence
// of each title source.
func extractCandidates(doc *html.Node) map[string]string {
	candidates := map[string]string{}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "meta":
				if key, content := metaTitle(n); key != "" {
					setFirst(candidates, key, content)
				}
			case "title":
				setFirst(candidates, "title", textContent(n))
			case "h1":
				setFirst(candidates, "h1", textContent(n))
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return candidates
}

// metaTitle inspects a meta element for the og:title property or the
// twitter:title name and returns the matched key with its content.
func metaTitle(n *html.Node) (string, string) {
	var property, name, content string
	for _, attr := range n.Attr {
		switch strings.ToLower(attr.Key) {
		case "property":
			property = strings.ToLower(attr.Val)
		case "name":
			name = strings.ToLower(attr.Val)
		case "content":
			content = attr.Val
		}
	}

	if property == "og:title" {
		return "og:title", content
	}
	if name == "twitter:title" {
		return "twitter:title", content
	}
	return "", ""
}

func setFirst(candidates map[string]string, key, value string) {
	if _, ok := candidates[key]; !ok {
		candidates[key] = value
	}
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
