// Package propublica discovers filing documents on ProPublica's Nonprofit
// Explorer organization pages.
package propublica

import (
	"context"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/nonprofit-cli/internal/fetcher"
)

// BaseURL is the ProPublica projects host used to build download links.
const BaseURL = "https://projects.propublica.org"

// Listing is the result of scraping one organization page.
type Listing struct {
	// Category is the NTEE category tag, or "Unknown" when the page lacks one.
	Category string
	// DocumentURLs are filing download links, newest first, capped at MaxFilings.
	DocumentURLs []string
}

// Options configures discovery.
type Options struct {
	BaseURL    string
	MaxFilings int // cap on document links, newest first; default 5
}

// DiscoverFilings scrapes an organization page for its NTEE category and the
// most recent filing download links.
func DiscoverFilings(ctx context.Context, f fetcher.Fetcher, orgPageURL string, opts Options) (*Listing, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = BaseURL
	}
	if opts.MaxFilings == 0 {
		opts.MaxFilings = 5
	}

	body, err := f.Download(ctx, orgPageURL)
	if err != nil {
		return nil, eris.Wrapf(err, "propublica: fetch organization page %s", orgPageURL)
	}
	defer body.Close() //nolint:errcheck

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, eris.Wrap(err, "propublica: parse organization page")
	}

	listing := &Listing{
		Category:     extractCategory(doc),
		DocumentURLs: extractDocumentURLs(doc, opts.BaseURL, opts.MaxFilings),
	}

	zap.L().Debug("discovered filings",
		zap.String("org_url", orgPageURL),
		zap.String("category", listing.Category),
		zap.Int("documents", len(listing.DocumentURLs)),
	)

	return listing, nil
}

// extractCategory pulls the NTEE category from the page header. The element
// text reads like "NTEE classrole: Education / University"; keep the part
// between the colon and the first slash.
func extractCategory(doc *goquery.Document) string {
	text := strings.TrimSpace(doc.Find("p.ntee-category").First().Text())
	if text == "" {
		return "Unknown"
	}
	if _, after, ok := strings.Cut(text, ":"); ok {
		text = after
	}
	text, _, _ = strings.Cut(text, "/")
	text = strings.TrimSpace(text)
	if text == "" {
		return "Unknown"
	}
	return text
}

// extractDocumentURLs collects XML download buttons. Object IDs embed the
// filing year, so a descending sort puts the newest filings first.
func extractDocumentURLs(doc *goquery.Document, baseURL string, maxFilings int) []string {
	var urls []string
	doc.Find(`a.btn[target="_blank"]`).Each(func(_ int, sel *goquery.Selection) {
		if !strings.Contains(sel.Text(), "XML") {
			return
		}
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		_, objectID, ok := strings.Cut(href, "object_id=")
		if !ok || objectID == "" {
			return
		}
		urls = append(urls, baseURL+"/nonprofits/download-xml?object_id="+objectID)
	})

	sort.Sort(sort.Reverse(sort.StringSlice(urls)))
	if len(urls) > maxFilings {
		urls = urls[:maxFilings]
	}
	return urls
}
