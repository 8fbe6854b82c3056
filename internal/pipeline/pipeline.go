// Package pipeline orchestrates the fetch, parse, extract, and consolidate
// steps for one organization page at a time.
package pipeline

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/nonprofit-cli/internal/consolidate"
	"github.com/sells-group/nonprofit-cli/internal/extract"
	"github.com/sells-group/nonprofit-cli/internal/fetcher"
	"github.com/sells-group/nonprofit-cli/internal/filing"
	"github.com/sells-group/nonprofit-cli/internal/propublica"
	"github.com/sells-group/nonprofit-cli/internal/schema"
)

// ErrNothingProcessed is returned when an organization page yielded no
// usable filings at all.
var ErrNothingProcessed = eris.New("pipeline: no filings processed")

// DocumentCache persists fetched filing bodies between runs. A nil cache
// disables caching.
type DocumentCache interface {
	GetDocument(ctx context.Context, url string) ([]byte, error)
	PutDocument(ctx context.Context, url string, body []byte, ttl time.Duration) error
}

// Options configures a Processor.
type Options struct {
	// MaxFilings caps how many filings are pulled per organization,
	// newest first. Zero means the discovery default.
	MaxFilings int
	// BaseURL overrides the document host, for tests.
	BaseURL string
	// CacheTTL is how long fetched documents stay valid.
	CacheTTL time.Duration
}

// Processor runs the extraction pipeline for organizations of one form
// variant.
type Processor struct {
	fetcher fetcher.Fetcher
	cache   DocumentCache
	variant schema.Variant
	catalog []schema.FieldSpec
	opts    Options
}

// New creates a Processor. cache may be nil.
func New(f fetcher.Fetcher, cache DocumentCache, variant schema.Variant, opts Options) *Processor {
	if opts.CacheTTL == 0 {
		opts.CacheTTL = 7 * 24 * time.Hour
	}
	return &Processor{
		fetcher: f,
		cache:   cache,
		variant: variant,
		catalog: schema.Catalog(variant),
		opts:    opts,
	}
}

// ProcessOrganization discovers an organization's filings, extracts each
// one, and merges the results into groups. It returns the number of
// filings successfully processed. Individual filing failures are logged
// and skipped; ErrNothingProcessed is returned only when none survive.
func (p *Processor) ProcessOrganization(ctx context.Context, groups *consolidate.Groups, orgURL string) (int, error) {
	log := zap.L().With(zap.String("org_url", orgURL))

	listing, err := propublica.DiscoverFilings(ctx, p.fetcher, orgURL, propublica.Options{
		BaseURL:    p.opts.BaseURL,
		MaxFilings: p.opts.MaxFilings,
	})
	if err != nil {
		return 0, eris.Wrapf(err, "pipeline: discover filings for %s", orgURL)
	}
	if len(listing.DocumentURLs) == 0 {
		log.Warn("no filing documents on organization page")
		return 0, ErrNothingProcessed
	}

	processed := 0
	for _, docURL := range listing.DocumentURLs {
		rec, err := p.processFiling(ctx, docURL, listing.Category)
		if err != nil {
			log.Warn("skipping filing", zap.String("doc_url", docURL), zap.Error(err))
			continue
		}
		groups.Add(*rec)
		processed++
	}

	if processed == 0 {
		return 0, ErrNothingProcessed
	}
	log.Info("processed organization",
		zap.Int("filings", processed),
		zap.Int("discovered", len(listing.DocumentURLs)),
	)
	return processed, nil
}

// processFiling fetches and extracts a single filing document.
func (p *Processor) processFiling(ctx context.Context, docURL, category string) (*consolidate.FilingRecord, error) {
	body, err := p.fetchDocument(ctx, docURL)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: fetch document")
	}

	doc, err := filing.Classify(body)
	if err != nil {
		return nil, eris.Wrap(err, "pipeline: classify document")
	}

	year, yearKnown := filing.TaxYear(doc)
	rec := &consolidate.FilingRecord{
		RawName:   filing.OrgName(doc),
		Category:  category,
		SourceURL: docURL,
		TaxYear:   year,
		YearKnown: yearKnown,
		Fields:    extract.ResolveAll(doc, p.catalog),
	}
	if p.variant == schema.Form990 {
		rec.Executives = extract.Executives(doc)
		rec.Endowment = extract.Endowment(doc)
	}
	if p.variant == schema.ScheduleH {
		rec.Ventures = extract.JointVentures(doc)
	}
	return rec, nil
}

// fetchDocument returns the document body, consulting the cache first.
func (p *Processor) fetchDocument(ctx context.Context, docURL string) ([]byte, error) {
	if p.cache != nil {
		cached, err := p.cache.GetDocument(ctx, docURL)
		if err != nil {
			zap.L().Warn("cache read failed", zap.String("doc_url", docURL), zap.Error(err))
		} else if cached != nil {
			zap.L().Debug("cache hit", zap.String("doc_url", docURL))
			return cached, nil
		}
	}

	body, err := p.fetcher.FetchBytes(ctx, docURL)
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		if err := p.cache.PutDocument(ctx, docURL, body, p.opts.CacheTTL); err != nil {
			zap.L().Warn("cache write failed", zap.String("doc_url", docURL), zap.Error(err))
		}
	}
	return body, nil
}
