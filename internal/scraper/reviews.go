package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/reisya-nurfaris-da/tokped-reviews-scraper/internal/models"
	"github.com/reisya-nurfaris-da/tokped-reviews-scraper/internal/parser"
	"github.com/reisya-nurfaris-da/tokped-reviews-scraper/internal/ratelimit"
)

var (
	// ErrContentTimeout means the review container never mounted after the
	// load+reload sequence; the run cannot produce anything.
	ErrContentTimeout = errors.New("review content did not appear in time")
	// ErrPageTimeout means a pagination button the bound promised never
	// appeared.
	ErrPageTimeout = errors.New("pagination control did not appear in time")
)

const (
	// The expand control carries this class before any button text renders.
	expandButtonSelector = "button.css-89c2tx"
	// Truncated reviews expand via a button labeled "Selengkapnya".
	expandLabelSelector = `button:has-text("Selengkapnya")`
	// Page buttons are addressed by their localized aria-label, "Laman N".
	pageButtonFormat = `button[aria-label="Laman %d"]`
)

// Session is the browser surface the scraper drives. internal/browser
// provides the production implementation.
type Session interface {
	Open(url string) error
	Reload() error
	WaitFor(selector string, timeout time.Duration) bool
	Click(selector string) error
	ClickAll(selector string, settle time.Duration) int
	Content() (string, error)
}

// Options names the scraper's wait and settle policy. The short ExpandWait
// treats an absent expand control as a normal outcome; PageWait bounds the
// mandatory waits that are fatal on timeout.
type Options struct {
	ExpandWait  time.Duration
	ClickSettle time.Duration
	PageSettle  time.Duration
	PageWait    time.Duration
}

func DefaultOptions() *Options {
	return &Options{
		ExpandWait:  500 * time.Millisecond,
		ClickSettle: 200 * time.Millisecond,
		PageSettle:  700 * time.Millisecond,
		PageWait:    10 * time.Second,
	}
}

// ReviewScraper walks a review listing page by page, expanding truncated
// texts and extracting records from rendered-HTML snapshots. Pages are
// strictly sequential: the session has one tab and page transitions are
// stateful client-side navigations.
type ReviewScraper struct {
	session Session
	parser  *parser.ReviewParser
	opts    *Options
	logger  *slog.Logger
	now     func() time.Time
}

func NewReviewScraper(session Session, opts *Options, logger *slog.Logger) *ReviewScraper {
	if opts == nil {
		opts = DefaultOptions()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewScraper{
		session: session,
		parser:  parser.NewReviewParser(),
		opts:    opts,
		logger:  logger.With("component", "review_scraper"),
		now:     time.Now,
	}
}

// Scrape loads the listing, discovers the pagination bound and extracts
// every page's reviews in page order. On cancellation or a mandatory-wait
// timeout it returns with no records; partial results are never flushed.
func (rs *ReviewScraper) Scrape(ctx context.Context, url string) ([]models.Review, error) {
	if err := rs.session.Open(url); err != nil {
		return nil, err
	}
	// The review list only mounts after reloading the listing page once.
	if err := rs.session.Reload(); err != nil {
		return nil, err
	}
	if !rs.session.WaitFor(parser.ReviewContainerSelector, rs.opts.PageWait) {
		return nil, ErrContentTimeout
	}

	html, err := rs.session.Content()
	if err != nil {
		return nil, fmt.Errorf("failed to read listing content: %w", err)
	}
	lastPage := parser.LastPage(html)
	rs.logger.Info("discovered pagination bound", "last_page", lastPage)

	var all []models.Review
	for p := 1; p <= lastPage; p++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if p > 1 {
			if err := rs.gotoPage(ctx, p); err != nil {
				return nil, err
			}
		}
		reviews, err := rs.scrapePage(p)
		if err != nil {
			return nil, err
		}
		all = append(all, reviews...)
	}
	return all, nil
}

func (rs *ReviewScraper) gotoPage(ctx context.Context, p int) error {
	selector := fmt.Sprintf(pageButtonFormat, p)
	if !rs.session.WaitFor(selector, rs.opts.PageWait) {
		return fmt.Errorf("%w: page %d", ErrPageTimeout, p)
	}
	if err := rs.session.Click(selector); err != nil {
		return fmt.Errorf("failed to switch to page %d: %w", p, err)
	}
	return ratelimit.Settle(ctx, rs.opts.PageSettle)
}

func (rs *ReviewScraper) scrapePage(p int) ([]models.Review, error) {
	rs.expandReviews()

	html, err := rs.session.Content()
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot page %d: %w", p, err)
	}
	reviews, err := rs.parser.Parse(html, rs.now())
	if err != nil {
		return nil, fmt.Errorf("failed to parse page %d: %w", p, err)
	}

	rs.logger.Info("extracted reviews", "count", len(reviews), "page", p)
	return reviews, nil
}

// expandReviews clicks every "Selengkapnya" control so truncated review
// bodies are fully visible before the snapshot. Most reviews are short: when
// no control shows up within ExpandWait the page is taken as already
// expanded and extraction proceeds immediately.
func (rs *ReviewScraper) expandReviews() {
	if !rs.session.WaitFor(expandButtonSelector, rs.opts.ExpandWait) {
		return
	}
	clicked := rs.session.ClickAll(expandLabelSelector, rs.opts.ClickSettle)
	rs.logger.Debug("expanded review texts", "clicked", clicked)
}
