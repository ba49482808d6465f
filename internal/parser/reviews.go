package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/reisya-nurfaris-da/tokped-reviews-scraper/internal/models"
)

// ReviewContainerSelector matches one rendered customer review. The scraper
// also waits on it to decide whether review content has mounted at all.
const ReviewContainerSelector = "article.css-15m2bcr"

const (
	ratingSelector         = `div[data-testid="icnStarRating"]`
	dateSelector           = "p.css-vqrjg4-unf-heading"
	nameSelector           = "span.name"
	textSelector           = `span[data-testid="lblItemUlasan"]`
	paginationItemSelector = "button.css-5p3bh2-unf-pagination-item"

	// The star-rating aria-label reads "bintang N"; anything without the
	// marker word is not a rating label.
	ratingMarker = "bintang"
)

// ReviewParser extracts review records from a rendered-HTML snapshot.
type ReviewParser struct{}

func NewReviewParser() *ReviewParser {
	return &ReviewParser{}
}

// Parse returns one record per review container, in document order. Each of
// the four fields is resolved independently: a container missing an element
// keeps that field's sentinel, and a container missing everything still
// yields an all-sentinel record.
func (p *ReviewParser) Parse(html string, now time.Time) ([]models.Review, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var reviews []models.Review
	doc.Find(ReviewContainerSelector).Each(func(_ int, art *goquery.Selection) {
		reviews = append(reviews, p.parseContainer(art, now))
	})

	return reviews, nil
}

func (p *ReviewParser) parseContainer(art *goquery.Selection, now time.Time) models.Review {
	review := models.NewReview()

	if label, ok := art.Find(ratingSelector).First().Attr("aria-label"); ok {
		review.Rating = parseRating(label)
	}

	if date := art.Find(dateSelector).First(); date.Length() > 0 {
		review.Date = NormalizeDate(strings.TrimSpace(date.Text()), now)
	}

	if name := art.Find(nameSelector).First(); name.Length() > 0 {
		review.Name = strings.TrimSpace(name.Text())
	}

	if text := art.Find(textSelector).First(); text.Length() > 0 {
		review.Text = strings.TrimSpace(text.Text())
	}

	return review
}

// parseRating reads the star count from an accessibility label such as
// "bintang 5": the count is the label's final whitespace-delimited token.
func parseRating(label string) int {
	if !strings.Contains(label, ratingMarker) {
		return 0
	}
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0
	}
	return n
}

// LastPage discovers the pagination bound from the numeric page-button
// labels, ignoring controls like "Next". A listing without a numeric
// pagination control is a single page.
func LastPage(html string) int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 1
	}

	last := 1
	doc.Find(paginationItemSelector).Each(func(_ int, btn *goquery.Selection) {
		if n, err := strconv.Atoi(strings.TrimSpace(btn.Text())); err == nil && n > last {
			last = n
		}
	})
	return last
}
