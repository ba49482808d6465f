package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/reisya-nurfaris-da/tokped-reviews-scraper/internal/browser"
	"github.com/reisya-nurfaris-da/tokped-reviews-scraper/internal/config"
	"github.com/reisya-nurfaris-da/tokped-reviews-scraper/internal/scraper"
	"github.com/reisya-nurfaris-da/tokped-reviews-scraper/internal/storage"
	"github.com/reisya-nurfaris-da/tokped-reviews-scraper/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		url        = flag.String("url", "", "Tokopedia product review URL (required)")
		output     = flag.String("output", "reviews.csv", "Path to the output CSV file")
		chromePath = flag.String("chrome-path", "", "Path to a Chrome executable (defaults to the managed browser)")
		headless   = flag.Bool("headless", true, "Run the browser in headless mode")
	)
	flag.Parse()

	if *url == "" {
		fmt.Fprintln(os.Stderr, "missing required -url flag")
		flag.Usage()
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("Invalid configuration: %v", err)
		return 1
	}

	logg := logger.New(cfg.Logging.Level, cfg.Logging.Format).With("run_id", uuid.NewString())
	logg.Info("starting review scraper", "url", *url)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := browser.New(&browser.Options{
		Headless:       *headless && cfg.Browser.Headless,
		ExecutablePath: *chromePath,
		Timeout:        cfg.Browser.Timeout,
		UserAgent:      browser.DefaultOptions().UserAgent,
		ViewportWidth:  cfg.Browser.ViewportWidth,
		ViewportHeight: cfg.Browser.ViewportHeight,
		AcceptLanguage: cfg.Browser.AcceptLanguage,
		TimezoneID:     cfg.Browser.TimezoneID,
		Locale:         cfg.Browser.Locale,
	})
	if err != nil {
		logg.Error("failed to launch browser", "error", err)
		return 1
	}
	defer session.Close()

	s := scraper.NewReviewScraper(session, &scraper.Options{
		ExpandWait:  cfg.Scraper.ExpandWait,
		ClickSettle: cfg.Scraper.ClickSettle,
		PageSettle:  cfg.Scraper.PageSettle,
		PageWait:    cfg.Scraper.PageWait,
	}, logg)

	reviews, err := s.Scrape(ctx, *url)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logg.Warn("run interrupted by user")
		} else {
			logg.Error("scrape failed", "error", err)
		}
		return 1
	}

	sink := storage.NewCSVSink()
	if err := sink.Write(reviews, *output); err != nil {
		logg.Error("failed to write output", "error", err)
		return 1
	}

	logg.Info("saved reviews", "count", len(reviews), "destination", *output)
	return 0
}
