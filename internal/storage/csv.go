package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/reisya-nurfaris-da/tokped-reviews-scraper/internal/models"
)

// Sink persists a finished review collection. It is handed the full
// collection exactly once, after every page has been processed.
type Sink interface {
	Write(reviews []models.Review, destination string) error
}

// CSVSink writes reviews as a CSV file with a fixed header row. Rows go to a
// temp file in the destination directory first; the rename after a clean
// flush makes the destination appear atomically, so an aborted run leaves
// the previous file (or none) in place.
type CSVSink struct{}

func NewCSVSink() *CSVSink {
	return &CSVSink{}
}

func (s *CSVSink) Write(reviews []models.Review, destination string) error {
	tmp, err := os.CreateTemp(filepath.Dir(destination), filepath.Base(destination)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(models.Fields()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range reviews {
		row := []string{r.Name, strconv.Itoa(r.Rating), r.Date, r.Text}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush rows: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), destination); err != nil {
		return fmt.Errorf("failed to replace %s: %w", destination, err)
	}
	return nil
}
