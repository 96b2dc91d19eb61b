package storage

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"catalog-dashboard/models"
	"catalog-dashboard/utils"
)

// CSVReader loads the catalog from a delimited file.
type CSVReader struct {
	path   string
	logger *utils.Logger
}

// NewCSVReader creates a reader for the file at path. Nothing is opened
// until Load is called.
func NewCSVReader(path string, logger *utils.Logger) *CSVReader {
	return &CSVReader{path: path, logger: logger}
}

// Path returns the file the reader loads from.
func (c *CSVReader) Path() string {
	return c.path
}

// Load reads every row of the file. A missing file is reported as
// found=false; malformed CSV is an error.
func (c *CSVReader) Load(ctx context.Context) ([]*models.RawTitle, bool, error) {
	f, err := os.Open(c.path)
	if errors.Is(err, os.ErrNotExist) {
		c.logger.Warn("[csv] Dataset not found at %s", c.path)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("csv: open %q: %w", c.path, err)
	}
	defer f.Close()

	titles, err := c.read(ctx, f)
	if err != nil {
		return nil, false, err
	}

	c.logger.Info("[csv] Loaded %d rows from %s", len(titles), c.path)
	return titles, true, nil
}

func (c *CSVReader) read(ctx context.Context, r io.Reader) ([]*models.RawTitle, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := readHeader(reader)
	if err != nil {
		return nil, err
	}
	for _, col := range requiredColumns {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("csv: required column %q missing from header", col)
		}
	}
	for _, col := range columns {
		if _, ok := header[col]; !ok {
			c.logger.Debug("[csv] Optional column %q not present", col)
		}
	}

	titles := make([]*models.RawTitle, 0, 1024)
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: read line %d: %w", line, err)
		}
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}

		titles = append(titles, &models.RawTitle{
			ShowID:      valueAt(header, row, "show_id"),
			Type:        valueAt(header, row, "type"),
			Title:       valueAt(header, row, "title"),
			ReleaseYear: optional(valueAt(header, row, "release_year")),
			DateAdded:   optional(valueAt(header, row, "date_added")),
			Duration:    optional(valueAt(header, row, "duration")),
			Country:     optional(valueAt(header, row, "country")),
			ListedIn:    optional(valueAt(header, row, "listed_in")),
			Rating:      optional(valueAt(header, row, "rating")),
			Director:    optional(valueAt(header, row, "director")),
			Cast:        optional(valueAt(header, row, "cast")),
			Description: optional(valueAt(header, row, "description")),
		})
	}

	return titles, nil
}

// Close is a no-op; the file is closed by Load.
func (c *CSVReader) Close() error {
	return nil
}

func readHeader(r *csv.Reader) (map[string]int, error) {
	row, err := r.Read()
	if err == io.EOF {
		return nil, errors.New("csv: file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}
	header := make(map[string]int, len(row))
	for idx, name := range row {
		name = strings.TrimPrefix(name, "\ufeff")
		header[strings.TrimSpace(strings.ToLower(name))] = idx
	}
	return header, nil
}

func valueAt(header map[string]int, row []string, key string) string {
	idx, ok := header[key]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
