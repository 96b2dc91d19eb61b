package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"catalog-dashboard/models"
	"catalog-dashboard/utils"
)

// undefinedTable is the PostgreSQL error code for a missing relation.
const undefinedTable = "42P01"

// PostgresReader loads the catalog from a PostgreSQL table. It only reads.
type PostgresReader struct {
	db     *sql.DB
	table  string
	logger *utils.Logger
}

// NewPostgresReader opens a connection to PostgreSQL, waits for it to answer
// a ping and returns a ready-to-use PostgresReader.
func NewPostgresReader(ctx context.Context, dsn, table string, maxRetries int, logger *utils.Logger) (*PostgresReader, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{
		MaxAttempts: maxRetries,
		BaseDelay:   2 * time.Second,
		Logger:      logger,
	}
	if err := retry.Do(ctx, "postgres ping", func() error { return db.PingContext(ctx) }); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: %w", err)
	}

	return newPostgresReaderFromDB(db, table, logger), nil
}

func newPostgresReaderFromDB(db *sql.DB, table string, logger *utils.Logger) *PostgresReader {
	if table == "" {
		table = "titles"
	}
	return &PostgresReader{db: db, table: table, logger: logger}
}

func (pr *PostgresReader) query() string {
	selects := make([]string, len(columns))
	for i, col := range columns {
		selects[i] = pq.QuoteIdentifier(col) + "::text"
	}
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		strings.Join(selects, ", "), pq.QuoteIdentifier(pr.table), pq.QuoteIdentifier("show_id"))
}

// Load retrieves every stored title. A missing table is reported as
// found=false.
func (pr *PostgresReader) Load(ctx context.Context) ([]*models.RawTitle, bool, error) {
	rows, err := pr.db.QueryContext(ctx, pr.query())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == undefinedTable {
			pr.logger.Warn("[postgres] Table %q does not exist", pr.table)
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("postgres: fetch titles: %w", err)
	}
	defer rows.Close()

	var titles []*models.RawTitle
	for rows.Next() {
		var (
			showID, typ, title                                  sql.NullString
			releaseYear, dateAdded, duration, country, listedIn sql.NullString
			rating, director, cast, description                 sql.NullString
		)
		if err := rows.Scan(
			&showID, &typ, &title, &releaseYear, &dateAdded, &duration,
			&country, &listedIn, &rating, &director, &cast, &description,
		); err != nil {
			return nil, false, fmt.Errorf("postgres: scan row: %w", err)
		}
		titles = append(titles, &models.RawTitle{
			ShowID:      showID.String,
			Type:        typ.String,
			Title:       title.String,
			ReleaseYear: nullable(releaseYear),
			DateAdded:   nullable(dateAdded),
			Duration:    nullable(duration),
			Country:     nullable(country),
			ListedIn:    nullable(listedIn),
			Rating:      nullable(rating),
			Director:    nullable(director),
			Cast:        nullable(cast),
			Description: nullable(description),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("postgres: iterate rows: %w", err)
	}

	pr.logger.Info("[postgres] Loaded %d rows from table %s", len(titles), pr.table)
	return titles, true, nil
}

func (pr *PostgresReader) Close() error {
	return pr.db.Close()
}

func nullable(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return optional(ns.String)
}
