package storage

import (
	"context"

	"catalog-dashboard/models"
)

// TitleSource is the interface any catalog backend must satisfy.
//
// Load returns found=false with a nil error when the dataset does not exist.
// Any other failure is returned as an error and should be treated as fatal.
type TitleSource interface {
	Load(ctx context.Context) (titles []*models.RawTitle, found bool, err error)
	Close() error
}

// columns lists every catalog column the loaders understand.
var columns = []string{
	"show_id", "type", "title", "release_year", "date_added",
	"duration", "country", "listed_in", "rating", "director", "cast", "description",
}

// requiredColumns must be present in a CSV header.
var requiredColumns = []string{"show_id", "type", "title", "release_year"}

// optional turns an empty value into nil, mirroring a missing cell.
func optional(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}
