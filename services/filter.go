package services

import (
	"strings"

	"catalog-dashboard/models"
)

// FilterEngine narrows an enriched dataset down to the titles matching a
// set of criteria.
type FilterEngine struct{}

// NewFilterEngine creates a FilterEngine.
func NewFilterEngine() *FilterEngine {
	return &FilterEngine{}
}

// predicate reports whether a title passes one criterion.
type predicate func(*models.Title) bool

// Apply returns a new dataset holding the titles that pass every active
// predicate, in their original order. The input is never modified.
func (f *FilterEngine) Apply(ds *models.Dataset, c models.Criteria) *models.Dataset {
	preds := f.predicates(c)

	out := make([]*models.Title, 0, ds.Len())
	ds.Each(func(t *models.Title) {
		for _, p := range preds {
			if !p(t) {
				return
			}
		}
		out = append(out, t)
	})
	return models.NewDataset(out)
}

func (f *FilterEngine) predicates(c models.Criteria) []predicate {
	types := toSet(c.Types)
	preds := []predicate{
		func(t *models.Title) bool {
			_, ok := types[t.Type]
			return ok
		},
	}

	if yr := c.YearRange; yr != nil {
		lo, hi := yr.Min, yr.Max
		preds = append(preds, func(t *models.Title) bool {
			return t.ReleaseYear != nil && *t.ReleaseYear >= lo && *t.ReleaseYear <= hi
		})
	}

	if len(c.Countries) > 0 {
		countries := toSet(c.Countries)
		preds = append(preds, func(t *models.Title) bool {
			_, ok := countries[t.PrimaryCountry]
			return ok
		})
	}

	if len(c.Ratings) > 0 {
		ratings := toSet(c.Ratings)
		preds = append(preds, func(t *models.Title) bool {
			if t.Rating == nil {
				return false
			}
			_, ok := ratings[*t.Rating]
			return ok
		})
	}

	if len(c.Genres) > 0 {
		genres := toSet(c.Genres)
		preds = append(preds, func(t *models.Title) bool {
			_, ok := genres[t.MainGenre]
			return ok
		})
	}

	if c.TitleContains != "" {
		needle := strings.ToLower(c.TitleContains)
		preds = append(preds, func(t *models.Title) bool {
			return t.Title != "" && strings.Contains(strings.ToLower(t.Title), needle)
		})
	}

	return preds
}

// DefaultCriteria selects everything the options offer: all types and the
// full year span, with the optional filters left empty.
func DefaultCriteria(opts models.FilterOptions) models.Criteria {
	types := make([]string, len(opts.Types))
	copy(types, opts.Types)
	return models.Criteria{
		Types:     types,
		YearRange: &models.YearRange{Min: opts.MinYear, Max: opts.MaxYear},
	}
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
