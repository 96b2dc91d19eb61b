package services

import (
	"catalog-dashboard/models"
	"catalog-dashboard/utils"
)

// BuildOptions collects the distinct values a presentation can offer for
// each filter. Empty values are left out; lists are sorted.
func BuildOptions(ds *models.Dataset) models.FilterOptions {
	types := utils.NewStringSet()
	countries := utils.NewStringSet()
	ratings := utils.NewStringSet()
	genres := utils.NewStringSet()

	var minYear, maxYear int
	haveYear := false

	ds.Each(func(t *models.Title) {
		if t.Type != "" {
			types.Add(t.Type)
		}
		if t.PrimaryCountry != "" {
			countries.Add(t.PrimaryCountry)
		}
		if r := t.RatingValue(); r != "" {
			ratings.Add(r)
		}
		if t.MainGenre != "" {
			genres.Add(t.MainGenre)
		}
		if t.ReleaseYear != nil {
			y := *t.ReleaseYear
			if !haveYear || y < minYear {
				minYear = y
			}
			if !haveYear || y > maxYear {
				maxYear = y
			}
			haveYear = true
		}
	})

	return models.FilterOptions{
		Types:     types.Sorted(),
		Countries: countries.Sorted(),
		Ratings:   ratings.Sorted(),
		Genres:    genres.Sorted(),
		MinYear:   minYear,
		MaxYear:   maxYear,
	}
}
