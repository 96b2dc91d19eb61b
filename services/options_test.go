package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog-dashboard/models"
)

func TestBuildOptions(t *testing.T) {
	o := BuildOptions(sampleCatalog())

	assert.Equal(t, []string{models.TypeMovie, models.TypeTVShow}, o.Types)
	assert.Equal(t, []string{"India", "South Africa", "United States"}, o.Countries)
	assert.Equal(t, []string{"PG-13", "TV-14", "TV-MA"}, o.Ratings)
	assert.Equal(t, []string{"Comedies", "Crime TV Shows", "Documentaries", "Dramas", "International TV Shows"}, o.Genres)
	assert.Equal(t, 1993, o.MinYear)
	assert.Equal(t, 2021, o.MaxYear)
}

func TestBuildOptionsEmpty(t *testing.T) {
	o := BuildOptions(models.NewDataset(nil))

	assert.Empty(t, o.Types)
	assert.NotNil(t, o.Countries)
	assert.Zero(t, o.MinYear)
	assert.Zero(t, o.MaxYear)
}
