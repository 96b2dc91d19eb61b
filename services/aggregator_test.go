package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-dashboard/models"
)

func newTestAggregator() *Aggregator {
	return NewAggregator(newTestLogger(), DefaultSampleConfig())
}

func TestCountByCountryExample(t *testing.T) {
	got := newTestAggregator().CountByCountry(enrich(exampleRaw()))
	assert.Equal(t, []models.LabelCount{{Label: "India", Count: 1}}, got)
}

func TestSummary(t *testing.T) {
	got := newTestAggregator().Summary(sampleCatalog())
	assert.Equal(t, models.Summary{
		TotalTitles:          7,
		Movies:               5,
		TVShows:              2,
		CountriesRepresented: 3,
	}, got, "the empty country is not counted")
}

func TestGrowthByYear(t *testing.T) {
	got := newTestAggregator().GrowthByYear(sampleCatalog())
	assert.Equal(t, []models.YearCount{
		{Year: 2019, Count: 1},
		{Year: 2021, Count: 4},
	}, got)
}

func TestCountByCountryOrdering(t *testing.T) {
	got := newTestAggregator().CountByCountry(sampleCatalog())
	assert.Equal(t, []models.LabelCount{
		{Label: "United States", Count: 3},
		{Label: "India", Count: 1},
		{Label: "South Africa", Count: 1},
	}, got)
}

func TestCountByTypeAndGenre(t *testing.T) {
	got := newTestAggregator().CountByTypeAndGenre(sampleCatalog())
	require.Len(t, got, 2)

	assert.Equal(t, models.TypeMovie, got[0].Type)
	assert.Equal(t, 5, got[0].Count)
	assert.Equal(t, []models.LabelCount{
		{Label: "Comedies", Count: 2},
		{Label: "Documentaries", Count: 1},
		{Label: "Dramas", Count: 1},
		{Label: "Unknown", Count: 1},
	}, got[0].Genres)

	assert.Equal(t, models.TypeTVShow, got[1].Type)
	assert.Equal(t, 2, got[1].Count)
	assert.Len(t, got[1].Genres, 2)
}

func TestMovieDurations(t *testing.T) {
	got := newTestAggregator().MovieDurations(sampleCatalog())
	assert.Equal(t, []int{90, 125, 104, 166}, got, "TV shows and movies without a duration are skipped")
}

func TestCountByCountryGenreType(t *testing.T) {
	got := newTestAggregator().CountByCountryGenreType(sampleCatalog())
	require.Len(t, got, 4)

	us := got[0]
	assert.Equal(t, "United States", us.Country)
	assert.Equal(t, 3, us.Count)
	require.Len(t, us.Genres, 3)
	assert.Equal(t, models.GenreTypeNode{
		Genre: "Comedies",
		Count: 1,
		Types: []models.LabelCount{{Label: models.TypeMovie, Count: 1}},
	}, us.Genres[0])

	unknown := got[1]
	assert.Equal(t, "Unknown", unknown.Country, "empty countries are grouped as Unknown")
	assert.Equal(t, 2, unknown.Count)
	require.Len(t, unknown.Genres, 2)
	assert.Equal(t, "Crime TV Shows", unknown.Genres[0].Genre)
	assert.Equal(t, "Unknown", unknown.Genres[1].Genre)

	assert.Equal(t, "India", got[2].Country)
	assert.Equal(t, "South Africa", got[3].Country)
}

func TestYearDurationSampleFilters(t *testing.T) {
	got := newTestAggregator().YearDurationSample(sampleCatalog())
	assert.Equal(t, []models.YearDuration{
		{ReleaseYear: 2020, Duration: 90},
		{ReleaseYear: 2021, Duration: 104},
	}, got)
}

func TestHierarchiesSkipMissingType(t *testing.T) {
	ds := enrich([]*models.RawTitle{
		{ShowID: "s1", Type: models.TypeMovie, Title: "Typed", ListedIn: str("Dramas"), Country: str("India")},
		{ShowID: "s2", Type: "", Title: "Untyped", ListedIn: str("Dramas"), Country: str("India")},
	})
	agg := newTestAggregator()

	byType := agg.CountByTypeAndGenre(ds)
	require.Len(t, byType, 1)
	assert.Equal(t, models.TypeMovie, byType[0].Type)
	assert.Equal(t, 1, byType[0].Count)

	byCountry := agg.CountByCountryGenreType(ds)
	require.Len(t, byCountry, 1)
	assert.Equal(t, 1, byCountry[0].Count)
	for _, g := range byCountry[0].Genres {
		for _, tc := range g.Types {
			assert.NotEmpty(t, tc.Label)
		}
	}
}

func manyMovies(n int) *models.Dataset {
	raw := make([]*models.RawTitle, n)
	for i := range raw {
		raw[i] = &models.RawTitle{
			ShowID:      fmt.Sprintf("s%d", i),
			Type:        models.TypeMovie,
			Title:       fmt.Sprintf("Movie %d", i),
			ReleaseYear: str(fmt.Sprintf("%d", 2010+i%12)),
			Duration:    str(fmt.Sprintf("%d min", 60+i)),
		}
	}
	return enrich(raw)
}

func TestYearDurationSampleIsDeterministic(t *testing.T) {
	ds := manyMovies(1000)
	agg := newTestAggregator()

	first := agg.YearDurationSample(ds)
	second := agg.YearDurationSample(ds)

	require.Len(t, first, 300)
	assert.Equal(t, first, second)

	seen := make(map[int]bool)
	for _, p := range first {
		assert.False(t, seen[p.Duration], "each movie is sampled at most once")
		seen[p.Duration] = true
	}
}

func TestYearDurationSampleSeedMatters(t *testing.T) {
	ds := manyMovies(1000)
	a := NewAggregator(newTestLogger(), SampleConfig{Size: 300, Seed: 42, MinYear: 2010}).YearDurationSample(ds)
	b := NewAggregator(newTestLogger(), SampleConfig{Size: 300, Seed: 7, MinYear: 2010}).YearDurationSample(ds)
	assert.NotEqual(t, a, b)
}

func TestYearDurationSampleUnderLimit(t *testing.T) {
	got := newTestAggregator().YearDurationSample(manyMovies(300))
	assert.Len(t, got, 300)
	assert.Equal(t, 60, got[0].Duration, "all qualifying movies kept in order")
}

func TestBuildEmpty(t *testing.T) {
	d := newTestAggregator().Build(models.NewDataset(nil))

	assert.True(t, d.Empty)
	assert.Equal(t, models.Summary{}, d.Summary)
	assert.NotNil(t, d.GrowthByYear)
	assert.Empty(t, d.GrowthByYear)
	assert.Empty(t, d.CountByCountry)
	assert.Empty(t, d.CountByTypeAndGenre)
	assert.Empty(t, d.MovieDurations)
	assert.Empty(t, d.CountByCountryGenreType)
	assert.Empty(t, d.YearDurationSample)
}

func TestBuildPipeline(t *testing.T) {
	ds := sampleCatalog()
	filtered := NewFilterEngine().Apply(ds, models.Criteria{Types: []string{models.TypeTVShow}})
	d := newTestAggregator().Build(filtered)

	assert.False(t, d.Empty)
	assert.Equal(t, 2, d.Summary.TotalTitles)
	assert.Equal(t, 0, d.Summary.Movies)
	assert.Empty(t, d.MovieDurations)
	assert.Empty(t, d.YearDurationSample)
	assert.Equal(t, []models.YearCount{{Year: 2021, Count: 2}}, d.GrowthByYear)
}

func TestSampleIndices(t *testing.T) {
	got := sampleIndices(10, 3, 42)
	require.Len(t, got, 3)
	assert.Equal(t, got, sampleIndices(10, 3, 42))
	assert.IsIncreasing(t, got)

	assert.Equal(t, []int{0, 1, 2}, sampleIndices(3, 5, 42))
	assert.Empty(t, sampleIndices(5, 0, 42))
}
