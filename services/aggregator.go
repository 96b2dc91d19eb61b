package services

import (
	"sort"

	"catalog-dashboard/models"
	"catalog-dashboard/utils"
)

const unknownLabel = "Unknown"

// SampleConfig controls the year/duration scatter sample.
type SampleConfig struct {
	Size    int
	Seed    uint64
	MinYear int
}

// DefaultSampleConfig is 300 movies released in 2010 or later, seed 42.
func DefaultSampleConfig() SampleConfig {
	return SampleConfig{Size: 300, Seed: 42, MinYear: 2010}
}

// Aggregator turns a filtered dataset into the dashboard's counters and
// chart tables. Every computation accepts an empty dataset.
type Aggregator struct {
	logger *utils.Logger
	sample SampleConfig
}

func NewAggregator(logger *utils.Logger, sample SampleConfig) *Aggregator {
	return &Aggregator{logger: logger, sample: sample}
}

// Build computes the summary and all six aggregates.
func (a *Aggregator) Build(ds *models.Dataset) *models.Dashboard {
	d := &models.Dashboard{
		Empty:                   ds.Len() == 0,
		Summary:                 a.Summary(ds),
		GrowthByYear:            a.GrowthByYear(ds),
		CountByCountry:          a.CountByCountry(ds),
		CountByTypeAndGenre:     a.CountByTypeAndGenre(ds),
		MovieDurations:          a.MovieDurations(ds),
		CountByCountryGenreType: a.CountByCountryGenreType(ds),
		YearDurationSample:      a.YearDurationSample(ds),
	}

	a.logger.Debug("[aggregator] Built dashboard over %d titles (%d years, %d countries, %d sampled)",
		ds.Len(), len(d.GrowthByYear), len(d.CountByCountry), len(d.YearDurationSample))
	return d
}

// Summary counts titles, movies, TV shows and distinct non-empty primary
// countries.
func (a *Aggregator) Summary(ds *models.Dataset) models.Summary {
	var s models.Summary
	countries := utils.NewStringSet()

	ds.Each(func(t *models.Title) {
		s.TotalTitles++
		switch t.Type {
		case models.TypeMovie:
			s.Movies++
		case models.TypeTVShow:
			s.TVShows++
		}
		if t.PrimaryCountry != "" {
			countries.Add(t.PrimaryCountry)
		}
	})

	s.CountriesRepresented = countries.Size()
	return s
}

// GrowthByYear counts titles per year added, ascending. Titles without a
// year added are left out.
func (a *Aggregator) GrowthByYear(ds *models.Dataset) []models.YearCount {
	counts := make(map[int]int)
	ds.Each(func(t *models.Title) {
		if t.YearAdded != nil {
			counts[*t.YearAdded]++
		}
	})

	out := make([]models.YearCount, 0, len(counts))
	for y, n := range counts {
		out = append(out, models.YearCount{Year: y, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// CountByCountry counts titles per primary country, most frequent first.
// Titles without a country are left out.
func (a *Aggregator) CountByCountry(ds *models.Dataset) []models.LabelCount {
	c := newCounter()
	ds.Each(func(t *models.Title) {
		if t.PrimaryCountry != "" {
			c.add(t.PrimaryCountry)
		}
	})
	return c.sorted()
}

// CountByTypeAndGenre breaks titles down by type, then main genre.
func (a *Aggregator) CountByTypeAndGenre(ds *models.Dataset) []models.TypeGenreNode {
	types := newCounter()
	genres := make(map[string]*counter)

	ds.Each(func(t *models.Title) {
		if t.Type == "" {
			return
		}
		types.add(t.Type)
		if genres[t.Type] == nil {
			genres[t.Type] = newCounter()
		}
		genres[t.Type].add(orUnknown(t.MainGenre))
	})

	out := make([]models.TypeGenreNode, 0, len(types.counts))
	for _, tc := range types.sorted() {
		out = append(out, models.TypeGenreNode{
			Type:   tc.Label,
			Count:  tc.Count,
			Genres: genres[tc.Label].sorted(),
		})
	}
	return out
}

// MovieDurations returns the minute counts of every movie that has one, in
// dataset order. Binning is left to the presentation.
func (a *Aggregator) MovieDurations(ds *models.Dataset) []int {
	out := make([]int, 0)
	ds.Each(func(t *models.Title) {
		if t.Type == models.TypeMovie && t.DurationInt != nil {
			out = append(out, *t.DurationInt)
		}
	})
	return out
}

// CountByCountryGenreType breaks titles down by primary country, main genre
// and type.
func (a *Aggregator) CountByCountryGenreType(ds *models.Dataset) []models.CountryGenreTypeNode {
	countries := newCounter()
	genres := make(map[string]*counter)
	types := make(map[[2]string]*counter)

	ds.Each(func(t *models.Title) {
		if t.Type == "" {
			return
		}
		country := orUnknown(t.PrimaryCountry)
		genre := orUnknown(t.MainGenre)

		countries.add(country)
		if genres[country] == nil {
			genres[country] = newCounter()
		}
		genres[country].add(genre)

		key := [2]string{country, genre}
		if types[key] == nil {
			types[key] = newCounter()
		}
		types[key].add(t.Type)
	})

	out := make([]models.CountryGenreTypeNode, 0, len(countries.counts))
	for _, cc := range countries.sorted() {
		node := models.CountryGenreTypeNode{Country: cc.Label, Count: cc.Count}
		gs := genres[cc.Label].sorted()
		node.Genres = make([]models.GenreTypeNode, 0, len(gs))
		for _, gc := range gs {
			node.Genres = append(node.Genres, models.GenreTypeNode{
				Genre: gc.Label,
				Count: gc.Count,
				Types: types[[2]string{cc.Label, gc.Label}].sorted(),
			})
		}
		out = append(out, node)
	}
	return out
}

// YearDurationSample returns (release year, duration) pairs for movies
// released in or after the configured year. Above the configured size a
// seeded sample is taken, so the same input always gives the same points.
func (a *Aggregator) YearDurationSample(ds *models.Dataset) []models.YearDuration {
	eligible := make([]models.YearDuration, 0)
	ds.Each(func(t *models.Title) {
		if t.Type != models.TypeMovie || t.ReleaseYear == nil || t.DurationInt == nil {
			return
		}
		if *t.ReleaseYear < a.sample.MinYear {
			return
		}
		eligible = append(eligible, models.YearDuration{ReleaseYear: *t.ReleaseYear, Duration: *t.DurationInt})
	})

	if len(eligible) <= a.sample.Size {
		return eligible
	}

	picked := sampleIndices(len(eligible), a.sample.Size, a.sample.Seed)
	out := make([]models.YearDuration, len(picked))
	for i, idx := range picked {
		out[i] = eligible[idx]
	}
	return out
}

// counter tallies labels and remembers first-seen order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label]++
}

// sorted returns the tallies by count descending, then label ascending.
func (c *counter) sorted() []models.LabelCount {
	if c == nil {
		return []models.LabelCount{}
	}
	out := make([]models.LabelCount, 0, len(c.order))
	for _, label := range c.order {
		out = append(out, models.LabelCount{Label: label, Count: c.counts[label]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func orUnknown(s string) string {
	if s == "" {
		return unknownLabel
	}
	return s
}
