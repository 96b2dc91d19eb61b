package models

// YearCount is one point of the growth-by-year series.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// LabelCount is a generic (label, count) pair.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TypeGenreNode is the type -> genre breakdown.
type TypeGenreNode struct {
	Type   string       `json:"type"`
	Count  int          `json:"count"`
	Genres []LabelCount `json:"genres"`
}

// GenreTypeNode is the genre -> type level under a country.
type GenreTypeNode struct {
	Genre string       `json:"genre"`
	Count int          `json:"count"`
	Types []LabelCount `json:"types"`
}

// CountryGenreTypeNode is the country -> genre -> type breakdown.
type CountryGenreTypeNode struct {
	Country string          `json:"country"`
	Count   int             `json:"count"`
	Genres  []GenreTypeNode `json:"genres"`
}

// YearDuration is one sampled (release year, minutes) point.
type YearDuration struct {
	ReleaseYear int `json:"release_year"`
	Duration    int `json:"duration"`
}

// Summary holds the headline counters.
type Summary struct {
	TotalTitles          int `json:"total_titles"`
	Movies               int `json:"movies"`
	TVShows              int `json:"tv_shows"`
	CountriesRepresented int `json:"countries_represented"`
}

// Dashboard is everything a presentation needs for one filter selection.
type Dashboard struct {
	Empty                   bool                   `json:"empty"`
	Summary                 Summary                `json:"summary"`
	GrowthByYear            []YearCount            `json:"growth_by_year"`
	CountByCountry          []LabelCount           `json:"count_by_country"`
	CountByTypeAndGenre     []TypeGenreNode        `json:"count_by_type_and_genre"`
	MovieDurations          []int                  `json:"movie_durations"`
	CountByCountryGenreType []CountryGenreTypeNode `json:"count_by_country_genre_type"`
	YearDurationSample      []YearDuration         `json:"year_duration_sample"`
}
