package models

// YearRange is an inclusive release-year bound.
type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Criteria is the set of user-selected filters. All active predicates are
// AND-combined.
//
// Types has literal semantics: an empty set lets nothing through.
// Countries, Ratings and Genres are optional: an empty set means no
// constraint. A nil YearRange skips the year predicate.
type Criteria struct {
	Types         []string   `json:"types"`
	YearRange     *YearRange `json:"year_range,omitempty"`
	Countries     []string   `json:"countries,omitempty"`
	Ratings       []string   `json:"ratings,omitempty"`
	Genres        []string   `json:"genres,omitempty"`
	TitleContains string     `json:"title_contains,omitempty"`
}

// FilterOptions lists the values a presentation can offer for each filter.
type FilterOptions struct {
	Types     []string `json:"types"`
	Countries []string `json:"countries"`
	Ratings   []string `json:"ratings"`
	Genres    []string `json:"genres"`
	MinYear   int      `json:"min_year"`
	MaxYear   int      `json:"max_year"`
}
