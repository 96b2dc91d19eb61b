package models

// Title types as they appear in the catalog export.
const (
	TypeMovie  = "Movie"
	TypeTVShow = "TV Show"
)

// RawTitle holds one unprocessed row of the catalog. A nil pointer means the
// value (or the whole column) was absent in the source.
type RawTitle struct {
	ShowID      string
	Type        string
	Title       string
	ReleaseYear *string
	DateAdded   *string
	Duration    *string
	Country     *string
	ListedIn    *string
	Rating      *string
	Director    *string
	Cast        *string
	Description *string
}

// Title is an enriched catalog entry. The embedded raw fields are never
// modified; the derived fields are computed once at load time.
type Title struct {
	RawTitle

	ReleaseYear    *int
	YearAdded      *int
	DurationInt    *int
	DurationUnit   string
	MainGenre      string
	PrimaryCountry string
}

// RatingValue returns the rating or "" when absent.
func (t *Title) RatingValue() string {
	if t.Rating == nil {
		return ""
	}
	return *t.Rating
}

// Dataset is an immutable, ordered collection of enriched titles. Views
// produced by filtering share the underlying *Title values.
type Dataset struct {
	titles []*Title
}

// NewDataset wraps titles. The caller must not modify the slice afterwards.
func NewDataset(titles []*Title) *Dataset {
	if titles == nil {
		titles = []*Title{}
	}
	return &Dataset{titles: titles}
}

// Len returns the number of titles.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.titles)
}

// Titles returns the titles in dataset order. The returned slice is a copy;
// the records themselves are shared and must be treated as read-only.
func (d *Dataset) Titles() []*Title {
	if d == nil {
		return nil
	}
	out := make([]*Title, len(d.titles))
	copy(out, d.titles)
	return out
}

// Each calls fn for every title in order.
func (d *Dataset) Each(fn func(*Title)) {
	if d == nil {
		return
	}
	for _, t := range d.titles {
		fn(t)
	}
}
