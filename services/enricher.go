package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/araddon/dateparse"

	"catalog-dashboard/models"
	"catalog-dashboard/utils"
)

var (
	// durationRegexp captures the first digit run and the word after it,
	// e.g. "90 min" or "2 Seasons". Digits and letters are Unicode-aware.
	durationRegexp = regexp.MustCompile(`(\p{Nd}+)\s*([\p{L}\p{N}_]+)?`)
)

// Enricher derives the typed and normalised columns of every title.
type Enricher struct {
	logger *utils.Logger
}

// NewEnricher creates an Enricher with the given logger.
func NewEnricher(logger *utils.Logger) *Enricher {
	return &Enricher{logger: logger}
}

// Enrich processes raw titles into an immutable dataset. It never fails:
// values that do not parse become absent. Later duplicates of a show_id are
// dropped.
func (e *Enricher) Enrich(raw []*models.RawTitle) *models.Dataset {
	seen := utils.NewStringSet()
	result := make([]*models.Title, 0, len(raw))

	for _, r := range raw {
		if r == nil {
			continue
		}
		if id := strings.TrimSpace(r.ShowID); id != "" && !seen.Add(id) {
			e.logger.Warn("[enricher] Duplicate show_id skipped: %s", id)
			continue
		}

		durationInt, durationUnit := parseDuration(r.Duration)
		result = append(result, &models.Title{
			RawTitle:       *r,
			ReleaseYear:    parseYear(r.ReleaseYear),
			YearAdded:      parseYearAdded(r.DateAdded),
			DurationInt:    durationInt,
			DurationUnit:   durationUnit,
			MainGenre:      firstToken(r.ListedIn),
			PrimaryCountry: firstToken(r.Country),
		})
	}

	e.logger.Info("[enricher] Enriched %d → %d titles (dropped %d duplicate or empty rows; counts may differ from the raw file)",
		len(raw), len(result), len(raw)-len(result))
	return models.NewDataset(result)
}

// parseYearAdded extracts the calendar year of date_added.
func parseYearAdded(raw *string) *int {
	if raw == nil {
		return nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return nil
	}
	y := t.Year()
	return &y
}

// parseYear coerces release_year to an integer. "2015" and "2015.0" are
// accepted; anything else is absent.
func parseYear(raw *string) *int {
	if raw == nil {
		return nil
	}
	s := strings.TrimSpace(*raw)
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return nil
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return nil
	}
	n := int(f)
	return &n
}

// parseDuration splits "90 min" into (90, "min").
func parseDuration(raw *string) (*int, string) {
	if raw == nil {
		return nil, ""
	}
	m := durationRegexp.FindStringSubmatch(*raw)
	if m == nil {
		return nil, ""
	}
	n, ok := digitsValue(m[1])
	if !ok {
		return nil, m[2]
	}
	return &n, m[2]
}

// digitsValue converts a run of Unicode decimal digits to an int. ok is
// false when the value does not fit.
func digitsValue(s string) (int, bool) {
	n := 0
	for _, r := range s {
		d := digitValue(r)
		if n > (math.MaxInt-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}
	return n, true
}

// digitValue returns the value of a decimal digit rune. Unicode lays out
// each decimal digit set as ten consecutive code points starting at zero.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	start := r
	for unicode.IsDigit(start - 1) {
		start--
	}
	return int(r-start) % 10
}

// firstToken returns the trimmed text before the first comma, or "".
func firstToken(raw *string) string {
	if raw == nil {
		return ""
	}
	first, _, _ := strings.Cut(*raw, ",")
	return strings.TrimSpace(first)
}
