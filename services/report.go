package services

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"catalog-dashboard/models"
)

const (
	reportWidth    = 54
	topRows        = 10
	histogramWidth = 10
	maxBarWidth    = 40
)

// ReportPrinter renders a dashboard for the terminal.
type ReportPrinter struct {
	w io.Writer
}

func NewReportPrinter(w io.Writer) *ReportPrinter {
	return &ReportPrinter{w: w}
}

// PrintJSON writes the dashboard as indented JSON.
func (p *ReportPrinter) PrintJSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Print writes every section of the dashboard.
func (p *ReportPrinter) Print(d *models.Dashboard) {
	sep := strings.Repeat("═", reportWidth)

	fmt.Fprintf(p.w, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(p.w, "\033[1;35m  📺 CATALOG DASHBOARD\033[0m\n")
	fmt.Fprintf(p.w, "\033[1;35m%s\033[0m\n\n", sep)

	if d.Empty {
		fmt.Fprintf(p.w, "  No data for current filters\n")
		fmt.Fprintf(p.w, "\n\033[1;35m%s\033[0m\n\n", sep)
		return
	}

	p.section("Overview")
	fmt.Fprintf(p.w, "  Total titles          : \033[1m%d\033[0m\n", d.Summary.TotalTitles)
	fmt.Fprintf(p.w, "  Movies                : \033[1m%d\033[0m\n", d.Summary.Movies)
	fmt.Fprintf(p.w, "  TV shows              : \033[1m%d\033[0m\n", d.Summary.TVShows)
	fmt.Fprintf(p.w, "  Countries represented : \033[1m%d\033[0m\n", d.Summary.CountriesRepresented)
	fmt.Fprintln(p.w)

	p.section("Titles Added per Year")
	if len(d.GrowthByYear) == 0 {
		fmt.Fprintf(p.w, "  No date data\n")
	} else {
		rows := make([]table.Row, 0, len(d.GrowthByYear))
		for _, yc := range d.GrowthByYear {
			rows = append(rows, table.Row{yc.Year, yc.Count})
		}
		p.table(table.Row{"Year", "Titles"}, rows)
	}
	fmt.Fprintln(p.w)

	p.section("Top Countries")
	if len(d.CountByCountry) == 0 {
		fmt.Fprintf(p.w, "  No country data\n")
	} else {
		top := d.CountByCountry
		if len(top) > topRows {
			top = top[:topRows]
		}
		scale := barScale(top[0].Count)
		for _, lc := range top {
			bar := strings.Repeat("█", max(1, lc.Count*scale.num/scale.den))
			fmt.Fprintf(p.w, "  %-30s %s (%d)\n", truncate(lc.Label, 28), bar, lc.Count)
		}
	}
	fmt.Fprintln(p.w)

	p.section("Type and Genre")
	rows := make([]table.Row, 0)
	for _, tn := range d.CountByTypeAndGenre {
		genres := tn.Genres
		if len(genres) > topRows {
			genres = genres[:topRows]
		}
		for _, g := range genres {
			rows = append(rows, table.Row{tn.Type, g.Label, g.Count})
		}
	}
	p.table(table.Row{"Type", "Genre", "Titles"}, rows)
	fmt.Fprintln(p.w)

	p.section("Movie Durations (minutes)")
	if len(d.MovieDurations) == 0 {
		fmt.Fprintf(p.w, "  No movie durations\n")
	} else {
		buckets := histogram(d.MovieDurations, histogramWidth)
		rows := make([]table.Row, 0, len(buckets))
		for _, b := range buckets {
			rows = append(rows, table.Row{fmt.Sprintf("%d-%d", b.from, b.from+histogramWidth-1), b.count})
		}
		p.table(table.Row{"Minutes", "Movies"}, rows)
	}
	fmt.Fprintln(p.w)

	p.section("Country → Genre → Type")
	rows = make([]table.Row, 0)
	countries := d.CountByCountryGenreType
	if len(countries) > topRows {
		countries = countries[:topRows]
	}
	for _, cn := range countries {
		for _, gn := range cn.Genres {
			for _, tc := range gn.Types {
				rows = append(rows, table.Row{cn.Country, gn.Genre, tc.Label, tc.Count})
			}
		}
	}
	p.table(table.Row{"Country", "Genre", "Type", "Titles"}, rows)
	fmt.Fprintln(p.w)

	p.section("Release Year vs Duration")
	fmt.Fprintf(p.w, "  %d sampled movies\n", len(d.YearDurationSample))

	fmt.Fprintf(p.w, "\n\033[1;35m%s\033[0m\n\n", sep)
}

// PrintOptions lists the available filter values.
func (p *ReportPrinter) PrintOptions(o models.FilterOptions) {
	p.section("Filter Options")
	fmt.Fprintf(p.w, "  Types        : %s\n", strings.Join(o.Types, ", "))
	fmt.Fprintf(p.w, "  Release years: %d - %d\n", o.MinYear, o.MaxYear)
	fmt.Fprintf(p.w, "  Countries    : %d\n", len(o.Countries))
	fmt.Fprintf(p.w, "  Ratings      : %s\n", strings.Join(o.Ratings, ", "))
	fmt.Fprintf(p.w, "  Genres       : %d\n", len(o.Genres))
}

func (p *ReportPrinter) section(title string) {
	fmt.Fprintf(p.w, "\033[1;33m  %s\033[0m\n", title)
	fmt.Fprintf(p.w, "  %s\n", strings.Repeat("─", reportWidth))
}

func (p *ReportPrinter) table(header table.Row, rows []table.Row) {
	if len(rows) == 0 {
		fmt.Fprintf(p.w, "  (0 rows)\n")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(header)
	t.AppendRows(rows)
	t.Render()
}

type bucket struct {
	from  int
	count int
}

// histogram groups values into fixed-width buckets, ascending, skipping
// empty buckets.
func histogram(values []int, width int) []bucket {
	counts := make(map[int]int)
	for _, v := range values {
		from := v - v%width
		if v < 0 && v%width != 0 {
			from -= width
		}
		counts[from]++
	}
	out := make([]bucket, 0, len(counts))
	for from, n := range counts {
		out = append(out, bucket{from: from, count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].from < out[j].from })
	return out
}

type ratio struct{ num, den int }

// barScale keeps the widest bar within maxBarWidth characters.
func barScale(maxCount int) ratio {
	if maxCount <= maxBarWidth {
		return ratio{1, 1}
	}
	return ratio{maxBarWidth, maxCount}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
