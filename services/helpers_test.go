package services

import (
	"io"

	"catalog-dashboard/models"
	"catalog-dashboard/utils"
)

func newTestLogger() *utils.Logger { return utils.NewLoggerTo(io.Discard) }

func str(s string) *string { return &s }

// exampleRaw is the two-record catalog used throughout the pipeline tests.
func exampleRaw() []*models.RawTitle {
	return []*models.RawTitle{
		{
			ShowID: "1", Type: models.TypeMovie, Title: "Alpha",
			ReleaseYear: str("2015"), Country: str("India, USA"),
			ListedIn: str("Dramas, International"), Duration: str("120 min"),
			DateAdded: str("2021-03-01"), Rating: str("TV-MA"),
		},
		{
			ShowID: "2", Type: models.TypeTVShow, Title: "Beta",
			ReleaseYear: str("2019"), Country: str(""), ListedIn: str(""),
			Duration: str("2 Seasons"),
		},
	}
}

func enrich(raw []*models.RawTitle) *models.Dataset {
	return NewEnricher(newTestLogger()).Enrich(raw)
}

// sampleCatalog is a slightly larger catalog covering every filter.
func sampleCatalog() *models.Dataset {
	return enrich([]*models.RawTitle{
		{ShowID: "s1", Type: models.TypeMovie, Title: "Dick Johnson Is Dead", ReleaseYear: str("2020"), DateAdded: str("September 25, 2021"), Duration: str("90 min"), Country: str("United States"), ListedIn: str("Documentaries"), Rating: str("PG-13")},
		{ShowID: "s2", Type: models.TypeTVShow, Title: "Blood & Water", ReleaseYear: str("2021"), DateAdded: str("September 24, 2021"), Duration: str("2 Seasons"), Country: str("South Africa"), ListedIn: str("International TV Shows, TV Dramas"), Rating: str("TV-MA")},
		{ShowID: "s3", Type: models.TypeTVShow, Title: "Ganglands", ReleaseYear: str("2021"), DateAdded: str("September 24, 2021"), Duration: str("1 Season"), ListedIn: str("Crime TV Shows, International TV Shows"), Rating: str("TV-MA")},
		{ShowID: "s4", Type: models.TypeMovie, Title: "Sankofa", ReleaseYear: str("1993"), DateAdded: str("September 24, 2021"), Duration: str("125 min"), Country: str("United States, Ghana"), ListedIn: str("Dramas, Independent Movies"), Rating: str("TV-MA")},
		{ShowID: "s5", Type: models.TypeMovie, Title: "The Starling", ReleaseYear: str("2021"), DateAdded: str("September 24, 2019"), Duration: str("104 min"), Country: str("United States"), ListedIn: str("Comedies, Dramas"), Rating: str("PG-13")},
		{ShowID: "s6", Type: models.TypeMovie, Title: "Jeans", ReleaseYear: str("1998"), Duration: str("166 min"), Country: str("India"), ListedIn: str("Comedies, International Movies"), Rating: str("TV-14")},
		{ShowID: "s7", Type: models.TypeMovie, Title: "", ReleaseYear: str("not a year"), Duration: str("unknown")},
	})
}

func ids(ds *models.Dataset) []string {
	out := make([]string, 0, ds.Len())
	ds.Each(func(t *models.Title) { out = append(out, t.ShowID) })
	return out
}
