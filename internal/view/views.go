// Package view shapes query results into the structures the templates
// consume. Everything here is a pure function of its inputs; counts and
// joins are supplied by the caller so no persistence happens during
// assembly.
package view

import (
	"time"

	"gigboard/internal/model"
	"gigboard/internal/repository"
)

const timeLayout = "2006-01-02 15:04:05"

// CountFn supplies the number of upcoming shows for an entity id.
type CountFn func(id uint) int64

// EntitySummary is the listing/search line item for a venue or artist.
type EntitySummary struct {
	ID               uint
	Name             string
	NumUpcomingShows int64
}

// VenueArea is one (city, state) group of the venues page.
type VenueArea struct {
	City   string
	State  string
	Venues []EntitySummary
}

type SearchResults struct {
	Count int
	Data  []EntitySummary
}

type VenueShowEntry struct {
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

type ArtistShowEntry struct {
	VenueID        uint
	VenueName      string
	VenueImageLink string
	StartTime      string
}

type VenueDetail struct {
	ID                 uint
	Name               string
	Genres             []string
	Address            string
	City               string
	State              string
	Phone              string
	Website            string
	FacebookLink       string
	SeekingTalent      bool
	SeekingDescription string
	ImageLink          string
	PastShows          []VenueShowEntry
	UpcomingShows      []VenueShowEntry
	PastShowsCount     int
	UpcomingShowsCount int
}

type ArtistDetail struct {
	ID                 uint
	Name               string
	Genres             []string
	City               string
	State              string
	Phone              string
	Website            string
	FacebookLink       string
	SeekingVenue       bool
	SeekingDescription string
	ImageLink          string
	PastShows          []ArtistShowEntry
	UpcomingShows      []ArtistShowEntry
	PastShowsCount     int
	UpcomingShowsCount int
}

// ShowRow is one line of the flat show listing.
type ShowRow struct {
	VenueID         uint
	VenueName       string
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

// VenueGroups expands each (city, state) group into summaries with
// per-venue upcoming counts.
func VenueGroups(groups []repository.VenueGroup, countFn CountFn) []VenueArea {
	areas := make([]VenueArea, 0, len(groups))
	for _, g := range groups {
		area := VenueArea{City: g.City, State: g.State}
		for _, v := range g.Venues {
			area.Venues = append(area.Venues, EntitySummary{
				ID:               v.ID,
				Name:             v.Name,
				NumUpcomingShows: countFn(v.ID),
			})
		}
		areas = append(areas, area)
	}
	return areas
}

func VenueSearchResults(matches []model.Venue, countFn CountFn) SearchResults {
	res := SearchResults{Count: len(matches), Data: make([]EntitySummary, 0, len(matches))}
	for _, v := range matches {
		res.Data = append(res.Data, EntitySummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: countFn(v.ID),
		})
	}
	return res
}

func ArtistSearchResults(matches []model.Artist, countFn CountFn) SearchResults {
	res := SearchResults{Count: len(matches), Data: make([]EntitySummary, 0, len(matches))}
	for _, a := range matches {
		res.Data = append(res.Data, EntitySummary{
			ID:               a.ID,
			Name:             a.Name,
			NumUpcomingShows: countFn(a.ID),
		})
	}
	return res
}

// NewVenueDetail merges the venue's own fields with its partitioned
// show history. Counts come from the supplied slices, never recomputed.
func NewVenueDetail(venue *model.Venue, past, upcoming []repository.VenueShow) VenueDetail {
	return VenueDetail{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             []string(venue.Genres),
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.Website,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          venueShowEntries(past),
		UpcomingShows:      venueShowEntries(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func NewArtistDetail(artist *model.Artist, past, upcoming []repository.ArtistShow) ArtistDetail {
	return ArtistDetail{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             []string(artist.Genres),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.Website,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		PastShows:          artistShowEntries(past),
		UpcomingShows:      artistShowEntries(upcoming),
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
}

func ShowList(rows []repository.JoinedShow) []ShowRow {
	out := make([]ShowRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, ShowRow{
			VenueID:         r.VenueID,
			VenueName:       r.VenueName,
			ArtistID:        r.ArtistID,
			ArtistName:      r.ArtistName,
			ArtistImageLink: r.ArtistImageLink,
			StartTime:       formatTime(r.StartTime),
		})
	}
	return out
}

func venueShowEntries(shows []repository.VenueShow) []VenueShowEntry {
	out := make([]VenueShowEntry, 0, len(shows))
	for _, s := range shows {
		out = append(out, VenueShowEntry{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       formatTime(s.StartTime),
		})
	}
	return out
}

func artistShowEntries(shows []repository.ArtistShow) []ArtistShowEntry {
	out := make([]ArtistShowEntry, 0, len(shows))
	for _, s := range shows {
		out = append(out, ArtistShowEntry{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      formatTime(s.StartTime),
		})
	}
	return out
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}
