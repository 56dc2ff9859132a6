package view

import (
	"testing"
	"time"

	"gigboard/internal/model"
	"gigboard/internal/repository"
)

func TestVenueGroups(t *testing.T) {
	groups := []repository.VenueGroup{
		{
			City:  "San Francisco",
			State: "CA",
			Venues: []model.Venue{
				{ID: 1, Name: "The Musical Hop"},
				{ID: 3, Name: "Park Square Live Music & Coffee"},
			},
		},
		{
			City:   "New York",
			State:  "NY",
			Venues: []model.Venue{{ID: 2, Name: "The Dueling Pianos Bar"}},
		},
	}
	counts := map[uint]int64{1: 2, 2: 0, 3: 1}

	areas := VenueGroups(groups, func(id uint) int64 { return counts[id] })

	if len(areas) != 2 {
		t.Fatalf("expected 2 areas, got %d", len(areas))
	}
	seen := map[uint]int{}
	for _, area := range areas {
		if len(area.Venues) == 0 {
			t.Fatalf("area %s, %s has no venues", area.City, area.State)
		}
		for _, v := range area.Venues {
			seen[v.ID]++
			if v.NumUpcomingShows != counts[v.ID] {
				t.Errorf("venue %d: upcoming count = %d, want %d", v.ID, v.NumUpcomingShows, counts[v.ID])
			}
		}
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("venue %d appears in %d areas, want exactly 1", id, n)
		}
	}
	if len(seen) != 3 {
		t.Errorf("expected 3 distinct venues across areas, got %d", len(seen))
	}
}

func TestVenueSearchResults(t *testing.T) {
	matches := []model.Venue{
		{ID: 1, Name: "The Musical Hop"},
		{ID: 3, Name: "Park Square Live Music & Coffee"},
	}

	res := VenueSearchResults(matches, func(id uint) int64 { return int64(id) })

	if res.Count != 2 {
		t.Fatalf("count = %d, want 2", res.Count)
	}
	if len(res.Data) != 2 {
		t.Fatalf("data length = %d, want 2", len(res.Data))
	}
	if res.Data[0].Name != "The Musical Hop" || res.Data[0].NumUpcomingShows != 1 {
		t.Errorf("unexpected first entry: %+v", res.Data[0])
	}
}

func TestVenueSearchResultsEmpty(t *testing.T) {
	res := VenueSearchResults(nil, func(uint) int64 { return 0 })
	if res.Count != 0 || len(res.Data) != 0 {
		t.Fatalf("expected empty results, got %+v", res)
	}
}

func TestNewVenueDetail(t *testing.T) {
	venue := &model.Venue{
		ID:                 7,
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Genres:             []string{"Jazz", "Folk"},
		SeekingTalent:      true,
		SeekingDescription: "Looking for local acts.",
	}
	past := []repository.VenueShow{
		{ArtistID: 4, ArtistName: "Guns N Petals", StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	}
	upcoming := []repository.VenueShow{
		{ArtistID: 5, ArtistName: "The Wild Sax Band", StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
		{ArtistID: 6, ArtistName: "Matt Quevedo", StartTime: time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
	}

	d := NewVenueDetail(venue, past, upcoming)

	if d.PastShowsCount != 1 || d.UpcomingShowsCount != 2 {
		t.Fatalf("counts = %d past / %d upcoming, want 1 / 2", d.PastShowsCount, d.UpcomingShowsCount)
	}
	if got := d.PastShows[0].StartTime; got != "2019-05-21 21:30:00" {
		t.Errorf("past start time = %q, want %q", got, "2019-05-21 21:30:00")
	}
	if got := d.UpcomingShows[0].ArtistName; got != "The Wild Sax Band" {
		t.Errorf("upcoming artist = %q", got)
	}
	if !d.SeekingTalent || d.SeekingDescription != "Looking for local acts." {
		t.Errorf("seeking fields not carried over: %+v", d)
	}
}

func TestNewArtistDetail(t *testing.T) {
	artist := &model.Artist{ID: 4, Name: "Guns N Petals", Genres: []string{"Rock n Roll"}}
	upcoming := []repository.ArtistShow{
		{VenueID: 1, VenueName: "The Musical Hop", StartTime: time.Date(2035, 5, 21, 21, 30, 0, 0, time.UTC)},
	}

	d := NewArtistDetail(artist, nil, upcoming)

	if d.PastShowsCount != 0 || d.UpcomingShowsCount != 1 {
		t.Fatalf("counts = %d past / %d upcoming, want 0 / 1", d.PastShowsCount, d.UpcomingShowsCount)
	}
	if d.UpcomingShows[0].VenueName != "The Musical Hop" {
		t.Errorf("unexpected venue name %q", d.UpcomingShows[0].VenueName)
	}
}

func TestShowList(t *testing.T) {
	rows := []repository.JoinedShow{
		{
			VenueID:         1,
			VenueName:       "The Musical Hop",
			ArtistID:        4,
			ArtistName:      "Guns N Petals",
			ArtistImageLink: "https://example.com/guns.jpg",
			StartTime:       time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC),
		},
	}

	list := ShowList(rows)

	if len(list) != 1 {
		t.Fatalf("expected 1 row, got %d", len(list))
	}
	want := ShowRow{
		VenueID:         1,
		VenueName:       "The Musical Hop",
		ArtistID:        4,
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "https://example.com/guns.jpg",
		StartTime:       "2019-05-21 21:30:00",
	}
	if list[0] != want {
		t.Errorf("row = %+v, want %+v", list[0], want)
	}
}
