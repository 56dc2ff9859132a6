package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gigboard/internal/model"
	"gigboard/internal/repository"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}
	return db, mock
}

func newShowService(db *gorm.DB) ShowService {
	return NewShowService(db,
		repository.NewShowRepoGorm(db),
		repository.NewArtistRepoGorm(db),
		repository.NewVenueRepoGorm(db))
}

func artistColumns() []string {
	return []string{
		"id", "name", "city", "state", "phone", "genres", "image_link",
		"facebook_link", "website", "seeking_venue", "seeking_description",
	}
}

func venueColumns() []string {
	return []string{
		"id", "name", "city", "state", "address", "phone", "image_link",
		"facebook_link", "genres", "website", "seeking_talent", "seeking_description",
	}
}

func TestCreateShowUnknownArtistPersistsNothing(t *testing.T) {
	db, mock := newTestDB(t)
	svc := newShowService(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "artist"`).
		WillReturnRows(sqlmock.NewRows(artistColumns()))
	mock.ExpectRollback()

	_, err := svc.CreateShow(context.Background(), 99, 1, time.Now())
	if !errors.Is(err, ErrIntegrity) {
		t.Fatalf("expected ErrIntegrity, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected persistence activity: %v", err)
	}
}

func TestCreateShowUnknownVenuePersistsNothing(t *testing.T) {
	db, mock := newTestDB(t)
	svc := newShowService(db)

	artistRows := sqlmock.NewRows(artistColumns()).
		AddRow(int64(4), "Guns N Petals", "", "", "", "{}", "", "", "", false, "")
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "artist"`).WillReturnRows(artistRows)
	mock.ExpectQuery(`SELECT \* FROM "venue"`).
		WillReturnRows(sqlmock.NewRows(venueColumns()))
	mock.ExpectRollback()

	_, err := svc.CreateShow(context.Background(), 4, 99, time.Now())
	if !errors.Is(err, ErrIntegrity) {
		t.Fatalf("expected ErrIntegrity, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected persistence activity: %v", err)
	}
}

func TestCreateShowSuccess(t *testing.T) {
	db, mock := newTestDB(t)
	svc := newShowService(db)

	artistRows := sqlmock.NewRows(artistColumns()).
		AddRow(int64(4), "Guns N Petals", "", "", "", "{}", "", "", "", false, "")
	venueRows := sqlmock.NewRows(venueColumns())
	venueRows.AddRow(int64(1), "The Musical Hop", "San Francisco", "CA", "", "", "", "", "{}", "", false, "")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "artist"`).WillReturnRows(artistRows)
	mock.ExpectQuery(`SELECT \* FROM "venue"`).WillReturnRows(venueRows)
	mock.ExpectQuery(`INSERT INTO "show"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectCommit()

	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)
	show, err := svc.CreateShow(context.Background(), 4, 1, start)
	if err != nil {
		t.Fatalf("CreateShow: %v", err)
	}
	if show.ID != 7 || show.ArtistID != 4 || show.VenueID != 1 {
		t.Fatalf("unexpected show: %+v", show)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteVenueCascadesToShows(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewVenueService(db, repository.NewVenueRepoGorm(db), repository.NewShowRepoGorm(db))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "show" WHERE venue_id = \$1`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "venue"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := svc.DeleteVenue(context.Background(), 1); err != nil {
		t.Fatalf("DeleteVenue: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteVenueNotFoundRollsBack(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewVenueService(db, repository.NewVenueRepoGorm(db), repository.NewShowRepoGorm(db))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "show" WHERE venue_id = \$1`).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "venue"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := svc.DeleteVenue(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteArtistCascadesToShows(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewArtistService(db, repository.NewArtistRepoGorm(db), repository.NewShowRepoGorm(db))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "show" WHERE artist_id = \$1`).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "artist"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := svc.DeleteArtist(context.Background(), 4); err != nil {
		t.Fatalf("DeleteArtist: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestGetVenueByIDNotFound(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewVenueService(db, repository.NewVenueRepoGorm(db), repository.NewShowRepoGorm(db))

	mock.ExpectQuery(`SELECT \* FROM "venue"`).
		WillReturnRows(sqlmock.NewRows(venueColumns()))

	_, err := svc.GetVenueByID(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateArtistRoundTripDefaults(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewArtistService(db, repository.NewArtistRepoGorm(db), repository.NewShowRepoGorm(db))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "artist"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectCommit()

	artist := &model.Artist{Name: "Matt Quevedo", City: "New York", State: "NY"}
	if err := svc.CreateArtist(context.Background(), artist); err != nil {
		t.Fatalf("CreateArtist: %v", err)
	}
	if artist.ID != 5 {
		t.Fatalf("expected assigned id 5, got %d", artist.ID)
	}

	fetched := sqlmock.NewRows(artistColumns()).
		AddRow(int64(5), "Matt Quevedo", "New York", "NY", "", "{}", "", "", "", false, "")
	mock.ExpectQuery(`SELECT \* FROM "artist"`).WillReturnRows(fetched)

	got, err := svc.GetArtistByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("GetArtistByID: %v", err)
	}
	if got.Name != "Matt Quevedo" || got.City != "New York" || got.State != "NY" {
		t.Fatalf("fields did not round-trip: %+v", got)
	}
	if got.ImageLink != "" || got.Website != "" || got.SeekingVenue || got.SeekingDescription != "" {
		t.Fatalf("defaults not applied: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
