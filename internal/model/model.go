package model

import (
	"time"

	"github.com/lib/pq"
)

type Venue struct {
	ID                 uint           `gorm:"primaryKey"`
	Name               string         `gorm:"not null"`
	City               string         `gorm:"size:120"`
	State              string         `gorm:"size:120"`
	Address            string         `gorm:"size:120"`
	Phone              string         `gorm:"size:120"`
	ImageLink          string         `gorm:"size:500;not null;default:''"`
	FacebookLink       string         `gorm:"size:120"`
	Genres             pq.StringArray `gorm:"type:text[]"`
	Website            string         `gorm:"size:120;not null;default:''"`
	SeekingTalent      bool           `gorm:"not null;default:false"`
	SeekingDescription string         `gorm:"size:500;not null;default:''"`
}

func (Venue) TableName() string { return "venue" }

type Artist struct {
	ID                 uint           `gorm:"primaryKey"`
	Name               string         `gorm:"not null"`
	City               string         `gorm:"size:120"`
	State              string         `gorm:"size:120"`
	Phone              string         `gorm:"size:120"`
	Genres             pq.StringArray `gorm:"type:text[]"`
	ImageLink          string         `gorm:"size:500;not null;default:''"`
	FacebookLink       string         `gorm:"size:120"`
	Website            string         `gorm:"size:120;not null;default:''"`
	SeekingVenue       bool           `gorm:"not null;default:false"`
	SeekingDescription string         `gorm:"size:500;not null;default:''"`
}

func (Artist) TableName() string { return "artist" }

// Show joins one Artist and one Venue at a start time. Deleting either
// side removes its shows; see the delete paths in internal/service.
type Show struct {
	ID        uint      `gorm:"primaryKey"`
	ArtistID  uint      `gorm:"not null;index"`
	VenueID   uint      `gorm:"not null;index"`
	StartTime time.Time `gorm:"not null"`

	Artist Artist `gorm:"constraint:OnDelete:CASCADE"`
	Venue  Venue  `gorm:"constraint:OnDelete:CASCADE"`
}

func (Show) TableName() string { return "show" }
