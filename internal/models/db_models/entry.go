package db_models

import "github.com/google/uuid"

// OrganizationKind mirrors the kind enum stored on each entry.
const (
	KindBusiness   = "BUSINESS"
	KindGovernment = "GOVERNMENT"
	KindMunicipal  = "MUNICIPAL"
	KindNGO        = "NGO"
	KindService    = "SERVICE"
)

func ValidKind(kind string) bool {
	switch kind {
	case KindBusiness, KindGovernment, KindMunicipal, KindNGO, KindService:
		return true
	}
	return false
}

type Entry struct {
	BaseModel
	Name        string `gorm:"not null"`
	ShortName   string
	Summary     string `gorm:"not null"`
	Description string

	StreetAddress string `gorm:"not null"`
	District      string `gorm:"not null"`
	Province      string `gorm:"not null"`

	Phone          string `gorm:"not null"`
	SecondaryPhone string
	Email          string
	Website        string
	Facebook       string
	Instagram      string
	GoogleMapURL   string

	Hours     string
	Latitude  *float64
	Longitude *float64

	Kind string `gorm:"not null;default:BUSINESS"`

	CategoryID uuid.UUID `gorm:"type:uuid;not null"`
	Category   Category

	Tags    []Tag    `gorm:"many2many:entry_tags"`
	Reviews []Review `gorm:"foreignKey:EntryID"`
}

func (Entry) TableName() string {
	return "yellow_book_entries"
}
