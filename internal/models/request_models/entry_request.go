package request_models

import "github.com/google/uuid"

type CreateEntryRequest struct {
	Name           string   `json:"name" binding:"required"`
	ShortName      string   `json:"shortName"`
	Summary        string   `json:"summary" binding:"required"`
	Description    string   `json:"description"`
	StreetAddress  string   `json:"streetAddress" binding:"required"`
	District       string   `json:"district" binding:"required"`
	Province       string   `json:"province" binding:"required"`
	Phone          string   `json:"phone" binding:"required"`
	SecondaryPhone string   `json:"secondaryPhone"`
	Email          string   `json:"email"`
	Website        string   `json:"website"`
	Facebook       string   `json:"facebook"`
	Instagram      string   `json:"instagram"`
	GoogleMapURL   string   `json:"googleMapUrl"`
	Hours          string   `json:"hours"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Kind           string   `json:"kind" binding:"required"`
	CategoryID     string   `json:"categoryId" binding:"required"`
	TagIDs         []string `json:"tagIds"`
}

type UpdateEntryRequest struct {
	ID uuid.UUID `json:"-"`
	CreateEntryRequest
}

// ListEntriesQuery carries the public listing filters.
type ListEntriesQuery struct {
	Search           string `form:"search"`
	CategorySlug     string `form:"categorySlug"`
	OrganizationType string `form:"organizationType"`
	Tag              string `form:"tag"`
}
