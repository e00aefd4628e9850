package response_models

// Contact types match the public contract: phone, email, website,
// facebook, instagram, map.
type Contact struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Label string `json:"label,omitempty"`
}

type Address struct {
	StreetAddress string `json:"streetAddress"`
	District      string `json:"district"`
	Province      string `json:"province"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	MapURL    string  `json:"mapUrl,omitempty"`
}

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type TagResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type Entry struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	ShortName        string       `json:"shortName,omitempty"`
	Summary          string       `json:"summary"`
	Description      string       `json:"description,omitempty"`
	Address          Address      `json:"address"`
	Contacts         []Contact    `json:"contacts"`
	Category         CategoryRef  `json:"category"`
	Tags             []TagResponse `json:"tags"`
	OrganizationType string       `json:"organizationType"`
	Hours            string       `json:"hours,omitempty"`
	Coordinates      *Coordinates `json:"coordinates"`
	CreatedAt        string       `json:"createdAt"`
	UpdatedAt        string       `json:"updatedAt"`
}
