package response_models

type Review struct {
	ID        string `json:"id"`
	EntryID   string `json:"yellowBookEntryId"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	Comment   string `json:"comment"`
	UserID    string `json:"userId,omitempty"`
	CreatedAt string `json:"createdAt"`
}

type CreatedReview struct {
	ID        string `json:"id"`
	EntryID   string `json:"yellowBookEntryId"`
	Rating    int    `json:"rating"`
	CreatedAt string `json:"createdAt"`
}
