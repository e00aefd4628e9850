package request_models

type CreateReviewRequest struct {
	EntryID string `json:"yellowBookEntryId" binding:"required,uuid"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Title   string `json:"title" binding:"required,max=100"`
	Comment string `json:"comment" binding:"required,max=1000"`
	UserID  string `json:"userId" binding:"omitempty,uuid"`
}
