package request_models

type CreateCategoryRequest struct {
	Slug        string `json:"slug" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CreateTagRequest struct {
	Label string `json:"label" binding:"required"`
}

// RevalidateRequest is the payload of the cache revalidation webhook.
type RevalidateRequest struct {
	ID         string   `json:"id"`
	Collection *bool    `json:"collection"`
	Tags       []string `json:"tags"`
}
