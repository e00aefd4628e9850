package response_models

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email"`
	Image     string `json:"image,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

type DashboardStats struct {
	Entries    int64 `json:"entries"`
	Categories int64 `json:"categories"`
	Tags       int64 `json:"tags"`
	Users      int64 `json:"users"`
	Reviews    int64 `json:"reviews"`
}
