package request_models

type CreateRegistrationRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Category string `json:"category" binding:"required,min=2"`
	City     string `json:"city" binding:"required,min=2"`
	Phone    string `json:"phone" binding:"required,min=5"`
	Email    string `json:"email" binding:"required,email"`
	Message  string `json:"message" binding:"max=2000"`
}

type AdminSessionRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
