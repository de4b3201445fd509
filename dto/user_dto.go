package dto

// CreateUserRequest represents the request payload for creating a user
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

// UpdateUserRequest is a partial update; nil fields keep their prior value.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
}
