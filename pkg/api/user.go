package api

import "time"

// UserResponse is the public view of a user; the password hash never leaves the server
type UserResponse struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
}

// UpdateProfileRequest changes name and/or password; absent fields are kept
type UpdateProfileRequest struct {
	Name            *string `json:"name,omitempty"`
	Password        *string `json:"password,omitempty"`
	CurrentPassword *string `json:"current_password,omitempty"`
}
