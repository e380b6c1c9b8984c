package types

import "time"

// API-facing models. The db package has corresponding server-side models
// with a ToApi() method — the split keeps server-only columns (like the
// password hash) from ever reaching a client.

type User struct {
	Id        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type Post struct {
	Id        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatorId int64     `json:"creatorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FieldError is a validation failure attributed to one named input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// UserResponse is the result shape of the register and login mutations.
// Exactly one of Errors and User is set.
type UserResponse struct {
	Errors []*FieldError `json:"errors,omitempty"`
	User   *User         `json:"user,omitempty"`
}
