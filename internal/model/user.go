package model

import "time"

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Color          string    `json:"color"`
	DateOfBirth    string    `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	ProfilePicture string    `json:"profile_picture,omitempty"`
	PasswordHash   string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserPatch enumerates the profile fields a user may change. Nil means
// "leave unchanged".
type UserPatch struct {
	Name           *string `json:"name"`
	Color          *string `json:"color"`
	DateOfBirth    *string `json:"date_of_birth"`
	ProfilePicture *string `json:"profile_picture"`
}
