// Package models holds the client-side views of API objects, decoded from
// GraphQL responses.
package models

import "time"

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthPayload struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type Link struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	PostedBy    *User     `json:"postedBy"`
	Votes       []Vote    `json:"votes"`
}

type Vote struct {
	ID   string `json:"id"`
	Link *Link  `json:"link"`
	User *User  `json:"user"`
}
