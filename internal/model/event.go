package model

import "time"

type Event struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	Title     string    `json:"title"`
	Date      string    `json:"date"`           // YYYY-MM-DD
	Time      string    `json:"time,omitempty"` // display form, e.g. "7:00 PM"
	Note      string    `json:"note,omitempty"`
	MemberIDs []string  `json:"member_ids"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// EventDraft holds the caller-supplied fields for a new event. The store
// assigns the id, creation timestamp, and creator.
type EventDraft struct {
	GroupID   string   `json:"group_id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Time      string   `json:"time"`
	Note      string   `json:"note"`
	MemberIDs []string `json:"member_ids"`
}

type EventPatch struct {
	Title     *string   `json:"title"`
	Date      *string   `json:"date"`
	Time      *string   `json:"time"`
	Note      *string   `json:"note"`
	MemberIDs *[]string `json:"member_ids"`
}
