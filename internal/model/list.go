package model

import "time"

type List struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	Name      string    `json:"name"`
	Shared    bool      `json:"shared"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type ListItem struct {
	ID          string     `json:"id"`
	ListID      string     `json:"list_id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type ListDraft struct {
	GroupID string `json:"group_id"`
	Name    string `json:"name"`
	Shared  bool   `json:"shared"`
}

type ItemDraft struct {
	ListID string `json:"list_id"`
	Text   string `json:"text"`
}
