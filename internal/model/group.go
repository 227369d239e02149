package model

import "time"

type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type GroupMember struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	GroupID string `json:"group_id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
}

type MemberPatch struct {
	Name  *string `json:"name"`
	Color *string `json:"color"`
}
