package model

import "time"

type UserStats struct {
	NoteStats struct {
		Total     int            `json:"total"`
		Favorites int            `json:"favorites"`
		TagCounts map[string]int `json:"tag_counts"`
	} `json:"note_stats"`
	BookmarkStats struct {
		Total     int            `json:"total"`
		Favorites int            `json:"favorites"`
		TagCounts map[string]int `json:"tag_counts"`
	} `json:"bookmark_stats"`
	ActivityStats struct {
		AccountCreated time.Time `json:"account_created"`
	} `json:"activity_stats"`
}
