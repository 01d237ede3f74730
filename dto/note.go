package dto

import "notemark/model"

// UpdateNoteRequest carries a partial note update. Nil fields were absent
// from the request body and leave the stored value untouched.
type UpdateNoteRequest struct {
	Title      *string        `json:"title"`
	Content    *string        `json:"content"`
	Tags       *model.TagList `json:"tags"`
	IsFavorite *bool          `json:"is_favorite"`
}

// Empty reports whether the request would change nothing.
func (r *UpdateNoteRequest) Empty() bool {
	return r.Title == nil && r.Content == nil && r.Tags == nil && r.IsFavorite == nil
}
