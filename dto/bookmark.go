package dto

import "notemark/model"

// UpdateBookmarkRequest carries a partial bookmark update. Nil fields were
// absent from the request body and leave the stored value untouched.
type UpdateBookmarkRequest struct {
	URL         *string        `json:"url"`
	Title       *string        `json:"title"`
	Description *string        `json:"description"`
	Tags        *model.TagList `json:"tags"`
	IsFavorite  *bool          `json:"is_favorite"`
}

// Empty reports whether the request would change nothing.
func (r *UpdateBookmarkRequest) Empty() bool {
	return r.URL == nil && r.Title == nil && r.Description == nil &&
		r.Tags == nil && r.IsFavorite == nil
}
