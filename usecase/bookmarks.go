package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"notemark/dto"
	"notemark/model"
	"notemark/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// descriptionMaxLength is measured in characters, not bytes.
const descriptionMaxLength = 500

// TitleFetcher retrieves a best-effort page title for a URL, returning ""
// when nothing usable could be fetched.
type TitleFetcher interface {
	PageTitle(ctx context.Context, url string) string
}

type BookmarkService struct {
	BookmarksRepo *repository.BookmarksRepo
	Fetcher       TitleFetcher
}

func (svc *BookmarkService) validateBookmark(bookmark *model.Bookmark) error {
	bookmark.URL = strings.TrimSpace(bookmark.URL)
	if bookmark.URL == "" {
		return invalid("bookmark url is required")
	}
	if !model.ValidBookmarkURL(bookmark.URL) {
		return invalid("bookmark url must be a valid http or https URL")
	}

	bookmark.Title = strings.TrimSpace(bookmark.Title)
	if utf8.RuneCountInString(bookmark.Title) > titleMaxLength {
		return invalid("bookmark title exceeds maximum length")
	}
	if utf8.RuneCountInString(bookmark.Description) > descriptionMaxLength {
		return invalid("bookmark description exceeds maximum length")
	}

	bookmark.Tags = bookmark.Tags.Normalize()
	return nil
}

// CreateBookmark validates and persists a new bookmark. When no title is
// supplied the page title is fetched, falling back to the raw URL.
func (svc *BookmarkService) CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error {
	if err := svc.validateBookmark(bookmark); err != nil {
		return err
	}

	if bookmark.Title == "" {
		fetched := truncateTitle(svc.Fetcher.PageTitle(ctx, bookmark.URL))
		if fetched == "" {
			fetched = truncateTitle(bookmark.URL)
		}
		bookmark.Title = fetched
	}

	// Ids are always server-assigned; drop any client-supplied one.
	bookmark.ID = primitive.NilObjectID

	now := time.Now()
	bookmark.CreatedAt = now
	bookmark.UpdatedAt = now

	if err := svc.BookmarksRepo.CreateBookmark(ctx, bookmark); err != nil {
		return fmt.Errorf("failed to create bookmark: %w", err)
	}
	return nil
}

// ListBookmarks returns the owner's bookmarks matching the query, newest
// first.
func (svc *BookmarkService) ListBookmarks(ctx context.Context, query repository.ListQuery) ([]*model.Bookmark, error) {
	bookmarks, err := svc.BookmarksRepo.FindBookmarks(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	return bookmarks, nil
}

// GetBookmark returns one owned bookmark. A malformed id yields
// ErrInvalidID, a well-formed id with no owned match yields ErrNotFound.
func (svc *BookmarkService) GetBookmark(ctx context.Context, bookmarkID, userID string) (*model.Bookmark, error) {
	id, err := primitive.ObjectIDFromHex(bookmarkID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	return svc.BookmarksRepo.GetBookmark(ctx, id, userID)
}

// UpdateBookmark applies a partial update, re-validating changed required
// fields and re-normalizing tags when present. Returns the updated bookmark.
func (svc *BookmarkService) UpdateBookmark(ctx context.Context, bookmarkID, userID string, req *dto.UpdateBookmarkRequest) (*model.Bookmark, error) {
	id, err := primitive.ObjectIDFromHex(bookmarkID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	if req.Empty() {
		return nil, invalid("no fields to update")
	}

	fields := bson.M{}
	if req.URL != nil {
		url := strings.TrimSpace(*req.URL)
		if !model.ValidBookmarkURL(url) {
			return nil, invalid("bookmark url must be a valid http or https URL")
		}
		fields["url"] = url
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, invalid("bookmark title cannot be blank")
		}
		if utf8.RuneCountInString(title) > titleMaxLength {
			return nil, invalid("bookmark title exceeds maximum length")
		}
		fields["title"] = title
	}
	if req.Description != nil {
		if utf8.RuneCountInString(*req.Description) > descriptionMaxLength {
			return nil, invalid("bookmark description exceeds maximum length")
		}
		fields["description"] = *req.Description
	}
	if req.Tags != nil {
		fields["tags"] = req.Tags.Normalize()
	}
	if req.IsFavorite != nil {
		fields["is_favorite"] = *req.IsFavorite
	}

	if err := svc.BookmarksRepo.UpdateBookmark(ctx, id, userID, fields); err != nil {
		return nil, err
	}
	return svc.BookmarksRepo.GetBookmark(ctx, id, userID)
}

// DeleteBookmark removes one owned bookmark.
func (svc *BookmarkService) DeleteBookmark(ctx context.Context, bookmarkID, userID string) error {
	id, err := primitive.ObjectIDFromHex(bookmarkID)
	if err != nil {
		return repository.ErrInvalidID
	}
	return svc.BookmarksRepo.DeleteBookmark(ctx, id, userID)
}

// truncateTitle caps an auto-derived title at the title character limit.
// User-supplied titles are rejected instead; only derived ones are
// silently shortened.
func truncateTitle(title string) string {
	if utf8.RuneCountInString(title) <= titleMaxLength {
		return title
	}
	runes := []rune(title)
	return strings.TrimSpace(string(runes[:titleMaxLength]))
}
