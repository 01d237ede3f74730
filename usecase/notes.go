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

// titleMaxLength is measured in characters, not bytes.
const titleMaxLength = 200

type NoteService struct {
	NotesRepo *repository.NotesRepo
}

func (svc *NoteService) validateNote(note *model.Note) error {
	note.Title = strings.TrimSpace(note.Title)
	if note.Title == "" {
		return invalid("note title is required")
	}
	if utf8.RuneCountInString(note.Title) > titleMaxLength {
		return invalid("note title exceeds maximum length")
	}

	if strings.TrimSpace(note.Content) == "" {
		return invalid("note content is required")
	}

	note.Tags = note.Tags.Normalize()
	return nil
}

// CreateNote validates and persists a new note for its owner.
func (svc *NoteService) CreateNote(ctx context.Context, note *model.Note) error {
	if err := svc.validateNote(note); err != nil {
		return err
	}

	// Ids are always server-assigned; drop any client-supplied one.
	note.ID = primitive.NilObjectID

	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	if err := svc.NotesRepo.CreateNote(ctx, note); err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

// ListNotes returns the owner's notes matching the query, newest first.
func (svc *NoteService) ListNotes(ctx context.Context, query repository.ListQuery) ([]*model.Note, error) {
	notes, err := svc.NotesRepo.FindNotes(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// GetNote returns one owned note. A malformed id yields ErrInvalidID, a
// well-formed id with no owned match yields ErrNotFound.
func (svc *NoteService) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	id, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	return svc.NotesRepo.GetNote(ctx, id, userID)
}

// UpdateNote applies a partial update, re-validating changed required fields
// and re-normalizing tags when present. Returns the updated note.
func (svc *NoteService) UpdateNote(ctx context.Context, noteID, userID string, req *dto.UpdateNoteRequest) (*model.Note, error) {
	id, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	if req.Empty() {
		return nil, invalid("no fields to update")
	}

	fields := bson.M{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, invalid("note title is required")
		}
		if utf8.RuneCountInString(title) > titleMaxLength {
			return nil, invalid("note title exceeds maximum length")
		}
		fields["title"] = title
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, invalid("note content is required")
		}
		fields["content"] = *req.Content
	}
	if req.Tags != nil {
		fields["tags"] = req.Tags.Normalize()
	}
	if req.IsFavorite != nil {
		fields["is_favorite"] = *req.IsFavorite
	}

	if err := svc.NotesRepo.UpdateNote(ctx, id, userID, fields); err != nil {
		return nil, err
	}
	return svc.NotesRepo.GetNote(ctx, id, userID)
}

// DeleteNote removes one owned note.
func (svc *NoteService) DeleteNote(ctx context.Context, noteID, userID string) error {
	id, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return repository.ErrInvalidID
	}
	return svc.NotesRepo.DeleteNote(ctx, id, userID)
}
