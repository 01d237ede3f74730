package handler

import (
	"context"

	"notemark/model"
	"notemark/repository"
	"notemark/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type StatsHandler struct {
	usersRepo     *repository.UsersRepo
	notesRepo     *repository.NotesRepo
	bookmarksRepo *repository.BookmarksRepo
}

func NewStatsHandler(
	usersRepo *repository.UsersRepo,
	notesRepo *repository.NotesRepo,
	bookmarksRepo *repository.BookmarksRepo,
) *StatsHandler {
	return &StatsHandler{
		usersRepo:     usersRepo,
		notesRepo:     notesRepo,
		bookmarksRepo: bookmarksRepo,
	}
}

// GetUserStats aggregates per-user counts over both record collections.
func (h *StatsHandler) GetUserStats(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.GetString("user_id")

	user, err := h.usersRepo.FindUser(ctx, userID)
	if err != nil {
		respondServiceError(c, err, "user")
		return
	}

	var stats model.UserStats
	stats.ActivityStats.AccountCreated = user.CreatedAt

	if err := h.collectNoteStats(ctx, userID, &stats); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to collect note stats")
		utils.InternalError(c, "Internal server error")
		return
	}
	if err := h.collectBookmarkStats(ctx, userID, &stats); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to collect bookmark stats")
		utils.InternalError(c, "Internal server error")
		return
	}

	utils.Success(c, stats)
}

func (h *StatsHandler) collectNoteStats(ctx context.Context, userID string, stats *model.UserStats) error {
	total, err := h.notesRepo.CountUserNotes(ctx, userID)
	if err != nil {
		return err
	}
	favorites, err := h.notesRepo.CountFavoriteNotes(ctx, userID)
	if err != nil {
		return err
	}
	tagCounts, err := h.notesRepo.CountNotesByTag(ctx, userID)
	if err != nil {
		return err
	}

	stats.NoteStats.Total = total
	stats.NoteStats.Favorites = favorites
	stats.NoteStats.TagCounts = tagCounts
	return nil
}

func (h *StatsHandler) collectBookmarkStats(ctx context.Context, userID string, stats *model.UserStats) error {
	total, err := h.bookmarksRepo.CountUserBookmarks(ctx, userID)
	if err != nil {
		return err
	}
	favorites, err := h.bookmarksRepo.CountFavoriteBookmarks(ctx, userID)
	if err != nil {
		return err
	}
	tagCounts, err := h.bookmarksRepo.CountBookmarksByTag(ctx, userID)
	if err != nil {
		return err
	}

	stats.BookmarkStats.Total = total
	stats.BookmarkStats.Favorites = favorites
	stats.BookmarkStats.TagCounts = tagCounts
	return nil
}
