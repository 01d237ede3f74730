package handler

import (
	"notemark/dto"
	"notemark/middleware"
	"notemark/model"
	"notemark/repository"
	"notemark/usecase"
	"notemark/utils"

	"github.com/gin-gonic/gin"
)

type BookmarksHandler struct {
	bookmarkService *usecase.BookmarkService
}

func NewBookmarksHandler(bookmarkService *usecase.BookmarkService) *BookmarksHandler {
	return &BookmarksHandler{bookmarkService: bookmarkService}
}

func (h *BookmarksHandler) CreateBookmark(c *gin.Context) {
	var bookmark model.Bookmark
	if err := c.ShouldBindJSON(&bookmark); err != nil {
		utils.BadRequest(c, utils.ValidationErrorMessage(err))
		return
	}

	bookmark.UserID = c.GetString("user_id")
	if err := h.bookmarkService.CreateBookmark(c.Request.Context(), &bookmark); err != nil {
		respondServiceError(c, err, "bookmark")
		return
	}

	middleware.TrackRecordOperation("bookmarks", "create")
	utils.Created(c, bookmark)
}

func (h *BookmarksHandler) ListBookmarks(c *gin.Context) {
	query := repository.ListQuery{
		Owner:    c.GetString("user_id"),
		Q:        c.Query("q"),
		Tags:     c.Query("tags"),
		Favorite: c.Query("favorite"),
	}

	bookmarks, err := h.bookmarkService.ListBookmarks(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err, "bookmark")
		return
	}

	utils.Success(c, bookmarks)
}

func (h *BookmarksHandler) GetBookmark(c *gin.Context) {
	bookmark, err := h.bookmarkService.GetBookmark(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		respondServiceError(c, err, "bookmark")
		return
	}

	utils.Success(c, bookmark)
}

func (h *BookmarksHandler) UpdateBookmark(c *gin.Context) {
	var req dto.UpdateBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.ValidationErrorMessage(err))
		return
	}

	bookmark, err := h.bookmarkService.UpdateBookmark(c.Request.Context(), c.Param("id"), c.GetString("user_id"), &req)
	if err != nil {
		respondServiceError(c, err, "bookmark")
		return
	}

	middleware.TrackRecordOperation("bookmarks", "update")
	utils.Success(c, bookmark)
}

func (h *BookmarksHandler) DeleteBookmark(c *gin.Context) {
	err := h.bookmarkService.DeleteBookmark(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		respondServiceError(c, err, "bookmark")
		return
	}

	middleware.TrackRecordOperation("bookmarks", "delete")
	utils.SuccessMessage(c, "bookmark deleted successfully")
}
