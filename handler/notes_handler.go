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

type NotesHandler struct {
	noteService *usecase.NoteService
}

func NewNotesHandler(noteService *usecase.NoteService) *NotesHandler {
	return &NotesHandler{noteService: noteService}
}

func (h *NotesHandler) CreateNote(c *gin.Context) {
	var note model.Note
	if err := c.ShouldBindJSON(&note); err != nil {
		utils.BadRequest(c, utils.ValidationErrorMessage(err))
		return
	}

	note.UserID = c.GetString("user_id")
	if err := h.noteService.CreateNote(c.Request.Context(), &note); err != nil {
		respondServiceError(c, err, "note")
		return
	}

	middleware.TrackRecordOperation("notes", "create")
	utils.Created(c, note)
}

func (h *NotesHandler) ListNotes(c *gin.Context) {
	query := repository.ListQuery{
		Owner:    c.GetString("user_id"),
		Q:        c.Query("q"),
		Tags:     c.Query("tags"),
		Favorite: c.Query("favorite"),
	}

	notes, err := h.noteService.ListNotes(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err, "note")
		return
	}

	utils.Success(c, notes)
}

func (h *NotesHandler) GetNote(c *gin.Context) {
	note, err := h.noteService.GetNote(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		respondServiceError(c, err, "note")
		return
	}

	utils.Success(c, note)
}

func (h *NotesHandler) UpdateNote(c *gin.Context) {
	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.ValidationErrorMessage(err))
		return
	}

	note, err := h.noteService.UpdateNote(c.Request.Context(), c.Param("id"), c.GetString("user_id"), &req)
	if err != nil {
		respondServiceError(c, err, "note")
		return
	}

	middleware.TrackRecordOperation("notes", "update")
	utils.Success(c, note)
}

func (h *NotesHandler) DeleteNote(c *gin.Context) {
	err := h.noteService.DeleteNote(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		respondServiceError(c, err, "note")
		return
	}

	middleware.TrackRecordOperation("notes", "delete")
	utils.SuccessMessage(c, "note deleted successfully")
}
