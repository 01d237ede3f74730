package handler

import (
	"errors"

	"notemark/repository"
	"notemark/usecase"
	"notemark/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondServiceError maps a service error onto the response envelope:
// validation failures and malformed ids are 400, missing owned records are
// 404, everything else is a generic 500 with detail logged only.
func respondServiceError(c *gin.Context, err error, resource string) {
	var validationErr *usecase.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.BadRequest(c, validationErr.Error())
	case errors.Is(err, repository.ErrInvalidID):
		utils.BadRequest(c, "invalid "+resource+" id")
	case errors.Is(err, repository.ErrNotFound):
		utils.NotFound(c, resource+" not found")
	default:
		log.Error().Err(err).
			Str("resource", resource).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		utils.InternalError(c, "Internal server error")
	}
}
