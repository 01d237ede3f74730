package handler

import (
	"notemark/dto"
	"notemark/services"
	"notemark/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Refresh exchanges a valid refresh token for a new token pair.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.ValidationErrorMessage(err))
		return
	}

	userID, err := services.ParseToken(req.RefreshToken, "refresh")
	if err != nil {
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}

	tokens, err := issueTokens(userID)
	if err != nil {
		log.Error().Err(err).Msg("token generation failed")
		utils.InternalError(c, "Internal server error")
		return
	}

	utils.Success(c, tokens)
}
