package handler

import (
	"errors"

	"notemark/dto"
	"notemark/usecase"
	"notemark/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.ValidationErrorMessage(err))
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.Unauthorized(c, "invalid username or password")
			return
		}
		log.Error().Err(err).Msg("login failed")
		utils.InternalError(c, "Internal server error")
		return
	}

	tokens, err := issueTokens(user.UserID)
	if err != nil {
		log.Error().Err(err).Msg("token generation failed")
		utils.InternalError(c, "Internal server error")
		return
	}

	utils.Success(c, tokens)
}
