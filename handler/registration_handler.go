package handler

import (
	"errors"

	"notemark/dto"
	"notemark/model"
	"notemark/repository"
	"notemark/services"
	"notemark/usecase"
	"notemark/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	userService *usecase.UserService
}

func NewAuthHandler(userService *usecase.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.ValidationErrorMessage(err))
		return
	}

	user := &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := h.userService.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			utils.Conflict(c, "username already exists")
			return
		}
		log.Error().Err(err).Msg("registration failed")
		utils.InternalError(c, "Internal server error")
		return
	}

	tokens, err := issueTokens(user.UserID)
	if err != nil {
		log.Error().Err(err).Msg("token generation failed")
		utils.InternalError(c, "Internal server error")
		return
	}

	utils.Created(c, tokens)
}

func issueTokens(userID string) (*dto.TokenResponse, error) {
	token, err := services.GenerateToken(userID)
	if err != nil {
		return nil, err
	}
	refreshToken, err := services.GenerateRefreshToken(userID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: token, RefreshToken: refreshToken}, nil
}
