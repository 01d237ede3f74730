package handler

import (
	"notemark/dto"
	"notemark/utils"

	"github.com/gin-gonic/gin"
)

// Profile returns the authenticated user's own account details.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.userService.GetUser(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		respondServiceError(c, err, "user")
		return
	}

	links := map[string]dto.UserLink{
		"notes":     {Href: "/api/notes", Method: "GET"},
		"bookmarks": {Href: "/api/bookmarks", Method: "GET"},
		"stats":     {Href: "/api/stats", Method: "GET"},
	}
	utils.Success(c, dto.ToUserProfileResponse(user, links))
}
