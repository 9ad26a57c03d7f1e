package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirelens/hirelens/internal/services"
	"github.com/hirelens/hirelens/internal/utils"
)

type PictureHandler struct {
	svc services.PictureService
}

func NewPictureHandler(svc services.PictureService) *PictureHandler {
	return &PictureHandler{svc: svc}
}

// ProfilePic handles GET /get-profile-pic?profile_url=...
func (h *PictureHandler) ProfilePic(c *gin.Context) {
	profileURL := c.Query("profile_url")
	if profileURL == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "PictureHandler.ProfilePic", "profile_url query parameter is required", nil))
		return
	}

	pic, err := h.svc.ProfilePic(c.Request.Context(), profileURL)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pic)
}
