package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirelens/hirelens/internal/services"
	"github.com/hirelens/hirelens/internal/utils"
)

type SearchHandler struct {
	svc services.SearchService
}

func NewSearchHandler(svc services.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

type SearchProfilesRequest struct {
	Prompt string `json:"prompt"`
}

// SearchProfiles handles POST /search-profiles.
func (h *SearchHandler) SearchProfiles(c *gin.Context) {
	var req SearchProfilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SearchHandler.SearchProfiles", "invalid request body", err))
		return
	}
	if req.Prompt == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, "SearchHandler.SearchProfiles", "prompt is required", nil))
		return
	}

	cards, err := h.svc.SearchProfiles(c.Request.Context(), req.Prompt)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, cards)
}
