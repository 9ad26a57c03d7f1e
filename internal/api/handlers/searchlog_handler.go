package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	pgrepo "github.com/hirelens/hirelens/internal/repositories/postgres"
)

type SearchLogHandler struct {
	logs pgrepo.SearchLogRepository
}

func NewSearchLogHandler(logs pgrepo.SearchLogRepository) *SearchLogHandler {
	return &SearchLogHandler{logs: logs}
}

// Recent handles GET /search-logs?limit=N, newest first.
func (h *SearchLogHandler) Recent(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		limit = 50
	}
	out, err := h.logs.Recent(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
