package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirelens/hirelens/internal/services"
)

type CreditHandler struct {
	svc services.CreditService
}

func NewCreditHandler(svc services.CreditService) *CreditHandler {
	return &CreditHandler{svc: svc}
}

// Balance handles GET /credit-balance.
func (h *CreditHandler) Balance(c *gin.Context) {
	cb, err := h.svc.Balance(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cb)
}
