package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hirelens/hirelens/internal/api/handlers"
	"github.com/hirelens/hirelens/internal/api/middleware"
)

type Deps struct {
	Search  *handlers.SearchHandler
	Credit  *handlers.CreditHandler
	Picture *handlers.PictureHandler

	// Logs enables GET /search-logs when the search log store is
	// configured.
	Logs *handlers.SearchLogHandler

	// JWTSecret enables auth on the API group when non-empty.
	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/")
	if d.JWTSecret != "" {
		api.Use(middleware.JWTAuth(d.JWTSecret, d.JWTIssuer, d.JWTAudience))
	}

	api.POST("/search-profiles", d.Search.SearchProfiles)
	api.GET("/credit-balance", d.Credit.Balance)
	api.GET("/get-profile-pic", d.Picture.ProfilePic)
	if d.Logs != nil {
		api.GET("/search-logs", d.Logs.Recent)
	}
}
