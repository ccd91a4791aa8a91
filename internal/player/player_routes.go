package player

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rohanvd/crease/config"
	mw "github.com/rohanvd/crease/internal/middleware"
)

// PlayerRoutes sets up all roster-management routes. Reads are public;
// mutations require a scorer token.
func PlayerRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, jwtSecret string) {
	playerRepo := NewGormPlayerRepository(db)
	playerController := NewPlayerController(playerRepo, appConfig)

	public := router.Group("/players")
	{
		public.GET("", playerController.GetPlayers)
		public.GET("/:id", playerController.GetPlayer)
	}

	authRoutes := router.Group("/players")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret))
	{
		authRoutes.POST("", playerController.CreatePlayer)
		authRoutes.PUT("/:id", playerController.UpdatePlayer)
		authRoutes.DELETE("/:id", playerController.DeletePlayer)
	}
}
