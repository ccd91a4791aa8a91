package stats

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rohanvd/crease/config"
	"github.com/rohanvd/crease/internal/match"
	"github.com/rohanvd/crease/internal/player"
)

// StatsRoutes sets up the read-only aggregation endpoints.
func StatsRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, playerRepo player.PlayerRepository) {
	matchRepo := match.NewGormMatchRepository(db)
	statsController := NewStatsController(matchRepo, playerRepo, appConfig)

	statsRoutes := router.Group("/stats")
	{
		statsRoutes.GET("/careers", statsController.GetCareers)
		statsRoutes.GET("/leaderboard", statsController.GetLeaderboard)
	}
}
