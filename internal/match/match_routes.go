package match

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rohanvd/crease/config"
	mw "github.com/rohanvd/crease/internal/middleware"
	"github.com/rohanvd/crease/internal/player"
)

// MatchRoutes sets up all match-related routes. Scorecards and match
// state are public; everything that mutates a match requires a scorer
// token.
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, playerRepo player.PlayerRepository, jwtSecret string) {
	matchRepo := NewGormMatchRepository(db)
	matchController := NewMatchController(matchRepo, playerRepo, appConfig)

	public := router.Group("/matches")
	{
		public.GET("", matchController.GetMatches)
		public.GET("/:id", matchController.GetMatch)
		public.GET("/:id/scorecard", matchController.GetScorecard)
		public.GET("/:id/candidates", matchController.GetCandidates)
	}

	authRoutes := router.Group("/matches")
	authRoutes.Use(mw.AuthMiddleware(jwtSecret))
	{
		authRoutes.POST("", matchController.CreateMatch)
		authRoutes.POST("/:id/balls", matchController.RecordBall)
		authRoutes.POST("/:id/batsman", matchController.SelectBatsman)
		authRoutes.POST("/:id/bowler", matchController.SelectBowler)
		authRoutes.POST("/:id/undo", matchController.Undo)
	}
}
