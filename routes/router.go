package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/rohanvd/crease/config"
	"github.com/rohanvd/crease/internal/auth"
	"github.com/rohanvd/crease/internal/match"
	"github.com/rohanvd/crease/internal/player"
	"github.com/rohanvd/crease/internal/stats"
)

func SetupRoutes() *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default()) // allows all origins, GET/POST/PUT

	cfg := config.GetConfig()
	db := config.DB

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>Crease</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>Crease 🏏 ball-by-ball scoring</h1>
					<p><a href="/swagger/index.html">API docs</a></p>
				</body>
			</html>
		`))
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	playerRepo := player.NewGormPlayerRepository(db)

	// API routes
	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, cfg)
	player.PlayerRoutes(api, db, cfg, cfg.JWT.AccessTokenSecret)
	match.MatchRoutes(api, db, cfg, playerRepo, cfg.JWT.AccessTokenSecret)
	stats.StatsRoutes(api, db, cfg, playerRepo)

	return r
}
