package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rohanvd/crease/config"
	"github.com/rohanvd/crease/pkg/responses"
	"github.com/rohanvd/crease/pkg/token"
	"github.com/rohanvd/crease/utils"
)

// AuthController handles scorer registration and login.
type AuthController struct {
	repo      AuthRepository
	appConfig *config.Config
}

func NewAuthController(repo AuthRepository, appConfig *config.Config) *AuthController {
	return &AuthController{repo: repo, appConfig: appConfig}
}

// Register godoc
// @Summary Register a scorer account
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body RegisterRequest true "Scorer details"
// @Success 201 {object} responses.SuccessResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	if _, err := ac.repo.GetScorerByUsername(req.Username); err == nil {
		responses.Conflict(c, "Username is already taken")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.InternalServerError(c, "Failed to check username availability")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		responses.InternalServerError(c, "Failed to hash password")
		return
	}

	scorer := &Scorer{
		Username:     req.Username,
		DisplayName:  req.DisplayName,
		PasswordHash: hash,
	}
	if scorer.DisplayName == "" {
		scorer.DisplayName = req.Username
	}
	if err := ac.repo.CreateScorer(scorer); err != nil {
		responses.InternalServerError(c, "Failed to create scorer account")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Scorer registered", FilterScorerRecord(scorer))
}

// Login godoc
// @Summary Log in and receive an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body LoginRequest true "Credentials"
// @Success 200 {object} responses.SuccessResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	scorer, err := ac.repo.GetScorerByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.Unauthorized(c, "Invalid username or password")
			return
		}
		responses.InternalServerError(c, "Failed to look up scorer")
		return
	}

	if !utils.CheckPassword(scorer.PasswordHash, req.Password) {
		responses.Unauthorized(c, "Invalid username or password")
		return
	}

	expiry := time.Duration(ac.appConfig.JWT.AccessTokenExpiryMinutes) * time.Minute
	accessToken, err := token.GenerateJWT(scorer.ID, scorer.Username, ac.appConfig.JWT.AccessTokenSecret, expiry)
	if err != nil {
		responses.InternalServerError(c, "Failed to issue access token")
		return
	}

	// Best-effort timestamp; login still succeeds if this write fails.
	now := time.Now()
	scorer.LastLoginAt = &now
	_ = ac.repo.UpdateScorer(scorer)

	responses.SendSuccess(c, http.StatusOK, "Logged in", AuthResponse{
		AccessToken: accessToken,
		Scorer:      FilterScorerRecord(scorer),
	})
}
