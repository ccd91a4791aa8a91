package player

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rohanvd/crease/config"
	"github.com/rohanvd/crease/pkg/responses"
)

// PlayerController handles roster-management HTTP requests.
type PlayerController struct {
	repo      PlayerRepository
	appConfig *config.Config
}

func NewPlayerController(repo PlayerRepository, appConfig *config.Config) *PlayerController {
	return &PlayerController{repo: repo, appConfig: appConfig}
}

// CreatePlayer godoc
// @Summary Add a player to the catalog
// @Tags players
// @Accept json
// @Produce json
// @Param payload body CreatePlayerRequest true "Player details"
// @Success 201 {object} responses.SuccessResponse
// @Security BearerAuth
// @Router /players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	existing, err := pc.repo.GetPlayerByCode(req.Code)
	if err != nil {
		responses.InternalServerError(c, "Failed to check player code")
		return
	}
	if existing != nil {
		responses.Conflict(c, "Player code is already in use")
		return
	}

	p := &Player{
		Code:         req.Code,
		Name:         req.Name,
		Nickname:     req.Nickname,
		BattingStyle: req.BattingStyle,
		BowlingStyle: req.BowlingStyle,
	}
	if err := pc.repo.CreatePlayer(p); err != nil {
		responses.InternalServerError(c, "Failed to create player")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Player created", p)
}

// GetPlayers godoc
// @Summary List players
// @Tags players
// @Produce json
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} responses.PaginatedResponse
// @Router /players [get]
func (pc *PlayerController) GetPlayers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	players, total, err := pc.repo.GetPlayers(page, pageSize)
	if err != nil {
		responses.InternalServerError(c, "Failed to list players")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", players, total, page, pageSize)
}

// GetPlayer godoc
// @Summary Get a player by id
// @Tags players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /players/{id} [get]
func (pc *PlayerController) GetPlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}
	p, err := pc.repo.GetPlayerByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", p)
}

// UpdatePlayer godoc
// @Summary Update a player
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param payload body UpdatePlayerRequest true "Fields to update"
// @Success 200 {object} responses.SuccessResponse
// @Security BearerAuth
// @Router /players/{id} [put]
func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}

	var req UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	p, err := pc.repo.GetPlayerByID(uint(id))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch player")
		return
	}
	if p == nil {
		responses.NotFound(c, "Player")
		return
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Nickname != nil {
		p.Nickname = *req.Nickname
	}
	if req.BattingStyle != nil {
		p.BattingStyle = *req.BattingStyle
	}
	if req.BowlingStyle != nil {
		p.BowlingStyle = *req.BowlingStyle
	}

	if err := pc.repo.UpdatePlayer(p); err != nil {
		responses.InternalServerError(c, "Failed to update player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player updated", p)
}

// DeletePlayer godoc
// @Summary Delete a player
// @Tags players
// @Param id path int true "Player ID"
// @Success 200 {object} responses.SuccessResponse
// @Security BearerAuth
// @Router /players/{id} [delete]
func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		responses.BadRequest(c, "Invalid player ID")
		return
	}
	if err := pc.repo.DeletePlayer(uint(id)); err != nil {
		responses.InternalServerError(c, "Failed to delete player")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Player deleted", nil)
}
