package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rohanvd/crease/config"
	"github.com/rohanvd/crease/internal/match"
	"github.com/rohanvd/crease/internal/player"
	"github.com/rohanvd/crease/internal/scoring"
	"github.com/rohanvd/crease/pkg/responses"
)

// PlayerCareerLine is one row of the career table.
type PlayerCareerLine struct {
	PlayerID      string `json:"player_id"`
	Name          string `json:"name"`
	MatchesPlayed int    `json:"matches_played"`
	TotalRuns     int    `json:"total_runs"`
	TotalWickets  int    `json:"total_wickets"`
}

// LeaderboardRow pairs a ranked player with the metric value.
type LeaderboardRow struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Value    int    `json:"value"`
}

// LeaderboardResponse carries both rankings derived from the same fold.
type LeaderboardResponse struct {
	MatchesCounted int              `json:"matches_counted"`
	Runs           []LeaderboardRow `json:"runs"`
	Wickets        []LeaderboardRow `json:"wickets"`
}

// StatsController folds completed matches into career statistics.
type StatsController struct {
	matchRepo  match.MatchRepository
	playerRepo player.PlayerRepository
	appConfig  *config.Config
}

func NewStatsController(matchRepo match.MatchRepository, playerRepo player.PlayerRepository, appConfig *config.Config) *StatsController {
	return &StatsController{matchRepo: matchRepo, playerRepo: playerRepo, appConfig: appConfig}
}

func (sc *StatsController) loadCompleted(c *gin.Context) ([]*scoring.Match, bool) {
	records, err := sc.matchRepo.GetCompletedMatches()
	if err != nil {
		responses.InternalServerError(c, "Failed to load completed matches")
		return nil, false
	}
	matches := make([]*scoring.Match, 0, len(records))
	for _, rec := range records {
		if rec.State.Match != nil {
			matches = append(matches, rec.State.Match)
		}
	}
	return matches, true
}

func (sc *StatsController) resolveNames(c *gin.Context, ids []string) (map[string]string, bool) {
	names, err := sc.playerRepo.NamesByCode(ids)
	if err != nil {
		responses.InternalServerError(c, "Failed to resolve player names")
		return nil, false
	}
	return names, true
}

func displayName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}

// GetCareers godoc
// @Summary Per-player career totals across completed matches
// @Tags stats
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /stats/careers [get]
func (sc *StatsController) GetCareers(c *gin.Context) {
	matches, ok := sc.loadCompleted(c)
	if !ok {
		return
	}

	totals, order := scoring.Aggregate(matches)
	names, ok := sc.resolveNames(c, order)
	if !ok {
		return
	}

	lines := make([]PlayerCareerLine, 0, len(order))
	for _, id := range order {
		t := totals[id]
		lines = append(lines, PlayerCareerLine{
			PlayerID:      id,
			Name:          displayName(names, id),
			MatchesPlayed: t.MatchesPlayed,
			TotalRuns:     t.TotalRuns,
			TotalWickets:  t.TotalWickets,
		})
	}
	responses.SendSuccess(c, http.StatusOK, "", lines)
}

// GetLeaderboard godoc
// @Summary Runs and wickets leaderboards across completed matches
// @Tags stats
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /stats/leaderboard [get]
func (sc *StatsController) GetLeaderboard(c *gin.Context) {
	matches, ok := sc.loadCompleted(c)
	if !ok {
		return
	}

	runs := scoring.RunsLeaderboard(matches)
	wickets := scoring.WicketsLeaderboard(matches)

	var ids []string
	for _, e := range runs {
		ids = append(ids, e.PlayerID)
	}
	names, ok := sc.resolveNames(c, ids)
	if !ok {
		return
	}

	resp := LeaderboardResponse{MatchesCounted: len(matches)}
	for _, e := range runs {
		resp.Runs = append(resp.Runs, LeaderboardRow{PlayerID: e.PlayerID, Name: displayName(names, e.PlayerID), Value: e.Value})
	}
	for _, e := range wickets {
		resp.Wickets = append(resp.Wickets, LeaderboardRow{PlayerID: e.PlayerID, Name: displayName(names, e.PlayerID), Value: e.Value})
	}
	responses.SendSuccess(c, http.StatusOK, "", resp)
}
