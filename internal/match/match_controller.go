package match

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/rohanvd/crease/config"
	"github.com/rohanvd/crease/internal/middleware"
	"github.com/rohanvd/crease/internal/player"
	"github.com/rohanvd/crease/internal/scoring"
	"github.com/rohanvd/crease/pkg/responses"
)

// matchSession serializes engine calls for one match and carries its
// single-level undo state. The engine itself is pure; the session lock
// is what guarantees exactly one in-flight mutation per match.
type matchSession struct {
	mu   sync.Mutex
	undo *scoring.UndoController
}

// MatchController handles match setup, live scoring and scorecards.
type MatchController struct {
	repo       MatchRepository
	playerRepo player.PlayerRepository
	appConfig  *config.Config

	mu       sync.Mutex
	sessions map[uint]*matchSession
}

func NewMatchController(repo MatchRepository, playerRepo player.PlayerRepository, appConfig *config.Config) *MatchController {
	return &MatchController{
		repo:       repo,
		playerRepo: playerRepo,
		appConfig:  appConfig,
		sessions:   make(map[uint]*matchSession),
	}
}

func (mc *MatchController) session(matchID uint) *matchSession {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	s, ok := mc.sessions[matchID]
	if !ok {
		s = &matchSession{undo: scoring.NewUndoController()}
		mc.sessions[matchID] = s
	}
	return s
}

func matchIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		responses.BadRequest(c, "Invalid match ID")
		return 0, false
	}
	return uint(id), true
}

// sendEngineError maps engine errors onto HTTP responses.
func sendEngineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scoring.ErrMatchCompleted):
		responses.Conflict(c, "Match is already completed")
	case errors.Is(err, scoring.ErrSelectionRequired):
		responses.Conflict(c, "Striker, non-striker and bowler must be selected before recording a ball")
	case errors.Is(err, scoring.ErrInvalidEvent),
		errors.Is(err, scoring.ErrInvalidSelection),
		errors.Is(err, scoring.ErrInvalidSetup):
		responses.BadRequest(c, err.Error())
	default:
		responses.InternalServerError(c, "Failed to apply scoring operation")
	}
}

// resultSummary renders the computed result for the record's summary
// column, e.g. "Tigers won by 4 wickets".
func resultSummary(m *scoring.Match) string {
	if m.Winner == scoring.WinnerTie {
		return "Match tied"
	}
	if m.Margin == nil {
		return m.Winner + " won"
	}
	unit := string(m.Margin.Kind)
	if m.Margin.Value == 1 {
		unit = unit[:len(unit)-1] // "runs" -> "run", "wickets" -> "wicket"
	}
	return fmt.Sprintf("%s won by %d %s", m.Winner, m.Margin.Value, unit)
}

// verifyRoster checks every supplied code against the player catalog.
// The engine itself trusts identifiers blindly; the setup boundary is
// where membership is enforced.
func (mc *MatchController) verifyRoster(codes []string) (missing []string, err error) {
	names, err := mc.playerRepo.NamesByCode(codes)
	if err != nil {
		return nil, err
	}
	for _, code := range codes {
		if _, ok := names[code]; !ok {
			missing = append(missing, code)
		}
	}
	return missing, nil
}

// CreateMatch godoc
// @Summary Create a match from the setup wizard payload
// @Tags matches
// @Accept json
// @Produce json
// @Param payload body CreateMatchRequest true "Overs, teams, rosters and toss"
// @Success 201 {object} responses.SuccessResponse
// @Security BearerAuth
// @Router /matches [post]
func (mc *MatchController) CreateMatch(c *gin.Context) {
	scorerID, err := middleware.GetScorerIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	missing, err := mc.verifyRoster(append(append([]string{}, req.TeamA.Players...), req.TeamB.Players...))
	if err != nil {
		responses.InternalServerError(c, "Failed to verify rosters")
		return
	}
	if len(missing) > 0 {
		responses.BadRequest(c, fmt.Sprintf("Unknown player codes: %v", missing))
		return
	}

	m, err := scoring.NewMatch(
		req.Overs,
		scoring.Team{Name: req.TeamA.Name, Players: req.TeamA.Players},
		scoring.Team{Name: req.TeamB.Name, Players: req.TeamB.Players},
		scoring.Toss{Winner: req.Toss.Winner, Decision: scoring.TossDecision(req.Toss.Decision)},
	)
	if err != nil {
		sendEngineError(c, err)
		return
	}

	rec := &MatchRecord{
		CreatedByScorerID: scorerID,
		TeamA:             req.TeamA.Name,
		TeamB:             req.TeamB.Name,
		Overs:             req.Overs,
		Status:            StatusMatchLive,
		State:             ScoringState{Match: m},
	}
	if err := mc.repo.CreateMatch(rec); err != nil {
		responses.InternalServerError(c, "Failed to create match")
		return
	}

	responses.SendSuccess(c, http.StatusCreated, "Match created", rec)
}

// loadLive fetches a match record and rejects missing ones. The caller
// must hold the session lock for mutations.
func (mc *MatchController) loadLive(c *gin.Context, id uint) (*MatchRecord, bool) {
	rec, err := mc.repo.GetMatchByID(id)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch match")
		return nil, false
	}
	if rec == nil || rec.State.Match == nil {
		responses.NotFound(c, "Match")
		return nil, false
	}
	return rec, true
}

// saveTransition replaces the stored snapshot with the engine's result.
// On completion it also stamps the result columns, all in one
// transaction.
func (mc *MatchController) saveTransition(rec *MatchRecord, next *scoring.Match) error {
	rec.State.Match = next
	if !next.Completed {
		return mc.repo.UpdateMatch(rec)
	}
	rec.Status = StatusMatchCompleted
	rec.Completed = true
	rec.Winner = next.Winner
	rec.ResultSummary = resultSummary(next)
	rec.CompletedAt = next.CompletedAt
	return mc.repo.WithTransaction(func(tx MatchRepository) error {
		return tx.UpdateMatch(rec)
	})
}

// RecordBall godoc
// @Summary Record one delivery
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param payload body BallEventRequest true "Ball event"
// @Success 200 {object} responses.SuccessResponse
// @Security BearerAuth
// @Router /matches/{id}/balls [post]
func (mc *MatchController) RecordBall(c *gin.Context) {
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	var req BallEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	sess := mc.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	rec, ok := mc.loadLive(c, id)
	if !ok {
		return
	}

	next, err := sess.undo.RecordBall(rec.State.Match, req.toEvent())
	if err != nil {
		sendEngineError(c, err)
		return
	}

	if err := mc.saveTransition(rec, next); err != nil {
		responses.InternalServerError(c, "Failed to persist match state")
		return
	}

	msg := "Ball recorded"
	if next.Completed {
		msg = "Ball recorded; match completed"
	}
	responses.SendSuccess(c, http.StatusOK, msg, rec)
}

// SelectBatsman godoc
// @Summary Assign a batsman to the striker or non-striker slot
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param payload body SelectBatsmanRequest true "Player and slot"
// @Success 200 {object} responses.SuccessResponse
// @Security BearerAuth
// @Router /matches/{id}/batsman [post]
func (mc *MatchController) SelectBatsman(c *gin.Context) {
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	var req SelectBatsmanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	sess := mc.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	rec, ok := mc.loadLive(c, id)
	if !ok {
		return
	}

	next, err := sess.undo.SelectBatsman(rec.State.Match, req.PlayerID, scoring.BatsmanSlot(req.Slot))
	if err != nil {
		sendEngineError(c, err)
		return
	}

	if err := mc.saveTransition(rec, next); err != nil {
		responses.InternalServerError(c, "Failed to persist match state")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Batsman selected", rec)
}

// SelectBowler godoc
// @Summary Assign the current bowler
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match ID"
// @Param payload body SelectBowlerRequest true "Player"
// @Success 200 {object} responses.SuccessResponse
// @Security BearerAuth
// @Router /matches/{id}/bowler [post]
func (mc *MatchController) SelectBowler(c *gin.Context) {
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	var req SelectBowlerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	sess := mc.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	rec, ok := mc.loadLive(c, id)
	if !ok {
		return
	}

	next, err := sess.undo.SelectBowler(rec.State.Match, req.PlayerID)
	if err != nil {
		sendEngineError(c, err)
		return
	}

	if err := mc.saveTransition(rec, next); err != nil {
		responses.InternalServerError(c, "Failed to persist match state")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Bowler selected", rec)
}

// Undo godoc
// @Summary Undo the most recent scoring operation
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Security BearerAuth
// @Router /matches/{id}/undo [post]
func (mc *MatchController) Undo(c *gin.Context) {
	id, ok := matchIDParam(c)
	if !ok {
		return
	}

	sess := mc.session(id)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	rec, ok := mc.loadLive(c, id)
	if !ok {
		return
	}

	restored, err := sess.undo.Undo()
	if err != nil {
		if errors.Is(err, scoring.ErrNothingToUndo) {
			// Benign condition, not an error.
			responses.SendSuccess(c, http.StatusOK, "Nothing to undo", gin.H{"undone": false})
			return
		}
		responses.InternalServerError(c, "Failed to undo")
		return
	}

	// Undo can reopen a match that had just been completed.
	rec.State.Match = restored
	rec.Completed = restored.Completed
	if restored.Completed {
		rec.Status = StatusMatchCompleted
	} else {
		rec.Status = StatusMatchLive
		rec.Winner = ""
		rec.ResultSummary = ""
		rec.CompletedAt = nil
	}
	if err := mc.repo.UpdateMatch(rec); err != nil {
		responses.InternalServerError(c, "Failed to persist match state")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "Last operation undone", rec)
}

// GetMatches godoc
// @Summary List matches
// @Tags matches
// @Produce json
// @Param status query string false "Filter by status (live, completed)"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} responses.PaginatedResponse
// @Router /matches [get]
func (mc *MatchController) GetMatches(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	filters := map[string]interface{}{}
	if status := c.Query("status"); status != "" {
		filters["status = ?"] = status
	}

	records, total, err := mc.repo.GetMatches(filters, page, pageSize)
	if err != nil {
		responses.InternalServerError(c, "Failed to list matches")
		return
	}
	responses.SendPaginated(c, http.StatusOK, "", records, total, page, pageSize)
}

// GetMatch godoc
// @Summary Get a match with its full scoring state
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches/{id} [get]
func (mc *MatchController) GetMatch(c *gin.Context) {
	id, ok := matchIDParam(c)
	if !ok {
		return
	}
	rec, ok := mc.loadLive(c, id)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "", rec)
}

// GetCandidates godoc
// @Summary Derived selection view: who may bat or bowl next
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches/{id}/candidates [get]
func (mc *MatchController) GetCandidates(c *gin.Context) {
	id, ok := matchIDParam(c)
	if !ok {
		return
	}
	rec, ok := mc.loadLive(c, id)
	if !ok {
		return
	}

	m := rec.State.Match
	inn := m.ActiveInnings()
	if inn == nil {
		responses.InternalServerError(c, "Match has no active innings")
		return
	}

	responses.SendSuccess(c, http.StatusOK, "", CandidatesResponse{
		Phase:             inn.Phase,
		AvailableBatsmen:  scoring.AvailableBatsmen(m),
		AvailableBowlers:  scoring.AvailableBowlers(m),
		Striker:           inn.Striker,
		NonStriker:        inn.NonStriker,
		Bowler:            inn.Bowler,
		CurrentInnings:    m.CurrentInnings,
		BattingTeam:       inn.BattingTeam,
		BowlingTeam:       inn.BowlingTeam,
		LegalBallsInOvers: inn.OversDecimal(),
	})
}

// GetScorecard godoc
// @Summary Full scorecard with display names resolved
// @Tags matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /matches/{id}/scorecard [get]
func (mc *MatchController) GetScorecard(c *gin.Context) {
	id, ok := matchIDParam(c)
	if !ok {
		return
	}
	rec, ok := mc.loadLive(c, id)
	if !ok {
		return
	}

	m := rec.State.Match
	var codes []string
	for _, team := range m.Teams {
		codes = append(codes, team.Players...)
	}
	names, err := mc.playerRepo.NamesByCode(codes)
	if err != nil {
		responses.InternalServerError(c, "Failed to resolve player names")
		return
	}

	card := ScorecardResponse{
		MatchID:       rec.ID,
		Status:        rec.Status,
		Winner:        rec.Winner,
		ResultSummary: rec.ResultSummary,
	}
	for n := 1; n <= 2; n++ {
		inn := m.Innings[n]
		if inn == nil {
			continue
		}
		card.Innings = append(card.Innings, buildInningsCard(n, inn, names))
	}
	responses.SendSuccess(c, http.StatusOK, "", card)
}

func displayName(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}

// dismissalText renders the conventional scorecard notation for a
// dismissal, e.g. "c Rahul b Sami" or "run out (Rahul)".
func dismissalText(d *scoring.Dismissal, names map[string]string) string {
	if d == nil {
		return ""
	}
	bowler := ""
	if d.Bowler != nil {
		bowler = displayName(names, *d.Bowler)
	}
	fielder := ""
	if d.Fielder != nil {
		fielder = displayName(names, *d.Fielder)
	}
	switch d.Type {
	case scoring.DismissalBowled:
		return "b " + bowler
	case scoring.DismissalCaught:
		return fmt.Sprintf("c %s b %s", fielder, bowler)
	case scoring.DismissalLBW:
		return "lbw b " + bowler
	case scoring.DismissalStumped:
		return fmt.Sprintf("st %s b %s", fielder, bowler)
	case scoring.DismissalRunOut:
		if fielder != "" {
			return fmt.Sprintf("run out (%s)", fielder)
		}
		return "run out"
	case scoring.DismissalHitWicket:
		return "hit wicket b " + bowler
	}
	return string(d.Type)
}

// buildInningsCard lists batsmen in order of appearance at the crease
// and bowlers in the order they were brought on.
func buildInningsCard(number int, inn *scoring.Innings, names map[string]string) InningsCard {
	card := InningsCard{
		Number:      number,
		BattingTeam: inn.BattingTeam,
		BowlingTeam: inn.BowlingTeam,
		Score:       inn.Score,
		Wickets:     inn.Wickets,
		Overs:       inn.OversDecimal(),
		Target:      inn.Target,
		Extras:      inn.Extras,
	}

	var batOrder, bowlOrder []string
	seenBat := map[string]bool{}
	seenBowl := map[string]bool{}
	for _, d := range inn.Deliveries {
		if !seenBat[d.Striker] {
			seenBat[d.Striker] = true
			batOrder = append(batOrder, d.Striker)
		}
		if !seenBowl[d.Bowler] {
			seenBowl[d.Bowler] = true
			bowlOrder = append(bowlOrder, d.Bowler)
		}
	}

	for _, id := range batOrder {
		st := inn.Batsmen[id]
		if st == nil {
			continue
		}
		card.Batting = append(card.Batting, BattingLine{
			PlayerID:   id,
			Name:       displayName(names, id),
			Runs:       st.Runs,
			Balls:      st.Balls,
			Fours:      st.Fours,
			Sixes:      st.Sixes,
			StrikeRate: st.StrikeRate,
			Out:        st.Out,
			Dismissal:  dismissalText(st.Dismissal, names),
		})
	}
	for _, id := range bowlOrder {
		st := inn.Bowlers[id]
		if st == nil {
			continue
		}
		card.Bowling = append(card.Bowling, BowlingLine{
			PlayerID: id,
			Name:     displayName(names, id),
			Overs:    st.Overs,
			Balls:    st.Balls,
			Maidens:  st.Maidens,
			Runs:     st.Runs,
			Wickets:  st.Wickets,
			Economy:  st.Economy,
		})
	}
	for _, fow := range inn.FallOfWickets {
		card.FallOfWickets = append(card.FallOfWickets, FallOfWicketLine{
			PlayerID: fow.Batsman,
			Name:     displayName(names, fow.Batsman),
			Score:    fow.Score,
			Wicket:   fow.Wicket,
			Over:     fow.Over,
		})
	}
	return card
}
