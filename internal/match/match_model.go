package match

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/rohanvd/crease/internal/scoring"
)

type MatchStatus string

const (
	StatusMatchLive      MatchStatus = "live"
	StatusMatchCompleted MatchStatus = "completed"
)

// ScoringState is the JSONB column holding the engine's match
// snapshot. The record's scalar columns are a queryable summary; this
// column is the source of truth the engine reads and replaces whole.
type ScoringState struct {
	Match *scoring.Match `json:"match"`
}

func (s ScoringState) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan unmarshals a JSONB column into the struct.
func (s *ScoringState) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("ScoringState: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, s)
}

// MatchRecord is the persisted form of one match: summary columns for
// listing and filtering plus the full engine snapshot.
type MatchRecord struct {
	gorm.Model
	CreatedByScorerID uint   `json:"created_by_scorer_id" gorm:"index"`
	TeamA             string `json:"team_a" gorm:"not null"`
	TeamB             string `json:"team_b" gorm:"not null"`
	Overs             int    `json:"overs" gorm:"not null"`

	Status        MatchStatus `json:"status" gorm:"index;default:'live'"`
	Completed     bool        `json:"completed" gorm:"index;default:false"`
	Winner        string      `json:"winner,omitempty"`
	ResultSummary string      `json:"result_summary,omitempty" gorm:"type:text"` // e.g. "Tigers won by 4 wickets"
	CompletedAt   *time.Time  `json:"completed_at,omitempty"`

	State ScoringState `json:"state" gorm:"type:jsonb"`
}

// --- DTOs for requests ---

type TeamInput struct {
	Name    string   `json:"name" binding:"required,min=1,max=100" example:"Tigers"`
	Players []string `json:"players" binding:"required,min=2,dive,required" example:"p1,p2,p3"`
}

type TossInput struct {
	Winner   string `json:"winner" binding:"required" example:"Tigers"`
	Decision string `json:"decision" binding:"required,oneof=bat bowl" example:"bat"`
}

// CreateMatchRequest is the setup-wizard payload that produces the
// initial match state.
type CreateMatchRequest struct {
	Overs int       `json:"overs" binding:"required,gte=1" example:"20"`
	TeamA TeamInput `json:"team_a" binding:"required"`
	TeamB TeamInput `json:"team_b" binding:"required"`
	Toss  TossInput `json:"toss" binding:"required"`
}

// BallEventRequest is one delivery as supplied by the scoring UI.
type BallEventRequest struct {
	Runs          int    `json:"runs" binding:"gte=0" example:"1"`
	IsExtra       bool   `json:"is_extra"`
	ExtraType     string `json:"extra_type,omitempty" binding:"omitempty,oneof=wide no_ball bye leg_bye"`
	Penalty       int    `json:"penalty" binding:"gte=0,lte=1"`
	IsWicket      bool   `json:"is_wicket"`
	DismissalType string `json:"dismissal_type,omitempty" binding:"omitempty,oneof=bowled caught lbw run_out stumped hit_wicket"`
	Fielder       string `json:"fielder,omitempty" example:"p9"`
}

func (r BallEventRequest) toEvent() scoring.BallEvent {
	return scoring.BallEvent{
		Runs:          r.Runs,
		IsExtra:       r.IsExtra,
		ExtraType:     scoring.ExtraType(r.ExtraType),
		Penalty:       r.Penalty,
		IsWicket:      r.IsWicket,
		DismissalType: scoring.DismissalType(r.DismissalType),
		Fielder:       r.Fielder,
	}
}

type SelectBatsmanRequest struct {
	PlayerID string `json:"player_id" binding:"required" example:"p3"`
	Slot     string `json:"slot" binding:"required,oneof=striker non_striker" example:"striker"`
}

type SelectBowlerRequest struct {
	PlayerID string `json:"player_id" binding:"required" example:"p8"`
}

// --- Scorecard response shapes (names resolved via the player catalog) ---

type BattingLine struct {
	PlayerID   string  `json:"player_id"`
	Name       string  `json:"name"`
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	StrikeRate float64 `json:"strike_rate"`
	Out        bool    `json:"out"`
	Dismissal  string  `json:"dismissal,omitempty"` // e.g. "c Rahul b Sami"
}

type BowlingLine struct {
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Overs    int     `json:"overs"`
	Balls    int     `json:"balls"`
	Maidens  int     `json:"maidens"`
	Runs     int     `json:"runs"`
	Wickets  int     `json:"wickets"`
	Economy  float64 `json:"economy"`
}

type FallOfWicketLine struct {
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name"`
	Score    int     `json:"score"`
	Wicket   int     `json:"wicket"`
	Over     float64 `json:"over"`
}

type InningsCard struct {
	Number        int                `json:"number"`
	BattingTeam   string             `json:"batting_team"`
	BowlingTeam   string             `json:"bowling_team"`
	Score         int                `json:"score"`
	Wickets       int                `json:"wickets"`
	Overs         float64            `json:"overs"`
	Target        *int               `json:"target,omitempty"`
	Extras        scoring.Extras     `json:"extras"`
	Batting       []BattingLine      `json:"batting"`
	Bowling       []BowlingLine      `json:"bowling"`
	FallOfWickets []FallOfWicketLine `json:"fall_of_wickets"`
}

type ScorecardResponse struct {
	MatchID       uint          `json:"match_id"`
	Status        MatchStatus   `json:"status"`
	Winner        string        `json:"winner,omitempty"`
	ResultSummary string        `json:"result_summary,omitempty"`
	Innings       []InningsCard `json:"innings"`
}

// CandidatesResponse is the derived selection view for the scoring UI.
type CandidatesResponse struct {
	Phase             scoring.Phase `json:"phase"`
	AvailableBatsmen  []string      `json:"available_batsmen"`
	AvailableBowlers  []string      `json:"available_bowlers"`
	Striker           *string       `json:"striker,omitempty"`
	NonStriker        *string       `json:"non_striker,omitempty"`
	Bowler            *string       `json:"bowler,omitempty"`
	CurrentInnings    int           `json:"current_innings"`
	BattingTeam       string        `json:"batting_team"`
	BowlingTeam       string        `json:"bowling_team"`
	LegalBallsInOvers float64       `json:"overs"`
}
