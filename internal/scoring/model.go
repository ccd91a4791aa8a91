package scoring

import (
	"math"
	"time"
)

// ExtraType classifies runs not scored off the bat.
type ExtraType string

const (
	ExtraWide   ExtraType = "wide"
	ExtraNoBall ExtraType = "no_ball"
	ExtraBye    ExtraType = "bye"
	ExtraLegBye ExtraType = "leg_bye"
)

// DismissalType for cricket wickets.
type DismissalType string

const (
	DismissalBowled    DismissalType = "bowled"
	DismissalCaught    DismissalType = "caught"
	DismissalLBW       DismissalType = "lbw"
	DismissalRunOut    DismissalType = "run_out"
	DismissalStumped   DismissalType = "stumped"
	DismissalHitWicket DismissalType = "hit_wicket"
)

// TossDecision is what the toss winner elected to do.
type TossDecision string

const (
	TossDecisionBat  TossDecision = "bat"
	TossDecisionBowl TossDecision = "bowl"
)

// Phase tells the caller what the innings is waiting on before the
// next delivery can be recorded.
type Phase string

const (
	PhaseReady           Phase = "ready"
	PhaseAwaitingBatsman Phase = "awaiting_batsman"
	PhaseAwaitingBowler  Phase = "awaiting_bowler"
)

// MarginKind is how a match victory is expressed.
type MarginKind string

const (
	MarginRuns    MarginKind = "runs"
	MarginWickets MarginKind = "wickets"
)

// WinnerTie is stored as the winner of a drawn-level match.
const WinnerTie = "Tie"

// BatsmanSlot names the two batting positions at the crease.
type BatsmanSlot string

const (
	SlotStriker    BatsmanSlot = "striker"
	SlotNonStriker BatsmanSlot = "non_striker"
)

// Team is a named, ordered roster of player identifiers. The engine
// never validates identifiers against an external roster; it trusts
// whatever the setup step supplied.
type Team struct {
	Name    string   `json:"name"`
	Players []string `json:"players"`
}

// Has reports whether the player is on this roster.
func (t Team) Has(playerID string) bool {
	for _, p := range t.Players {
		if p == playerID {
			return true
		}
	}
	return false
}

// Toss records who won the toss and what they chose.
type Toss struct {
	Winner   string       `json:"winner"`
	Decision TossDecision `json:"decision"`
}

// Dismissal describes how a batsman got out. Bowler is nil for run
// outs, which are not credited to the bowler.
type Dismissal struct {
	Type    DismissalType `json:"type"`
	Bowler  *string       `json:"bowler,omitempty"`
	Fielder *string       `json:"fielder,omitempty"`
}

// BatsmanStat is one batsman's figures within a single innings.
type BatsmanStat struct {
	Runs       int        `json:"runs"`
	Balls      int        `json:"balls"`
	Fours      int        `json:"fours"`
	Sixes      int        `json:"sixes"`
	StrikeRate float64    `json:"strike_rate"`
	Out        bool       `json:"out"`
	Dismissal  *Dismissal `json:"dismissal,omitempty"`
}

func (b *BatsmanStat) recomputeStrikeRate() {
	if b.Balls == 0 {
		b.StrikeRate = 0
		return
	}
	b.StrikeRate = round2(float64(b.Runs) / float64(b.Balls) * 100)
}

// BowlerStat is one bowler's figures within a single innings.
// CurrentOverRuns is transient bookkeeping used only to detect
// maidens; it resets at every over boundary.
type BowlerStat struct {
	Overs           int     `json:"overs"`
	Balls           int     `json:"balls"`
	Runs            int     `json:"runs"`
	Wickets         int     `json:"wickets"`
	Maidens         int     `json:"maidens"`
	Economy         float64 `json:"economy"`
	CurrentOverRuns int     `json:"current_over_runs"`
}

func (b *BowlerStat) recomputeEconomy() {
	if b.Overs == 0 {
		b.Economy = 0
		return
	}
	b.Economy = round2(float64(b.Runs) / float64(b.Overs))
}

// Extras is the running breakdown of extras conceded in an innings.
type Extras struct {
	Wides   int `json:"wides"`
	NoBalls int `json:"no_balls"`
	Byes    int `json:"byes"`
	LegByes int `json:"leg_byes"`
}

// BallRecord is the append-only log entry for one delivery. Entries
// are never mutated after insertion.
type BallRecord struct {
	Over          int           `json:"over"`
	BallInOver    int           `json:"ball_in_over"`
	Bowler        string        `json:"bowler"`
	Striker       string        `json:"striker"`
	Runs          int           `json:"runs"`
	IsExtra       bool          `json:"is_extra"`
	ExtraType     ExtraType     `json:"extra_type,omitempty"`
	Penalty       int           `json:"penalty"`
	IsWicket      bool          `json:"is_wicket"`
	DismissalType DismissalType `json:"dismissal_type,omitempty"`
	TotalRuns     int           `json:"total_runs"`
}

// FallOfWicket snapshots the moment a dismissal occurred. Over is the
// conventional decimal notation, e.g. 4.2 after two legal balls of the
// fifth over.
type FallOfWicket struct {
	Batsman string  `json:"batsman"`
	Score   int     `json:"score"`
	Wicket  int     `json:"wicket"`
	Over    float64 `json:"over"`
}

// Innings is one team's batting session.
type Innings struct {
	BattingTeam string `json:"batting_team"`
	BowlingTeam string `json:"bowling_team"`

	// Target is set on the second innings only: first-innings score + 1.
	Target *int `json:"target,omitempty"`

	Score   int    `json:"score"`
	Wickets int    `json:"wickets"`
	Balls   int    `json:"balls"` // legal deliveries only
	Extras  Extras `json:"extras"`

	Batsmen map[string]*BatsmanStat `json:"batsmen"`
	Bowlers map[string]*BowlerStat  `json:"bowlers"`

	Striker    *string `json:"striker,omitempty"`
	NonStriker *string `json:"non_striker,omitempty"`
	Bowler     *string `json:"bowler,omitempty"`

	Phase Phase `json:"phase"`

	Deliveries    []BallRecord   `json:"deliveries"`
	FallOfWickets []FallOfWicket `json:"fall_of_wickets"`

	Ended bool `json:"ended"`
}

// OversDecimal renders the legal-ball count as overs.balls, e.g. 10.2.
func (i *Innings) OversDecimal() float64 {
	return float64(i.Balls/6) + float64(i.Balls%6)/10
}

// refreshPhase derives the selection status from the vacant slots.
// An empty batting slot takes precedence over an empty bowler slot.
func (i *Innings) refreshPhase() {
	switch {
	case i.Striker == nil || i.NonStriker == nil:
		i.Phase = PhaseAwaitingBatsman
	case i.Bowler == nil:
		i.Phase = PhaseAwaitingBowler
	default:
		i.Phase = PhaseReady
	}
}

// Margin expresses the winning margin of a completed match.
type Margin struct {
	Kind  MarginKind `json:"kind"`
	Value int        `json:"value"`
}

// Match is the full state of one limited-overs match. It is a value
// the engine treats as immutable: every transition deep-copies first
// and returns a fully independent snapshot.
type Match struct {
	Overs int     `json:"overs"`
	Teams [2]Team `json:"teams"`
	Toss  Toss    `json:"toss"`

	BattingFirst   string           `json:"batting_first"`
	CurrentInnings int              `json:"current_innings"` // 1 or 2
	Innings        map[int]*Innings `json:"innings"`

	Completed bool    `json:"completed"`
	Winner    string  `json:"winner,omitempty"` // team name or "Tie"
	Margin    *Margin `json:"margin,omitempty"`

	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ActiveInnings returns the innings currently being scored, or nil if
// the match state is malformed.
func (m *Match) ActiveInnings() *Innings {
	return m.Innings[m.CurrentInnings]
}

// Team returns the roster with the given name, or nil.
func (m *Match) Team(name string) *Team {
	for idx := range m.Teams {
		if m.Teams[idx].Name == name {
			return &m.Teams[idx]
		}
	}
	return nil
}

// RosterSize returns the roster size for the named team, 0 if unknown.
func (m *Match) RosterSize(name string) int {
	if t := m.Team(name); t != nil {
		return len(t.Players)
	}
	return 0
}

// Clone produces a fully independent deep copy. No slice, map or
// pointer is shared between the original and the copy.
func (m *Match) Clone() *Match {
	if m == nil {
		return nil
	}
	out := *m
	for idx := range m.Teams {
		out.Teams[idx].Players = append([]string(nil), m.Teams[idx].Players...)
	}
	out.Innings = make(map[int]*Innings, len(m.Innings))
	for n, inn := range m.Innings {
		out.Innings[n] = inn.clone()
	}
	out.Margin = clonePtr(m.Margin)
	out.CompletedAt = clonePtr(m.CompletedAt)
	return &out
}

func (i *Innings) clone() *Innings {
	if i == nil {
		return nil
	}
	out := *i
	out.Target = clonePtr(i.Target)
	out.Striker = clonePtr(i.Striker)
	out.NonStriker = clonePtr(i.NonStriker)
	out.Bowler = clonePtr(i.Bowler)
	out.Batsmen = make(map[string]*BatsmanStat, len(i.Batsmen))
	for id, st := range i.Batsmen {
		c := *st
		c.Dismissal = cloneDismissal(st.Dismissal)
		out.Batsmen[id] = &c
	}
	out.Bowlers = make(map[string]*BowlerStat, len(i.Bowlers))
	for id, st := range i.Bowlers {
		c := *st
		out.Bowlers[id] = &c
	}
	out.Deliveries = append([]BallRecord(nil), i.Deliveries...)
	out.FallOfWickets = append([]FallOfWicket(nil), i.FallOfWickets...)
	return &out
}

func cloneDismissal(d *Dismissal) *Dismissal {
	if d == nil {
		return nil
	}
	out := *d
	out.Bowler = clonePtr(d.Bowler)
	out.Fielder = clonePtr(d.Fielder)
	return &out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
