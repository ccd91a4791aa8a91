package scoring

import (
	"fmt"
	"time"
)

// BallEvent is the input for one delivery. Runs is the raw
// runs-off-or-taken parameter: runs off the bat for a normal delivery
// or a no-ball, runs physically taken for wides, byes and leg byes.
// Penalty is the base penalty for a wide or no-ball, normally 1.
type BallEvent struct {
	Runs          int           `json:"runs"`
	IsExtra       bool          `json:"is_extra"`
	ExtraType     ExtraType     `json:"extra_type,omitempty"`
	Penalty       int           `json:"penalty"`
	IsWicket      bool          `json:"is_wicket"`
	DismissalType DismissalType `json:"dismissal_type,omitempty"`
	Fielder       string        `json:"fielder,omitempty"`
}

func validExtraType(t ExtraType) bool {
	switch t {
	case ExtraWide, ExtraNoBall, ExtraBye, ExtraLegBye:
		return true
	}
	return false
}

func validDismissalType(t DismissalType) bool {
	switch t {
	case DismissalBowled, DismissalCaught, DismissalLBW,
		DismissalRunOut, DismissalStumped, DismissalHitWicket:
		return true
	}
	return false
}

func (ev BallEvent) validate() error {
	if ev.Runs < 0 {
		return fmt.Errorf("%w: negative runs %d", ErrInvalidEvent, ev.Runs)
	}
	if ev.IsExtra && !validExtraType(ev.ExtraType) {
		return fmt.Errorf("%w: unrecognized extra type %q", ErrInvalidEvent, ev.ExtraType)
	}
	if !ev.IsExtra && ev.ExtraType != "" {
		return fmt.Errorf("%w: extra type %q without is_extra", ErrInvalidEvent, ev.ExtraType)
	}
	if ev.Penalty != 0 && ev.Penalty != 1 {
		return fmt.Errorf("%w: penalty must be 0 or 1, got %d", ErrInvalidEvent, ev.Penalty)
	}
	if ev.IsWicket && !validDismissalType(ev.DismissalType) {
		return fmt.Errorf("%w: unrecognized dismissal type %q", ErrInvalidEvent, ev.DismissalType)
	}
	if !ev.IsWicket && ev.DismissalType != "" {
		return fmt.Errorf("%w: dismissal type %q without is_wicket", ErrInvalidEvent, ev.DismissalType)
	}
	return nil
}

// NewMatch builds the initial match state from the setup step: overs
// limit, both rosters and the toss outcome. The first innings shell is
// opened with every counter at zero, waiting on batsman selection.
func NewMatch(overs int, teamA, teamB Team, toss Toss) (*Match, error) {
	if overs <= 0 {
		return nil, fmt.Errorf("%w: overs limit must be positive", ErrInvalidSetup)
	}
	if teamA.Name == "" || teamB.Name == "" || teamA.Name == teamB.Name {
		return nil, fmt.Errorf("%w: two distinct team names required", ErrInvalidSetup)
	}
	if len(teamA.Players) < 2 || len(teamB.Players) < 2 {
		return nil, fmt.Errorf("%w: each roster needs at least 2 players", ErrInvalidSetup)
	}
	if toss.Winner != teamA.Name && toss.Winner != teamB.Name {
		return nil, fmt.Errorf("%w: toss winner %q is not a participating team", ErrInvalidSetup, toss.Winner)
	}
	if toss.Decision != TossDecisionBat && toss.Decision != TossDecisionBowl {
		return nil, fmt.Errorf("%w: toss decision must be bat or bowl", ErrInvalidSetup)
	}

	battingFirst := toss.Winner
	if toss.Decision == TossDecisionBowl {
		if toss.Winner == teamA.Name {
			battingFirst = teamB.Name
		} else {
			battingFirst = teamA.Name
		}
	}

	m := &Match{
		Overs:          overs,
		Teams:          [2]Team{teamA, teamB},
		Toss:           toss,
		BattingFirst:   battingFirst,
		CurrentInnings: 1,
		Innings:        map[int]*Innings{},
		StartedAt:      time.Now(),
	}
	bowling := teamA.Name
	if battingFirst == teamA.Name {
		bowling = teamB.Name
	}
	m.Innings[1] = newInnings(battingFirst, bowling, nil)
	return m.Clone(), nil
}

func newInnings(batting, bowling string, target *int) *Innings {
	return &Innings{
		BattingTeam: batting,
		BowlingTeam: bowling,
		Target:      target,
		Batsmen:     map[string]*BatsmanStat{},
		Bowlers:     map[string]*BowlerStat{},
		Phase:       PhaseAwaitingBatsman,
	}
}

// RecordBall applies one delivery to the match and returns a new,
// fully independent snapshot. The input match is never mutated. The
// caller must have a striker, non-striker and bowler selected in the
// active innings, otherwise the event is rejected.
func RecordBall(m *Match, ev BallEvent) (*Match, error) {
	if m.Completed {
		return nil, ErrMatchCompleted
	}
	if err := ev.validate(); err != nil {
		return nil, err
	}
	cur := m.ActiveInnings()
	if cur == nil {
		return nil, fmt.Errorf("%w: no active innings", ErrInvalidEvent)
	}
	if cur.Striker == nil || cur.NonStriker == nil || cur.Bowler == nil {
		return nil, ErrSelectionRequired
	}

	next := m.Clone()
	inn := next.ActiveInnings()
	strikerID := *inn.Striker
	bowlerID := *inn.Bowler

	// 1. Legality and penalty resolution.
	legal := true
	credited := ev.Runs
	total := ev.Runs
	if ev.IsExtra {
		switch ev.ExtraType {
		case ExtraWide:
			legal = false
			credited = 0
			total = ev.Penalty + ev.Runs
			inn.Extras.Wides += ev.Penalty
		case ExtraNoBall:
			legal = false
			total = ev.Penalty + ev.Runs
			inn.Extras.NoBalls += ev.Penalty
		case ExtraBye:
			credited = 0
			inn.Extras.Byes += ev.Runs
		case ExtraLegBye:
			credited = 0
			inn.Extras.LegByes += ev.Runs
		}
	}
	if legal {
		inn.Balls++
	}
	inn.Score += total

	// 2. Batsman update.
	bat := inn.Batsmen[strikerID]
	if bat == nil {
		bat = &BatsmanStat{}
		inn.Batsmen[strikerID] = bat
	}
	bat.Runs += credited
	if legal {
		bat.Balls++
	}
	if credited == 4 {
		bat.Fours++
	}
	if credited == 6 {
		bat.Sixes++
	}
	bat.recomputeStrikeRate()

	// 3. Bowler update. Extras are always charged to the bowler.
	bowl := inn.Bowlers[bowlerID]
	if bowl == nil {
		bowl = &BowlerStat{}
		inn.Bowlers[bowlerID] = bowl
	}
	if legal {
		bowl.Balls++
	}
	bowl.Runs += total
	bowl.CurrentOverRuns += total
	bowl.recomputeEconomy()

	// 4. Wicket handling.
	if ev.IsWicket {
		inn.Wickets++
		d := &Dismissal{Type: ev.DismissalType}
		if ev.DismissalType != DismissalRunOut {
			d.Bowler = &bowlerID
			bowl.Wickets++
		}
		if ev.Fielder != "" {
			d.Fielder = &ev.Fielder
		}
		bat.Out = true
		bat.Dismissal = d
		inn.FallOfWickets = append(inn.FallOfWickets, FallOfWicket{
			Batsman: strikerID,
			Score:   inn.Score,
			Wicket:  inn.Wickets,
			Over:    inn.OversDecimal(),
		})
		inn.Striker = nil // forces a fresh selection before the next ball
	}

	// 5. Ball log.
	rec := BallRecord{
		Bowler:        bowlerID,
		Striker:       strikerID,
		Runs:          ev.Runs,
		IsExtra:       ev.IsExtra,
		ExtraType:     ev.ExtraType,
		Penalty:       ev.Penalty,
		IsWicket:      ev.IsWicket,
		DismissalType: ev.DismissalType,
		TotalRuns:     total,
	}
	if legal {
		rec.Over = (inn.Balls - 1) / 6
		rec.BallInOver = (inn.Balls-1)%6 + 1
	} else {
		rec.Over = inn.Balls / 6
		rec.BallInOver = inn.Balls%6 + 1
	}
	inn.Deliveries = append(inn.Deliveries, rec)

	// 6. Strike rotation on odd team-total runs. Team total, not
	// batsman credit: a single bye rotates strike too.
	if !ev.IsWicket && total%2 == 1 {
		inn.Striker, inn.NonStriker = inn.NonStriker, inn.Striker
	}

	// 7. Over completion.
	if legal && inn.Balls%6 == 0 {
		if bowl.CurrentOverRuns == 0 {
			bowl.Maidens++
		}
		bowl.CurrentOverRuns = 0
		bowl.Overs = bowl.Balls / 6
		bowl.recomputeEconomy()
		// End-of-over rotation, independent of step 6.
		inn.Striker, inn.NonStriker = inn.NonStriker, inn.Striker
		inn.Bowler = nil
	}

	// 8. Innings / match end check.
	allOut := inn.Wickets >= next.RosterSize(inn.BattingTeam)-1
	oversComplete := inn.Balls >= next.Overs*6
	if allOut || oversComplete {
		inn.Ended = true
		if next.CurrentInnings == 1 {
			target := inn.Score + 1
			next.Innings[2] = newInnings(inn.BowlingTeam, inn.BattingTeam, &target)
			next.CurrentInnings = 2
			return next, nil
		}
		next.Completed = true
		now := time.Now()
		next.CompletedAt = &now
		computeResult(next)
		return next, nil
	}

	inn.refreshPhase()
	return next, nil
}

func computeResult(m *Match) {
	first, second := m.Innings[1], m.Innings[2]
	switch {
	case second.Score > first.Score:
		m.Winner = second.BattingTeam
		m.Margin = &Margin{
			Kind:  MarginWickets,
			Value: m.RosterSize(second.BattingTeam) - 1 - second.Wickets,
		}
	case first.Score > second.Score:
		m.Winner = first.BattingTeam
		m.Margin = &Margin{
			Kind:  MarginRuns,
			Value: first.Score - second.Score,
		}
	default:
		m.Winner = WinnerTie
	}
}

// SelectBatsman assigns a player to the striker or non-striker slot of
// the active innings and returns a new snapshot. Reselecting the same
// slot is idempotent. Roster membership is the caller's concern; the
// engine stores whatever identifier it is handed.
func SelectBatsman(m *Match, playerID string, slot BatsmanSlot) (*Match, error) {
	if m.Completed {
		return nil, ErrMatchCompleted
	}
	if playerID == "" {
		return nil, fmt.Errorf("%w: empty player id", ErrInvalidSelection)
	}
	if slot != SlotStriker && slot != SlotNonStriker {
		return nil, fmt.Errorf("%w: unknown slot %q", ErrInvalidSelection, slot)
	}
	next := m.Clone()
	inn := next.ActiveInnings()
	if inn == nil {
		return nil, fmt.Errorf("%w: no active innings", ErrInvalidSelection)
	}
	id := playerID
	if slot == SlotStriker {
		inn.Striker = &id
	} else {
		inn.NonStriker = &id
	}
	inn.refreshPhase()
	return next, nil
}

// SelectBowler assigns the active innings's current bowler and returns
// a new snapshot. The same bowler may be reselected for consecutive
// overs; only the player currently holding the slot is excluded from
// the candidate view, which is nobody right after an over ends.
func SelectBowler(m *Match, playerID string) (*Match, error) {
	if m.Completed {
		return nil, ErrMatchCompleted
	}
	if playerID == "" {
		return nil, fmt.Errorf("%w: empty player id", ErrInvalidSelection)
	}
	next := m.Clone()
	inn := next.ActiveInnings()
	if inn == nil {
		return nil, fmt.Errorf("%w: no active innings", ErrInvalidSelection)
	}
	id := playerID
	inn.Bowler = &id
	inn.refreshPhase()
	return next, nil
}

// AvailableBatsmen is the derived candidate list for batting slots:
// batting-roster members who are not out and not already at the
// crease, in roster order.
func AvailableBatsmen(m *Match) []string {
	inn := m.ActiveInnings()
	if inn == nil {
		return nil
	}
	team := m.Team(inn.BattingTeam)
	if team == nil {
		return nil
	}
	var out []string
	for _, p := range team.Players {
		if st := inn.Batsmen[p]; st != nil && st.Out {
			continue
		}
		if inn.Striker != nil && *inn.Striker == p {
			continue
		}
		if inn.NonStriker != nil && *inn.NonStriker == p {
			continue
		}
		out = append(out, p)
	}
	return out
}

// AvailableBowlers is the derived candidate list for the bowler slot:
// the bowling roster minus whoever currently holds the slot.
func AvailableBowlers(m *Match) []string {
	inn := m.ActiveInnings()
	if inn == nil {
		return nil
	}
	team := m.Team(inn.BowlingTeam)
	if team == nil {
		return nil
	}
	var out []string
	for _, p := range team.Players {
		if inn.Bowler != nil && *inn.Bowler == p {
			continue
		}
		out = append(out, p)
	}
	return out
}
