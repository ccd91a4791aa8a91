package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lions(n int) Team {
	players := []string{"l1", "l2", "l3", "l4", "l5"}
	return Team{Name: "Lions", Players: players[:n]}
}

func tigers(n int) Team {
	players := []string{"t1", "t2", "t3", "t4", "t5"}
	return Team{Name: "Tigers", Players: players[:n]}
}

// readyMatch builds a match with openers and an opening bowler already
// selected, Lions batting first.
func readyMatch(t *testing.T, overs, rosterSize int) *Match {
	t.Helper()
	m, err := NewMatch(overs, lions(rosterSize), tigers(rosterSize), Toss{Winner: "Lions", Decision: TossDecisionBat})
	require.NoError(t, err)
	m, err = SelectBatsman(m, "l1", SlotStriker)
	require.NoError(t, err)
	m, err = SelectBatsman(m, "l2", SlotNonStriker)
	require.NoError(t, err)
	m, err = SelectBowler(m, "t1")
	require.NoError(t, err)
	require.Equal(t, PhaseReady, m.ActiveInnings().Phase)
	return m
}

func mustRecord(t *testing.T, m *Match, ev BallEvent) *Match {
	t.Helper()
	next, err := RecordBall(m, ev)
	require.NoError(t, err)
	return next
}

func TestNewMatch_Validation(t *testing.T) {
	tests := []struct {
		name  string
		overs int
		a, b  Team
		toss  Toss
	}{
		{"zero overs", 0, lions(5), tigers(5), Toss{Winner: "Lions", Decision: TossDecisionBat}},
		{"short roster", 10, Team{Name: "Lions", Players: []string{"l1"}}, tigers(5), Toss{Winner: "Lions", Decision: TossDecisionBat}},
		{"same team names", 10, lions(5), Team{Name: "Lions", Players: []string{"x", "y"}}, Toss{Winner: "Lions", Decision: TossDecisionBat}},
		{"unknown toss winner", 10, lions(5), tigers(5), Toss{Winner: "Bears", Decision: TossDecisionBat}},
		{"bad toss decision", 10, lions(5), tigers(5), Toss{Winner: "Lions", Decision: "field"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMatch(tc.overs, tc.a, tc.b, tc.toss)
			assert.ErrorIs(t, err, ErrInvalidSetup)
		})
	}
}

func TestNewMatch_BattingFirstFromToss(t *testing.T) {
	m, err := NewMatch(10, lions(5), tigers(5), Toss{Winner: "Tigers", Decision: TossDecisionBowl})
	require.NoError(t, err)
	assert.Equal(t, "Lions", m.BattingFirst)
	assert.Equal(t, 1, m.CurrentInnings)

	inn := m.ActiveInnings()
	require.NotNil(t, inn)
	assert.Equal(t, "Lions", inn.BattingTeam)
	assert.Equal(t, "Tigers", inn.BowlingTeam)
	assert.Nil(t, inn.Target)
	assert.Equal(t, PhaseAwaitingBatsman, inn.Phase)
}

func TestRecordBall_SelectionRequired(t *testing.T) {
	m, err := NewMatch(10, lions(5), tigers(5), Toss{Winner: "Lions", Decision: TossDecisionBat})
	require.NoError(t, err)
	_, err = RecordBall(m, BallEvent{Runs: 1})
	assert.ErrorIs(t, err, ErrSelectionRequired)
}

func TestRecordBall_InvalidEvents(t *testing.T) {
	m := readyMatch(t, 10, 5)
	tests := []struct {
		name string
		ev   BallEvent
	}{
		{"negative runs", BallEvent{Runs: -1}},
		{"unknown extra", BallEvent{Runs: 1, IsExtra: true, ExtraType: "overthrow"}},
		{"extra type without flag", BallEvent{Runs: 1, ExtraType: ExtraWide}},
		{"bad penalty", BallEvent{IsExtra: true, ExtraType: ExtraWide, Penalty: 2}},
		{"wicket without type", BallEvent{IsWicket: true}},
		{"dismissal without wicket", BallEvent{DismissalType: DismissalBowled}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := RecordBall(m, tc.ev)
			assert.ErrorIs(t, err, ErrInvalidEvent)
		})
	}
}

func TestRecordBall_DoesNotMutateInput(t *testing.T) {
	m := readyMatch(t, 10, 5)
	before := m.Clone()

	_ = mustRecord(t, m, BallEvent{Runs: 3})

	assert.Equal(t, before, m)
}

func TestRecordBall_SingleRun(t *testing.T) {
	m := readyMatch(t, 10, 5)
	m = mustRecord(t, m, BallEvent{Runs: 1})

	inn := m.ActiveInnings()
	assert.Equal(t, 1, inn.Balls)
	assert.Equal(t, 1, inn.Score)
	require.NotNil(t, inn.Striker)
	assert.Equal(t, "l2", *inn.Striker) // odd runs rotate strike
	assert.Equal(t, "l1", *inn.NonStriker)

	bat := inn.Batsmen["l1"]
	require.NotNil(t, bat)
	assert.Equal(t, 1, bat.Runs)
	assert.Equal(t, 1, bat.Balls)
	assert.InDelta(t, 100.0, bat.StrikeRate, 0.001)

	bowl := inn.Bowlers["t1"]
	require.NotNil(t, bowl)
	assert.Equal(t, 1, bowl.Balls)
	assert.Equal(t, 1, bowl.Runs)
}

func TestRecordBall_BoundaryCounters(t *testing.T) {
	m := readyMatch(t, 10, 5)
	m = mustRecord(t, m, BallEvent{Runs: 4})
	m = mustRecord(t, m, BallEvent{Runs: 6})
	// Four runs taken off a wide are not a boundary off the bat.
	m = mustRecord(t, m, BallEvent{Runs: 4, IsExtra: true, ExtraType: ExtraWide, Penalty: 1})

	bat := m.ActiveInnings().Batsmen["l1"]
	assert.Equal(t, 10, bat.Runs)
	assert.Equal(t, 1, bat.Fours)
	assert.Equal(t, 1, bat.Sixes)
}

func TestRecordBall_Wide(t *testing.T) {
	m := readyMatch(t, 10, 5)
	m = mustRecord(t, m, BallEvent{Runs: 2, IsExtra: true, ExtraType: ExtraWide, Penalty: 1})

	inn := m.ActiveInnings()
	assert.Equal(t, 0, inn.Balls, "wide must not count as a legal delivery")
	assert.Equal(t, 3, inn.Score, "penalty plus runs taken")
	assert.Equal(t, 1, inn.Extras.Wides)

	bat := inn.Batsmen["l1"]
	assert.Equal(t, 0, bat.Runs, "batsman credited nothing off a wide")
	assert.Equal(t, 0, bat.Balls)

	bowl := inn.Bowlers["t1"]
	assert.Equal(t, 0, bowl.Balls)
	assert.Equal(t, 3, bowl.Runs, "all extras charged to the bowler")
}

func TestRecordBall_NoBall(t *testing.T) {
	m := readyMatch(t, 10, 5)
	m = mustRecord(t, m, BallEvent{Runs: 4, IsExtra: true, ExtraType: ExtraNoBall, Penalty: 1})

	inn := m.ActiveInnings()
	assert.Equal(t, 0, inn.Balls)
	assert.Equal(t, 5, inn.Score)
	assert.Equal(t, 1, inn.Extras.NoBalls)

	bat := inn.Batsmen["l1"]
	assert.Equal(t, 4, bat.Runs, "runs off a no-ball are the batsman's")
	assert.Equal(t, 0, bat.Balls, "no-ball is not a ball faced")
	assert.Equal(t, 1, bat.Fours)
}

func TestRecordBall_Bye(t *testing.T) {
	m := readyMatch(t, 10, 5)
	m = mustRecord(t, m, BallEvent{Runs: 1, IsExtra: true, ExtraType: ExtraBye})

	inn := m.ActiveInnings()
	assert.Equal(t, 1, inn.Balls, "bye is a legal delivery")
	assert.Equal(t, 1, inn.Score)
	assert.Equal(t, 1, inn.Extras.Byes)

	bat := inn.Batsmen["l1"]
	assert.Equal(t, 0, bat.Runs)
	assert.Equal(t, 1, bat.Balls)

	// A single bye rotates strike: team total parity, not bat credit.
	assert.Equal(t, "l2", *inn.Striker)
}

func TestRecordBall_LegBye(t *testing.T) {
	m := readyMatch(t, 10, 5)
	m = mustRecord(t, m, BallEvent{Runs: 2, IsExtra: true, ExtraType: ExtraLegBye})

	inn := m.ActiveInnings()
	assert.Equal(t, 1, inn.Balls)
	assert.Equal(t, 2, inn.Score)
	assert.Equal(t, 2, inn.Extras.LegByes)
	assert.Equal(t, "l1", *inn.Striker, "even runs keep strike")
}

func TestRecordBall_WideOnLastBallDoesNotEndOver(t *testing.T) {
	m := readyMatch(t, 10, 5)
	for i := 0; i < 5; i++ {
		m = mustRecord(t, m, BallEvent{Runs: 0})
	}
	require.Equal(t, 5, m.ActiveInnings().Balls)

	m = mustRecord(t, m, BallEvent{IsExtra: true, ExtraType: ExtraWide, Penalty: 1})

	inn := m.ActiveInnings()
	assert.Equal(t, 5, inn.Balls, "still five legal balls")
	assert.Equal(t, 1, inn.Score)
	assert.NotNil(t, inn.Bowler, "over is not complete, bowler stays")
	assert.Equal(t, PhaseReady, inn.Phase)
}

func TestRecordBall_OverCompletion(t *testing.T) {
	m := readyMatch(t, 10, 5)
	for i := 0; i < 6; i++ {
		m = mustRecord(t, m, BallEvent{Runs: 0})
	}

	inn := m.ActiveInnings()
	assert.Equal(t, 6, inn.Balls)
	assert.Nil(t, inn.Bowler, "bowler cleared at over end")
	assert.Equal(t, PhaseAwaitingBowler, inn.Phase)
	assert.Equal(t, "l2", *inn.Striker, "end-of-over rotation")

	bowl := inn.Bowlers["t1"]
	assert.Equal(t, 1, bowl.Overs)
	assert.Equal(t, 1, bowl.Maidens)
	assert.Equal(t, 0, bowl.CurrentOverRuns)
	assert.InDelta(t, 0.0, bowl.Economy, 0.001)
}

func TestRecordBall_NoMaidenWhenWideInOver(t *testing.T) {
	m := readyMatch(t, 10, 5)
	m = mustRecord(t, m, BallEvent{IsExtra: true, ExtraType: ExtraWide, Penalty: 1})
	for i := 0; i < 6; i++ {
		m = mustRecord(t, m, BallEvent{Runs: 0})
	}

	bowl := m.ActiveInnings().Bowlers["t1"]
	assert.Equal(t, 1, bowl.Overs)
	assert.Equal(t, 0, bowl.Maidens, "the wide spoiled the maiden")
	assert.InDelta(t, 1.0, bowl.Economy, 0.001)
}

func TestRecordBall_SingleOffLastBallCancelsOut(t *testing.T) {
	m := readyMatch(t, 10, 5)
	for i := 0; i < 5; i++ {
		m = mustRecord(t, m, BallEvent{Runs: 0})
	}
	m = mustRecord(t, m, BallEvent{Runs: 1})

	// Odd-run swap then end-of-over swap: the striker keeps strike.
	inn := m.ActiveInnings()
	assert.Equal(t, "l1", *inn.Striker)
	assert.Equal(t, "l2", *inn.NonStriker)
}

func TestRecordBall_Wicket(t *testing.T) {
	m := readyMatch(t, 10, 5)
	m = mustRecord(t, m, BallEvent{Runs: 2})
	m = mustRecord(t, m, BallEvent{IsWicket: true, DismissalType: DismissalCaught, Fielder: "t3"})

	inn := m.ActiveInnings()
	assert.Equal(t, 1, inn.Wickets)
	assert.Nil(t, inn.Striker, "striker slot cleared for reselection")
	assert.Equal(t, PhaseAwaitingBatsman, inn.Phase)

	bat := inn.Batsmen["l1"]
	assert.True(t, bat.Out)
	require.NotNil(t, bat.Dismissal)
	assert.Equal(t, DismissalCaught, bat.Dismissal.Type)
	require.NotNil(t, bat.Dismissal.Bowler)
	assert.Equal(t, "t1", *bat.Dismissal.Bowler)
	require.NotNil(t, bat.Dismissal.Fielder)
	assert.Equal(t, "t3", *bat.Dismissal.Fielder)

	assert.Equal(t, 1, inn.Bowlers["t1"].Wickets)

	require.Len(t, inn.FallOfWickets, 1)
	fow := inn.FallOfWickets[0]
	assert.Equal(t, "l1", fow.Batsman)
	assert.Equal(t, 2, fow.Score)
	assert.Equal(t, 1, fow.Wicket)
	assert.InDelta(t, 0.2, fow.Over, 0.001)
}

func TestRecordBall_RunOutNotCreditedToBowler(t *testing.T) {
	m := readyMatch(t, 10, 5)
	m = mustRecord(t, m, BallEvent{Runs: 1, IsWicket: true, DismissalType: DismissalRunOut})

	inn := m.ActiveInnings()
	assert.Equal(t, 0, inn.Bowlers["t1"].Wickets)
	bat := inn.Batsmen["l1"]
	require.NotNil(t, bat.Dismissal)
	assert.Nil(t, bat.Dismissal.Bowler)

	// No strike rotation on a wicket delivery, odd runs or not.
	assert.Equal(t, "l2", *inn.NonStriker)
}

func TestRecordBall_AllOutEndsInnings(t *testing.T) {
	m := readyMatch(t, 10, 3) // 3-a-side: two wickets is all out
	m = mustRecord(t, m, BallEvent{Runs: 4})
	m = mustRecord(t, m, BallEvent{IsWicket: true, DismissalType: DismissalBowled})
	m, err := SelectBatsman(m, "l3", SlotStriker)
	require.NoError(t, err)
	m = mustRecord(t, m, BallEvent{IsWicket: true, DismissalType: DismissalLBW})

	assert.Equal(t, 2, m.CurrentInnings)
	assert.False(t, m.Completed)
	require.True(t, m.Innings[1].Ended)

	second := m.Innings[2]
	require.NotNil(t, second)
	assert.Equal(t, "Tigers", second.BattingTeam)
	assert.Equal(t, "Lions", second.BowlingTeam)
	require.NotNil(t, second.Target)
	assert.Equal(t, 5, *second.Target)
	assert.Equal(t, 0, second.Score)
	assert.Equal(t, PhaseAwaitingBatsman, second.Phase)
}

func TestRecordBall_OversCompleteEndsInnings(t *testing.T) {
	m := readyMatch(t, 1, 5)
	for i := 0; i < 6; i++ {
		m = mustRecord(t, m, BallEvent{Runs: 1})
	}

	assert.Equal(t, 2, m.CurrentInnings)
	assert.True(t, m.Innings[1].Ended)
	require.NotNil(t, m.Innings[2].Target)
	assert.Equal(t, 7, *m.Innings[2].Target)
}

// playSecondInnings selects Tigers openers against a Lions bowler and
// feeds the given deliveries, reselecting after wickets and overs.
func playSecondInnings(t *testing.T, m *Match, events []BallEvent) *Match {
	t.Helper()
	require.Equal(t, 2, m.CurrentInnings)
	var err error
	m, err = SelectBatsman(m, "t1", SlotStriker)
	require.NoError(t, err)
	m, err = SelectBatsman(m, "t2", SlotNonStriker)
	require.NoError(t, err)
	m, err = SelectBowler(m, "l1")
	require.NoError(t, err)

	nextBat := 3
	for _, ev := range events {
		m = mustRecord(t, m, ev)
		if m.Completed {
			return m
		}
		inn := m.ActiveInnings()
		if inn.Phase == PhaseAwaitingBatsman && inn.Striker == nil {
			team := m.Team(inn.BattingTeam)
			m, err = SelectBatsman(m, team.Players[nextBat-1], SlotStriker)
			require.NoError(t, err)
			nextBat++
			inn = m.ActiveInnings()
		}
		if inn.Phase == PhaseAwaitingBowler {
			m, err = SelectBowler(m, "l1")
			require.NoError(t, err)
		}
	}
	return m
}

func TestMatch_ChaseWinByWickets(t *testing.T) {
	m := readyMatch(t, 1, 5)
	for _, r := range []int{4, 4, 0, 1, 2, 2} { // 13
		m = mustRecord(t, m, BallEvent{Runs: r})
	}
	require.Equal(t, 13, m.Innings[1].Score)

	// 16 without loss across the full over: the innings runs to its
	// end even after the target is passed.
	m = playSecondInnings(t, m, []BallEvent{
		{Runs: 6}, {Runs: 6}, {Runs: 4}, {Runs: 0}, {Runs: 0}, {Runs: 0},
	})

	require.True(t, m.Completed)
	require.NotNil(t, m.CompletedAt)
	assert.Equal(t, "Tigers", m.Winner)
	require.NotNil(t, m.Margin)
	assert.Equal(t, MarginWickets, m.Margin.Kind)
	assert.Equal(t, 4, m.Margin.Value) // 5-a-side: 4 wickets in hand
}

func TestMatch_DefendWinByRuns(t *testing.T) {
	m := readyMatch(t, 1, 5)
	for _, r := range []int{4, 4, 4, 0, 0, 0} { // 12
		m = mustRecord(t, m, BallEvent{Runs: r})
	}
	m = playSecondInnings(t, m, []BallEvent{
		{Runs: 1}, {Runs: 1}, {Runs: 0}, {Runs: 0}, {Runs: 2}, {Runs: 0}, // 4
	})

	require.True(t, m.Completed)
	assert.Equal(t, "Lions", m.Winner)
	require.NotNil(t, m.Margin)
	assert.Equal(t, MarginRuns, m.Margin.Kind)
	assert.Equal(t, 8, m.Margin.Value)
}

func TestMatch_Tie(t *testing.T) {
	m := readyMatch(t, 1, 5)
	for _, r := range []int{1, 1, 1, 1, 1, 1} { // 6
		m = mustRecord(t, m, BallEvent{Runs: r})
	}
	m = playSecondInnings(t, m, []BallEvent{
		{Runs: 2}, {Runs: 2}, {Runs: 2}, {Runs: 0}, {Runs: 0}, {Runs: 0}, // 6
	})

	require.True(t, m.Completed)
	assert.Equal(t, WinnerTie, m.Winner)
	assert.Nil(t, m.Margin)
}

func TestRecordBall_AfterCompletionRejected(t *testing.T) {
	m := readyMatch(t, 1, 5)
	for i := 0; i < 6; i++ {
		m = mustRecord(t, m, BallEvent{Runs: 0})
	}
	m = playSecondInnings(t, m, []BallEvent{
		{Runs: 1}, {Runs: 0}, {Runs: 0}, {Runs: 0}, {Runs: 0}, {Runs: 0},
	})
	require.True(t, m.Completed)

	_, err := RecordBall(m, BallEvent{Runs: 1})
	assert.ErrorIs(t, err, ErrMatchCompleted)
	_, err = SelectBowler(m, "l1")
	assert.ErrorIs(t, err, ErrMatchCompleted)
}

func TestBowlerConcededMatchesTeamIncrements(t *testing.T) {
	m := readyMatch(t, 10, 5)
	events := []BallEvent{
		{Runs: 2},
		{Runs: 3, IsExtra: true, ExtraType: ExtraWide, Penalty: 1},
		{Runs: 1, IsExtra: true, ExtraType: ExtraNoBall, Penalty: 1},
		{Runs: 2, IsExtra: true, ExtraType: ExtraBye},
		{Runs: 4},
	}
	for _, ev := range events {
		m = mustRecord(t, m, ev)
	}
	inn := m.ActiveInnings()
	assert.Equal(t, inn.Score, inn.Bowlers["t1"].Runs)
}

func TestSelectBatsman_Validation(t *testing.T) {
	m := readyMatch(t, 10, 5)
	_, err := SelectBatsman(m, "", SlotStriker)
	assert.ErrorIs(t, err, ErrInvalidSelection)
	_, err = SelectBatsman(m, "l3", "keeper")
	assert.ErrorIs(t, err, ErrInvalidSelection)

	// Reselecting the same slot is idempotent.
	next, err := SelectBatsman(m, "l1", SlotStriker)
	require.NoError(t, err)
	assert.Equal(t, m, next)
}

func TestAvailableBatsmen(t *testing.T) {
	m := readyMatch(t, 10, 5)
	assert.Equal(t, []string{"l3", "l4", "l5"}, AvailableBatsmen(m))

	m = mustRecord(t, m, BallEvent{IsWicket: true, DismissalType: DismissalBowled})
	assert.Equal(t, []string{"l3", "l4", "l5"}, AvailableBatsmen(m), "dismissed striker stays excluded")
}

func TestAvailableBowlers_PermitsConsecutiveOvers(t *testing.T) {
	m := readyMatch(t, 10, 5)
	assert.Equal(t, []string{"t2", "t3", "t4", "t5"}, AvailableBowlers(m))

	for i := 0; i < 6; i++ {
		m = mustRecord(t, m, BallEvent{Runs: 0})
	}
	// Slot is vacant after the over, so nobody is excluded. The bowler
	// who just finished may bowl again.
	assert.Equal(t, []string{"t1", "t2", "t3", "t4", "t5"}, AvailableBowlers(m))
}

func TestBallRecordLog(t *testing.T) {
	m := readyMatch(t, 10, 5)
	m = mustRecord(t, m, BallEvent{Runs: 1})
	m = mustRecord(t, m, BallEvent{Runs: 2, IsExtra: true, ExtraType: ExtraWide, Penalty: 1})

	inn := m.ActiveInnings()
	require.Len(t, inn.Deliveries, 2)

	first := inn.Deliveries[0]
	assert.Equal(t, 0, first.Over)
	assert.Equal(t, 1, first.BallInOver)
	assert.Equal(t, "t1", first.Bowler)
	assert.Equal(t, "l1", first.Striker)
	assert.Equal(t, 1, first.TotalRuns)

	wide := inn.Deliveries[1]
	assert.Equal(t, 2, wide.BallInOver, "wide logged against the upcoming ball number")
	assert.Equal(t, "l2", wide.Striker, "strike had rotated")
	assert.Equal(t, 3, wide.TotalRuns)
}
