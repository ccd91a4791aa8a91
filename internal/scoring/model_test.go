package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_DeepIndependence(t *testing.T) {
	m := readyMatch(t, 10, 5)
	m = mustRecord(t, m, BallEvent{Runs: 4})
	m = mustRecord(t, m, BallEvent{IsWicket: true, DismissalType: DismissalCaught, Fielder: "t2"})

	c := m.Clone()
	require.Equal(t, m, c)

	inn := c.ActiveInnings()
	inn.Score = 500
	inn.Batsmen["l1"].Runs = 500
	inn.Deliveries[0].TotalRuns = 500
	inn.FallOfWickets[0].Score = 500
	*inn.NonStriker = "someone-else"
	c.Teams[0].Players[0] = "someone-else"

	orig := m.ActiveInnings()
	assert.Equal(t, 4, orig.Score)
	assert.Equal(t, 4, orig.Batsmen["l1"].Runs)
	assert.Equal(t, 4, orig.Deliveries[0].TotalRuns)
	assert.Equal(t, 4, orig.FallOfWickets[0].Score)
	assert.Equal(t, "l2", *orig.NonStriker)
	assert.Equal(t, "l1", m.Teams[0].Players[0])
}

func TestMatch_JSONRoundTrip(t *testing.T) {
	m := readyMatch(t, 10, 5)
	m = mustRecord(t, m, BallEvent{Runs: 3})
	m = mustRecord(t, m, BallEvent{Runs: 1, IsExtra: true, ExtraType: ExtraWide, Penalty: 1})
	m.StartedAt = m.StartedAt.Round(0) // drop the monotonic reading before comparing

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded Match
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, m, &decoded)
}

func TestInnings_OversDecimal(t *testing.T) {
	tests := []struct {
		balls int
		want  float64
	}{
		{0, 0}, {1, 0.1}, {5, 0.5}, {6, 1.0}, {7, 1.1}, {26, 4.2},
	}
	for _, tc := range tests {
		inn := &Innings{Balls: tc.balls}
		assert.InDelta(t, tc.want, inn.OversDecimal(), 0.001)
	}
}

func TestStrikeRateAndEconomyRounding(t *testing.T) {
	bat := &BatsmanStat{Runs: 1, Balls: 3}
	bat.recomputeStrikeRate()
	assert.InDelta(t, 33.33, bat.StrikeRate, 0.001)

	bat = &BatsmanStat{}
	bat.recomputeStrikeRate()
	assert.Zero(t, bat.StrikeRate)

	bowl := &BowlerStat{Runs: 22, Overs: 3}
	bowl.recomputeEconomy()
	assert.InDelta(t, 7.33, bowl.Economy, 0.001)

	bowl = &BowlerStat{Runs: 4}
	bowl.recomputeEconomy()
	assert.Zero(t, bowl.Economy)
}
