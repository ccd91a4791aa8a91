package scoring

import "sort"

// PlayerTotals is a player's career line across completed matches.
type PlayerTotals struct {
	MatchesPlayed int `json:"matches_played"`
	TotalRuns     int `json:"total_runs"`
	TotalWickets  int `json:"total_wickets"`
}

// LeaderboardEntry pairs a player with the value being ranked.
type LeaderboardEntry struct {
	PlayerID string `json:"player_id"`
	Value    int    `json:"value"`
}

// Aggregate folds completed matches into per-player career totals.
// MatchesPlayed counts roster appearances, whether or not the player
// batted or bowled. The returned order slice preserves first-appearance
// order and is used for stable tie-breaking in leaderboards.
func Aggregate(matches []*Match) (map[string]PlayerTotals, []string) {
	totals := map[string]PlayerTotals{}
	var order []string

	touch := func(id string) PlayerTotals {
		t, ok := totals[id]
		if !ok {
			order = append(order, id)
		}
		return t
	}

	for _, m := range matches {
		seen := map[string]bool{}
		for _, team := range m.Teams {
			for _, p := range team.Players {
				if seen[p] {
					continue
				}
				seen[p] = true
				t := touch(p)
				t.MatchesPlayed++
				totals[p] = t
			}
		}
		for _, inn := range m.Innings {
			for id, bat := range inn.Batsmen {
				t := touch(id)
				t.TotalRuns += bat.Runs
				totals[id] = t
			}
			for id, bowl := range inn.Bowlers {
				t := touch(id)
				t.TotalWickets += bowl.Wickets
				totals[id] = t
			}
		}
	}
	return totals, order
}

// RunsLeaderboard ranks players by career runs, descending, ties
// broken by first-appearance order.
func RunsLeaderboard(matches []*Match) []LeaderboardEntry {
	totals, order := Aggregate(matches)
	return leaderboard(totals, order, func(t PlayerTotals) int { return t.TotalRuns })
}

// WicketsLeaderboard ranks players by career wickets, descending, ties
// broken by first-appearance order.
func WicketsLeaderboard(matches []*Match) []LeaderboardEntry {
	totals, order := Aggregate(matches)
	return leaderboard(totals, order, func(t PlayerTotals) int { return t.TotalWickets })
}

func leaderboard(totals map[string]PlayerTotals, order []string, value func(PlayerTotals) int) []LeaderboardEntry {
	out := make([]LeaderboardEntry, 0, len(order))
	for _, id := range order {
		out = append(out, LeaderboardEntry{PlayerID: id, Value: value(totals[id])})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}
