package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/imaginarium/internal/models"
)

func TestScoreTwoPlayerRound(t *testing.T) {
	tests := []struct {
		name        string
		botVotes    int
		wantPlayers float64
		wantBot     float64
	}{
		{name: "nobody found the bot", botVotes: 0, wantPlayers: 0, wantBot: 3},
		{name: "one found the bot", botVotes: 1, wantPlayers: 1, wantBot: 1},
		{name: "both found the bot", botVotes: 2, wantPlayers: 2, wantBot: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players, bot := scoreTwoPlayerRound(tt.botVotes)
			assert.Equal(t, tt.wantPlayers, players)
			assert.Equal(t, tt.wantBot, bot)
		})
	}
}

func TestScoreRound(t *testing.T) {
	// Pile: 1 leader, 2 p2, 3 p3, 4 p4
	discarded := []models.DiscardedCard{
		{Card: models.Card{URL: "a"}, PlayerID: "leader"},
		{Card: models.Card{URL: "b"}, PlayerID: "p2"},
		{Card: models.Card{URL: "c"}, PlayerID: "p3"},
		{Card: models.Card{URL: "d"}, PlayerID: "p4"},
	}

	tests := []struct {
		name   string
		chosen map[string]int
		votes  map[string]int
		want   map[string]float64
	}{
		{
			name:   "nobody found the leader",
			chosen: map[string]int{"p2": 3, "p3": 2, "p4": 2},
			votes:  map[string]int{"p2": 2, "p3": 1},
			want:   map[string]float64{"p2": 2, "p3": 1},
		},
		{
			name:   "some found the leader",
			chosen: map[string]int{"p2": 1, "p3": 1, "p4": 2},
			votes:  map[string]int{"leader": 2, "p2": 1},
			want:   map[string]float64{"leader": 3, "p2": 3, "p3": 3},
		},
		{
			name:   "everybody found the leader",
			chosen: map[string]int{"p2": 1, "p3": 1, "p4": 1},
			votes:  map[string]int{"leader": 3},
			want:   map[string]float64{"leader": 3, "p2": 3, "p3": 3, "p4": 3},
		},
		{
			name:   "a player who did not vote gains nothing",
			chosen: map[string]int{"p2": 1, "p3": 1},
			votes:  map[string]int{"leader": 2},
			want:   map[string]float64{"leader": 3, "p2": 3, "p3": 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := []*models.Player{
				{ID: "leader"},
				{ID: "p2", ChosenCard: tt.chosen["p2"]},
				{ID: "p3", ChosenCard: tt.chosen["p3"]},
				{ID: "p4", ChosenCard: tt.chosen["p4"]},
			}

			got := scoreRound("leader", players, discarded, tt.votes)
			for _, p := range players {
				assert.Equal(t, tt.want[p.ID], got[p.ID], p.ID)
			}
		})
	}
}

func TestHasAnyPlayerWon(t *testing.T) {
	players := []*models.Player{{ID: "a", Score: 2}, {ID: "b", Score: 5}}

	assert.True(t, hasAnyPlayerWon(players, 5))
	assert.False(t, hasAnyPlayerWon(players, 6))
	assert.True(t, hasTeamWon(1, 3, 3))
	assert.False(t, hasTeamWon(2, 2, 3))
}
