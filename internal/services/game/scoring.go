package game

import "github.com/KirkDiggler/imaginarium/internal/models"

const (
	// TeamID and TeamName identify the players' shared score in two-player mode
	TeamID   = "players"
	TeamName = "Players"

	// BotName is the display name of the bot in two-player mode
	BotName = "Bot"

	// guessPoints is awarded to the leader and to every correct guesser
	guessPoints = 3
)

// scoreTwoPlayerRound scores a two-player round by how many of the two
// players found the bot's card
func scoreTwoPlayerRound(botVotes int) (players, bot float64) {
	switch botVotes {
	case 0:
		return 0, 3
	case 1:
		return 1, 1
	case 2:
		return 2, 0
	}
	return 0, 0
}

// scoreRound scores a round with three or more players and returns the
// points gained by each player ID.
//
// Nobody found the leader's card: everyone gains the votes their own cards
// drew. Otherwise the leader gains 3 unless the number of votes equals the
// player count, and every player who voted for the leader's card gains 3.
func scoreRound(leaderID string, players []*models.Player, discarded []models.DiscardedCard, votes map[string]int) map[string]float64 {
	gains := make(map[string]float64, len(players))

	leaderVotes := votes[leaderID]
	if leaderVotes == 0 {
		for _, p := range players {
			gains[p.ID] += float64(votes[p.ID])
		}
		return gains
	}

	if leaderVotes != len(players) {
		gains[leaderID] += guessPoints
	}
	for _, p := range players {
		if p.ID == leaderID || p.ChosenCard < 1 || p.ChosenCard > len(discarded) {
			continue
		}
		if discarded[p.ChosenCard-1].PlayerID == leaderID {
			gains[p.ID] += guessPoints
		}
	}
	return gains
}

func hasTeamWon(players, bot, winningScore float64) bool {
	return players >= winningScore || bot >= winningScore
}

// hasAnyPlayerWon reports whether any single player reached the winning score
func hasAnyPlayerWon(players []*models.Player, winningScore float64) bool {
	for _, p := range players {
		if p.Score >= winningScore {
			return true
		}
	}
	return false
}
