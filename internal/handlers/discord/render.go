package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"

	"github.com/KirkDiggler/imaginarium/internal/cards"
	"github.com/KirkDiggler/imaginarium/internal/models"
	"github.com/KirkDiggler/imaginarium/internal/services/game"
)

const (
	colorInfo  = 0x5865f2
	colorGood  = 0x00ff00
	colorBad   = 0xff0000
	colorCards = 0xf1c40f

	// maxEmbedsPerMessage is Discord's limit
	maxEmbedsPerMessage = 10

	// maxButtonsPerRow is Discord's limit; a message holds at most five rows
	maxButtonsPerRow = 5

	// podiumSize is how many players the final standings show
	podiumSize = 3
)

// renderCard renders one numbered card. Photos are shown inline, other
// media as a link.
func renderCard(number int, card models.Card) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("#%d", number),
		Color: colorCards,
	}
	if card.Type == models.MediaTypePhoto {
		embed.Image = &discordgo.MessageEmbedImage{URL: card.URL}
	} else {
		embed.URL = card.URL
		embed.Description = card.URL
	}
	return embed
}

// renderHand renders a player's hand, numbered from 1
func renderHand(hand []models.Card) []*discordgo.MessageEmbed {
	embeds := make([]*discordgo.MessageEmbed, 0, len(hand))
	for i, card := range hand {
		embeds = append(embeds, renderCard(i+1, card))
	}
	return embeds
}

// renderPile renders the shuffled discard pile without revealing owners
func renderPile(pile []models.DiscardedCard) []*discordgo.MessageEmbed {
	embeds := make([]*discordgo.MessageEmbed, 0, len(pile))
	for i, d := range pile {
		embeds = append(embeds, renderCard(i+1, d.Card))
	}
	return embeds
}

// renderRoundResult reveals who discarded each card and how many votes it got
func renderRoundResult(c *game.Condition) *discordgo.MessageEmbed {
	names := make(map[string]string)
	for _, p := range c.Players() {
		names[p.ID] = p.DisplayName()
	}
	names[models.BotID] = game.BotName

	votes := make(map[int][]string)
	for _, p := range c.Players() {
		if p.ChosenCard > 0 {
			votes[p.ChosenCard] = append(votes[p.ChosenCard], p.DisplayName())
		}
	}

	leader := c.Leader()
	var b strings.Builder
	for i, d := range c.DiscardedCards() {
		owner := names[d.PlayerID]
		if leader != nil && d.PlayerID == leader.ID {
			owner += " (leader)"
		}
		fmt.Fprintf(&b, "**#%d** %s", i+1, owner)
		if voters := votes[i+1]; len(voters) > 0 {
			fmt.Fprintf(&b, ": %s", strings.Join(voters, ", "))
		}
		b.WriteString("\n")
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Round %d of circle %d", c.Round(), c.Circle()),
		Description: b.String(),
		Color:       colorInfo,
	}
}

// renderScoreboard renders standings, highest first
func renderScoreboard(board *models.Scoreboard) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "Scores",
		Description: renderStandings(board.Entries, len(board.Entries)),
		Color:       colorInfo,
	}
}

func renderStandings(entries []*models.ScoreEntry, limit int) string {
	if len(entries) == 0 {
		return "Nobody has joined yet."
	}

	var b strings.Builder
	for i, entry := range entries {
		if i >= limit {
			break
		}
		fmt.Fprintf(&b, "%s **%s**: %s\n", humanize.Ordinal(i+1), entry.PlayerName, humanize.Ftoa(entry.Score))
	}
	return b.String()
}

// renderSummary renders the end of game announcement
func renderSummary(summary *models.GameSummary) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Game over",
		Color: colorGood,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Took",
				Value:  summary.TookTime.Round(time.Second).String(),
				Inline: true,
			},
			{
				Name:   "Circles",
				Value:  humanize.Comma(int64(summary.Circles)),
				Inline: true,
			},
		},
	}

	if summary.TwoPlayerMode {
		embed.Description = twoPlayerVerdict(summary.PlayersScore, summary.BotScore)
		if summary.PlayersScore < summary.BotScore {
			embed.Color = colorBad
		}
	} else {
		embed.Description = renderStandings(summary.Standings, podiumSize)
	}

	if summary.EndedEarly {
		embed.Title = "Game ended early"
	}
	return embed
}

func twoPlayerVerdict(players, bot float64) string {
	score := fmt.Sprintf("%s : %s", humanize.Ftoa(players), humanize.Ftoa(bot))
	switch {
	case players > bot:
		return "You beat the bot! " + score
	case players < bot:
		return "The bot wins. " + score
	}
	return "A draw with the bot. " + score
}

// renderSources lists the pool
func renderSources(sources []cards.Source) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Card sources",
		Color: colorInfo,
	}
	if len(sources) == 0 {
		embed.Description = fmt.Sprintf("No sources yet. Add a VK wall, or %s for random pictures.", cards.DefaultSourceLink)
		return embed
	}

	links := make([]string, 0, len(sources))
	for _, s := range sources {
		links = append(links, s.Link())
	}
	embed.Description = strings.Join(links, "\n")
	return embed
}

// renderRules renders the rules of the next game
func renderRules(rules models.Rules) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "Rules",
		Color: colorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Winning score", Value: humanize.Ftoa(rules.WinningScore), Inline: true},
			{Name: "Step timeout", Value: rules.StepTimeout.String(), Inline: true},
			{Name: "Cards per player", Value: humanize.Comma(int64(rules.CardsPerPlayer)), Inline: true},
		},
	}
}

// renderHistory lists finished games, newest first
func renderHistory(games []*models.GameSummary, now time.Time) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "Recent games",
		Color: colorInfo,
	}
	if len(games) == 0 {
		embed.Description = "No games played yet."
		return embed
	}

	for _, g := range games {
		var result string
		switch {
		case g.TwoPlayerMode:
			result = twoPlayerVerdict(g.PlayersScore, g.BotScore)
		case len(g.Standings) > 0:
			result = fmt.Sprintf("Winner: %s (%s)", g.Standings[0].PlayerName, humanize.Ftoa(g.Standings[0].Score))
		default:
			result = "No players"
		}
		if g.EndedEarly {
			result += ", ended early"
		}

		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  humanize.RelTime(g.StartedAt, now, "ago", "from now"),
			Value: result,
		})
	}
	return embed
}

// renderChoiceButtons lays out one button per choice, five per row
func renderChoiceButtons(promptID string, choices []int) []discordgo.MessageComponent {
	var rows []discordgo.MessageComponent
	var row []discordgo.MessageComponent
	for _, choice := range choices {
		row = append(row, discordgo.Button{
			Label:    fmt.Sprintf("#%d", choice),
			Style:    discordgo.PrimaryButton,
			CustomID: promptCustomID(promptID, fmt.Sprint(choice)),
		})
		if len(row) == maxButtonsPerRow {
			rows = append(rows, discordgo.ActionsRow{Components: row})
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, discordgo.ActionsRow{Components: row})
	}
	return rows
}

// renderAssociationModal asks the leader for an association
func renderAssociationModal(promptID string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: promptCustomID(promptID, promptWrite),
		Title:    "Your association",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.TextInput{
						CustomID:  associationInputID,
						Label:     "Describe your card",
						Style:     discordgo.TextInputShort,
						Required:  true,
						MaxLength: 200,
					},
				},
			},
		},
	}
}

// chunkEmbeds splits embeds into groups that fit in one message
func chunkEmbeds(embeds []*discordgo.MessageEmbed) [][]*discordgo.MessageEmbed {
	var chunks [][]*discordgo.MessageEmbed
	for len(embeds) > maxEmbedsPerMessage {
		chunks = append(chunks, embeds[:maxEmbedsPerMessage])
		embeds = embeds[maxEmbedsPerMessage:]
	}
	if len(embeds) > 0 {
		chunks = append(chunks, embeds)
	}
	return chunks
}

// renderPlayers lists players in turn order
func renderPlayers(title string, players []*models.Player) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: colorInfo,
	}
	if len(players) == 0 {
		embed.Description = "Nobody has joined yet."
		return embed
	}

	lines := make([]string, 0, len(players))
	for i, p := range players {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, p.DisplayName()))
	}
	embed.Description = strings.Join(lines, "\n")
	return embed
}
