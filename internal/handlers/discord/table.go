package discord

//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go github.com/KirkDiggler/imaginarium/internal/handlers/discord Messenger

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/imaginarium/internal/common/random"
	"github.com/KirkDiggler/imaginarium/internal/common/uuid"
	"github.com/KirkDiggler/imaginarium/internal/models"
	"github.com/KirkDiggler/imaginarium/internal/services/game"
	"github.com/KirkDiggler/imaginarium/internal/services/messaging"
)

// Messenger is the part of *discordgo.Session a table talks through
type Messenger interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
}

type tableConfig struct {
	ChannelID     string
	Messenger     Messenger
	Prompts       *promptRegistry
	Messages      messaging.Service
	UUIDGenerator uuid.UUID
	Randomizer    random.Randomizer
	Logger        logrus.FieldLogger
}

// table plays one game in one channel: announcements go to the channel,
// hands and choices go to the players' DMs
type table struct {
	channelID string
	messenger Messenger
	prompts   *promptRegistry
	messages  messaging.Service
	uuid      uuid.UUID
	random    random.Randomizer
	logger    logrus.FieldLogger

	mu         sync.Mutex
	dmChannels map[string]string
}

func newTable(cfg *tableConfig) *table {
	return &table{
		channelID:  cfg.ChannelID,
		messenger:  cfg.Messenger,
		prompts:    cfg.Prompts,
		messages:   cfg.Messages,
		uuid:       cfg.UUIDGenerator,
		random:     cfg.Randomizer,
		logger:     cfg.Logger.WithField("channel", cfg.ChannelID),
		dmChannels: make(map[string]string),
	}
}

// hooks wires the table into the game driver
func (t *table) hooks() *game.Hooks {
	return &game.Hooks{
		AtStart:              t.atStart,
		AtCircleStart:        t.atCircleStart,
		AtRoundStart:         t.atRoundStart,
		RequestAssociation:   t.requestAssociation,
		ShowAssociation:      t.showAssociation,
		ShowPlayersCards:     t.showPlayersCards,
		RequestPlayersCards2: t.collectDiscards,
		RequestLeaderCard:    t.collectDiscards,
		RequestPlayersCards:  t.collectDiscards,
		ShowDiscardedCards:   t.showDiscardedCards,
		VoteForTargetCard2:   t.collectVotes,
		VoteForTargetCard:    t.collectVotes,
		AtRoundEnd:           t.atRoundEnd,
		AtCircleEnd:          t.atCircleEnd,
		AtEnd:                t.atEnd,
	}
}

func (t *table) atStart(ctx context.Context, c *game.Condition) error {
	names := make([]string, 0, c.PlayerCount())
	for i, p := range c.Players() {
		names = append(names, fmt.Sprintf("%d. <@%s>", i+1, p.ID))
	}

	description := "Everyone plays for themselves."
	if c.IsTwoPlayerMode() {
		description = "Two players team up against the bot."
	}

	t.announce(&discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Imaginarium has started",
				Description: description,
				Color:       colorGood,
				Fields: []*discordgo.MessageEmbedField{
					{Name: "Players", Value: strings.Join(names, "\n")},
				},
			},
			renderRules(c.Rules()),
		},
	})
	return nil
}

func (t *table) atCircleStart(ctx context.Context, c *game.Condition) error {
	t.announce(&discordgo.MessageSend{
		Content: fmt.Sprintf("**Circle %d** begins. Check your DMs for your cards.", c.Circle()),
	})
	return nil
}

func (t *table) atRoundStart(ctx context.Context, c *game.Condition) error {
	t.announce(&discordgo.MessageSend{
		Content: fmt.Sprintf("Round %d: <@%s> leads.", c.Round(), c.Leader().ID),
	})
	return nil
}

func (t *table) requestAssociation(ctx context.Context, c *game.Condition) error {
	leader := c.Leader()
	text, err := t.askText(ctx, leader.ID, "Think of an association for your card.", c.Rules().StepTimeout)
	if err != nil {
		return err
	}
	return c.SetAssociation(leader.ID, text)
}

func (t *table) showAssociation(ctx context.Context, c *game.Condition) error {
	leader := c.Leader()

	content := fmt.Sprintf("<@%s> says: **%s**", leader.ID, c.Association())
	if c.Association() == "" {
		content = fmt.Sprintf("<@%s> kept silent. Guess anyway!", leader.ID)
	}
	t.announce(&discordgo.MessageSend{Content: content})
	return nil
}

// showPlayersCards sends every player their hand
func (t *table) showPlayersCards(ctx context.Context, c *game.Condition) error {
	g, _ := errgroup.WithContext(ctx)
	for _, p := range c.Players() {
		p := p
		g.Go(func() error {
			t.sendHand(p.ID, "Your cards", p.Cards)
			return nil
		})
	}
	return g.Wait()
}

// collectDiscards asks every player who owes cards in the current phase to
// pick them, in parallel. Players who do not answer get random cards.
func (t *table) collectDiscards(ctx context.Context, c *game.Condition) error {
	g, gctx := errgroup.WithContext(ctx)
	for playerID, left := range c.PendingDiscards() {
		playerID, left := playerID, left
		g.Go(func() error {
			for i := 0; i < left; i++ {
				if err := t.discardOne(gctx, c, playerID, left-i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func (t *table) discardOne(ctx context.Context, c *game.Condition, playerID string, left int) error {
	player, err := c.Player(playerID)
	if err != nil {
		return err
	}

	content := "Pick a card to discard."
	if left > 1 {
		content = fmt.Sprintf("Pick a card to discard (%d left).", left)
	}
	if association := c.Association(); association != "" {
		content = fmt.Sprintf("The association is **%s**. %s", association, content)
	}

	choice, err := t.askCard(ctx, playerID, content, renderHand(player.Cards), numbers(len(player.Cards)), c.Rules().StepTimeout)
	if err != nil {
		return err
	}

	_, err = c.Discard(playerID, choice)
	return err
}

func (t *table) showDiscardedCards(ctx context.Context, c *game.Condition) error {
	embeds := renderPile(c.DiscardedCards())
	content := "The cards are on the table."
	if association := c.Association(); association != "" {
		content = fmt.Sprintf("The cards for **%s** are on the table.", association)
	}

	for i, chunk := range chunkEmbeds(embeds) {
		send := &discordgo.MessageSend{Embeds: chunk}
		if i == 0 {
			send.Content = content
		}
		t.announce(send)
	}
	return nil
}

// collectVotes asks every pending voter for a pile number, in parallel.
// A player's own cards are never offered.
func (t *table) collectVotes(ctx context.Context, c *game.Condition) error {
	pile := c.DiscardedCards()

	g, gctx := errgroup.WithContext(ctx)
	for _, playerID := range c.PendingVoters() {
		playerID := playerID
		g.Go(func() error {
			var choices []int
			for i, d := range pile {
				if d.PlayerID != playerID {
					choices = append(choices, i+1)
				}
			}

			content := "Which card is the leader's?"
			if c.IsTwoPlayerMode() {
				content = "Which card is the bot's?"
			}

			choice, err := t.askCard(gctx, playerID, content, nil, choices, c.Rules().StepTimeout)
			if err != nil {
				return err
			}
			return c.Vote(playerID, choice)
		})
	}
	return g.Wait()
}

func (t *table) atRoundEnd(ctx context.Context, c *game.Condition) error {
	t.announce(&discordgo.MessageSend{
		Content: t.roundComment(ctx, c),
		Embeds:  []*discordgo.MessageEmbed{renderRoundResult(c)},
	})
	return nil
}

// roundComment counts the votes for the target card: the bot's in
// two-player mode, the leader's otherwise
func (t *table) roundComment(ctx context.Context, c *game.Condition) string {
	if t.messages == nil {
		return ""
	}

	input := &messaging.GetRoundMessageInput{
		TwoPlayerMode: c.IsTwoPlayerMode(),
	}
	target := models.BotID
	if leader := c.Leader(); leader != nil && !c.IsTwoPlayerMode() {
		target = leader.ID
		input.LeaderName = leader.DisplayName()
	}

	input.Found = c.Votes()[target]
	for _, p := range c.Players() {
		if p.ChosenCard > 0 {
			input.Voters++
		}
	}

	output, err := t.messages.GetRoundMessage(ctx, input)
	if err != nil {
		t.logger.WithError(err).Warn("failed to get round message")
		return ""
	}
	return output.Message
}

func (t *table) atCircleEnd(ctx context.Context, c *game.Condition) error {
	t.announce(&discordgo.MessageSend{
		Content: fmt.Sprintf("Circle %d is over.", c.Circle()),
		Embeds:  []*discordgo.MessageEmbed{renderScoreboard(c.Scoreboard())},
	})
	return nil
}

func (t *table) atEnd(ctx context.Context, c *game.Condition) error {
	t.announce(&discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{renderSummary(c.Summary())},
	})
	return nil
}

// askCard DMs a player the choices as buttons and waits for a click. On
// timeout, or when the DM cannot be delivered, a random choice is made.
func (t *table) askCard(ctx context.Context, userID, content string, embeds []*discordgo.MessageEmbed, choices []int, timeout time.Duration) (int, error) {
	if len(choices) == 0 {
		return 0, ErrNoChoices
	}

	promptID := t.uuid.NewShortID()
	answers := t.prompts.open(promptID, userID, choices)
	defer t.prompts.close(promptID)

	log := t.logger.WithFields(logrus.Fields{
		"player": userID,
		"prompt": promptID,
	})

	autoPick := func() int {
		return choices[t.random.Intn(len(choices))]
	}

	chunks := chunkEmbeds(embeds)
	if len(chunks) == 0 {
		chunks = [][]*discordgo.MessageEmbed{nil}
	}
	for i, chunk := range chunks {
		send := &discordgo.MessageSend{Embeds: chunk}
		if i == 0 {
			send.Content = content
		}
		if i == len(chunks)-1 {
			send.Components = renderChoiceButtons(promptID, choices)
		}
		if err := t.sendDM(userID, send); err != nil {
			log.WithError(err).Warn("failed to send prompt, picking a random card")
			return autoPick(), nil
		}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case a := <-answers:
		return a.choice, nil
	case <-timer.C:
		choice := autoPick()
		log.WithField("choice", choice).Warn("player did not answer in time, picked a random card")
		t.dm(userID, fmt.Sprintf("Time is up, card #%d was picked for you.", choice))
		return choice, nil
	}
}

// askText DMs a player a button that opens a text modal and waits for the
// submitted text. Returns "" on timeout.
func (t *table) askText(ctx context.Context, userID, content string, timeout time.Duration) (string, error) {
	promptID := t.uuid.NewShortID()
	answers := t.prompts.open(promptID, userID, nil)
	defer t.prompts.close(promptID)

	log := t.logger.WithFields(logrus.Fields{
		"player": userID,
		"prompt": promptID,
	})

	err := t.sendDM(userID, &discordgo.MessageSend{
		Content: content,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "Write association",
						Style:    discordgo.SuccessButton,
						CustomID: promptCustomID(promptID, promptWrite),
					},
				},
			},
		},
	})
	if err != nil {
		log.WithError(err).Warn("failed to send prompt, skipping the association")
		return "", nil
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case a := <-answers:
		return a.text, nil
	case <-timer.C:
		log.Warn("player did not answer in time, skipping the association")
		return "", nil
	}
}

func (t *table) sendHand(userID, title string, hand []models.Card) {
	for i, chunk := range chunkEmbeds(renderHand(hand)) {
		send := &discordgo.MessageSend{Embeds: chunk}
		if i == 0 {
			send.Content = title
		}
		if err := t.sendDM(userID, send); err != nil {
			t.logger.WithError(err).WithField("player", userID).Warn("failed to send hand")
			return
		}
	}
}

func (t *table) dm(userID, content string) {
	if err := t.sendDM(userID, &discordgo.MessageSend{Content: content}); err != nil {
		t.logger.WithError(err).WithField("player", userID).Warn("failed to send direct message")
	}
}

func (t *table) sendDM(userID string, send *discordgo.MessageSend) error {
	channelID, err := t.dmChannel(userID)
	if err != nil {
		return err
	}
	_, err = t.messenger.ChannelMessageSendComplex(channelID, send)
	return err
}

func (t *table) dmChannel(userID string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if id, ok := t.dmChannels[userID]; ok {
		return id, nil
	}

	channel, err := t.messenger.UserChannelCreate(userID)
	if err != nil {
		return "", fmt.Errorf("failed to open DM channel: %w", err)
	}
	t.dmChannels[userID] = channel.ID
	return channel.ID, nil
}

// announce posts to the game channel. Failures are logged, never fatal.
func (t *table) announce(send *discordgo.MessageSend) {
	if _, err := t.messenger.ChannelMessageSendComplex(t.channelID, send); err != nil {
		t.logger.WithError(err).Warn("failed to post to channel")
	}
}

// numbers returns 1..n
func numbers(n int) []int {
	result := make([]int, n)
	for i := range result {
		result[i] = i + 1
	}
	return result
}
