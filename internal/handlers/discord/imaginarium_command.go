package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/imaginarium/internal/services/game"
	"github.com/KirkDiggler/imaginarium/internal/services/messaging"
	"github.com/KirkDiggler/imaginarium/internal/services/supply"
)

const historyLimit = 5

// gameStarter launches a game that reports to a channel
type gameStarter interface {
	startGame(channelID string)
}

// ImaginariumCommand handles the /imaginarium command
type ImaginariumCommand struct {
	BaseCommand
	gameService game.Service
	supply      supply.Service
	messages    messaging.Service
	games       gameStarter
	logger      logrus.FieldLogger
}

// NewImaginariumCommand creates a new imaginarium command handler
func NewImaginariumCommand(gameService game.Service, supplyService supply.Service, messages messaging.Service, games gameStarter, logger logrus.FieldLogger) *ImaginariumCommand {
	minScore := 1.0
	minCards := 2.0
	minTimeout := 5.0

	return &ImaginariumCommand{
		BaseCommand: BaseCommand{
			Name:        "imaginarium",
			Description: "A game of associations played with pictures",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join the next game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leave",
					Description: "Leave the next game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "players",
					Description: "Show the players in turn order",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "shuffle",
					Description: "Shuffle the turn order",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Start a game with everyone who joined",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "end",
					Description: "End the running game",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "scores",
					Description: "Show the scores",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "rules",
					Description: "Show or change the rules",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "winning_score",
							Description: "Score that wins the game",
							MinValue:    &minScore,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "step_timeout",
							Description: "Seconds a player has to choose",
							MinValue:    &minTimeout,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "cards_per_player",
							Description: "Hand size",
							MinValue:    &minCards,
							MaxValue:    maxButtonsPerRow * maxButtonsPerRow,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "source-add",
					Description: "Add a card source",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "link",
							Description: "Link to a public wall, e.g. https://vk.com/somegroup",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "source-remove",
					Description: "Remove a card source",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "link",
							Description: "Link of the source to remove",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "sources",
					Description: "List or remove all card sources",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "reset",
							Description: "Remove every source",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "used-cards",
					Description: "Show or forget the cards already played",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "reset",
							Description: "Forget every used card",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "history",
					Description: "Show recent games",
				},
			},
		},
		gameService: gameService,
		supply:      supplyService,
		messages:    messages,
		games:       games,
		logger:      logger,
	}
}

// Handle processes a Discord interaction for the imaginarium command
func (c *ImaginariumCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	sub := data.Options[0]
	options := optionMap(sub.Options)

	switch sub.Name {
	case "join":
		return c.handleJoin(ctx, s, i)
	case "leave":
		return c.handleLeave(ctx, s, i)
	case "players":
		return c.handlePlayers(ctx, s, i)
	case "shuffle":
		return c.handleShuffle(ctx, s, i)
	case "start":
		return c.handleStart(ctx, s, i)
	case "end":
		return c.handleEnd(ctx, s, i)
	case "scores":
		return c.handleScores(ctx, s, i)
	case "rules":
		return c.handleRules(ctx, s, i, options)
	case "source-add":
		return c.handleSourceAdd(ctx, s, i, options["link"].StringValue())
	case "source-remove":
		return c.handleSourceRemove(ctx, s, i, options["link"].StringValue())
	case "sources":
		return c.handleSources(ctx, s, i, options)
	case "used-cards":
		return c.handleUsedCards(ctx, s, i, options)
	case "history":
		return c.handleHistory(ctx, s, i)
	}

	return errors.New("unknown subcommand")
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, o := range options {
		m[o.Name] = o
	}
	return m
}

func (c *ImaginariumCommand) handleJoin(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	user := interactionUser(i)
	output, err := c.gameService.JoinGame(ctx, &game.JoinGameInput{
		PlayerID:   user.ID,
		PlayerName: interactionUserName(i),
	})
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	message, err := c.messages.GetJoinMessage(ctx, &messaging.GetJoinMessageInput{
		PlayerName:  output.Player.DisplayName(),
		PlayerCount: output.PlayerCount,
	})
	if err != nil {
		c.logger.WithError(err).Warn("failed to get join message")
		return RespondWithMessage(s, i, fmt.Sprintf("%s joined the game.", output.Player.DisplayName()))
	}

	return RespondWithMessage(s, i, message.Message)
}

// respondWithError answers with a friendly version of err
func (c *ImaginariumCommand) respondWithError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	message := err.Error()
	output, msgErr := c.messages.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if msgErr == nil {
		message = output.Message
	}
	return RespondWithError(s, i, message)
}

func (c *ImaginariumCommand) handleLeave(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	user := interactionUser(i)
	if err := c.gameService.LeaveGame(ctx, &game.LeaveGameInput{PlayerID: user.ID}); err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf("%s left the game.", interactionUserName(i)))
}

func (c *ImaginariumCommand) handlePlayers(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.gameService.GetPlayers(ctx)
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, renderPlayers("Players", output.Players))
}

func (c *ImaginariumCommand) handleShuffle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.gameService.ShufflePlayers(ctx)
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, renderPlayers("New turn order", output.Players))
}

// handleStart checks what it can up front; the game itself runs in the
// background and reports to the channel
func (c *ImaginariumCommand) handleStart(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if _, err := c.gameService.GetCondition(ctx); err == nil {
		return c.respondWithError(ctx, s, i, game.ErrGameIsStarted)
	}

	players, err := c.gameService.GetPlayers(ctx)
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}
	if len(players.Players) < 2 {
		return c.respondWithError(ctx, s, i, game.ErrNotEnoughPlayers)
	}

	c.games.startGame(i.ChannelID)
	return RespondWithMessage(s, i, "Shuffling the cards...")
}

func (c *ImaginariumCommand) handleEnd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := c.gameService.EndGame(ctx); err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	return RespondWithMessage(s, i, "The game will end after the current step.")
}

func (c *ImaginariumCommand) handleScores(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.gameService.GetScores(ctx)
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, renderScoreboard(output.Scoreboard))
}

func (c *ImaginariumCommand) handleRules(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	if len(options) == 0 {
		output, err := c.gameService.GetRules(ctx)
		if err != nil {
			return c.respondWithError(ctx, s, i, err)
		}
		return RespondWithEmbed(s, i, renderRules(output.Rules))
	}

	input := &game.UpdateRulesInput{}
	if o, ok := options["winning_score"]; ok {
		score := o.FloatValue()
		input.WinningScore = &score
	}
	if o, ok := options["step_timeout"]; ok {
		timeout := time.Duration(o.IntValue()) * time.Second
		input.StepTimeout = &timeout
	}
	if o, ok := options["cards_per_player"]; ok {
		perPlayer := int(o.IntValue())
		input.CardsPerPlayer = &perPlayer
	}

	output, err := c.gameService.UpdateRules(ctx, input)
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}
	return RespondWithEmbed(s, i, renderRules(output.Rules))
}

// handleSourceAdd validates the source against its API, which can take a
// while, so the response is deferred
func (c *ImaginariumCommand) handleSourceAdd(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, link string) error {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return err
	}

	content := fmt.Sprintf("Added %s", link)
	if _, err := c.supply.AddSource(ctx, &supply.AddSourceInput{Link: link}); err != nil {
		c.logger.WithError(err).WithField("source", link).Warn("failed to add source")
		content = fmt.Sprintf("Could not add %s: %v", link, err)
	}

	_, err = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}

func (c *ImaginariumCommand) handleSourceRemove(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, link string) error {
	if err := c.supply.RemoveSource(ctx, &supply.RemoveSourceInput{Link: link}); err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Removed %s", link))
}

func (c *ImaginariumCommand) handleSources(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	if o, ok := options["reset"]; ok && o.BoolValue() {
		if err := c.supply.ResetSources(ctx); err != nil {
			return c.respondWithError(ctx, s, i, err)
		}
		return RespondWithMessage(s, i, "Removed every source.")
	}

	output, err := c.supply.GetSources(ctx)
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, renderSources(output.Sources))
}

func (c *ImaginariumCommand) handleUsedCards(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	if o, ok := options["reset"]; ok && o.BoolValue() {
		if err := c.supply.ResetUsedCards(ctx); err != nil {
			return c.respondWithError(ctx, s, i, err)
		}
		return RespondWithMessage(s, i, "Forgot every used card.")
	}

	used, err := c.supply.GetUsedCards(ctx)
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("%s cards have been played.", humanize.Comma(int64(len(used)))))
}

func (c *ImaginariumCommand) handleHistory(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	output, err := c.gameService.GetHistory(ctx, &game.GetHistoryInput{Limit: historyLimit})
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	return RespondWithEmbed(s, i, renderHistory(output.Games, time.Now()))
}
