package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/imaginarium/internal/common/random"
	"github.com/KirkDiggler/imaginarium/internal/common/uuid"
	"github.com/KirkDiggler/imaginarium/internal/services/game"
	"github.com/KirkDiggler/imaginarium/internal/services/messaging"
	"github.com/KirkDiggler/imaginarium/internal/services/supply"
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	gameService game.Service
	supply      supply.Service
	messages    messaging.Service
	prompts     *promptRegistry
	uuid        uuid.UUID
	random      random.Randomizer
	logger      logrus.FieldLogger
	config      *Config

	// ctx outlives single interactions; games run under it
	ctx    context.Context
	cancel context.CancelFunc
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	GameService   game.Service
	Supply        supply.Service
	Messages      messaging.Service
	UUIDGenerator uuid.UUID

	// Randomizer picks cards for players who do not answer in time (optional)
	Randomizer random.Randomizer

	Logger logrus.FieldLogger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.Supply == nil {
		return nil, errors.New("supply cannot be nil")
	}

	if cfg.Messages == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.UUIDGenerator == nil {
		return nil, errors.New("UUID generator cannot be nil")
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	// Hands and prompts are sent to DMs
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsDirectMessages

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	randomizer := cfg.Randomizer
	if randomizer == nil {
		randomizer = random.New(nil)
	}

	ctx, cancel := context.WithCancel(context.Background())
	bot := &Bot{
		session:     session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		gameService: cfg.GameService,
		supply:      cfg.Supply,
		messages:    cfg.Messages,
		prompts:     newPromptRegistry(),
		uuid:        cfg.UUIDGenerator,
		random:      randomizer,
		logger:      logger,
		config:      cfg,
		ctx:         ctx,
		cancel:      cancel,
	}

	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	cmd := NewImaginariumCommand(b.gameService, b.supply, b.messages, b, b.logger)
	if err := b.RegisterCommand(cmd); err != nil {
		return fmt.Errorf("failed to register imaginarium command: %w", err)
	}

	b.logger.Info("bot is now running")
	return nil
}

// Stop ends a running game, removes the commands and closes the connection
func (b *Bot) Stop() error {
	if err := b.gameService.EndGame(context.Background()); err != nil && !errors.Is(err, game.ErrGameIsEnded) {
		b.logger.WithError(err).Warn("failed to end the running game")
	}
	b.cancel()

	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		log := b.logger.WithFields(logrus.Fields{
			"command": cmdName,
			"id":      cmdID,
		})
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.WithError(err).Warn("failed to delete command")
		} else {
			log.Debug("deleted command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Commands are registered
// for the configured guild, or globally when there is none.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	log := b.logger.WithField("command", cmd.GetName())
	if b.config.GuildID != "" {
		log = log.WithField("guild", b.config.GuildID)
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.WithField("id", createdCmd.ID).Info("registered command")

	return nil
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// startGame plays a game in the background, reporting to channelID
func (b *Bot) startGame(channelID string) {
	t := newTable(&tableConfig{
		ChannelID:     channelID,
		Messenger:     b.session,
		Prompts:       b.prompts,
		Messages:      b.messages,
		UUIDGenerator: b.uuid,
		Randomizer:    b.random,
		Logger:        b.logger,
	})

	go func() {
		_, err := b.gameService.StartGame(b.ctx, &game.StartGameInput{
			Hooks: t.hooks(),
		})
		if err == nil {
			return
		}

		b.logger.WithError(err).WithField("channel", channelID).Error("game aborted")

		message := err.Error()
		output, msgErr := b.messages.GetErrorMessage(b.ctx, &messaging.GetErrorMessageInput{Err: err})
		if msgErr == nil {
			message = output.Message
		}
		t.announce(&discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       "The game was aborted",
					Description: message,
					Color:       colorBad,
				},
			},
		})
	}()
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.WithError(err).WithField("command", name).Error("failed to handle command")
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.WithError(err).Error("failed to handle component interaction")
		}
	case discordgo.InteractionModalSubmit:
		if err := b.handleModalSubmit(s, i); err != nil {
			b.logger.WithError(err).Error("failed to handle modal submit")
		}
	}
}

// handleComponentInteraction routes prompt buttons to the waiting game
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID
	if !isPromptCustomID(customID) {
		return RespondWithError(s, i, fmt.Sprintf("Unknown button: %s", customID))
	}

	promptID, choice, err := parsePromptCustomID(customID)
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}
	user := interactionUser(i)

	if choice == promptWrite {
		owner, ok := b.prompts.owner(promptID)
		if !ok {
			return RespondWithEphemeralMessage(s, i, ErrUnknownPrompt.Error())
		}
		if owner != user.ID {
			return RespondWithEphemeralMessage(s, i, ErrNotYourPrompt.Error())
		}
		return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseModal,
			Data: renderAssociationModal(promptID),
		})
	}

	number, err := parseChoice(choice)
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}
	if err := b.prompts.answer(promptID, user.ID, answer{choice: number}); err != nil {
		return RespondWithEphemeralMessage(s, i, err.Error())
	}

	// Remove the buttons so the choice cannot be clicked twice
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    fmt.Sprintf("You picked #%d.", number),
			Components: []discordgo.MessageComponent{},
		},
	})
}

// handleModalSubmit delivers the leader's association
func (b *Bot) handleModalSubmit(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ModalSubmitData()
	promptID, _, err := parsePromptCustomID(data.CustomID)
	if err != nil {
		return RespondWithError(s, i, err.Error())
	}

	text, ok := modalText(data.Components, associationInputID)
	if !ok {
		return RespondWithError(s, i, ErrMalformedInput.Error())
	}

	if err := b.prompts.answer(promptID, interactionUser(i).ID, answer{text: text}); err != nil {
		return RespondWithEphemeralMessage(s, i, err.Error())
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Your association: **%s**", text))
}

// modalText finds the value of the text input with the given custom ID
func modalText(components []discordgo.MessageComponent, inputID string) (string, bool) {
	for _, component := range components {
		row, ok := component.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, c := range row.Components {
			if input, ok := c.(*discordgo.TextInput); ok && input.CustomID == inputID {
				return input.Value, true
			}
		}
	}
	return "", false
}
