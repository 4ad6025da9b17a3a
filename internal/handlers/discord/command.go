package discord

import (
	"github.com/bwmarrin/discordgo"
)

// CommandHandler is a slash command the bot registers and routes to
type CommandHandler interface {
	GetName() string

	// GetCommand returns the definition sent to Discord on registration
	GetCommand() *discordgo.ApplicationCommand

	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand holds a command's definition. Game commands only make sense
// in a guild channel, so they are hidden in DMs.
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

func (c *BaseCommand) GetName() string {
	return c.Name
}

func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	inDMs := false
	return &discordgo.ApplicationCommand{
		Name:         c.Name,
		Description:  c.Description,
		Options:      c.Options,
		DMPermission: &inDMs,
	}
}

// respond answers an interaction with a new message
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, data *discordgo.InteractionResponseData) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// RespondWithMessage posts a message everyone in the channel sees
func RespondWithMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return respond(s, i, &discordgo.InteractionResponseData{Content: message})
}

func RespondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return respond(s, i, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
}

// RespondWithError shows the error only to the invoking user
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return respond(s, i, &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Oops",
				Description: message,
				Color:       colorBad,
			},
		},
		Flags: discordgo.MessageFlagsEphemeral,
	})
}

func RespondWithEphemeralMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return respond(s, i, &discordgo.InteractionResponseData{
		Content: message,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
}

// interactionUser returns the invoking user. Member is only set in guilds,
// User only in DMs.
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// interactionUserName prefers the guild nickname
func interactionUserName(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.Nick != "" {
		return i.Member.Nick
	}
	if u := interactionUser(i); u != nil {
		if u.GlobalName != "" {
			return u.GlobalName
		}
		return u.Username
	}
	return ""
}
