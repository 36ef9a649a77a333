package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/dadddeck/deck-bot-discord/internal/entities"
	dderr "github.com/dadddeck/deck-bot-discord/internal/errors"
	"github.com/dadddeck/deck-bot-discord/internal/services"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
	}
}

func archetypeChoices() []*discordgo.ApplicationCommandOptionChoice {
	core := entities.CoreArchetypes()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(core))
	for i, a := range core {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{
			Name:  string(a),
			Value: string(a),
		}
	}
	return choices
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "dad",
			Description: "DadDeck card game commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "collection",
					Description: "Show your card collection",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "pack",
					Description: "Buy and open a card pack",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "type",
							Description: "Pack type (default: standard)",
							Required:    false,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Standard", Value: string(entities.PackTypeStandard)},
								{Name: "Premium", Value: string(entities.PackTypePremium)},
							},
						},
					},
				},
				{
					Name:        "upgrade",
					Description: "Upgrade a card by consuming duplicates, or list what can be upgraded",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "card",
							Description: "Card instance ID (omit to list upgradeable cards)",
							Required:    false,
						},
					},
				},
				{
					Name:        "craft",
					Description: "Craft a higher tier card from duplicates, or list recipes",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "recipe",
							Description: "Recipe ID (omit to list recipes)",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "cards",
							Description: "Comma-separated card instance IDs to consume",
							Required:    false,
						},
					},
				},
				{
					Name:        "leaderboard",
					Description: "Rank your collection against other dads",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "rival",
							Description: "Dad to rank against",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "rival2",
							Description: "Another dad to rank against",
							Required:    false,
						},
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "rival3",
							Description: "Another dad to rank against",
							Required:    false,
						},
					},
				},
				{
					Name:        "matchup",
					Description: "Show the type advantage between two dad archetypes",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "attacker",
							Description: "Attacking archetype",
							Required:    true,
							Choices:     archetypeChoices(),
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "defender",
							Description: "Defending archetype",
							Required:    true,
							Choices:     archetypeChoices(),
						},
					},
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	h.handleCommand(s, i)
}

// handleCommand handles slash command interactions
func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	if data.Name != "dad" || len(data.Options) == 0 {
		return
	}

	sub := data.Options[0]
	opts := optionMap(sub.Options)

	var err error
	switch sub.Name {
	case "collection":
		err = h.handleCollection(s, i)
	case "pack":
		err = h.handlePack(s, i, opts)
	case "upgrade":
		err = h.handleUpgrade(s, i, opts)
	case "craft":
		err = h.handleCraft(s, i, opts)
	case "leaderboard":
		err = h.handleLeaderboard(s, i, sub.Options)
	case "matchup":
		err = h.handleMatchup(s, i, opts)
	}
	if err != nil {
		log.Printf("Error handling /dad %s: %v", sub.Name, err)
	}
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	out := make(map[string]string, len(options))
	for _, opt := range options {
		if opt.Type == discordgo.ApplicationCommandOptionString {
			out[opt.Name] = opt.StringValue()
		}
	}
	return out
}

func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func (h *Handler) handleCollection(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	pc, err := h.ServiceProvider.CollectionService.GetOrCreate(context.Background(), interactionUserID(i))
	if err != nil {
		return h.respondError(s, i, err)
	}
	return h.respondEmbed(s, i, renderCollection(pc))
}

func (h *Handler) handlePack(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]string) error {
	packType := entities.PackTypeStandard
	if v, ok := opts["type"]; ok {
		packType = entities.PackType(v)
	}

	res, err := h.ServiceProvider.CollectionService.OpenPack(context.Background(), interactionUserID(i), packType)
	if err != nil {
		return h.respondError(s, i, err)
	}
	return h.respondEmbed(s, i, renderPack(res))
}

func (h *Handler) handleUpgrade(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]string) error {
	ctx := context.Background()
	ownerID := interactionUserID(i)

	instanceID, ok := opts["card"]
	if !ok || instanceID == "" {
		upgradeable, err := h.ServiceProvider.CollectionService.ListUpgradeable(ctx, ownerID)
		if err != nil {
			return h.respondError(s, i, err)
		}
		return h.respondEmbed(s, i, renderUpgradeable(upgradeable))
	}

	res, err := h.ServiceProvider.CollectionService.UpgradeCard(ctx, ownerID, instanceID)
	if err != nil {
		return h.respondError(s, i, err)
	}
	return h.respondEmbed(s, i, renderUpgrade(res))
}

func (h *Handler) handleCraft(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]string) error {
	ctx := context.Background()
	ownerID := interactionUserID(i)

	recipeID, ok := opts["recipe"]
	if !ok || recipeID == "" {
		return h.respondEmbed(s, i, renderRecipes(h.ServiceProvider.CollectionService.ListRecipes()))
	}

	var selectedIDs []string
	for _, id := range strings.Split(opts["cards"], ",") {
		if id = strings.TrimSpace(id); id != "" {
			selectedIDs = append(selectedIDs, id)
		}
	}

	res, err := h.ServiceProvider.CollectionService.CraftCards(ctx, ownerID, recipeID, selectedIDs)
	if err != nil {
		return h.respondError(s, i, err)
	}
	return h.respondEmbed(s, i, renderCraft(res))
}

func (h *Handler) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	ownerIDs := []string{interactionUserID(i)}
	for _, opt := range options {
		if opt.Type == discordgo.ApplicationCommandOptionUser {
			if user := opt.UserValue(nil); user != nil {
				ownerIDs = append(ownerIDs, user.ID)
			}
		}
	}

	entries, err := h.ServiceProvider.CollectionService.Leaderboard(context.Background(), ownerIDs)
	if err != nil {
		return h.respondError(s, i, err)
	}
	return h.respondEmbed(s, i, renderLeaderboard(entries))
}

func (h *Handler) handleMatchup(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]string) error {
	attacker := entities.Archetype(opts["attacker"])
	defender := entities.Archetype(opts["defender"])
	if !attacker.Valid() || !defender.Valid() {
		return h.respondError(s, i, dderr.InvalidArgument("unknown archetype"))
	}
	return h.respondEmbed(s, i, renderMatchup(h.ServiceProvider.AdvantageTable, attacker, defender))
}

func (h *Handler) respondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// respondError shows engine errors to the player; only unexpected internals
// stay generic
func (h *Handler) respondError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	message := "Something went wrong. Try again in a moment."
	switch dderr.GetCode(err) {
	case dderr.CodeUnknown, dderr.CodeInternal, dderr.CodeDataIntegrity:
		log.Printf("Internal error handling interaction: %v", err)
	default:
		message = err.Error()
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
