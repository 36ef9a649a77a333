package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/dadddeck/deck-bot-discord/internal/entities"
	"github.com/dadddeck/deck-bot-discord/internal/services/advantage"
	"github.com/dadddeck/deck-bot-discord/internal/services/collection"
	"github.com/dadddeck/deck-bot-discord/internal/services/crafting"
	"github.com/dadddeck/deck-bot-discord/internal/services/upgrade"
)

// Discord caps embed field values well above this; we cap listings for
// readability, not the API limit
const maxListedCards = 25

var rarityEmoji = map[entities.Rarity]string{
	entities.RarityCommon:    "⚪",
	entities.RarityUncommon:  "🟢",
	entities.RarityRare:      "🔵",
	entities.RarityEpic:      "🟣",
	entities.RarityLegendary: "🟠",
	entities.RarityMythic:    "🔴",
}

func cardLine(inst *entities.CardInstance) string {
	return fmt.Sprintf("%s **%s** (%s %s, power %d) `%s`",
		rarityEmoji[inst.Rarity], inst.Name, inst.Rarity, inst.Archetype, inst.Stats.Total(), inst.ID)
}

func renderCollection(pc *entities.PlayerCollection) *discordgo.MessageEmbed {
	var sb strings.Builder
	for n, inst := range pc.Cards {
		if n == maxListedCards {
			fmt.Fprintf(&sb, "... and %d more", len(pc.Cards)-maxListedCards)
			break
		}
		sb.WriteString(cardLine(inst))
		if level := upgradeLevel(pc, inst.ID); level > 0 {
			fmt.Fprintf(&sb, " +%d", level)
		}
		sb.WriteString("\n")
	}
	if len(pc.Cards) == 0 {
		sb.WriteString("No cards yet. Open a pack with `/dad pack`!")
	}

	return &discordgo.MessageEmbed{
		Title:       "Your Collection",
		Description: sb.String(),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d cards | %d coins", len(pc.Cards), pc.Currency),
		},
	}
}

func upgradeLevel(pc *entities.PlayerCollection, instanceID string) int {
	if record, ok := pc.UpgradeRecords[instanceID]; ok && record != nil {
		return record.Level
	}
	return 0
}

func renderPack(res *collection.OpenPackResult) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, inst := range res.Pack.Cards {
		sb.WriteString(cardLine(inst))
		sb.WriteString("\n")
	}

	name := string(res.Pack.Type)
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s Pack", name),
		Description: sb.String(),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Best pull: %s | %d coins left", res.Pack.BestRarity, res.Currency),
		},
	}
}

func renderUpgradeable(cards []upgrade.Upgradeable) *discordgo.MessageEmbed {
	if len(cards) == 0 {
		return &discordgo.MessageEmbed{
			Title:       "Upgradeable Cards",
			Description: "Nothing to upgrade. Collect more duplicates!",
		}
	}

	var sb strings.Builder
	for _, c := range cards {
		fmt.Fprintf(&sb, "**%s** level %d, %d duplicates `%s`\n", c.Name, c.Level, c.DuplicateCount, c.InstanceID)
	}
	return &discordgo.MessageEmbed{
		Title:       "Upgradeable Cards",
		Description: sb.String(),
	}
}

func renderUpgrade(res *upgrade.Result) *discordgo.MessageEmbed {
	entry := res.HistoryEntry
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s is now level %d!", res.UpdatedCard.Name, entry.ToLevel),
		Description: fmt.Sprintf("Consumed %d duplicates. Power %d -> %d.",
			len(res.ConsumedInstanceIDs), entry.StatsBefore.Total(), entry.StatsAfter.Total()),
	}
}

func renderRecipes(recipes map[string]*entities.Recipe) *discordgo.MessageEmbed {
	var sb strings.Builder
	// Walk tiers low to high so the listing reads as a progression
	for _, rarity := range entities.Rarities() {
		for id, r := range recipes {
			if r.InputRarity != rarity {
				continue
			}
			fmt.Fprintf(&sb, "`%s`: %d %s -> 1 %s, %d coins, %.0f%% success\n",
				id, r.InputCount, r.InputRarity, r.OutputRarity, r.Cost(), r.SuccessRate*100)
		}
	}
	return &discordgo.MessageEmbed{
		Title:       "Crafting Recipes",
		Description: sb.String(),
	}
}

func renderCraft(res *crafting.Result) *discordgo.MessageEmbed {
	if res.Success {
		return &discordgo.MessageEmbed{
			Title:       "Craft succeeded!",
			Description: fmt.Sprintf("You got %s\nSpent %d coins.", cardLine(res.Output), res.CurrencySpent),
		}
	}
	return &discordgo.MessageEmbed{
		Title: "Craft failed",
		Description: fmt.Sprintf("%d cards were lost, %d returned to your collection. Spent %d coins.",
			len(res.RemovedInstanceIDs), len(res.ReturnedInstanceIDs), res.CurrencySpent),
	}
}

var rankMedals = []string{"🥇", "🥈", "🥉"}

func renderLeaderboard(entries []collection.LeaderboardEntry) *discordgo.MessageEmbed {
	var sb strings.Builder
	for rank, entry := range entries {
		medal := fmt.Sprintf("#%d", rank+1)
		if rank < len(rankMedals) {
			medal = rankMedals[rank]
		}
		fmt.Fprintf(&sb, "%s <@%s>: power %d, %d cards, best pull %s\n",
			medal, entry.OwnerID, entry.TotalPower, entry.CardCount, entry.BestRarity)
	}

	return &discordgo.MessageEmbed{
		Title:       "Dad Leaderboard",
		Description: sb.String(),
	}
}

func renderMatchup(table *advantage.Table, attacker, defender entities.Archetype) *discordgo.MessageEmbed {
	multiplier := table.Resolve(attacker, defender)

	var verdict string
	switch multiplier {
	case advantage.AdvantageMultiplier:
		verdict = fmt.Sprintf("**%s** has the edge over **%s**", attacker, defender)
	case advantage.DisadvantageMultiplier:
		verdict = fmt.Sprintf("**%s** struggles against **%s**", attacker, defender)
	default:
		verdict = fmt.Sprintf("**%s** and **%s** are evenly matched", attacker, defender)
	}

	return &discordgo.MessageEmbed{
		Title:       "Matchup",
		Description: fmt.Sprintf("%s\nDamage multiplier: **x%.1f**", verdict, multiplier),
	}
}
