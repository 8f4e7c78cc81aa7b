package vote

import (
	"regexp"

	"github.com/bwmarrin/discordgo"
	"github.com/youkoulayley/vote-reminder-bot/pkg/store"
)

// EpicRPGID is the Discord user ID of the EPIC RPG bot.
const EpicRPGID = "555955826880413696"

// Settings holds what the Watcher needs to recognize vote embeds.
type Settings struct {
	// AuthorIDs are the IDs of the game bots whose messages are inspected.
	AuthorIDs []string
	// VoteRewardPhrases are the lowercase "next vote rewards" field names, one per game language.
	VoteRewardPhrases []string
	// CooldownPattern captures the cooldown text of the field value in its first group.
	CooldownPattern *regexp.Regexp
	// VoteCommandPattern matches the vote command typed by a user.
	VoteCommandPattern *regexp.Regexp
	// VoteCommand is the vote command inserted in reminders.
	VoteCommand string
	// VoteSlashCommand is inserted instead of VoteCommand for users who enabled slash mentions.
	VoteSlashCommand string
}

// DefaultSettings returns the settings matching the EPIC RPG bot.
func DefaultSettings() Settings {
	return Settings{
		AuthorIDs: []string{EpicRPGID},
		VoteRewardPhrases: []string{
			"next vote rewards",
			"recompensas del siguiente voto",
			"recompensas do próximo voto",
		},
		CooldownPattern:    regexp.MustCompile(`(?i)cooldown: \*\*(.+?)\*\*`),
		VoteCommandPattern: regexp.MustCompile(`(?i)^\s*rpg\s+vote\b`),
		VoteCommand:        "`rpg vote`",
		VoteSlashCommand:   "`/vote`",
	}
}

func (s Settings) isGameBot(u *discordgo.User) bool {
	if u == nil {
		return false
	}

	for _, id := range s.AuthorIDs {
		if u.ID == id {
			return true
		}
	}

	return false
}

func (s Settings) command(user store.User) string {
	if user.SlashMentionsEnabled {
		return s.VoteSlashCommand
	}

	return s.VoteCommand
}
