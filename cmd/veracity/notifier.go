// cmd/veracity/notifier.go
package main

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Notifier posts alerts to a Discord channel when an analysis lands in the
// fake band. It is optional; a nil Notifier means alerts are disabled.
type Notifier struct {
	session   *discordgo.Session
	channelID string
}

// NewNotifier opens a Discord session for alerting.
func NewNotifier(config *Config) (*Notifier, error) {
	if config.DiscordBotToken == "" || config.DiscordAlertChannelID == "" {
		return nil, fmt.Errorf("discord alerts enabled but token or channel id is missing")
	}

	session, err := discordgo.New("Bot " + config.DiscordBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %v", err)
	}
	if err := session.Open(); err != nil {
		return nil, fmt.Errorf("failed to open Discord session: %v", err)
	}

	Log().Info("Discord alert notifier connected")
	return &Notifier{session: session, channelID: config.DiscordAlertChannelID}, nil
}

// AlertFakeVerdict posts an embed describing the flagged item.
func (n *Notifier) AlertFakeVerdict(result *AnalysisResult) error {
	title := result.Title
	if title == "" {
		title = "(untitled)"
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Likely fake content detected",
		Description: title,
		Color:       0xE74C3C,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Credibility", Value: fmt.Sprintf("%d/100", result.CredibilityScore), Inline: true},
			{Name: "Status", Value: result.VerificationStatus, Inline: true},
			{Name: "Bias", Value: result.BiasLevel, Inline: true},
		},
	}
	if result.SourceDomain != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Source", Value: result.SourceDomain, Inline: true,
		})
	}
	if len(result.RedFlags) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Red flags", Value: strings.Join(result.RedFlags, "\n"),
		})
	}
	if result.SourceURL != "" {
		embed.URL = result.SourceURL
	}

	_, err := n.session.ChannelMessageSendEmbed(n.channelID, embed)
	if err != nil {
		return fmt.Errorf("failed to send Discord alert: %v", err)
	}
	return nil
}

// Close shuts down the Discord session.
func (n *Notifier) Close() {
	if n.session != nil {
		n.session.Close()
	}
}
