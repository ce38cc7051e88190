package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"smartz/internal/config"
	"smartz/internal/ports/input"
	"smartz/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	logger  *slog.Logger
}

// NewBot creates a Bot and wires ports: use cases -> handler -> session.
func NewBot(cfg *config.Config, messages input.MessageUseCase, tr output.T, logger *slog.Logger) (*Bot, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: NewHandler(messages, tr, cfg.Locale().String(), logger),
		logger:  logger,
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if i.ApplicationCommandData().Name == messageCommandName {
		b.handler.HandleMessageCommand(s, i)
	}
}

// Start registers the slash command and serves interactions until ctx is
// cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer b.session.Close()

	cmd := b.handler.MessageCommand()
	created, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
	if err != nil {
		b.logger.Warn("discord: command registration failed", "command", cmd.Name, "error", err)
	} else if b.config.GuildID != "" {
		defer func() {
			if err := b.session.ApplicationCommandDelete(b.session.State.User.ID, b.config.GuildID, created.ID); err != nil {
				b.logger.Warn("discord: command cleanup failed", "command", cmd.Name, "error", err)
			}
		}()
	}

	b.logger.Info("discord: bot online", "user", b.session.State.User.Username, "guild", b.config.GuildID)
	<-ctx.Done()
	b.logger.Info("discord: shutting down")
	return nil
}
