package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"smartz/internal/adapters/discord"
	"smartz/internal/infrastructure/i18n"
)

func initBotCmd() {
	botCmd := &cobra.Command{
		Use:   "bot",
		Short: "Run the Discord bot until interrupted",
		Args:  cobra.NoArgs,
		RunE:  runBot,
	}

	rootCmd.AddCommand(botCmd)
}

func runBot(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()
	if err := a.cfg.ValidateBot(); err != nil {
		return err
	}

	for _, bundle := range a.bundles() {
		if err := a.store.Preload(ctx, bundle, language.Und, a.cfg.Locale()); err != nil {
			a.logger.Warn("bot: preload failed", "bundle", bundle, "error", err)
		}
	}

	tr := i18n.NewTranslator(a.cfg.DefaultLocale, a.logger)
	bot, err := discord.NewBot(a.cfg, a.messages, tr, a.logger)
	if err != nil {
		return err
	}
	return bot.Start(ctx)
}
