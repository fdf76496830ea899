package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"localebot/internal/adapters/discord"
	"localebot/internal/application"
	"localebot/internal/config"
	"localebot/internal/infrastructure/database"
	"localebot/internal/infrastructure/i18n"
	"localebot/internal/logger"
	"localebot/internal/ports/input"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	log := logger.New(logger.ParseLevel(cfg.LogLevel), logger.InteractionExtractors()...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("bot stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	var bundle fs.FS = i18n.Embedded()
	if cfg.LocalesDir != "" {
		bundle = os.DirFS(cfg.LocalesDir)
	}
	tree, err := i18n.LoadDir(bundle)
	if err != nil {
		return err
	}
	messages, err := application.CompileMessages(tree)
	if err != nil {
		// Broken templates render as missing; the rest of the catalog is usable.
		log.Warn("i18n: message format", slog.Any("error", err))
	}

	translator, err := application.New(tree, application.Config{
		Locale:         cfg.Locale,
		FallbackLocale: cfg.FallbackLocale,
		DefaultLocale:  application.UltimateLocale,
	}, application.WithMessages(messages), application.WithLogger(log))
	if err != nil {
		return err
	}
	log.Info("i18n: bundle loaded",
		slog.Any("locales", translator.Locales()),
		slog.Int("messages", messages.Len()))

	var translations input.TranslationUseCase = translator
	if cfg.VerboseI18n {
		translations = application.NewVerbose(translator, log)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, log); err != nil {
		return err
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	extras := application.NewExtrasService(database.NewExtraRepository(pool), translator, translator.Locales(), log)
	if err := extras.Reload(ctx); err != nil {
		log.Warn("i18n: initial extras load", slog.Any("error", err))
	}
	go extras.Run(ctx, cfg.ExtrasReload)

	bot, err := discord.NewBot(cfg, translations, extras, log)
	if err != nil {
		return err
	}
	return bot.Start(ctx)
}
