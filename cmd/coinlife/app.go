package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"CoinLife/internal/catalog"
	"CoinLife/internal/config"
	"CoinLife/internal/logger"
	"CoinLife/internal/notifier"
	"CoinLife/internal/recorder"
	"CoinLife/internal/session"
)

// app bundles what every command needs.
type app struct {
	cfg     *config.Config
	log     zerolog.Logger
	catalog *catalog.Catalog
	rec     recorder.Recorder
	// telegram is nil unless a bot token and chat are configured.
	telegram *notifier.TelegramNotifier
	notify   *notifier.Observer
}

func newApp() (*app, error) {
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	cat, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warn().Err(err).Msg("init sqlite recorder failed, using noop")
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	a := &app{cfg: cfg, log: log, catalog: cat, rec: rec}
	if cfg.TelegramEnabled() {
		a.telegram = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)
		log.Info().Msg("telegram notifier enabled")
	}
	return a, nil
}

// observers returns the session observers every command attaches. Queued
// notifications outlive command cancellation and are drained by Close.
func (a *app) observers() []session.Observer {
	obs := []session.Observer{recorder.NewObserver(a.rec, a.log)}
	if a.telegram != nil {
		a.notify = notifier.NewObserver(context.Background(), a.telegram, a.cfg.Telegram.Settlements, a.log)
		obs = append(obs, a.notify)
	}
	return obs
}

// endingCounter exposes ending statistics when the recorder can provide them.
func (a *app) endingCounter() notifier.EndingCounter {
	if ec, ok := a.rec.(notifier.EndingCounter); ok {
		return ec
	}
	return nil
}

func (a *app) Close() {
	if a.notify != nil {
		a.notify.Close()
	}
	if err := a.rec.Close(); err != nil {
		a.log.Error().Err(err).Msg("close recorder")
	}
}
