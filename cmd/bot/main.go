package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"homework_notification_bot/internal/app"
	"homework_notification_bot/internal/infra/config"
	"homework_notification_bot/internal/infra/logger"
	"homework_notification_bot/internal/infra/practicum"
	"homework_notification_bot/internal/infra/scheduler"
	"homework_notification_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		// The logger is not configured yet; its defaults are good enough for
		// the fatal report. Fatalf exits with a non-zero status.
		logger.Log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	defer logger.Close()
	log := logger.Get()
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Poll interval: %s", cfg.LogLevel, cfg.Environment, cfg.PollInterval)

	// Initialize Telegram Bot. The bot only ever sends; no handlers are
	// registered and the poller is never started.
	bot, err := telebot.NewBot(telebot.Settings{Token: cfg.TelegramToken})
	if err != nil {
		log.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}
	tgClient := telegram.NewTelebotAdapter(bot)
	log.Info("Telegram client initialized.")

	apiClient := practicum.NewClient(cfg.PracticumEndpoint, cfg.PracticumToken, cfg.HTTPTimeout)
	log.Info("Practicum API client initialized.")

	watcher := app.NewWatcherService(apiClient, tgClient, cfg.TelegramChatID, log)
	log.Info("Watcher service initialized.")

	pollScheduler := scheduler.NewPollScheduler(watcher, log, cfg.PollInterval)
	pollScheduler.Start()

	log.Info("Application setup complete. Watcher is running.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info("Shutting down application...")
	pollScheduler.Stop()
	log.Info("Application shut down gracefully.")
}
