package main

import (
	"fmt"
	"log/slog"
	"os"

	sentrygo "github.com/getsentry/sentry-go"

	"assistant/addressbook"
	"assistant/httpserver"
	"assistant/pkg/config"
	"assistant/pkg/logger"
	"assistant/pkg/sentry"
)

func main() {
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(slogger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	zlog, err := logger.New(cfg.AppEnv)
	if err != nil {
		slog.Error("Cannot build logger", "error", err)
		os.Exit(1)
	}
	defer func() { _ = zlog.Sync() }()

	server := httpserver.Default(cfg)
	server.Logger = zlog
	server.Contacts = addressbook.NewUsecase(addressbook.NewBook())
	if cfg.Port != 0 {
		server.Addr = fmt.Sprintf(":%d", cfg.Port)
	}

	slog.Info("server started!")
	if err := server.Start(); err != nil {
		slog.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
