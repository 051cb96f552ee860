package main

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"penulis/internal/config"
	"penulis/internal/db"
	"penulis/internal/handler"
	"penulis/internal/http"
	"penulis/internal/logger"
	"penulis/internal/network"
	"penulis/internal/render"
	"penulis/internal/repository"
	"penulis/internal/scheduler"
	"penulis/internal/service"
	"penulis/internal/service/ai"
	"penulis/internal/snowflake"
	"penulis/internal/translate"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	logger.Info("starting", "module", "main", "action", "start", "resource", config.AppName, "result", "ok", "version", config.AppVersion)

	if err := snowflake.Init(1); err != nil {
		logger.Error("snowflake init failed", "module", "main", "action", "start", "resource", "snowflake", "result", "failed", "error", err)
		os.Exit(1)
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("database open failed", "module", "main", "action", "start", "resource", "db", "result", "failed", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	provider, err := ai.NewProvider(ai.Config{
		Provider:    cfg.AI.Provider,
		APIKey:      cfg.AI.APIKey,
		BaseURL:     cfg.AI.BaseURL,
		Model:       cfg.AI.Model,
		Temperature: cfg.AI.Temperature,
		MaxTokens:   cfg.AI.MaxTokens,
	})
	if err != nil {
		logger.Error("provider init failed", "module", "main", "action", "start", "resource", "ai", "result", "failed", "error", err)
		os.Exit(1)
	}

	repo := repository.NewArticleRepository(database)
	clients := network.NewClientFactory(cfg.ProxyURL)
	translator := translate.NewGoogleTranslator(cfg.Translate.BaseURL, clients)
	renderer := render.NewRenderer()
	rateLimiter := ai.NewRateLimiter(cfg.AI.RateLimit)

	articles := service.NewArticleService(
		repo,
		provider,
		translator,
		renderer,
		rateLimiter,
		cfg.Translate.SourceLang,
		cfg.Translate.TargetLang,
	)

	router := http.NewRouter(handler.NewArticleHandler(articles))

	var prune *scheduler.Scheduler
	if cfg.RetentionDays > 0 {
		prune = scheduler.New(articles, time.Duration(cfg.RetentionDays)*24*time.Hour)
		prune.Start()
	}

	go func() {
		if err := router.Start(cfg.Addr); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			logger.Error("server stopped", "module", "main", "action", "serve", "resource", "http", "result", "failed", "error", err)
			os.Exit(1)
		}
	}()
	logger.Info("listening", "module", "main", "action", "serve", "resource", "http", "result", "ok", "addr", cfg.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down", "module", "main", "action", "stop", "resource", config.AppName, "result", "ok")

	if prune != nil {
		prune.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := router.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "module", "main", "action", "stop", "resource", "http", "result", "failed", "error", err)
	}
}
