// README: Entry point; loads config, wires services, starts the webhook HTTP server.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ankago/internal/ai"
	"ankago/internal/config"
	httptransport "ankago/internal/http"
	"ankago/internal/infra"
	"ankago/internal/modules/convo"
	"ankago/internal/modules/dialogue"
	"ankago/internal/modules/jobs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)
	defer redisClient.Close()

	provider, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, cfg.AI.Model, logger)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer provider.Close()

	jobStore := jobs.NewStore(dbPool)
	jobSvc := jobs.NewService(jobStore, logger)

	convoStore := convo.NewStore(redisClient)

	dialogueSvc := dialogue.NewService(convoStore, jobSvc, provider, cfg.Dialogue, logger)

	handler := httptransport.NewRouter(dialogueSvc, cfg.HTTP.WebhookToken, logger)
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "err", err)
		}
	}()

	logger.Info("listening", "addr", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
