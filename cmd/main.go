package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"

	"fynorra-assistant/internal/httpserver"
	"fynorra-assistant/internal/integrations/paramstore"
	"fynorra-assistant/internal/usecase"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments inject the environment directly.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env file")
	}

	// ---- Configuration (read only here) ----
	port := envOr("PORT", "8000")
	maxQuestionLen := envInt("MAX_QUESTION_LENGTH", 300)
	paramPrefix := os.Getenv("PARAM_PREFIX")
	voiceRef := os.Getenv("VOICE_PLACEHOLDER")

	// ---- Clients ----
	// The parameter store is only consulted when a prefix is configured;
	// without one the built-in replies apply and no AWS access is needed.
	var params usecase.ParamGetter
	if paramPrefix != "" {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			slog.Error("failed to load AWS config", "err", err)
			os.Exit(1)
		}
		params, err = paramstore.New(awsssm.NewFromConfig(cfg))
		if err != nil {
			slog.Error("failed to create SSM client", "err", err)
			os.Exit(1)
		}
	}

	// ---- Service ----
	askService, err := usecase.NewAskService(params, paramPrefix, maxQuestionLen, voiceRef)
	if err != nil {
		slog.Error("failed to create ask service", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: httpserver.NewRouter(askService),
	}

	go func() {
		slog.Info("assistant API listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "err", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func envOr(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
