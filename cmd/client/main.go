package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/colorwin/internal/client/admin"
	"github.com/iudanet/colorwin/internal/client/api"
	"github.com/iudanet/colorwin/internal/client/betflow"
	"github.com/iudanet/colorwin/internal/client/cli"
	"github.com/iudanet/colorwin/internal/client/game"
	"github.com/iudanet/colorwin/internal/client/iocli"
	"github.com/iudanet/colorwin/internal/client/push"
	"github.com/iudanet/colorwin/internal/client/session"
	"github.com/iudanet/colorwin/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги; для адресов сервера есть фоллбек на переменные окружения
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", envOr("COLORWIN_SERVER", "http://localhost:8080"), "Server URL")
	wsURL := flag.String("ws", envOr("COLORWIN_WS", "ws://localhost:8080/ws"), "Push events URL")
	dbPath := flag.String("db", "colorwin-client.db", "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	command := args[0]

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Ctrl+C завершает watch/live штатно
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)

	sessionManager := session.NewManager(apiClient, boltStorage, logger)
	if err := sessionManager.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load session: %v\n", err)
		os.Exit(1)
	}

	channel := push.NewWSChannel(*wsURL, logger)
	rounds := game.NewService(apiClient, channel, sessionManager, logger)
	defer func() {
		if err := rounds.Close(); err != nil {
			logger.Error("failed to close round service", "error", err)
		}
	}()

	flow := betflow.NewFlow(rounds, logger)
	monitor := admin.NewMonitor(apiClient, sessionManager, logger)

	app := cli.New(iocli.NewStdio(), apiClient, sessionManager, rounds, flow, monitor)

	if err := app.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func printVersion() {
	fmt.Printf("ColorWin Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
