package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/iudanet/taskmanager/internal/client/api"
	"github.com/iudanet/taskmanager/internal/client/auth"
	"github.com/iudanet/taskmanager/internal/client/cli"
	"github.com/iudanet/taskmanager/internal/client/data"
	"github.com/iudanet/taskmanager/internal/client/iocli"
	"github.com/iudanet/taskmanager/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const defaultServerURL = "http://localhost:8080"

func main() {
	os.Exit(run())
}

func run() int {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "", "Server URL (default: saved session server or "+defaultServerURL+")")
	dbPath := flag.String("db", "taskmanager-client.db", "Path to local session database")

	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		return 0
	}

	stdio := iocli.NewStdio()

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.New(stdio, nil, nil).PrintUsage()
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close database: %v\n", err)
		}
	}()

	url := resolveServerURL(ctx, *serverURL, boltStorage)
	apiClient := api.NewClient(url)
	authService := auth.NewManager(apiClient, boltStorage, url)
	dataService := data.NewTaskService(apiClient, authService)

	c := cli.New(stdio, authService, dataService)
	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, cli.ErrUnknownCommand) {
			c.PrintUsage()
		}
		return 1
	}
	return 0
}

// resolveServerURL: флаг, затем переменная окружения, затем сервер сохраненной сессии
func resolveServerURL(ctx context.Context, fromFlag string, store *boltdb.Storage) string {
	if fromFlag != "" {
		return fromFlag
	}
	if env := os.Getenv("TASKMANAGER_SERVER"); env != "" {
		return env
	}
	if sess, err := store.GetAuth(ctx); err == nil && sess.ServerURL != "" {
		return sess.ServerURL
	}
	return defaultServerURL
}

func printVersion() {
	fmt.Printf("Task Manager Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
