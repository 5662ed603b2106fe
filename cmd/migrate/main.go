package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/contactform/backend/internal/config"
	"github.com/contactform/backend/internal/logging"
	"github.com/contactform/backend/internal/repository"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)   create the messages table if it does not exist
  check       verify the database is reachable without changing it`)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("INFO")
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	if cmd != "" && cmd != "check" {
		usage()
	}

	ctx := context.Background()
	repo, err := repository.Open(ctx, cfg.Database.URL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer repo.Close()

	switch cmd {
	case "":
		if err := repo.Migrate(ctx); err != nil {
			logging.Fatal("migration failed", "error", err)
		}
		slog.Info("schema up to date", "table", "messages")
	case "check":
		if err := repo.Ping(ctx); err != nil {
			logging.Fatal("database unreachable", "error", err)
		}
		slog.Info("database reachable")
	}
}
