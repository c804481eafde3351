// Command migrate applies the embedded SQL migrations to a Postgres database.
//
//	migrate [up|down|status]
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/yukikurage/todo-api/internal/config"
	"github.com/yukikurage/todo-api/internal/database"
	"github.com/yukikurage/todo-api/internal/logging"
)

var errNotPostgres = errors.New("migrations target postgres; use DB_AUTO_MIGRATE for other drivers")

func main() {
	flag.Parse()
	command := flag.Arg(0)
	if command == "" {
		command = database.MigrateUp
	}

	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.LogLevel)

	if err := run(ctx, cfg, command); err != nil {
		logger.Error(ctx, "migration failed", "command", command, "error", err)
		os.Exit(1)
	}
	logger.Info(ctx, "migration finished", "command", command)
}

func run(ctx context.Context, cfg *config.Config, command string) error {
	if cfg.DBDriver != config.DriverPostgres && cfg.DatabaseURL == "" {
		return errNotPostgres
	}

	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to reach database: %w", err)
	}

	return database.RunMigrations(ctx, db, command)
}
