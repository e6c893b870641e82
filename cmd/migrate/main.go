// Command migrate applies (default) or rolls back one step ("down") of the
// embedded schema migrations.
package main

import (
	"fmt"
	"os"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/config"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/migrations"
	"github.com/ovaphlow/pitchfork/service-finance-go/pkg/database"
	"github.com/ovaphlow/pitchfork/service-finance-go/pkg/utilities"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	lg, err := utilities.Init(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer lg.Sync()
	sugar := lg.Sugar()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		sugar.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	run := migrations.Up
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "up":
		case "down":
			run = migrations.Down
		default:
			sugar.Fatalf("unknown command %q, want up or down", os.Args[1])
		}
	}

	st, err := run(db)
	if err != nil {
		sugar.Fatalf("migrate: %v", err)
	}
	sugar.Infow("migration status", "before", st.Before, "after", st.After)
}
