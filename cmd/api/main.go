package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ovaphlow/pitchfork/service-finance-go/internal/auth"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/common"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/config"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/expense"
	expenserepo "github.com/ovaphlow/pitchfork/service-finance-go/internal/expense/repo"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/migrations"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/router"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/transaction"
	txrepo "github.com/ovaphlow/pitchfork/service-finance-go/internal/transaction/repo"
	"github.com/ovaphlow/pitchfork/service-finance-go/internal/user"
	userrepo "github.com/ovaphlow/pitchfork/service-finance-go/internal/user/repo"
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
	sugar.Info("starting service-finance-go")
	if cfg.UsingDevSecret() {
		sugar.Warn("JWT_SECRET is not set; using the development secret")
	}

	db, err := database.ConnectX(cfg.Database)
	if err != nil {
		sugar.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	if cfg.AutoMigrate {
		st, err := migrations.Up(db.DB)
		if err != nil {
			sugar.Fatalf("migrate: %v", err)
		}
		sugar.Infow("schema migrated", "before", st.Before, "after", st.After)
	}

	v := common.NewValidator()
	hasher := auth.BcryptHasher{Cost: cfg.BcryptCost}
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	users := userrepo.NewUserRepo(db)

	handler := router.RegisterRoutes(sugar, cfg.CORSOrigins, router.Handlers{
		Auth:         auth.NewHandler(auth.NewService(users, hasher, tokens, v), sugar),
		Gate:         auth.NewGate(tokens, users, sugar),
		Users:        user.NewHandler(user.NewUserService(users, hasher, v), sugar),
		Expenses:     expense.NewHandler(expense.NewService(expenserepo.NewExpenseRepo(db), v), sugar),
		Transactions: transaction.NewHandler(transaction.NewService(txrepo.NewTransactionRepo(db), v), sugar),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sugar.Infow("http server listening", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalf("http server failed: %v", err)
		}
	}()

	<-ctx.Done()

	sugar.Info("shutting down")

	doneCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(doneCtx); err != nil {
		sugar.Warnf("http server shutdown failed: %v", err)
	}

	sugar.Info("goodbye")
}
