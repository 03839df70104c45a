package main

import (
	"JewelryStore/internal/config"
	"JewelryStore/internal/handlers"
	"JewelryStore/internal/middleware"
	"JewelryStore/internal/repo"
	"JewelryStore/internal/service"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// в production — JSON-логи уровня info, иначе — development-регистратор
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.IsProduction() && cfg.AuthSecret == "dev-secret-key" {
		sugar.Warnw("AUTH_SECRET is not set, using the development secret")
	}

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	repos := repo.NewRepositories(gormDB)
	accountService := service.NewAccountService(repos.Accounts, repos.Branches, cfg.BcryptCost)
	branchService := service.NewBranchService(repos.Branches, repos.Accounts)
	jewelryService := service.NewJewelryService(repos.Jewelry, repos.Branches)
	transferService := service.NewTransferService(repos, repo.NewUnitOfWork(gormDB), sugar)

	if err := bootstrapAdmin(ctx, accountService, cfg, sugar); err != nil {
		sugar.Fatalw("failed to bootstrap admin account", "error", err)
	}

	h := handlers.NewHandler(accountService, branchService, jewelryService, transferService, sugar, cfg)

	addr := cfg.BaseURL
	srv := &http.Server{Addr: addr, Handler: h.Router}

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"Env", cfg.Env,
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"Postgres", repo.IsPostgresDSN(cfg.DatabaseDSN),
		"TokenTTL", cfg.TokenTTL,
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	sugar.Infow("Shutting down", "timeout", cfg.ShutdownTimeout)

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Graceful shutdown failed", "error", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// bootstrapAdmin создаёт администратора в пустой базе. Если пароль не задан,
// генерирует случайный и выводит его в лог один раз.
func bootstrapAdmin(ctx context.Context, accounts *service.AccountService, cfg *config.Config, sugar *zap.SugaredLogger) error {
	password := cfg.AdminPassword
	generated := password == ""
	if generated {
		buf := make([]byte, 12)
		if _, err := rand.Read(buf); err != nil {
			return err
		}
		password = hex.EncodeToString(buf)
	}

	created, err := accounts.EnsureAdmin(ctx, cfg.AdminUsername, password)
	if err != nil || !created {
		return err
	}
	if generated {
		sugar.Warnw("Created admin account with generated password; set ADMIN_PASSWORD to choose your own",
			"username", cfg.AdminUsername, "password", password)
	} else {
		sugar.Infow("Created admin account", "username", cfg.AdminUsername)
	}
	return nil
}
