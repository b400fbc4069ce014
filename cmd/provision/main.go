// Copyright (c) 2026 Sentra. All rights reserved.
// Author: dev@sentra-hq.io

// Command provision creates the initial admin account from environment
// credentials (ADMIN_USERNAME / ADMIN_PASSWORD).
//
// It is the out-of-band provisioning step for the admin backend: the live
// HTTP surface deliberately exposes no account-creation endpoint. The
// command is idempotent — if the username already exists it exits cleanly
// without touching the record.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/sentra-hq/sentra/internal/admin"
	"github.com/sentra-hq/sentra/internal/platform/apperr"
	"github.com/sentra-hq/sentra/internal/platform/config"
	"github.com/sentra-hq/sentra/internal/platform/constants"
	"github.com/sentra-hq/sentra/internal/platform/migration"
	pgstore "github.com/sentra-hq/sentra/internal/platform/postgres"
	"github.com/sentra-hq/sentra/internal/platform/sec"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).
		With(slog.String("app", constants.AppName), slog.String("cmd", "provision"))

	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Error("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	// Apply schema before inserting: provision may run on a fresh database.
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// The token service is unused here, but constructing the full service
	// keeps the provisioning path identical to production wiring.
	tokenService, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer, cfg.TokenTTL)
	must(log, err, "initialize token service")

	repository := admin.NewRepository(pool)
	service := admin.NewService(repository, tokenService, log)

	record, err := service.Provision(ctx, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		if ae := apperr.As(err); ae != nil && ae.Code == "CONFLICT" {
			log.Info("admin_already_provisioned", slog.String("username", cfg.AdminUsername))
			return
		}
		must(log, err, "provision admin")
	}

	log.Info("initial_admin_ready",
		slog.String("admin_id", record.ID),
		slog.String("username", record.Username),
	)
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("provision failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
