package main

import (
	"context"
	"fmt"
	"net"
	"net/url"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/InventoryHub_Go/internal/config"
	"github.com/osse101/InventoryHub_Go/internal/database"
	"github.com/osse101/InventoryHub_Go/internal/database/migrations"
)

type SetupDBCommand struct{}

func (c *SetupDBCommand) Name() string {
	return "setup-db"
}

func (c *SetupDBCommand) Description() string {
	return "Create the database if missing and migrate it (--reset drops it first)"
}

func (c *SetupDBCommand) Run(args []string) error {
	reset := len(args) > 0 && args[0] == "--reset"

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ctx := context.Background()

	// Connect to the maintenance database to manage the target one
	conn, err := pgx.Connect(ctx, serverConnString(cfg))
	if err != nil {
		return fmt.Errorf("unable to connect to postgres server: %w", err)
	}
	defer conn.Close(ctx)

	name := pgx.Identifier{cfg.DBName}.Sanitize()

	if reset {
		PrintWarning("Dropping database %s", cfg.DBName)
		if _, err := conn.Exec(ctx, `
			SELECT pg_terminate_backend(pid)
			FROM pg_stat_activity
			WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName); err != nil {
			PrintWarning("Failed to terminate connections: %v", err)
		}
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+name); err != nil {
			return fmt.Errorf("failed to drop database: %w", err)
		}
	}

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}
	if exists {
		PrintInfo("Database %s already exists", cfg.DBName)
	} else {
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+name); err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
		PrintSuccess("Database %s created", cfg.DBName)
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()
	if err := migrations.Up(ctx, pool); err != nil {
		return err
	}
	PrintSuccess("Migrations applied")
	return nil
}

// serverConnString points at the "postgres" maintenance database on the configured server
func serverConnString(cfg *config.Config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DBUser, cfg.DBPassword),
		Host:     net.JoinHostPort(cfg.DBHost, cfg.DBPort),
		Path:     "/postgres",
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
