package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/urinakcleaning/booking-service/internal/config"
	"github.com/urinakcleaning/booking-service/migrations"
	"github.com/urinakcleaning/booking-service/pkg/logger"
)

// Использование:
//
//	migrate              применить все миграции
//	migrate down         откатить одну миграцию
//	migrate force <ver>  принудительно выставить версию
func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	srcDriver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		log.Fatal("Failed to create migrate source driver: %v", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", srcDriver, cfg.Database.URL())
	if err != nil {
		log.Fatal("Failed to create migrator (host=%s, db=%s): %v", cfg.Database.Host, cfg.Database.DBName, err)
	}
	defer func() { _, _ = m.Close() }()

	args := os.Args[1:]
	switch {
	case len(args) >= 2 && args[0] == "force":
		version, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("Invalid version %q: %v", args[1], err)
		}
		if err := m.Force(version); err != nil {
			log.Fatal("Failed to force version %d: %v", version, err)
		}
		log.Info("Forced migration version to %d", version)

	case len(args) >= 1 && args[0] == "down":
		if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal("Failed to roll back migration: %v", err)
		}
		log.Info("Rolled back one migration")

	default:
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, dirty, err := m.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			log.Warn("Failed to read migration version: %v", err)
		}
		log.Info("Migrations complete (version=%d, dirty=%t)", version, dirty)
	}
}
