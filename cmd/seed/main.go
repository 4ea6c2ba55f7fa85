package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"

	"bengkel/internal/config"
	"bengkel/internal/database"
	"bengkel/internal/repository"
)

// Seeds the starter dataset into the configured database. With -reset the
// collections are wiped first.
func main() {
	reset := flag.Bool("reset", false, "wipe all collections before seeding")
	flag.Parse()

	log := logrus.New()
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("database connection failed")
	}
	if err := repository.Migrate(db); err != nil {
		log.WithError(err).Fatal("migration failed")
	}

	ctx := context.Background()
	if *reset {
		if err := database.Reset(ctx, db); err != nil {
			log.WithError(err).Fatal("reset failed")
		}
		log.Info("collections wiped and reseeded")
		return
	}

	if err := database.Seed(ctx, db); err != nil {
		log.WithError(err).Fatal("seeding failed")
	}
	log.Info("seeding complete")
}
