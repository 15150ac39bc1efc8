// Command seedadmin creates the bootstrap admin account if it does not
// already exist. Run once against a fresh database:
//
//	ADMIN_PASSWORD=... go run ./cmd/seedadmin
package main

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/storelabs/store-api/internal/core/domain"
	"github.com/storelabs/store-api/internal/infrastructure/config"
	mongodb "github.com/storelabs/store-api/internal/infrastructure/db/mongo"
	"github.com/storelabs/store-api/pkg/logger"
)

const adminUsername = "admin"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	log := logger.Init(logger.Options{Pretty: true})

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	password := cfg.AdminPassword
	if password == "" {
		log.Fatal().Msg("ADMIN_PASSWORD is required")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}

	if _, err := users.FindByUsername(ctx, adminUsername); err == nil {
		log.Info().Msg("admin user already exists")
		return
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		log.Fatal().Err(err).Msg("failed to look up admin user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash admin password")
	}

	created, err := users.Create(ctx, &domain.User{
		Username:     adminUsername,
		PasswordHash: string(hash),
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create admin user")
	}

	log.Info().Str("user_id", created.ID).Msg("admin user created")
}
