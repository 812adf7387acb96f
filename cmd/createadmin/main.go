// Command createadmin creates the default administrator account when the
// store has none. Running it again is a no-op.
package main

import (
	"context"
	"log"

	"furniture_warehouse/internal/adapter/persistence/repository"
	"furniture_warehouse/internal/infrastructure/config"
	"furniture_warehouse/internal/infrastructure/database"
	"furniture_warehouse/internal/infrastructure/security"
	"furniture_warehouse/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to bootstrap the schema: %v", err)
	}

	auth := usecase.NewAuthUseCase(
		repository.NewUserRepository(db),
		security.NewBcryptHasher(security.DefaultBcryptCost),
		security.NewJWTIssuer(cfg.JWTSecret, cfg.JWTExpiresIn),
	)

	admin := config.LoadAdmin()
	user, created, err := auth.EnsureAdmin(context.Background(), usecase.RegisterInput{
		Username: admin.Username,
		Email:    admin.Email,
		Password: admin.Password,
		FullName: admin.FullName,
	})
	if err != nil {
		log.Fatalf("Failed to create the administrator: %v", err)
	}
	if !created {
		log.Printf("[createadmin] an administrator already exists, nothing to do")
		return
	}
	log.Printf("[createadmin] administrator created id=%d username=%s", user.ID, user.Username)
}
