// Command createsuperuser bootstraps an administrative account from the
// command line, mirroring the lifecycle rules of regular registration except
// for the role-specific required fields.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/logger"
)

func main() {
	email := flag.String("email", os.Getenv("SUPERUSER_EMAIL"), "superuser email")
	password := flag.String("password", os.Getenv("SUPERUSER_PASSWORD"), "superuser password")
	role := flag.String("role", string(domain.RoleEmployer), "superuser role (Employer or Candidate)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required (or SUPERUSER_EMAIL / SUPERUSER_PASSWORD)")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()

	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	accountUC := usecase.NewAccountUsecase(postgres.NewUserRepository(dbPool))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := accountUC.CreateSuperuser(ctx, *email, *password, domain.Role(*role))
	if err != nil {
		log.Fatalf("Failed to create superuser: %v", err)
	}

	fmt.Printf("Superuser created: %s (%s, username %s)\n", user.Email, user.ID, user.Username)
}
