package main

import (
	"context"
	stderrors "errors"
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	"studyhub/internal/auth"
	"studyhub/internal/config"
	"studyhub/internal/db"
	"studyhub/internal/model"
	"studyhub/internal/repository"
	"studyhub/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg := config.Load()

	// Connect to database
	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	repos := repository.New(gormDB)
	clock := func() time.Time { return time.Now().In(cfg.Location) }

	email := getEnv("SEED_EMAIL", "demo@studyhub.local")
	user, err := findOrRegister(ctx, repos, cfg, email, getEnv("SEED_NAME", "Demo Student"), getEnv("SEED_PASSWORD", "demo123"))
	if err != nil {
		log.Fatalf("Failed to prepare seed user: %v", err)
	}
	log.Printf("Seeding demo data for %s (%s)", user.Email, user.ID)

	res, err := service.NewSeedService(repos, clock).SeedDemo(ctx, user.ID)
	if err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Subjects created: %d", res.Subjects)
	log.Printf("  - Instructors created: %d", res.Instructors)
	log.Printf("  - Classes created: %d", res.Classes)
	log.Printf("  - Budget entries created: %d", res.BudgetEntries)
	log.Printf("  - Study tasks created: %d", res.StudyTasks)
	log.Printf("  - Study sessions created: %d", res.StudySessions)
	log.Printf("  - Questions created: %d", res.Questions)
}

// findOrRegister returns the account for email, registering it when missing.
// Tokens minted during registration are discarded.
func findOrRegister(ctx context.Context, repos *repository.Repositories, cfg *config.Config, email, name, password string) (*model.User, error) {
	existing, err := repos.Users.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	users := service.NewUserService(repos.Users, nil)
	authService := service.NewAuthService(
		repos.Users,
		users,
		auth.NewJWTService(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL),
		auth.NewTokenStore(nil),
	)
	session, err := authService.Register(ctx, name, email, password)
	if err != nil {
		return nil, err
	}
	log.Printf("Registered seed user %s", email)
	return session.User, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
