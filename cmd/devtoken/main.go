// Command devtoken prints a bearer token for local testing. Production
// tokens come from the auth service and share its JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"booking-engine/internal/domain/user"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func main() {
	userID := flag.String("user", "", "user id the token is issued for")
	role := flag.String("role", "customer", "customer, owner or admin")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	if err := run(*userID, *role, *ttl); err != nil {
		fmt.Fprintln(os.Stderr, "devtoken:", err)
		os.Exit(1)
	}
}

func run(rawID, rawRole string, ttl time.Duration) error {
	_ = godotenv.Load()
	var cfg config.JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid -user: %w", err)
	}
	role, err := user.NewRole(rawRole)
	if err != nil {
		return err
	}

	token, err := jwt.NewService(cfg.Secret, ttl).GenerateToken(id, role)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}
