// Command promote turns an existing account into an active admin. Staff
// registration needs an admin token, so the first admin is created with
// this command.
//
//	promote -email=user@example.com
//
// Configuration is read the same way as the server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/floodinsure-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/floodinsure-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/floodinsure-backend/internal/config"
	"github.com/heartmarshall/floodinsure-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the account to promote")
	flag.Parse()

	addr := strings.ToLower(strings.TrimSpace(*email))
	if addr == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	msg, err := promote(ctx, cfg.Database, addr)
	if err != nil {
		log.Fatalf("promote %s: %v", addr, err)
	}
	fmt.Println(msg)
}

func promote(ctx context.Context, db config.DatabaseConfig, email string) (string, error) {
	pool, err := postgres.NewPool(ctx, db)
	if err != nil {
		return "", err
	}
	defer pool.Close()

	users := userrepo.New(pool)
	u, err := users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return "", errors.New("no account registered with this email")
	}
	if err != nil {
		return "", err
	}

	if u.Role == domain.UserRoleAdmin && u.IsActive() {
		return fmt.Sprintf("%s is already an active admin", email), nil
	}

	role, status := domain.UserRoleAdmin, domain.UserStatusActive
	if _, err := users.Update(ctx, u.ID, domain.UserPatch{Role: &role, Status: &status}); err != nil {
		return "", fmt.Errorf("update account: %w", err)
	}
	return fmt.Sprintf("%s promoted to admin (was %s)", email, u.Role), nil
}
