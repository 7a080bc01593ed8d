// Command devtoken prints an HS256 bearer token signed with the jwt settings
// of a configuration profile, for calling a locally running server.
//
//	APP_PROFILE=local go run ./cmd/devtoken -sub chef-1 -ttl 8h
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jsamuelsen11/recipebox/internal/adapters/auth"
	"github.com/jsamuelsen11/recipebox/internal/platform/config"
)

func main() {
	var (
		subject  = flag.String("sub", "dev-user", "Subject recorded as the caller identity")
		username = flag.String("username", "", "Display name (defaults to the subject)")
		ttl      = flag.Duration("ttl", time.Hour, "Token lifetime")
	)
	flag.Parse()

	if err := run(*subject, *username, *ttl); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(subject, username string, ttl time.Duration) error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev)")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Auth.Mode != "jwt" {
		return fmt.Errorf("profile %q verifies tokens with %q, not jwt", profile, cfg.Auth.Mode)
	}

	token, err := auth.Sign(cfg.Auth.JWT, subject, username, ttl)
	if err != nil {
		return fmt.Errorf("signing token: %w", err)
	}

	fmt.Println(token)
	return nil
}
