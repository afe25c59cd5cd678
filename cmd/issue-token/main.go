// Command issue-token prints a signed access token for an account id.
// Accounts are not stored by the registry; any UUID is a valid identity.
//
// Usage:
//
//	issue-token --account=5b0c8f0e-... [--ttl=24h]
//	issue-token --new
//
// Requires AUTH_JWT_SECRET (or a config file) to be set.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/bullion-registry/internal/auth"
	"github.com/heartmarshall/bullion-registry/internal/config"
)

func main() {
	account := flag.String("account", "", "account id to issue the token for")
	fresh := flag.Bool("new", false, "generate a new account id")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to auth.access_token_ttl)")
	flag.Parse()

	if *account == "" && !*fresh {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --account=<uuid> | --new")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	id := uuid.New()
	if !*fresh {
		id, err = uuid.Parse(*account)
		if err != nil {
			log.Fatalf("parse account: %v", err)
		}
	}

	lifetime := cfg.Auth.AccessTokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	issued, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, lifetime).Issue(id)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Printf("account: %s\nexpires: %s\ntoken:   %s\n", issued.AccountID, issued.ExpiresAt.UTC().Format(time.RFC3339), issued.Token)
}
