// Command mint-token issues a JWT access token for a given actor identity.
// It is used to bootstrap the first admin and to create contributor tokens
// for local development — the backend has no user store of its own, so
// identity lives entirely in the signed token.
//
// Usage:
//
//	mint-token --handle=curator --role=admin
//	mint-token --handle=cinephile --role=contributor --id=9f4c...
//
// Requires the same configuration as the server (AUTH_JWT_SECRET etc.).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/cineamore/cineamore-backend/internal/auth"
	"github.com/cineamore/cineamore-backend/internal/config"
	"github.com/cineamore/cineamore-backend/internal/domain"
)

func main() {
	handle := flag.String("handle", "", "display handle embedded in the token")
	role := flag.String("role", string(domain.RoleContributor), "actor role: contributor or admin")
	id := flag.String("id", "", "actor UUID; a fresh one is generated when omitted")
	flag.Parse()

	if *handle == "" {
		fmt.Fprintln(os.Stderr, "Usage: mint-token --handle=curator --role=admin [--id=uuid]")
		os.Exit(1)
	}

	actorRole := domain.Role(*role)
	if !actorRole.IsValid() {
		log.Fatalf("invalid role %q: must be contributor or admin", *role)
	}

	actorID := uuid.New()
	if *id != "" {
		parsed, err := uuid.Parse(*id)
		if err != nil {
			log.Fatalf("invalid --id: %v", err)
		}
		actorID = parsed
	}

	_ = godotenv.Load()

	// Only the auth section is needed; the full config would demand a
	// database DSN this tool never uses.
	var authCfg config.AuthConfig
	if err := cleanenv.ReadEnv(&authCfg); err != nil {
		log.Fatalf("read auth config: %v", err)
	}

	mgr := auth.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	token, err := mgr.GenerateAccessToken(domain.Actor{
		ID:     actorID,
		Role:   actorRole,
		Handle: *handle,
	})
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Printf("actor_id: %s\nrole:     %s\nhandle:   %s\ntoken:    %s\n", actorID, actorRole, *handle, token)
}
