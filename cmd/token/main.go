// Command token prints a bearer token signed with TOKEN_KEY for API clients.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"Civilcalc/internal/auth"
	"Civilcalc/internal/config"
)

func main() {
	subject := flag.String("sub", "lab", "token subject")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if cfg.TokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}
	token, err := auth.IssueToken([]byte(cfg.TokenKey), *subject, *ttl)
	if err != nil {
		log.Fatalf("Issue token: %v", err)
	}
	fmt.Println(token)
}
