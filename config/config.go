package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	PGURL    string // optional; empty disables the Postgres metrics cache
	FactsURL string // fact-sheet API base URL; empty selects the demo dataset
	FactsKey string
	Port     string
}

// Load reads configuration from the environment, preferring an .env file
// when one exists.
func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly
	_ = godotenv.Load()

	factsURL := os.Getenv("FACTS_URL")
	factsKey := os.Getenv("FACTS_KEY")
	if factsURL != "" && factsKey == "" {
		return nil, fmt.Errorf("FACTS_KEY is required when FACTS_URL is set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		PGURL:    os.Getenv("PG_URL"),
		FactsURL: factsURL,
		FactsKey: factsKey,
		Port:     port,
	}, nil
}
