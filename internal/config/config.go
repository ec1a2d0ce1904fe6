package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr string

	// Storage backend for the progress record.
	StoreDriver string // memory|noop|file|sqlite|postgres
	StoreDSN    string // dsn for sqlite/postgres
	StoreDir    string // base dir for the file backend

	// Content catalog directory. Empty means the embedded unit.
	ContentDir string

	CORSOrigins []string

	// Unlock passwords are a soft UX deterrent carried over from the
	// original site, not an access-control boundary. Either set the
	// plaintext (hashed at boot) or a precomputed bcrypt hash.
	TestPassword    string
	TestPassHash    string
	ExplainPassword string
	ExplainPassHash string

	UnlockTokenSecret   string
	UnlockTokenLifetime string // Go duration, e.g. "8h"
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:            addr,
		StoreDriver:         envOr("STORE_DRIVER", "file"),
		StoreDSN:            envOr("STORE_DSN", ""),
		StoreDir:            envOr("STORE_DIR", "./data"),
		ContentDir:          os.Getenv("CONTENT_DIR"),
		CORSOrigins:         csvOr("CORS_ORIGINS", "http://localhost:3000"),
		TestPassword:        envOr("TEST_PASSWORD", "PopsMath2024"),
		TestPassHash:        os.Getenv("TEST_PASS_HASH"),
		ExplainPassword:     envOr("EXPLAIN_PASSWORD", "ShowMeWhy"),
		ExplainPassHash:     os.Getenv("EXPLAIN_PASS_HASH"),
		UnlockTokenSecret:   envOr("UNLOCK_TOKEN_SECRET", "popsmath-dev-secret"),
		UnlockTokenLifetime: envOr("UNLOCK_TOKEN_LIFETIME", "8h"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
