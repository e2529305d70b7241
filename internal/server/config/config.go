// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/sampleapp/internal/credential"
)

// Config holds runtime settings for the sampleapp server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - DatabaseDriver / DatabaseDSN: "postgres" (pgx DSN) or "sqlite" (file path).
//   - SecretKey: HMAC secret for signing remember tokens (HS256).
//   - RememberTokenValidityDuration: lifetime of a remembered session.
//   - HashScheme and the Argon2*/Scrypt*/KeyLength fields: password hashing.
//   - SaltLength / MaxPasswordLength: credential encoder limits, in bytes.
//   - LogLevel / LogFormat: slog level and "json" or "text" output.
type Config struct {
	EndpointAddrGRPC              string
	DatabaseDriver                string
	DatabaseDSN                   string
	SecretKey                     string
	RememberTokenValidityDuration time.Duration
	HashScheme                    string
	Argon2MemoryKiB               uint32
	Argon2Iterations              uint32
	Argon2Parallelism             uint8
	ScryptN                       int
	ScryptR                       int
	ScryptP                       int
	KeyLength                     uint32
	SaltLength                    int
	MaxPasswordLength             int
	LogLevel                      string
	LogFormat                     string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key is insecure for production and must be overridden.
func (c *Config) LoadDefaults() {
	p := credential.DefaultParams()

	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "sampleapp.db"
	c.SecretKey = "secretKey"
	c.RememberTokenValidityDuration = 30 * 24 * time.Hour
	c.HashScheme = credential.SchemeArgon2id
	c.Argon2MemoryKiB = p.MemoryKiB
	c.Argon2Iterations = p.Iterations
	c.Argon2Parallelism = p.Parallelism
	c.ScryptN = p.ScryptN
	c.ScryptR = p.ScryptR
	c.ScryptP = p.ScryptP
	c.KeyLength = p.KeyLength
	c.SaltLength = credential.DefaultSaltLength
	c.MaxPasswordLength = credential.DefaultMaxPasswordLength
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// HashParams collects the hasher work factors.
func (c *Config) HashParams() credential.Params {
	return credential.Params{
		MemoryKiB:   c.Argon2MemoryKiB,
		Iterations:  c.Argon2Iterations,
		Parallelism: c.Argon2Parallelism,
		ScryptN:     c.ScryptN,
		ScryptR:     c.ScryptR,
		ScryptP:     c.ScryptP,
		KeyLength:   c.KeyLength,
	}
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return errors.New("secret key must not be empty")
	}
	if c.RememberTokenValidityDuration <= 0 {
		return errors.New("remember token validity must be positive")
	}
	if c.DatabaseDSN == "" {
		return errors.New("database DSN must not be empty")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
