package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/sampleapp/internal/flagx"
	"github.com/dmitrijs2005/sampleapp/internal/timex"
)

// JsonConfig mirrors Config for JSON unmarshalling. Durations use
// timex.Duration so both "720h" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrGRPC              string         `json:"endpoint_addr_grpc"`
	DatabaseDriver                string         `json:"database_driver"`
	DatabaseDSN                   string         `json:"database_dsn"`
	SecretKey                     string         `json:"secret_key"`
	RememberTokenValidityDuration timex.Duration `json:"remember_token_validity_duration"`
	HashScheme                    string         `json:"hash_scheme"`
	Argon2MemoryKiB               uint32         `json:"argon2_memory_kib"`
	Argon2Iterations              uint32         `json:"argon2_iterations"`
	Argon2Parallelism             uint8          `json:"argon2_parallelism"`
	ScryptN                       int            `json:"scrypt_n"`
	ScryptR                       int            `json:"scrypt_r"`
	ScryptP                       int            `json:"scrypt_p"`
	KeyLength                     uint32         `json:"key_length"`
	SaltLength                    int            `json:"salt_length"`
	MaxPasswordLength             int            `json:"max_password_length"`
	LogLevel                      string         `json:"log_level"`
	LogFormat                     string         `json:"log_format"`
}

// parseJson overlays values from the JSON file named by -c / -config (or
// the SAMPLEAPP_CONFIG environment variable) onto config. Keys absent from
// the file keep their current values. An unreadable or malformed file
// panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := toJson(config)
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDriver = c.DatabaseDriver
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.RememberTokenValidityDuration = c.RememberTokenValidityDuration.Duration
	config.HashScheme = c.HashScheme
	config.Argon2MemoryKiB = c.Argon2MemoryKiB
	config.Argon2Iterations = c.Argon2Iterations
	config.Argon2Parallelism = c.Argon2Parallelism
	config.ScryptN = c.ScryptN
	config.ScryptR = c.ScryptR
	config.ScryptP = c.ScryptP
	config.KeyLength = c.KeyLength
	config.SaltLength = c.SaltLength
	config.MaxPasswordLength = c.MaxPasswordLength
	config.LogLevel = c.LogLevel
	config.LogFormat = c.LogFormat
}

func toJson(config *Config) *JsonConfig {
	return &JsonConfig{
		EndpointAddrGRPC:              config.EndpointAddrGRPC,
		DatabaseDriver:                config.DatabaseDriver,
		DatabaseDSN:                   config.DatabaseDSN,
		SecretKey:                     config.SecretKey,
		RememberTokenValidityDuration: timex.Duration{Duration: config.RememberTokenValidityDuration},
		HashScheme:                    config.HashScheme,
		Argon2MemoryKiB:               config.Argon2MemoryKiB,
		Argon2Iterations:              config.Argon2Iterations,
		Argon2Parallelism:             config.Argon2Parallelism,
		ScryptN:                       config.ScryptN,
		ScryptR:                       config.ScryptR,
		ScryptP:                       config.ScryptP,
		KeyLength:                     config.KeyLength,
		SaltLength:                    config.SaltLength,
		MaxPasswordLength:             config.MaxPasswordLength,
		LogLevel:                      config.LogLevel,
		LogFormat:                     config.LogFormat,
	}
}
