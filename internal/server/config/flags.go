package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/sampleapp/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     gRPC bind address (e.g., ":50051")
//	-b string     database driver: postgres or sqlite
//	-d string     database DSN
//	-s string     remember token HMAC secret key
//	-t duration   remember token validity (e.g., "720h")
//	-x string     password hash scheme: argon2id, scrypt or sha256
//	-l string     log level
//	-f string     log format: json or text
//
// os.Args is first filtered with flagx.FilterArgs so that flags owned by
// other components do not break parsing.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-b", "-d", "-s", "-t", "-x", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "b", config.DatabaseDriver, "database driver (postgres|sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.DurationVar(&config.RememberTokenValidityDuration, "t", config.RememberTokenValidityDuration, "remember token validity")
	fs.StringVar(&config.HashScheme, "x", config.HashScheme, "password hash scheme")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (json|text)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
