package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-b", "postgres", "-d", "db", "-s", "secret",
			"-t", "2h", "-x", "scrypt", "-l", "debug", "-f", "json",
		}, expected: &Config{
			EndpointAddrGRPC:              "127.0.0.1:9090",
			DatabaseDriver:                "postgres",
			DatabaseDSN:                   "db",
			SecretKey:                     "secret",
			RememberTokenValidityDuration: 2 * time.Hour,
			HashScheme:                    "scrypt",
			LogLevel:                      "debug",
			LogFormat:                     "json",
		}},
		{name: "foreign flags are ignored", args: []string{"cmd", "-c", "cfg.json", "-a", ":1"},
			expected: &Config{EndpointAddrGRPC: ":1"}},
		{name: "bad duration", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
