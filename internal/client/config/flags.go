package config

import (
	"flag"
	"os"
	"time"

	"github.com/aislekit/aislekit/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend server
//	-ttl int    cache TTL in seconds
//	-r int      retry attempts for transient transport failures
//
// Args are pre-filtered with flagx.FilterArgs so unrelated flags (e.g. the
// shared -c/-config) do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-ttl", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the backend server")
	ttl := fs.Int("ttl", int(cfg.CacheTTL.Seconds()), "cache TTL (in seconds)")
	attempts := fs.Int("r", int(cfg.RetryAttempts), "retry attempts for transient failures")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.CacheTTL = time.Duration(*ttl) * time.Second
	cfg.RetryAttempts = uint64(*attempts)
}
