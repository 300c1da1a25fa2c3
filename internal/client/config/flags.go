package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/authgate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the authentication server
//	-t int      request timeout in seconds
//	-p string   path of the local session database
//
// Args are filtered through flagx.FilterArgs so the config-file flags handled
// elsewhere do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the server")
	fs.StringVar(&cfg.DatabasePath, "p", cfg.DatabasePath, "path of the local session database")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
