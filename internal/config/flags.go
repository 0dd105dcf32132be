package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
)

// NetAddress is a [host]:port listen address. It implements [flag.Value].
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server flags in args. Unset flags leave their
// field zero so lower-precedence sources can fill it.
//
// Flags:
//
//	-a                   listen address [host]:port
//	-d                   database DSN
//	-db-driver           postgres, sqlite or mongo
//	-db-name             MongoDB database name
//	-c, -config          JSON config file
//	-token-sign-key      HMAC key for bearer tokens
//	-token-issuer        "iss" claim
//	-token-duration      token lifetime, e.g. 1h
//	-password-hash-cost  bcrypt cost
//	-request-timeout     per-request read/write timeout
//	-shutdown-timeout    graceful shutdown bound
//	-version             version reported by GET /api/version
//	-log-level           minimum log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	fs := flag.NewFlagSet("bloglist", flag.ContinueOnError)

	var address NetAddress
	fs.Var(&address, "a", "Listen address [host]:port")

	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.DB.Driver, "db-driver", "", "Database driver: postgres, sqlite or mongo")
	fs.StringVar(&cfg.Storage.DB.Name, "db-name", "", "MongoDB database name")

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token lifetime (e.g. 1h, 30m)")
	fs.IntVar(&cfg.App.PasswordHashCost, "password-hash-cost", 0, "bcrypt cost for password hashes")
	fs.StringVar(&cfg.App.Version, "version", "", "Reported application version")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Minimum log level")

	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Server.HTTPAddress = address.String()

	return cfg, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses [host]:port. The host may be empty (all interfaces), a
// hostname or an IP literal; IPv6 literals need brackets.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", rawPort, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	a.Host = host
	a.Port = port
	return nil
}
