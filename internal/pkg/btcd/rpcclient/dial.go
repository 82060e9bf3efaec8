// Package rpcclient opens HTTP POST connections to the daemon's JSON-RPC
// endpoint.
package rpcclient

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/btcsuite/btcd/rpcclient"
)

// Dial returns a client posting to rawURL. The URL path is kept, so
// "http://127.0.0.1:8820/rpc/v3" reaches the versioned endpoint.
func Dial(rawURL, user, password string) (*rpcclient.Client, error) {
	host, err := hostPath(rawURL)
	if err != nil {
		return nil, err
	}
	cfg := &rpcclient.ConnConfig{
		Host:         host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}
	return rpcclient.New(cfg, nil)
}

func hostPath(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return "", fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return "", errors.New("rpc url missing host")
	}
	return parsed.Host + strings.TrimSuffix(parsed.Path, "/"), nil
}
