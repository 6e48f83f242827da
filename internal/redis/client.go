// Package redis wraps go-redis so the player store and the repair command share
// one way of connecting, and tests can swap in miniredis.
package redis

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultPoolSize    = 10
	defaultDialTimeout = 5 * time.Second
)

// Options configures a single-node client. Zero values take the package defaults.
type Options struct {
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
	// TLS enables encrypted connections verified against the endpoint's host name
	TLS bool
}

// NewClient creates a client for endpoint. go-redis connects lazily, so nothing is
// dialed here; use Dial to fail fast.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:        endpoint,
		Password:    opts.Password,
		DB:          opts.DB,
		PoolSize:    opts.PoolSize,
		DialTimeout: opts.DialTimeout,
	}
	if redisOpts.PoolSize == 0 {
		redisOpts.PoolSize = defaultPoolSize
	}
	if redisOpts.DialTimeout == 0 {
		redisOpts.DialTimeout = defaultDialTimeout
	}

	if opts.TLS {
		host, _, err := net.SplitHostPort(endpoint)
		if err != nil {
			return nil, fmt.Errorf("redis: invalid endpoint %q: %w", endpoint, err)
		}
		redisOpts.TLSConfig = &tls.Config{ServerName: host, MinVersion: tls.VersionTLS12}
	}

	return redis.NewClient(redisOpts), nil
}

// Dial creates a client and pings it. The client is closed again when the ping fails.
func Dial(ctx context.Context, endpoint string, opts *Options, timeout time.Duration) (Client, error) {
	client, err := NewClient(endpoint, opts)
	if err != nil {
		return nil, err
	}
	if err := Ping(ctx, client, timeout); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: %s unreachable: %w", endpoint, err)
	}
	return client, nil
}

// Ping verifies the server answers within timeout
func Ping(ctx context.Context, client Client, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return client.Ping(ctx).Err()
}

// IsNil reports whether err is the go-redis missing key sentinel
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}
