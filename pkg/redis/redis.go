package redispkg

import (
	"context"
	"crypto/tls"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

// RedisClient is the subset of Redis the app uses. Keep it minimal for testability.
type RedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, val interface{}, ttl time.Duration) error
	Publish(ctx context.Context, channel string, msg interface{}) error
	Close() error
}

const defaultAddr = "redis:6379"

// ParseRedisURL splits a REDIS_URL-like string into its connection parts.
// Accepts either a plain `host:port` or a `redis://`/`rediss://` URL; an
// empty string yields the default address.
func ParseRedisURL(raw string) (addr, password string, db int, useTLS bool) {
	if raw == "" {
		return defaultAddr, "", 0, false
	}
	if !strings.HasPrefix(raw, "redis://") && !strings.HasPrefix(raw, "rediss://") {
		return raw, "", 0, false
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw, "", 0, false
	}
	addr = u.Host
	useTLS = u.Scheme == "rediss"
	if u.User != nil {
		if pw, ok := u.User.Password(); ok {
			password = pw
		}
	}
	if p := strings.Trim(u.Path, "/"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			db = n
		}
	}
	return addr, password, db, useTLS
}

// NewClient builds a redis client from a REDIS_URL-like string. It disables
// maintnotifications to avoid handshake attempts on servers that don't
// implement the subcommand.
func NewClient(raw string) *redis.Client {
	addr, password, db, useTLS := ParseRedisURL(raw)
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	if useTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	opts.MaintNotificationsConfig = &maintnotifications.Config{Mode: maintnotifications.ModeDisabled}

	return redis.NewClient(opts)
}

// Client is a thin adapter around *redis.Client that implements RedisClient.
type Client struct {
	Raw *redis.Client
}

func (c *Client) Get(ctx context.Context, key string) (string, error) {
	return c.Raw.Get(ctx, key).Result()
}

func (c *Client) Set(ctx context.Context, key string, val interface{}, ttl time.Duration) error {
	return c.Raw.Set(ctx, key, val, ttl).Err()
}

func (c *Client) Publish(ctx context.Context, channel string, msg interface{}) error {
	return c.Raw.Publish(ctx, channel, msg).Err()
}

func (c *Client) Close() error {
	return c.Raw.Close()
}

// Ping checks connectivity with a short timeout.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return c.Raw.Ping(ctx).Err()
}

// NewAdapter creates the adapter wrapper for a *redis.Client.
func NewAdapter(rawClient *redis.Client) *Client {
	return &Client{Raw: rawClient}
}

var _ RedisClient = (*Client)(nil)
