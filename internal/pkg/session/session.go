package session

import (
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/foxalbum/foxalbum/internal/pkg/cache"
	"github.com/foxalbum/foxalbum/internal/pkg/config"
)

// NewRedisStorage creates the session storage on Redis database 1, next to the
// cache client on database 0. Host and credentials follow the cache client when
// it is initialized.
func NewRedisStorage(cfg config.CacheConfig) fiber.Storage {
	host := cfg.Host
	port := cfg.Port
	password := cfg.Password
	if cacheClient := cache.GetClient(); cacheClient != nil {
		addr := cacheClient.Options().Addr
		if h, p, err := net.SplitHostPort(addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
		if p := cacheClient.Options().Password; p != "" {
			password = p
		}
	}

	return redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 1, // Separate database for sessions
		Reset:    false,
	})
}

// NewSessionStore creates the cookie session store. A nil storage keeps
// sessions in memory.
func NewSessionStore(storage fiber.Storage, secure bool) *session.Store {
	return session.New(session.Config{
		Storage:        storage,
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: "Lax",
		Expiration:     time.Hour * 24,
		KeyLookup:      "cookie:session_id",
	})
}
