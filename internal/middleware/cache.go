package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/e-floriest/farm-backend/internal/config"
)

// Cache groups. Each cached GET route belongs to a group; write handlers
// bump the group's version so stale entries become unreachable without
// scanning for keys.
const (
	CacheGroupUsers      = "users"
	CacheGroupActivities = "activities"
	CacheGroupSales      = "sales"
	CacheGroupOrders     = "orders"
	CacheGroupOwner      = "owner"
)

// captureWriter captures the response body/status while forwarding to the
// client.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int64
	limit  int64
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.limit <= 0 {
		cw.buf.Write(b)
	} else if remain := cw.limit - cw.size; remain > 0 {
		if int64(len(b)) <= remain {
			cw.buf.Write(b)
		} else {
			cw.buf.Write(b[:remain])
		}
	}
	cw.size += int64(len(b))
	return cw.ResponseWriter.Write(b)
}

func versionKey(prefix, group string) string {
	return prefix + ":ver:" + group
}

// cacheKey builds the entry key from the group's current version plus a
// digest of the concrete request path and query, so bumping the version
// abandons every entry in the group at once. The digest must use the real
// URL path, not the registered route pattern: parameterized routes like
// /api/farmer_activities/:name would otherwise share one entry across
// different path parameters.
func cacheKey(prefix, group, version string, c echo.Context) string {
	r := c.Request()
	sum := sha1.Sum([]byte(r.URL.Path + "?" + r.URL.RawQuery))
	return fmt.Sprintf("%s:%s:v%s:%x", prefix, group, version, sum[:])
}

// encodeEntry packs [4 bytes status][body].
func encodeEntry(status int, body []byte) []byte {
	out := make([]byte, 4+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(status))
	copy(out[4:], body)
	return out
}

func decodeEntry(bs []byte) (status int, body []byte, ok bool) {
	if len(bs) < 4 {
		return 0, nil, false
	}
	return int(binary.BigEndian.Uint32(bs[0:4])), bs[4:], true
}

// NewRedisCache caches successful GET responses of one route group in Redis.
// With caching disabled or no Redis client the middleware is a pass-through.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client, group string) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !strings.EqualFold(c.Request().Method, http.MethodGet) {
				return next(c)
			}
			ctx := c.Request().Context()

			version, err := rdb.Get(ctx, versionKey(cfg.Prefix, group)).Result()
			if err != nil {
				if !errors.Is(err, redis.Nil) {
					// Version unknown: an entry keyed under an old
					// generation could serve invalidated data, so
					// bypass the cache for this request.
					return next(c)
				}
				version = "0" // group never invalidated yet
			}
			key := cacheKey(cfg.Prefix, group, version, c)

			if bs, err := rdb.Get(ctx, key).Bytes(); err == nil {
				if status, body, ok := decodeEntry(bs); ok {
					c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(status)
					if len(body) > 0 {
						_, _ = c.Response().Write(body)
					}
					return nil
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: int64(cfg.MaxBodyBytes)}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			// Only complete 200 responses are worth keeping.
			if cw.status == http.StatusOK && (cw.limit <= 0 || cw.size <= cw.limit) {
				_ = rdb.SetEx(context.Background(), key, encodeEntry(cw.status, cw.buf.Bytes()), cfg.TTL).Err()
			}
			return nil
		}
	}
}

// InvalidateCache abandons all cached entries of a group by bumping its
// version counter. Write handlers call this after a successful store write;
// failures are ignored since stale entries expire with the TTL anyway.
func InvalidateCache(ctx context.Context, cfg config.CacheConfig, rdb *redis.Client, group string) {
	if !cfg.Enabled || rdb == nil {
		return
	}
	_ = rdb.Incr(ctx, versionKey(cfg.Prefix, group)).Err()
}
