package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-floriest/farm-backend/internal/config"
)

func testCacheConfig() config.CacheConfig {
	return config.CacheConfig{Enabled: true, TTL: time.Minute, Prefix: "cache", MaxBodyBytes: 1 << 20}
}

func TestEncodeDecodeEntry(t *testing.T) {
	body := []byte(`{"total_sales":2500}`)
	status, decoded, ok := decodeEntry(encodeEntry(http.StatusOK, body))
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, body, decoded)
}

func TestDecodeEntry_TooShort(t *testing.T) {
	_, _, ok := decodeEntry([]byte{0x00, 0x01})
	assert.False(t, ok)
}

func TestCacheKey_VersionSeparatesGenerations(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/total_sales", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/api/total_sales")

	k0 := cacheKey("cache", CacheGroupSales, "0", c)
	k1 := cacheKey("cache", CacheGroupSales, "1", c)
	assert.NotEqual(t, k0, k1)
	assert.Equal(t, k0, cacheKey("cache", CacheGroupSales, "0", c))
}

func TestCacheKey_PathParamsSeparate(t *testing.T) {
	e := echo.New()

	keyFor := func(name string) string {
		req := httptest.NewRequest(http.MethodGet, "/api/farmer_activities/"+name, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/api/farmer_activities/:name")
		c.SetParamNames("name")
		c.SetParamValues(name)
		return cacheKey("cache", CacheGroupActivities, "0", c)
	}

	alice := keyFor("Alice")
	assert.NotEqual(t, alice, keyFor("Bob"))
	assert.Equal(t, alice, keyFor("Alice"))
}

func TestCacheKey_QueryContributes(t *testing.T) {
	e := echo.New()
	c1 := e.NewContext(httptest.NewRequest(http.MethodGet, "/users?page=1", nil), httptest.NewRecorder())
	c1.SetPath("/users")
	c2 := e.NewContext(httptest.NewRequest(http.MethodGet, "/users?page=2", nil), httptest.NewRecorder())
	c2.SetPath("/users")

	assert.NotEqual(t,
		cacheKey("cache", CacheGroupUsers, "0", c1),
		cacheKey("cache", CacheGroupUsers, "0", c2))
}

func TestNewRedisCache_NilClientPassesThrough(t *testing.T) {
	cfg := testCacheConfig()
	mw := NewRedisCache(cfg, nil, CacheGroupUsers)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestNewRedisCache_UnreachableRedisBypassesCache(t *testing.T) {
	cfg := testCacheConfig()
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond})
	t.Cleanup(func() { _ = rdb.Close() })
	mw := NewRedisCache(cfg, rdb, CacheGroupUsers)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}
