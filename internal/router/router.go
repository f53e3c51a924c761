// Package router wires the HTTP routes of the farm service onto an Echo
// instance. The route paths and methods are the service's public contract;
// middleware (rate limiting, per-group response caching) is layered on here
// so handlers stay free of transport concerns.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/e-floriest/farm-backend/internal/config"
	"github.com/e-floriest/farm-backend/internal/handler"
	"github.com/e-floriest/farm-backend/internal/middleware"
)

// Handlers aggregates the handler set registered by RegisterRoutes.
type Handlers struct {
	Auth     *handler.AuthHandler
	Activity *handler.ActivityHandler
	Sales    *handler.SalesHandler
	Owner    *handler.OwnerHandler
}

// RegisterRoutes registers every route of the service. The token-bucket
// limiter applies globally; the response cache wraps only the GET routes,
// one cache group per resource so writes can invalidate their own group.
func RegisterRoutes(e *echo.Echo, h Handlers, cacheCfg config.CacheConfig, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	e.Use(middleware.NewTokenBucket(rlCfg, rdb))

	cached := func(group string) echo.MiddlewareFunc {
		return middleware.NewRedisCache(cacheCfg, rdb, group)
	}

	e.GET("/healthz", handler.Health)

	e.POST("/register", h.Auth.Register)
	e.POST("/login", h.Auth.Login)
	e.GET("/users", h.Auth.ListUsers, cached(middleware.CacheGroupUsers))

	api := e.Group("/api")
	api.POST("/add-activity", h.Activity.AddActivity)
	api.GET("/get-activities", h.Activity.GetActivities, cached(middleware.CacheGroupActivities))
	api.GET("/farmer_activities/:name", h.Activity.FarmerActivities, cached(middleware.CacheGroupActivities))

	api.GET("/total_sales", h.Sales.GetTotalSales, cached(middleware.CacheGroupSales))
	api.POST("/total_sales", h.Sales.SetTotalSales)
	api.GET("/recent_orders", h.Sales.GetRecentOrders, cached(middleware.CacheGroupOrders))
	api.POST("/recent_orders", h.Sales.AddRecentOrder)

	api.GET("/owner_details", h.Owner.GetOwnerDetails, cached(middleware.CacheGroupOwner))
	api.POST("/owner_details", h.Owner.SetOwnerDetails)
}
