package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/e-floriest/farm-backend/internal/middleware"
	"github.com/e-floriest/farm-backend/internal/queue"
	queue_publisher "github.com/e-floriest/farm-backend/internal/service"
)

// SalesHandler exposes the sales summary singleton and the order log.
type SalesHandler struct {
	Sales      SalesStore
	Invalidate CacheInvalidator
	Publish    func(c echo.Context, ev queue.OrderPlacedEvent)
}

func NewSalesHandler(sales SalesStore, inval CacheInvalidator) *SalesHandler {
	return &SalesHandler{
		Sales:      sales,
		Invalidate: inval,
		Publish: func(c echo.Context, ev queue.OrderPlacedEvent) {
			_ = queue_publisher.PublishOrderPlaced(c.Request().Context(), ev)
		},
	}
}

// GetTotalSales returns the singleton summary document, or JSON null when
// no total has ever been set.
func (h *SalesHandler) GetTotalSales(c echo.Context) error {
	ctx, cancel := storeCtx(c.Request().Context())
	defer cancel()

	summary, err := h.Sales.Summary(ctx)
	if err != nil {
		return storageError("query failed").JSON(c)
	}
	if summary == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, summary)
}

// SetTotalSales overwrites the singleton total with whatever scalar the
// client sent under total_sales. Calling it twice leaves exactly one
// document holding the second value.
func (h *SalesHandler) SetTotalSales(c echo.Context) error {
	data := map[string]any{}
	if err := c.Bind(&data); err != nil {
		return emptyBodyError().JSON(c)
	}

	ctx, cancel := storeCtx(c.Request().Context())
	defer cancel()

	if err := h.Sales.SetTotal(ctx, data["total_sales"]); err != nil {
		return storageError("Failed to update total sales").JSON(c)
	}
	h.bust(c, middleware.CacheGroupSales)

	return c.JSON(http.StatusOK, echo.Map{"message": "Total sales updated successfully"})
}

// GetRecentOrders returns all recorded orders in store-native order.
func (h *SalesHandler) GetRecentOrders(c echo.Context) error {
	ctx, cancel := storeCtx(c.Request().Context())
	defer cancel()

	orders, err := h.Sales.Orders(ctx)
	if err != nil {
		return storageError("query failed").JSON(c)
	}
	return c.JSON(http.StatusOK, orders)
}

// AddRecentOrder appends a new order wrapping the free-form order value.
// The payload shape is not validated; every call generates a fresh id.
func (h *SalesHandler) AddRecentOrder(c echo.Context) error {
	data := map[string]any{}
	if err := c.Bind(&data); err != nil {
		return emptyBodyError().JSON(c)
	}

	ctx, cancel := storeCtx(c.Request().Context())
	defer cancel()

	order, err := h.Sales.AddOrder(ctx, data["order"])
	if err != nil {
		return storageError("Failed to add order").JSON(c)
	}

	if h.Publish != nil {
		h.Publish(c, queue.OrderPlacedEvent{
			OrderID:  order.ID.Hex(),
			Order:    order.Order,
			PlacedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}
	h.bust(c, middleware.CacheGroupOrders)

	return c.JSON(http.StatusCreated, echo.Map{"message": "Order added successfully"})
}

func (h *SalesHandler) bust(c echo.Context, group string) {
	if h.Invalidate != nil {
		h.Invalidate(c.Request().Context(), group)
	}
}
