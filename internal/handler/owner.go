package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/e-floriest/farm-backend/internal/middleware"
	"github.com/e-floriest/farm-backend/internal/model"
)

// OwnerHandler exposes the owner profile singleton.
type OwnerHandler struct {
	Owner      OwnerStore
	Invalidate CacheInvalidator
}

func NewOwnerHandler(owner OwnerStore, inval CacheInvalidator) *OwnerHandler {
	return &OwnerHandler{Owner: owner, Invalidate: inval}
}

// GetOwnerDetails returns the owner profile, or JSON null when none has
// been stored yet.
func (h *OwnerHandler) GetOwnerDetails(c echo.Context) error {
	ctx, cancel := storeCtx(c.Request().Context())
	defer cancel()

	profile, err := h.Owner.Profile(ctx)
	if err != nil {
		return storageError("query failed").JSON(c)
	}
	if profile == nil {
		return c.JSON(http.StatusOK, nil)
	}
	return c.JSON(http.StatusOK, profile)
}

// SetOwnerDetails upserts the profile with replace semantics: all four
// tracked fields are written on every POST, and fields absent from the body
// are stored as empty strings rather than merged with the previous value.
func (h *OwnerHandler) SetOwnerDetails(c echo.Context) error {
	data := map[string]any{}
	if err := c.Bind(&data); err != nil {
		return emptyBodyError().JSON(c)
	}

	profile := model.OwnerProfile{
		Name:       stringField(data, "name"),
		Experience: stringField(data, "experience"),
		Location:   stringField(data, "location"),
		Specialty:  stringField(data, "specialty"),
	}

	ctx, cancel := storeCtx(c.Request().Context())
	defer cancel()

	if err := h.Owner.Upsert(ctx, profile); err != nil {
		return storageError("Failed to update owner details").JSON(c)
	}
	h.bust(c, middleware.CacheGroupOwner)

	return c.JSON(http.StatusOK, echo.Map{"message": "Owner details updated successfully"})
}

func (h *OwnerHandler) bust(c echo.Context, group string) {
	if h.Invalidate != nil {
		h.Invalidate(c.Request().Context(), group)
	}
}
