package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/e-floriest/farm-backend/internal/middleware"
	"github.com/e-floriest/farm-backend/internal/model"
	"github.com/e-floriest/farm-backend/internal/queue"
	queue_publisher "github.com/e-floriest/farm-backend/internal/service"
)

// ActivityHandler exposes the harvest-recording endpoints.
type ActivityHandler struct {
	Activities ActivityStore
	Invalidate CacheInvalidator
	// Publish pushes the recorded event to the broker; best-effort, a nil
	// function or a publish failure never fails the request.
	Publish func(c echo.Context, ev queue.ActivityRecordedEvent)
}

func NewActivityHandler(activities ActivityStore, inval CacheInvalidator) *ActivityHandler {
	return &ActivityHandler{
		Activities: activities,
		Invalidate: inval,
		Publish: func(c echo.Context, ev queue.ActivityRecordedEvent) {
			_ = queue_publisher.PublishActivityRecorded(c.Request().Context(), ev)
		},
	}
}

// activityFields lists the required harvest keys in validation order.
// Presence is all that is checked: values are stored exactly as sent, and
// the numeric fields are deliberately not type- or range-validated.
var activityFields = []string{
	"farmerName", "age", "kgs", "totalAmount", "rate", "flowerName", "cash", "date",
}

// AddActivity records one harvest activity and echoes the stored document,
// generated id included.
func (h *ActivityHandler) AddActivity(c echo.Context) error {
	data := map[string]any{}
	if err := c.Bind(&data); err != nil || len(data) == 0 {
		return emptyBodyError().JSON(c)
	}

	if f, missing := firstMissing(data, activityFields); missing {
		return validationError("Missing field: " + f).JSON(c)
	}

	activity := model.Activity{
		FarmerName:  data["farmerName"],
		Age:         data["age"],
		Kgs:         data["kgs"],
		TotalAmount: data["totalAmount"],
		Rate:        data["rate"],
		FlowerName:  data["flowerName"],
		Cash:        data["cash"],
		Date:        data["date"],
	}

	ctx, cancel := storeCtx(c.Request().Context())
	defer cancel()

	stored, err := h.Activities.Create(ctx, activity)
	if err != nil {
		return storageError("Failed to add activity").JSON(c)
	}

	if h.Publish != nil {
		h.Publish(c, queue.ActivityRecordedEvent{
			ActivityID:  stored.ID.Hex(),
			FarmerName:  stored.FarmerName,
			FlowerName:  stored.FlowerName,
			Kgs:         stored.Kgs,
			TotalAmount: stored.TotalAmount,
			Rate:        stored.Rate,
			Date:        stored.Date,
			RecordedAt:  time.Now().UTC().Format(time.RFC3339),
		})
	}
	h.bust(c, middleware.CacheGroupActivities)

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Activity added successfully",
		"activity": stored,
	})
}

// GetActivities returns every recorded activity.
func (h *ActivityHandler) GetActivities(c echo.Context) error {
	ctx, cancel := storeCtx(c.Request().Context())
	defer cancel()

	activities, err := h.Activities.All(ctx)
	if err != nil {
		return storageError("query failed").JSON(c)
	}
	return c.JSON(http.StatusOK, activities)
}

// FarmerActivities returns the activities whose farmerName equals the path
// parameter exactly (case-sensitive, whole-value). No match is an empty
// list, not an error.
func (h *ActivityHandler) FarmerActivities(c echo.Context) error {
	ctx, cancel := storeCtx(c.Request().Context())
	defer cancel()

	activities, err := h.Activities.ByFarmer(ctx, c.Param("name"))
	if err != nil {
		return storageError("query failed").JSON(c)
	}
	return c.JSON(http.StatusOK, activities)
}

func (h *ActivityHandler) bust(c echo.Context, group string) {
	if h.Invalidate != nil {
		h.Invalidate(c.Request().Context(), group)
	}
}
