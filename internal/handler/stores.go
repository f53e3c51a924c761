package handler

import (
	"context"

	"github.com/e-floriest/farm-backend/internal/model"
)

// Store interfaces consumed by the handlers. The Mongo repositories in
// internal/repository implement them; tests substitute in-memory fakes.

// AccountStore persists farmer accounts.
type AccountStore interface {
	Create(ctx context.Context, a model.Account) (string, error)
	FindByUsername(ctx context.Context, username string) (model.Account, error)
	All(ctx context.Context) ([]model.Account, error)
}

// ActivityStore persists harvest records.
type ActivityStore interface {
	Create(ctx context.Context, a model.Activity) (model.Activity, error)
	All(ctx context.Context) ([]model.Activity, error)
	ByFarmer(ctx context.Context, name string) ([]model.Activity, error)
}

// SalesStore persists the sales summary singleton and the order log.
type SalesStore interface {
	Summary(ctx context.Context) (*model.SalesSummary, error)
	SetTotal(ctx context.Context, total any) error
	Orders(ctx context.Context) ([]model.Order, error)
	AddOrder(ctx context.Context, payload any) (model.Order, error)
}

// OwnerStore persists the owner profile singleton.
type OwnerStore interface {
	Profile(ctx context.Context) (*model.OwnerProfile, error)
	Upsert(ctx context.Context, p model.OwnerProfile) error
}
