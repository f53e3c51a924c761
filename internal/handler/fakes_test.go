package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/e-floriest/farm-backend/internal/model"
	"github.com/e-floriest/farm-backend/internal/repository"
)

// newJSONContext builds an echo context around an httptest recorder. An
// empty body means a request without a payload.
func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

// --- in-memory stores ---

type fakeAccountStore struct {
	accounts  []model.Account
	createErr error
	listErr   error
}

func (f *fakeAccountStore) Create(_ context.Context, a model.Account) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	a.ID = primitive.NewObjectID()
	f.accounts = append(f.accounts, a)
	return a.ID.Hex(), nil
}

func (f *fakeAccountStore) FindByUsername(_ context.Context, username string) (model.Account, error) {
	for _, a := range f.accounts {
		if a.Username == username {
			return a, nil
		}
	}
	return model.Account{}, repository.ErrNotFound
}

func (f *fakeAccountStore) All(_ context.Context) ([]model.Account, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.accounts, nil
}

type fakeActivityStore struct {
	activities []model.Activity
	createErr  error
}

func (f *fakeActivityStore) Create(_ context.Context, a model.Activity) (model.Activity, error) {
	if f.createErr != nil {
		return model.Activity{}, f.createErr
	}
	a.ID = primitive.NewObjectID()
	f.activities = append(f.activities, a)
	return a, nil
}

func (f *fakeActivityStore) All(_ context.Context) ([]model.Activity, error) {
	return f.activities, nil
}

func (f *fakeActivityStore) ByFarmer(_ context.Context, name string) ([]model.Activity, error) {
	out := []model.Activity{}
	for _, a := range f.activities {
		if s, ok := a.FarmerName.(string); ok && s == name {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeSalesStore keeps summaries in a map keyed by document id so tests can
// assert the upsert really leaves a single document behind.
type fakeSalesStore struct {
	summaries map[string]model.SalesSummary
	orders    []model.Order
}

func newFakeSalesStore() *fakeSalesStore {
	return &fakeSalesStore{summaries: map[string]model.SalesSummary{}}
}

func (f *fakeSalesStore) Summary(_ context.Context) (*model.SalesSummary, error) {
	s, ok := f.summaries[model.SalesSummaryID]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeSalesStore) SetTotal(_ context.Context, total any) error {
	f.summaries[model.SalesSummaryID] = model.SalesSummary{ID: model.SalesSummaryID, TotalSales: total}
	return nil
}

func (f *fakeSalesStore) Orders(_ context.Context) ([]model.Order, error) {
	if f.orders == nil {
		return []model.Order{}, nil
	}
	return f.orders, nil
}

func (f *fakeSalesStore) AddOrder(_ context.Context, payload any) (model.Order, error) {
	o := model.Order{ID: primitive.NewObjectID(), Order: payload}
	f.orders = append(f.orders, o)
	return o, nil
}

type fakeOwnerStore struct {
	profile *model.OwnerProfile
}

func (f *fakeOwnerStore) Profile(_ context.Context) (*model.OwnerProfile, error) {
	return f.profile, nil
}

func (f *fakeOwnerStore) Upsert(_ context.Context, p model.OwnerProfile) error {
	p.ID = model.OwnerProfileID
	f.profile = &p
	return nil
}
