package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/e-floriest/farm-backend/internal/model"
)

// SalesRepo covers the two sales-side collections: the singleton summary in
// `sales` and the append-only `orders`.
type SalesRepo struct {
	sales  *mongo.Collection
	orders *mongo.Collection
}

func NewSalesRepo(db *mongo.Database) *SalesRepo {
	return &SalesRepo{
		sales:  db.Collection("sales"),
		orders: db.Collection("orders"),
	}
}

// Summary returns the singleton sales summary, or nil when no total has
// ever been set. Absence is not an error.
func (r *SalesRepo) Summary(ctx context.Context) (*model.SalesSummary, error) {
	var s model.SalesSummary
	err := r.sales.FindOne(ctx, bson.M{"_id": model.SalesSummaryID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SetTotal upserts the singleton summary under its fixed key, replacing any
// previous total. The fixed _id keeps concurrent first writes from creating
// more than one document.
func (r *SalesRepo) SetTotal(ctx context.Context, total any) error {
	_, err := r.sales.UpdateOne(ctx,
		bson.M{"_id": model.SalesSummaryID},
		bson.M{"$set": bson.M{"total_sales": total}},
		options.Update().SetUpsert(true))
	return err
}

// Orders returns all recorded orders in store-native order.
func (r *SalesRepo) Orders(ctx context.Context) ([]model.Order, error) {
	cur, err := r.orders.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	orders := []model.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// AddOrder wraps the free-form payload in a new order document. Every call
// yields a fresh id, including repeated calls with an identical payload.
func (r *SalesRepo) AddOrder(ctx context.Context, payload any) (model.Order, error) {
	o := model.Order{Order: payload}
	res, err := r.orders.InsertOne(ctx, o)
	if err != nil {
		return model.Order{}, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return model.Order{}, errors.New("unexpected inserted id type")
	}
	o.ID = oid
	return o, nil
}
