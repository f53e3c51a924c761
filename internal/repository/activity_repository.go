package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/e-floriest/farm-backend/internal/model"
)

// ActivityRepo persists harvest records in the `activities` collection.
// Records are append-only.
type ActivityRepo struct{ col *mongo.Collection }

func NewActivityRepo(db *mongo.Database) *ActivityRepo {
	return &ActivityRepo{col: db.Collection("activities")}
}

// Create inserts the activity and returns it with the generated id attached,
// so the handler can echo the stored document back to the client.
func (r *ActivityRepo) Create(ctx context.Context, a model.Activity) (model.Activity, error) {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return model.Activity{}, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return model.Activity{}, errors.New("unexpected inserted id type")
	}
	a.ID = oid
	return a, nil
}

// All returns every recorded activity in store-native order.
func (r *ActivityRepo) All(ctx context.Context) ([]model.Activity, error) {
	return r.find(ctx, bson.M{})
}

// ByFarmer returns activities whose farmerName equals name exactly.
// Case differences or extra words do not match. An empty result is not an
// error.
func (r *ActivityRepo) ByFarmer(ctx context.Context, name string) ([]model.Activity, error) {
	return r.find(ctx, bson.M{"farmerName": name})
}

func (r *ActivityRepo) find(ctx context.Context, filter bson.M) ([]model.Activity, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	activities := []model.Activity{}
	if err := cur.All(ctx, &activities); err != nil {
		return nil, err
	}
	return activities, nil
}
