package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/e-floriest/farm-backend/internal/model"
)

// OwnerRepo persists the single owner profile in the `owner` collection.
type OwnerRepo struct{ col *mongo.Collection }

func NewOwnerRepo(db *mongo.Database) *OwnerRepo {
	return &OwnerRepo{col: db.Collection("owner")}
}

// Profile returns the singleton owner profile, or nil when none has been
// stored yet.
func (r *OwnerRepo) Profile(ctx context.Context) (*model.OwnerProfile, error) {
	var p model.OwnerProfile
	err := r.col.FindOne(ctx, bson.M{"_id": model.OwnerProfileID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert writes all four tracked profile fields under the fixed key.
// This is a full replace of the tracked set: fields the caller left empty
// overwrite whatever was stored before.
func (r *OwnerRepo) Upsert(ctx context.Context, p model.OwnerProfile) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": model.OwnerProfileID},
		bson.M{"$set": bson.M{
			"name":       p.Name,
			"experience": p.Experience,
			"location":   p.Location,
			"specialty":  p.Specialty,
		}},
		options.Update().SetUpsert(true))
	return err
}
