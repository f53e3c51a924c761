package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/e-floriest/farm-backend/internal/model"
)

// AccountRepo persists farmer accounts in the `registration` collection.
type AccountRepo struct{ col *mongo.Collection }

func NewAccountRepo(db *mongo.Database) *AccountRepo {
	return &AccountRepo{col: db.Collection("registration")}
}

// Create inserts the account and returns the generated id as a hex string.
func (r *AccountRepo) Create(ctx context.Context, a model.Account) (string, error) {
	res, err := r.col.InsertOne(ctx, a)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// FindByUsername fetches an account by exact username match. Returns
// ErrNotFound when no account carries the username.
func (r *AccountRepo) FindByUsername(ctx context.Context, username string) (model.Account, error) {
	var a model.Account
	err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Account{}, ErrNotFound
	}
	return a, err
}

// All returns every registered account. There is no pagination; the
// service has no delete operation, so the list grows monotonically.
func (r *AccountRepo) All(ctx context.Context) ([]model.Account, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	accounts := []model.Account{}
	if err := cur.All(ctx, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}
