package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// SalesSummaryID is the fixed document key of the sales singleton. Using a
// well-known _id instead of a match-all upsert filter guarantees at most one
// summary document even under concurrent first writes.
const SalesSummaryID = "total_sales"

// SalesSummary is the singleton aggregate in the `sales` collection. The
// total is free-form: whatever scalar the client posts is stored.
type SalesSummary struct {
	ID         string `bson:"_id" json:"_id"`
	TotalSales any    `bson:"total_sales" json:"total_sales"`
}

// Order wraps one free-form order payload in the `orders` collection.
// Orders are append-only; nothing updates or deletes them.
type Order struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Order any                `bson:"order" json:"order"`
}
