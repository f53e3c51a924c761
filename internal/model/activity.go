package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Activity is one harvest record in the `activities` collection. Apart from
// the generated id every field is stored exactly as the client sent it;
// presence is validated at the boundary but types are not, so the numeric
// fields are deliberately untyped here.
type Activity struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	FarmerName  any                `bson:"farmerName" json:"farmerName"`
	Age         any                `bson:"age" json:"age"`
	Kgs         any                `bson:"kgs" json:"kgs"`
	TotalAmount any                `bson:"totalAmount" json:"totalAmount"`
	Rate        any                `bson:"rate" json:"rate"`
	FlowerName  any                `bson:"flowerName" json:"flowerName"`
	Cash        any                `bson:"cash" json:"cash"`
	Date        any                `bson:"date" json:"date"`
}
