package model

// OwnerProfileID is the fixed document key of the owner singleton in the
// `owner` collection.
const OwnerProfileID = "owner"

// OwnerProfile is the single farm-owner record. Every POST replaces all
// four tracked fields; absent fields are written back as empty strings.
type OwnerProfile struct {
	ID         string `bson:"_id" json:"_id"`
	Name       string `bson:"name" json:"name"`
	Experience string `bson:"experience" json:"experience"`
	Location   string `bson:"location" json:"location"`
	Specialty  string `bson:"specialty" json:"specialty"`
}
