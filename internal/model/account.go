package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Account represents a registered farmer as stored in the `registration`
// collection. The password is kept only as a bcrypt hash and is never
// serialized back to clients; listing endpoints rely on the `json:"-"`
// tag for that.
//
// Fields:
//
//	ID           – document identifier generated by the store.
//	Firstname    – farmer's first name.
//	Lastname     – farmer's last name.
//	DOB          – date of birth, stored as the string the client sent.
//	Age          – integer age, validated to [0,120] on registration.
//	Address      – postal address.
//	PhoneNumber  – contact phone number.
//	Username     – login name, matched exactly on login.
//	PasswordHash – bcrypt digest of the registration password.
type Account struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Firstname    string             `bson:"firstname" json:"firstname"`
	Lastname     string             `bson:"lastname" json:"lastname"`
	DOB          string             `bson:"dob" json:"dob"`
	Age          int                `bson:"age" json:"age"`
	Address      string             `bson:"address" json:"address"`
	PhoneNumber  string             `bson:"phone_number" json:"phone_number"`
	Username     string             `bson:"username" json:"username"`
	PasswordHash string             `bson:"password_hash" json:"-"`
}
