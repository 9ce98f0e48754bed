// Package models defines the persistent record types stored in MongoDB and
// the pure mapping helpers for their derived presentation fields.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an identity record. PasswordHash holds the bcrypt digest of the
// login password and must never appear in any read operation's public shape;
// the GraphQL user type simply has no field for it.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	CreatedAt    time.Time          `bson:"created_at"`
}
