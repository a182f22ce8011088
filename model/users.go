package model

import "time"

type User struct {
	UserID            string    `bson:"user_id" json:"user_id"`
	Email             string    `bson:"email" json:"email"`    // Unique across all users (exact match)
	Password          string    `bson:"password" json:"-"`     // Argon2id hash, never plaintext
	IsVerified        bool      `bson:"is_verified" json:"is_verified"`
	ConfirmationToken string    `bson:"confirmation_token,omitempty" json:"-"` // Present only while unverified and pending
	CreatedAt         time.Time `bson:"created_at" json:"created_at"`
}
