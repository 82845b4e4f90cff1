package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is a renter or an administrator. The phone number is the primary
// identifier and is unique across users; accounts are created on first
// successful phone verification.
type User struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name,omitempty" bson:"name,omitempty"`
	Phone           string             `json:"phone" bson:"phone" validate:"required"`
	Email           string             `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Role            Role               `json:"role" bson:"role" default:"user"`
	IsPhoneVerified bool               `json:"is_phone_verified" bson:"is_phone_verified" default:"false"`
	LastLoginAt     *time.Time         `json:"last_login_at,omitempty" bson:"last_login_at,omitempty"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
