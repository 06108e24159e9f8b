package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recognized user roles. Other role values may exist in storage (written by
// older versions of the platform); analytics counts them in totals but they
// never land in a plan bucket.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
	RoleDriver   = "driver"
)

// User is an account record in the storefront's users collection.
//
// Registration and profile editing happen elsewhere in the platform; this
// service only reads users and flips is_active. The credential and token
// fields are carried so seed tooling and projections know about them, but
// they are never serialized to JSON.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstName string             `bson:"first_name" json:"firstName"`
	LastName  string             `bson:"last_name" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Role      string             `bson:"role" json:"role"`
	IsActive  bool               `bson:"is_active" json:"isActive"`
	LastLogin *time.Time         `bson:"last_login,omitempty" json:"lastLogin,omitempty"`

	// Sensitive fields: part of the stored document, never part of a response.
	Password               string     `bson:"password,omitempty" json:"-"`
	EmailVerificationToken string     `bson:"email_verification_token,omitempty" json:"-"`
	PasswordResetToken     string     `bson:"password_reset_token,omitempty" json:"-"`
	PasswordResetExpires   *time.Time `bson:"password_reset_expires,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// FullName returns the display name used in activity feeds.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RecognizedRole reports whether role is one of the three enumerated roles.
func RecognizedRole(role string) bool {
	switch role {
	case RoleCustomer, RoleAdmin, RoleDriver:
		return true
	}
	return false
}
