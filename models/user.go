// models/user.go
package models

import "time"

// Roles an authenticated actor can carry.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

// IsRole reports whether role is one of the known actor roles.
func IsRole(role string) bool {
	return role == RolePatient || role == RoleDoctor || role == RoleAdmin
}

// User is a platform account. Doctors additionally own a Doctor profile.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Role      string    `bson:"role" json:"role"`
	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Actor is the verified caller identity handed over by the auth middleware.
type Actor struct {
	ID   string
	Role string
}
