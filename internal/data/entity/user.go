package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleCustomer   UserRole = "customer"
	RoleEnterprise UserRole = "enterprise"
	RoleBuilder    UserRole = "builder"
	RoleSupplier   UserRole = "supplier"
)

// ParseRole maps a raw role string to the closed role set.
// An empty string falls back to customer.
func ParseRole(raw string) (UserRole, bool) {
	switch UserRole(raw) {
	case RoleAdmin, RoleCustomer, RoleEnterprise, RoleBuilder, RoleSupplier:
		return UserRole(raw), true
	case "":
		return RoleCustomer, true
	default:
		return "", false
	}
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	Username     string             `bson:"username"`
	Phone        string             `bson:"phone"`
	District     string             `bson:"district"`
	Role         UserRole           `bson:"role"`
	CreatedAt    time.Time          `bson:"created_at"`
}
