package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileKind is the closed set of roles that carry a secondary profile
// record subject to admin approval.
type ProfileKind string

const (
	KindEnterprise ProfileKind = "enterprise"
	KindBuilder    ProfileKind = "builder"
	KindSupplier   ProfileKind = "supplier"
)

// ParseProfileKind maps a URL path segment (plural) to a profile kind.
func ParseProfileKind(segment string) (ProfileKind, bool) {
	switch segment {
	case "enterprises":
		return KindEnterprise, true
	case "builders":
		return KindBuilder, true
	case "suppliers":
		return KindSupplier, true
	default:
		return "", false
	}
}

// Collection is the document store collection holding profiles of this kind.
func (k ProfileKind) Collection() string {
	switch k {
	case KindEnterprise:
		return "enterprises"
	case KindBuilder:
		return "builders"
	case KindSupplier:
		return "suppliers"
	}
	return ""
}

// Role is the user role that owns profiles of this kind.
func (k ProfileKind) Role() UserRole {
	switch k {
	case KindEnterprise:
		return RoleEnterprise
	case KindBuilder:
		return RoleBuilder
	case KindSupplier:
		return RoleSupplier
	}
	return ""
}

// KindForRole reports the profile kind a role requires, if any.
// Admin and customer accounts have no secondary profile.
func KindForRole(role UserRole) (ProfileKind, bool) {
	switch role {
	case RoleEnterprise:
		return KindEnterprise, true
	case RoleBuilder:
		return KindBuilder, true
	case RoleSupplier:
		return KindSupplier, true
	default:
		return "", false
	}
}

type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lon float64 `bson:"lon" json:"lon"`
}

// ProfileBase carries the fields every profile kind shares. The profile
// holds a back-reference to its user; the user record never points forward.
type ProfileBase struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Flyer     string             `bson:"flyer,omitempty"`
	Approved  bool               `bson:"approved"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty"`
}

func (b ProfileBase) ProfileID() primitive.ObjectID { return b.ID }
func (b ProfileBase) OwnerID() primitive.ObjectID   { return b.UserID }
func (b ProfileBase) IsApproved() bool              { return b.Approved }

// RoleProfile is satisfied by every concrete profile shape.
type RoleProfile interface {
	ProfileID() primitive.ObjectID
	OwnerID() primitive.ObjectID
	IsApproved() bool
}

type EnterpriseProfile struct {
	ProfileBase    `bson:",inline"`
	EnterpriseName string   `bson:"enterprise_name"`
	DigitalAddress string   `bson:"digital_address"`
	GPSLocation    GeoPoint `bson:"gps_location"`
	Description    string   `bson:"description"`
}

type BuilderProfile struct {
	ProfileBase `bson:",inline"`
	CompanyName string `bson:"company_name"`
	Lead        string `bson:"lead"`
}

type SupplierProfile struct {
	ProfileBase `bson:",inline"`
	ShopName    string `bson:"shop_name"`
	Owner       string `bson:"owner"`
}
