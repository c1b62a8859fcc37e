package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ApprovalAudit records who approved or rejected a profile and when.
type ApprovalAudit struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProfileID primitive.ObjectID `bson:"profile_id"`
	Kind      ProfileKind        `bson:"kind"`
	AdminID   primitive.ObjectID `bson:"admin_id"`
	Approved  bool               `bson:"approved"`
	CreatedAt time.Time          `bson:"created_at"`
}
