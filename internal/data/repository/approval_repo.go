package repository

import (
	"context"
	"fmt"
	"time"

	"wastecare-sesnet/internal/data/entity"
	"wastecare-sesnet/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ApprovalRepository covers the admin-side state transitions that do not
// depend on a profile kind's concrete shape.
type ApprovalRepository interface {
	// SetApproval flips the approval flag and bumps updated_at; returns
	// false when no profile matched.
	SetApproval(ctx context.Context, kind entity.ProfileKind, id primitive.ObjectID, approved bool) (bool, error)
	// Delete hard-deletes a profile; returns false when no profile matched.
	Delete(ctx context.Context, kind entity.ProfileKind, id primitive.ObjectID) (bool, error)
}

type approvalRepository struct {
	store database.Store
	log   *zap.Logger
}

func NewApprovalRepository(store database.Store, log *zap.Logger) ApprovalRepository {
	return &approvalRepository{
		store: store,
		log:   log,
	}
}

func (ar *approvalRepository) SetApproval(ctx context.Context, kind entity.ProfileKind, id primitive.ObjectID, approved bool) (bool, error) {
	matched, err := ar.store.UpdateOne(ctx, kind.Collection(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"approved": approved, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		ar.log.Error("Failed to set approval",
			zap.Error(err),
			zap.String("kind", string(kind)),
			zap.String("profile_id", id.Hex()),
			zap.Bool("approved", approved),
		)
		return false, fmt.Errorf("set approval on %s %s: %w", kind, id.Hex(), err)
	}
	return matched > 0, nil
}

func (ar *approvalRepository) Delete(ctx context.Context, kind entity.ProfileKind, id primitive.ObjectID) (bool, error) {
	deleted, err := ar.store.DeleteOne(ctx, kind.Collection(), bson.M{"_id": id})
	if err != nil {
		ar.log.Error("Failed to delete profile",
			zap.Error(err),
			zap.String("kind", string(kind)),
			zap.String("profile_id", id.Hex()),
		)
		return false, fmt.Errorf("delete %s %s: %w", kind, id.Hex(), err)
	}
	return deleted > 0, nil
}
