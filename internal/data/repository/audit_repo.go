package repository

import (
	"context"
	"fmt"

	"wastecare-sesnet/internal/data/entity"
	"wastecare-sesnet/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const auditCollection = "approvals_audit"

type AuditRepository interface {
	Create(ctx context.Context, audit *entity.ApprovalAudit) error
	FindByProfileID(ctx context.Context, profileID primitive.ObjectID) ([]entity.ApprovalAudit, error)
}

type auditRepository struct {
	store database.Store
	log   *zap.Logger
}

func NewAuditRepository(store database.Store, log *zap.Logger) AuditRepository {
	return &auditRepository{
		store: store,
		log:   log,
	}
}

func (ar *auditRepository) Create(ctx context.Context, audit *entity.ApprovalAudit) error {
	if _, err := ar.store.InsertOne(ctx, auditCollection, audit); err != nil {
		ar.log.Error("Failed to write approval audit",
			zap.Error(err),
			zap.String("profile_id", audit.ProfileID.Hex()),
		)
		return fmt.Errorf("create approval audit: %w", err)
	}
	return nil
}

func (ar *auditRepository) FindByProfileID(ctx context.Context, profileID primitive.ObjectID) ([]entity.ApprovalAudit, error) {
	var entries []entity.ApprovalAudit
	if err := ar.store.Find(ctx, auditCollection, bson.M{"profile_id": profileID}, &entries); err != nil {
		ar.log.Error("Failed to read approval audit",
			zap.Error(err),
			zap.String("profile_id", profileID.Hex()),
		)
		return nil, fmt.Errorf("find approval audit for %s: %w", profileID.Hex(), err)
	}
	return entries, nil
}
