package repository

import (
	"wastecare-sesnet/internal/data/entity"
	"wastecare-sesnet/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Enterprise ProfileRepository[entity.EnterpriseProfile]
	Builder    ProfileRepository[entity.BuilderProfile]
	Supplier   ProfileRepository[entity.SupplierProfile]
	Approval   ApprovalRepository
	Audit      AuditRepository
}

func NewRepository(store database.Store, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(store, log),
		Enterprise: NewProfileRepository[entity.EnterpriseProfile](store, entity.KindEnterprise, log),
		Builder:    NewProfileRepository[entity.BuilderProfile](store, entity.KindBuilder, log),
		Supplier:   NewProfileRepository[entity.SupplierProfile](store, entity.KindSupplier, log),
		Approval:   NewApprovalRepository(store, log),
		Audit:      NewAuditRepository(store, log),
	}
}
