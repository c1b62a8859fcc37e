package usecase

import (
	"context"
	"time"

	"wastecare-sesnet/internal/data/entity"
	"wastecare-sesnet/internal/data/repository"
	"wastecare-sesnet/internal/dto/response"
	"wastecare-sesnet/pkg/apperr"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ApprovalService drives the admin-only profile state machine:
// pending -> approved | rejected. Re-approval and re-rejection stay
// allowed; every transition is recorded in the audit trail.
type ApprovalService interface {
	ListPending(ctx context.Context, kind entity.ProfileKind) (*response.ProfileList, error)
	SetApproval(ctx context.Context, kind entity.ProfileKind, profileID, adminID string, approved bool) error
	Delete(ctx context.Context, kind entity.ProfileKind, profileID string) error
	ListUsers(ctx context.Context) (*response.UserList, error)
}

type approvalService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewApprovalService(repo *repository.Repository, log *zap.Logger) ApprovalService {
	return &approvalService{
		repo: repo,
		log:  log,
	}
}

func (s *approvalService) ListPending(ctx context.Context, kind entity.ProfileKind) (*response.ProfileList, error) {
	switch kind {
	case entity.KindEnterprise:
		profiles, err := s.repo.Enterprise.FindPending(ctx)
		if err != nil {
			return nil, apperr.Internal("Failed to list pending profiles", err)
		}
		return &response.ProfileList{Count: len(profiles), Data: response.EnterprisesToResponse(profiles)}, nil
	case entity.KindBuilder:
		profiles, err := s.repo.Builder.FindPending(ctx)
		if err != nil {
			return nil, apperr.Internal("Failed to list pending profiles", err)
		}
		return &response.ProfileList{Count: len(profiles), Data: response.BuildersToResponse(profiles)}, nil
	case entity.KindSupplier:
		profiles, err := s.repo.Supplier.FindPending(ctx)
		if err != nil {
			return nil, apperr.Internal("Failed to list pending profiles", err)
		}
		return &response.ProfileList{Count: len(profiles), Data: response.SuppliersToResponse(profiles)}, nil
	}
	return nil, apperr.NotFound("Unknown profile kind")
}

func (s *approvalService) SetApproval(ctx context.Context, kind entity.ProfileKind, profileID, adminID string, approved bool) error {
	pid, err := primitive.ObjectIDFromHex(profileID)
	if err != nil {
		return apperr.NotFound("Profile not found.")
	}

	matched, err := s.repo.Approval.SetApproval(ctx, kind, pid, approved)
	if err != nil {
		return apperr.Internal("Failed to set approval", err)
	}
	if !matched {
		return apperr.NotFound("Profile not found.")
	}

	// Audit trail: who flipped the flag and when. A failed audit write
	// does not undo the transition.
	adminOID, err := primitive.ObjectIDFromHex(adminID)
	if err != nil {
		s.log.Warn("Skipping audit entry: invalid admin id", zap.String("admin_id", adminID))
	} else {
		audit := &entity.ApprovalAudit{
			ProfileID: pid,
			Kind:      kind,
			AdminID:   adminOID,
			Approved:  approved,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.repo.Audit.Create(ctx, audit); err != nil {
			s.log.Warn("Failed to write audit entry",
				zap.Error(err),
				zap.String("profile_id", pid.Hex()))
			// Continue anyway
		}
	}

	s.log.Info("Profile approval set",
		zap.String("kind", string(kind)),
		zap.String("profile_id", pid.Hex()),
		zap.String("admin_id", adminID),
		zap.Bool("approved", approved))

	return nil
}

func (s *approvalService) Delete(ctx context.Context, kind entity.ProfileKind, profileID string) error {
	pid, err := primitive.ObjectIDFromHex(profileID)
	if err != nil {
		return apperr.NotFound("Profile not found.")
	}

	deleted, err := s.repo.Approval.Delete(ctx, kind, pid)
	if err != nil {
		return apperr.Internal("Failed to delete profile", err)
	}
	if !deleted {
		return apperr.NotFound("Profile not found.")
	}

	s.log.Info("Profile deleted",
		zap.String("kind", string(kind)),
		zap.String("profile_id", pid.Hex()))

	return nil
}

// ListUsers returns every registered user with the role profile attached
// for profile-bearing roles.
func (s *approvalService) ListUsers(ctx context.Context) (*response.UserList, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("Failed to list users", err)
	}

	data := make([]response.UserResponse, 0, len(users))
	for i := range users {
		user := response.UserToResponse(&users[i])

		if kind, ok := entity.KindForRole(users[i].Role); ok {
			info, err := s.profileInfo(ctx, kind, users[i].ID)
			if err != nil {
				return nil, err
			}
			user.ProfileInfo = info
		}

		data = append(data, user)
	}

	return &response.UserList{Count: len(data), Data: data}, nil
}

func (s *approvalService) profileInfo(ctx context.Context, kind entity.ProfileKind, userID primitive.ObjectID) (any, error) {
	switch kind {
	case entity.KindEnterprise:
		profile, err := s.repo.Enterprise.FindByUserID(ctx, userID)
		if err != nil {
			return nil, apperr.Internal("Failed to load profile", err)
		}
		if profile == nil {
			return nil, nil
		}
		return response.EnterpriseToResponse(profile), nil
	case entity.KindBuilder:
		profile, err := s.repo.Builder.FindByUserID(ctx, userID)
		if err != nil {
			return nil, apperr.Internal("Failed to load profile", err)
		}
		if profile == nil {
			return nil, nil
		}
		return response.BuilderToResponse(profile), nil
	case entity.KindSupplier:
		profile, err := s.repo.Supplier.FindByUserID(ctx, userID)
		if err != nil {
			return nil, apperr.Internal("Failed to load profile", err)
		}
		if profile == nil {
			return nil, nil
		}
		return response.SupplierToResponse(profile), nil
	}
	return nil, nil
}
