package usecase

import (
	"wastecare-sesnet/internal/data/repository"
	"wastecare-sesnet/pkg/blob"
	"wastecare-sesnet/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Profile  ProfileService
	Approval ApprovalService
}

func NewService(
	repo *repository.Repository,
	uploader blob.Uploader,
	tokens *utils.TokenManager,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	profile := NewProfileService(repo, uploader, config, log)

	return &Service{
		Auth:     NewAuthService(repo, profile, tokens, log),
		Profile:  profile,
		Approval: NewApprovalService(repo, log),
	}
}
