package usecase

import (
	"context"
	"time"

	"wastecare-sesnet/internal/data/entity"
	"wastecare-sesnet/internal/data/repository"
	"wastecare-sesnet/internal/dto/request"
	"wastecare-sesnet/internal/dto/response"
	"wastecare-sesnet/pkg/apperr"
	"wastecare-sesnet/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
}

type authService struct {
	repo     *repository.Repository
	profiles ProfileService
	tokens   *utils.TokenManager
	log      *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	profiles ProfileService,
	tokens *utils.TokenManager,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:     repo,
		profiles: profiles,
		tokens:   tokens,
		log:      log,
	}
}

// Register creates a user and, for profile-bearing roles, the linked role
// profile. Profile validation and the flyer upload run BEFORE the user
// record is inserted; a failed profile insert afterwards is compensated by
// deleting the user again, so a partial failure never leaves a user
// without its required profile.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	// 1. Validate base fields
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.String("errors", utils.FormatValidationErrors(errs)))
		return nil, apperr.Validation("Validation failed", errs)
	}

	role, ok := entity.ParseRole(req.Role)
	if !ok {
		return nil, apperr.Validation("Validation failed", map[string]string{"role": "Unknown role"})
	}

	// 2. Validate role-specific fields before touching the store
	kind, needsProfile := entity.KindForRole(role)
	if needsProfile {
		if missing := MissingFields(kind, &req.Profile); len(missing) > 0 {
			s.log.Warn("Register profile validation failed",
				zap.String("role", string(role)),
				zap.String("errors", utils.FormatValidationErrors(missing)))
			return nil, apperr.Validation("Missing required fields", missing)
		}
	}

	// 3. Ensure user does not exist
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal("Failed to check email", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("User already exists!")
	}

	// 4. Upload flyer before any write
	var flyerURL string
	if needsProfile && req.Profile.Flyer != nil {
		flyerURL, err = s.profiles.UploadFlyer(ctx, req.Profile.Flyer, req.Profile.FlyerType)
		if err != nil {
			return nil, err
		}
	}

	// 5. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal("Failed to process password", err)
	}

	// 6. Insert user
	user := &entity.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Username:     req.Username,
		Phone:        req.Phone,
		District:     req.District,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	userID, err := s.repo.User.Create(ctx, user)
	if err != nil {
		return nil, apperr.Internal("Failed to create account", err)
	}

	resp := &response.RegisterResponse{
		UserID: userID.Hex(),
		Role:   role,
	}

	// 7. Insert profile, compensating the user insert on failure
	if needsProfile {
		profileID, err := s.profiles.CreateForUser(ctx, kind, userID, req.Username, &req.Profile, flyerURL)
		if err != nil {
			if delErr := s.repo.User.Delete(ctx, userID); delErr != nil {
				s.log.Error("Compensating user delete failed",
					zap.Error(delErr),
					zap.String("user_id", userID.Hex()))
			}
			return nil, err
		}
		resp.ProfileID = profileID.Hex()
	}

	s.log.Info("User registered",
		zap.String("user_id", userID.Hex()),
		zap.String("email", user.Email),
		zap.String("role", string(role)))

	return resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.String("errors", utils.FormatValidationErrors(errs)))
		return nil, apperr.Validation("Validation failed", errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal("Failed to find user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found!")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.Hex()))
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	token, expiresAt, err := s.tokens.Sign(user.ID.Hex(), string(user.Role))
	if err != nil {
		return nil, apperr.Internal("Failed to issue token", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.Hex()),
		zap.String("role", string(user.Role)))

	return &response.AuthResponse{
		UserID:      user.ID.Hex(),
		Role:        user.Role,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
