package usecase

import (
	"context"
	"time"

	"wastecare-sesnet/internal/data/entity"
	"wastecare-sesnet/internal/data/repository"
	"wastecare-sesnet/internal/dto/request"
	"wastecare-sesnet/internal/dto/response"
	"wastecare-sesnet/pkg/apperr"
	"wastecare-sesnet/pkg/blob"
	"wastecare-sesnet/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ProfileService interface {
	// CreateForUser inserts the role profile for a freshly registered user.
	// The flyer must already be uploaded; flyerURL may be empty for kinds
	// that do not require one.
	CreateForUser(ctx context.Context, kind entity.ProfileKind, userID primitive.ObjectID, username string, form *request.ProfileForm, flyerURL string) (primitive.ObjectID, error)
	// UploadFlyer pushes flyer bytes to blob storage, bounded by the
	// configured timeout.
	UploadFlyer(ctx context.Context, data []byte, contentType string) (string, error)
	Update(ctx context.Context, kind entity.ProfileKind, profileID, callerID, callerRole string, form *request.ProfileForm) error
	GetOwn(ctx context.Context, kind entity.ProfileKind, callerID, callerRole string) (any, error)
	ListApproved(ctx context.Context, kind entity.ProfileKind) (*response.ProfileList, error)
	GetApproved(ctx context.Context, kind entity.ProfileKind, profileID string) (any, error)
}

type profileService struct {
	repo     *repository.Repository
	uploader blob.Uploader
	config   *utils.Config
	log      *zap.Logger
}

func NewProfileService(
	repo *repository.Repository,
	uploader blob.Uploader,
	config *utils.Config,
	log *zap.Logger,
) ProfileService {
	return &profileService{
		repo:     repo,
		uploader: uploader,
		config:   config,
		log:      log,
	}
}

// MissingFields enumerates every absent required field for the kind, not
// just the first. Presence is judged on the pointer, never on the value.
func MissingFields(kind entity.ProfileKind, form *request.ProfileForm) map[string]string {
	const required = "This field is required"

	missing := make(map[string]string)
	switch kind {
	case entity.KindEnterprise:
		if form.Flyer == nil {
			missing["flyer"] = required
		}
		if form.DigitalAddress == nil {
			missing["digital_address"] = required
		}
		if form.Latitude == nil {
			missing["latitude"] = required
		}
		if form.Longitude == nil {
			missing["longitude"] = required
		}
		if form.Description == nil {
			missing["description"] = required
		}
	case entity.KindBuilder:
		if form.CompanyName == nil {
			missing["company_name"] = required
		}
		if form.Lead == nil {
			missing["lead"] = required
		}
	case entity.KindSupplier:
		if form.ShopName == nil {
			missing["shop_name"] = required
		}
		if form.Owner == nil {
			missing["owner"] = required
		}
	}

	if len(missing) == 0 {
		return nil
	}
	return missing
}

func (s *profileService) CreateForUser(ctx context.Context, kind entity.ProfileKind, userID primitive.ObjectID, username string, form *request.ProfileForm, flyerURL string) (primitive.ObjectID, error) {
	if missing := MissingFields(kind, form); len(missing) > 0 {
		s.log.Warn("Profile validation failed",
			zap.String("kind", string(kind)),
			zap.String("errors", utils.FormatValidationErrors(missing)))
		return primitive.NilObjectID, apperr.Validation("Missing required fields", missing)
	}

	// One profile per user per kind
	exists, err := s.hasProfile(ctx, kind, userID)
	if err != nil {
		return primitive.NilObjectID, apperr.Internal("Failed to check existing profile", err)
	}
	if exists {
		return primitive.NilObjectID, apperr.Conflict("Profile already exists for this user")
	}

	base := entity.ProfileBase{
		UserID:    userID,
		Flyer:     flyerURL,
		Approved:  false,
		CreatedAt: time.Now().UTC(),
	}

	var profileID primitive.ObjectID
	switch kind {
	case entity.KindEnterprise:
		profile := entity.EnterpriseProfile{
			ProfileBase:    base,
			EnterpriseName: username,
			DigitalAddress: *form.DigitalAddress,
			GPSLocation:    entity.GeoPoint{Lat: *form.Latitude, Lon: *form.Longitude},
			Description:    *form.Description,
		}
		profileID, err = s.repo.Enterprise.Create(ctx, &profile)
	case entity.KindBuilder:
		profile := entity.BuilderProfile{
			ProfileBase: base,
			CompanyName: *form.CompanyName,
			Lead:        *form.Lead,
		}
		profileID, err = s.repo.Builder.Create(ctx, &profile)
	case entity.KindSupplier:
		profile := entity.SupplierProfile{
			ProfileBase: base,
			ShopName:    *form.ShopName,
			Owner:       *form.Owner,
		}
		profileID, err = s.repo.Supplier.Create(ctx, &profile)
	}
	if err != nil {
		return primitive.NilObjectID, apperr.Internal("Failed to create profile", err)
	}

	s.log.Info("Profile created",
		zap.String("kind", string(kind)),
		zap.String("profile_id", profileID.Hex()),
		zap.String("user_id", userID.Hex()))

	return profileID, nil
}

func (s *profileService) UploadFlyer(ctx context.Context, data []byte, contentType string) (string, error) {
	uploadCtx, cancel := context.WithTimeout(ctx, s.config.Blob.UploadTimeout)
	defer cancel()

	url, err := s.uploader.Upload(uploadCtx, data, contentType)
	if err != nil {
		s.log.Error("Flyer upload failed", zap.Error(err))
		return "", apperr.Upload("Image upload failed", err)
	}
	return url, nil
}

func (s *profileService) Update(ctx context.Context, kind entity.ProfileKind, profileID, callerID, callerRole string, form *request.ProfileForm) error {
	if callerRole != string(kind.Role()) {
		return apperr.Forbidden("Access Denied!")
	}

	pid, err := primitive.ObjectIDFromHex(profileID)
	if err != nil {
		return apperr.NotFound("Profile not found.")
	}
	caller, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return apperr.Unauthorized("Invalid caller identity")
	}

	patch := bson.M{}
	switch kind {
	case entity.KindEnterprise:
		if err := ownedByCaller(ctx, s.repo.Enterprise, pid, caller); err != nil {
			return err
		}
		if form.DigitalAddress != nil {
			patch["digital_address"] = *form.DigitalAddress
		}
		if form.Latitude != nil || form.Longitude != nil {
			if form.Latitude == nil || form.Longitude == nil {
				return apperr.Validation("Latitude and longitude must be provided together", nil)
			}
			patch["gps_location"] = entity.GeoPoint{Lat: *form.Latitude, Lon: *form.Longitude}
		}
		if form.Description != nil {
			patch["description"] = *form.Description
		}
	case entity.KindBuilder:
		if err := ownedByCaller(ctx, s.repo.Builder, pid, caller); err != nil {
			return err
		}
		if form.CompanyName != nil {
			patch["company_name"] = *form.CompanyName
		}
		if form.Lead != nil {
			patch["lead"] = *form.Lead
		}
	case entity.KindSupplier:
		if err := ownedByCaller(ctx, s.repo.Supplier, pid, caller); err != nil {
			return err
		}
		if form.ShopName != nil {
			patch["shop_name"] = *form.ShopName
		}
		if form.Owner != nil {
			patch["owner"] = *form.Owner
		}
	}

	if form.Flyer != nil {
		url, err := s.UploadFlyer(ctx, form.Flyer, form.FlyerType)
		if err != nil {
			return err
		}
		patch["flyer"] = url
	}

	if len(patch) == 0 {
		return apperr.Validation("No update data provided.", nil)
	}
	patch["updated_at"] = time.Now().UTC()

	var matched bool
	switch kind {
	case entity.KindEnterprise:
		matched, err = s.repo.Enterprise.UpdateFields(ctx, pid, patch)
	case entity.KindBuilder:
		matched, err = s.repo.Builder.UpdateFields(ctx, pid, patch)
	case entity.KindSupplier:
		matched, err = s.repo.Supplier.UpdateFields(ctx, pid, patch)
	}
	if err != nil {
		return apperr.Internal("Failed to update profile", err)
	}
	if !matched {
		return apperr.NotFound("Profile not found.")
	}

	s.log.Info("Profile updated",
		zap.String("kind", string(kind)),
		zap.String("profile_id", pid.Hex()),
		zap.String("user_id", caller.Hex()))

	return nil
}

func (s *profileService) GetOwn(ctx context.Context, kind entity.ProfileKind, callerID, callerRole string) (any, error) {
	if callerRole != string(kind.Role()) {
		return nil, apperr.Forbidden("Access Denied!")
	}

	caller, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid caller identity")
	}

	switch kind {
	case entity.KindEnterprise:
		profile, err := s.repo.Enterprise.FindByUserID(ctx, caller)
		if err != nil {
			return nil, apperr.Internal("Failed to load profile", err)
		}
		if profile == nil {
			return nil, apperr.NotFound("Profile not found.")
		}
		return response.EnterpriseToResponse(profile), nil
	case entity.KindBuilder:
		profile, err := s.repo.Builder.FindByUserID(ctx, caller)
		if err != nil {
			return nil, apperr.Internal("Failed to load profile", err)
		}
		if profile == nil {
			return nil, apperr.NotFound("Profile not found.")
		}
		return response.BuilderToResponse(profile), nil
	case entity.KindSupplier:
		profile, err := s.repo.Supplier.FindByUserID(ctx, caller)
		if err != nil {
			return nil, apperr.Internal("Failed to load profile", err)
		}
		if profile == nil {
			return nil, apperr.NotFound("Profile not found.")
		}
		return response.SupplierToResponse(profile), nil
	}
	return nil, apperr.NotFound("Profile not found.")
}

// ListApproved is the public read path. An empty result is a successful
// empty list, never an error.
func (s *profileService) ListApproved(ctx context.Context, kind entity.ProfileKind) (*response.ProfileList, error) {
	switch kind {
	case entity.KindEnterprise:
		profiles, err := s.repo.Enterprise.FindApproved(ctx)
		if err != nil {
			return nil, apperr.Internal("Failed to list profiles", err)
		}
		return &response.ProfileList{Count: len(profiles), Data: response.EnterprisesToResponse(profiles)}, nil
	case entity.KindBuilder:
		profiles, err := s.repo.Builder.FindApproved(ctx)
		if err != nil {
			return nil, apperr.Internal("Failed to list profiles", err)
		}
		return &response.ProfileList{Count: len(profiles), Data: response.BuildersToResponse(profiles)}, nil
	case entity.KindSupplier:
		profiles, err := s.repo.Supplier.FindApproved(ctx)
		if err != nil {
			return nil, apperr.Internal("Failed to list profiles", err)
		}
		return &response.ProfileList{Count: len(profiles), Data: response.SuppliersToResponse(profiles)}, nil
	}
	return nil, apperr.NotFound("Unknown profile kind")
}

func (s *profileService) GetApproved(ctx context.Context, kind entity.ProfileKind, profileID string) (any, error) {
	pid, err := primitive.ObjectIDFromHex(profileID)
	if err != nil {
		return nil, apperr.NotFound("Profile not found or not approved.")
	}

	switch kind {
	case entity.KindEnterprise:
		profile, err := s.repo.Enterprise.FindByID(ctx, pid)
		if err != nil {
			return nil, apperr.Internal("Failed to load profile", err)
		}
		if profile == nil || !profile.Approved {
			return nil, apperr.NotFound("Profile not found or not approved.")
		}
		return response.EnterpriseToResponse(profile), nil
	case entity.KindBuilder:
		profile, err := s.repo.Builder.FindByID(ctx, pid)
		if err != nil {
			return nil, apperr.Internal("Failed to load profile", err)
		}
		if profile == nil || !profile.Approved {
			return nil, apperr.NotFound("Profile not found or not approved.")
		}
		return response.BuilderToResponse(profile), nil
	case entity.KindSupplier:
		profile, err := s.repo.Supplier.FindByID(ctx, pid)
		if err != nil {
			return nil, apperr.Internal("Failed to load profile", err)
		}
		if profile == nil || !profile.Approved {
			return nil, apperr.NotFound("Profile not found or not approved.")
		}
		return response.SupplierToResponse(profile), nil
	}
	return nil, apperr.NotFound("Profile not found or not approved.")
}

// ==================== HELPERS ====================

func (s *profileService) hasProfile(ctx context.Context, kind entity.ProfileKind, userID primitive.ObjectID) (bool, error) {
	switch kind {
	case entity.KindEnterprise:
		p, err := s.repo.Enterprise.FindByUserID(ctx, userID)
		return p != nil, err
	case entity.KindBuilder:
		p, err := s.repo.Builder.FindByUserID(ctx, userID)
		return p != nil, err
	case entity.KindSupplier:
		p, err := s.repo.Supplier.FindByUserID(ctx, userID)
		return p != nil, err
	}
	return false, nil
}

// ownedByCaller layers the ownership check on top of role membership.
func ownedByCaller[T entity.RoleProfile](ctx context.Context, repo repository.ProfileRepository[T], id, caller primitive.ObjectID) error {
	profile, err := repo.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("Failed to load profile", err)
	}
	if profile == nil {
		return apperr.NotFound("Profile not found.")
	}
	if (*profile).OwnerID() != caller {
		return apperr.Forbidden("Not authorized to edit this profile.")
	}
	return nil
}
