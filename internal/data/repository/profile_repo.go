package repository

import (
	"context"
	"errors"
	"fmt"

	"wastecare-sesnet/internal/data/entity"
	"wastecare-sesnet/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ProfileRepository is the typed read/write surface for one profile kind.
// Kind-agnostic admin operations live in ApprovalRepository.
type ProfileRepository[T entity.RoleProfile] interface {
	Create(ctx context.Context, profile *T) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) (*T, error)
	// FindPending returns profiles whose approval flag is not true.
	FindPending(ctx context.Context) ([]T, error)
	FindApproved(ctx context.Context) ([]T, error)
	// UpdateFields merges only the given fields; returns false when no
	// profile matched.
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (bool, error)
}

type profileRepository[T entity.RoleProfile] struct {
	store database.Store
	col   string
	log   *zap.Logger
}

func NewProfileRepository[T entity.RoleProfile](store database.Store, kind entity.ProfileKind, log *zap.Logger) ProfileRepository[T] {
	return &profileRepository[T]{
		store: store,
		col:   kind.Collection(),
		log:   log,
	}
}

func (pr *profileRepository[T]) Create(ctx context.Context, profile *T) (primitive.ObjectID, error) {
	id, err := pr.store.InsertOne(ctx, pr.col, profile)
	if err != nil {
		pr.log.Error("Failed to create profile",
			zap.Error(err),
			zap.String("collection", pr.col),
		)
		return primitive.NilObjectID, fmt.Errorf("create %s profile: %w", pr.col, err)
	}
	return id, nil
}

func (pr *profileRepository[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var profile T
	err := pr.store.FindOne(ctx, pr.col, bson.M{"_id": id}, &profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find profile by ID",
			zap.Error(err),
			zap.String("collection", pr.col),
			zap.String("profile_id", id.Hex()),
		)
		return nil, fmt.Errorf("find %s profile by ID %s: %w", pr.col, id.Hex(), err)
	}
	return &profile, nil
}

func (pr *profileRepository[T]) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*T, error) {
	var profile T
	err := pr.store.FindOne(ctx, pr.col, bson.M{"user_id": userID}, &profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find profile by user ID",
			zap.Error(err),
			zap.String("collection", pr.col),
			zap.String("user_id", userID.Hex()),
		)
		return nil, fmt.Errorf("find %s profile by user %s: %w", pr.col, userID.Hex(), err)
	}
	return &profile, nil
}

func (pr *profileRepository[T]) FindPending(ctx context.Context) ([]T, error) {
	var profiles []T
	if err := pr.store.Find(ctx, pr.col, bson.M{"approved": bson.M{"$ne": true}}, &profiles); err != nil {
		pr.log.Error("Failed to find pending profiles",
			zap.Error(err),
			zap.String("collection", pr.col),
		)
		return nil, fmt.Errorf("find pending %s profiles: %w", pr.col, err)
	}
	return profiles, nil
}

func (pr *profileRepository[T]) FindApproved(ctx context.Context) ([]T, error) {
	var profiles []T
	if err := pr.store.Find(ctx, pr.col, bson.M{"approved": true}, &profiles); err != nil {
		pr.log.Error("Failed to find approved profiles",
			zap.Error(err),
			zap.String("collection", pr.col),
		)
		return nil, fmt.Errorf("find approved %s profiles: %w", pr.col, err)
	}
	return profiles, nil
}

func (pr *profileRepository[T]) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (bool, error) {
	matched, err := pr.store.UpdateOne(ctx, pr.col, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		pr.log.Error("Failed to update profile",
			zap.Error(err),
			zap.String("collection", pr.col),
			zap.String("profile_id", id.Hex()),
		)
		return false, fmt.Errorf("update %s profile %s: %w", pr.col, id.Hex(), err)
	}
	return matched > 0, nil
}
