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

const usersCollection = "users"

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]entity.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type userRepository struct {
	store database.Store
	log   *zap.Logger
}

func NewUserRepository(store database.Store, log *zap.Logger) UserRepository {
	return &userRepository{
		store: store,
		log:   log,
	}
}

// Create inserts a new user record into the store
func (ur *userRepository) Create(ctx context.Context, user *entity.User) (primitive.ObjectID, error) {
	id, err := ur.store.InsertOne(ctx, usersCollection, user)
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return primitive.NilObjectID, fmt.Errorf("create user %s: %w", user.Email, err)
	}
	return id, nil
}

func (ur *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.User, error) {
	var user entity.User
	err := ur.store.FindOne(ctx, usersCollection, bson.M{"_id": id}, &user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.Hex()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.Hex(), err)
	}
	return &user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := ur.store.FindOne(ctx, usersCollection, bson.M{"email": email}, &user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}
	return &user, nil
}

func (ur *userRepository) FindAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := ur.store.Find(ctx, usersCollection, bson.M{}, &users); err != nil {
		ur.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}
	return users, nil
}

// Delete hard-deletes a user record. Used as the compensating step when a
// role profile cannot be created after the user was already inserted.
func (ur *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	deleted, err := ur.store.DeleteOne(ctx, usersCollection, bson.M{"_id": id})
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("id", id.Hex()),
		)
		return fmt.Errorf("delete user %s: %w", id.Hex(), err)
	}
	if deleted == 0 {
		return fmt.Errorf("user %s not found", id.Hex())
	}
	return nil
}
