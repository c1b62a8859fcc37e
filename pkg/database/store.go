package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store interface untuk abstraction document store. Semua akses data lewat
// filter-based CRUD over named collections.
type Store interface {
	// Find decodes every matching document into out (pointer to slice).
	Find(ctx context.Context, collection string, filter any, out any) error
	// FindOne decodes a single match into out, mongo.ErrNoDocuments if absent.
	FindOne(ctx context.Context, collection string, filter any, out any) error
	InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error)
	// UpdateOne returns the matched count.
	UpdateOne(ctx context.Context, collection string, filter any, update any) (int64, error)
	// DeleteOne returns the deleted count.
	DeleteOne(ctx context.Context, collection string, filter any) (int64, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
