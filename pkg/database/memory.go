package database

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MemoryStore is an in-memory Store for tests and local development.
// It supports the filter surface the repositories use: field equality
// and the $ne operator, plus $set partial updates.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]bson.M)}
}

func (s *MemoryStore) Find(ctx context.Context, collection string, filter any, out any) error {
	fm, err := toDoc(filter)
	if err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	outVal := reflect.ValueOf(out)
	if outVal.Kind() != reflect.Pointer || outVal.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("find out must be a pointer to slice, got %T", out)
	}

	slice := reflect.MakeSlice(outVal.Elem().Type(), 0, 0)
	elemType := outVal.Elem().Type().Elem()

	for _, doc := range s.collections[collection] {
		if !matches(doc, fm) {
			continue
		}
		raw, err := bson.Marshal(doc)
		if err != nil {
			return err
		}
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		slice = reflect.Append(slice, elem.Elem())
	}

	outVal.Elem().Set(slice)
	return nil
}

func (s *MemoryStore) FindOne(ctx context.Context, collection string, filter any, out any) error {
	fm, err := toDoc(filter)
	if err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if matches(doc, fm) {
			raw, err := bson.Marshal(doc)
			if err != nil {
				return err
			}
			return bson.Unmarshal(raw, out)
		}
	}
	return mongo.ErrNoDocuments
}

func (s *MemoryStore) InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	dm, err := toDoc(doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := dm["_id"].(primitive.ObjectID)
	if !ok || id.IsZero() {
		id = primitive.NewObjectID()
		dm["_id"] = id
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections[collection] = append(s.collections[collection], dm)
	return id, nil
}

func (s *MemoryStore) UpdateOne(ctx context.Context, collection string, filter any, update any) (int64, error) {
	fm, err := toDoc(filter)
	if err != nil {
		return 0, err
	}
	um, err := toDoc(update)
	if err != nil {
		return 0, err
	}

	set, err := toDoc(um["$set"])
	if err != nil {
		return 0, fmt.Errorf("only $set updates are supported: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if !matches(doc, fm) {
			continue
		}
		for k, v := range set {
			doc[k] = v
		}
		return 1, nil
	}
	return 0, nil
}

func (s *MemoryStore) DeleteOne(ctx context.Context, collection string, filter any) (int64, error) {
	fm, err := toDoc(filter)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if matches(doc, fm) {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// toDoc normalizes structs, maps, and filter documents into bson.M through
// a marshal round trip, so comparisons see the same types mongo would store.
func toDoc(v any) (bson.M, error) {
	if v == nil {
		return bson.M{}, nil
	}
	if m, ok := v.(bson.M); ok {
		return m, nil
	}

	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func matches(doc bson.M, filter bson.M) bool {
	for field, want := range filter {
		got := doc[field]

		if ops, ok := want.(bson.M); ok {
			if ne, has := ops["$ne"]; has {
				if equal(got, ne) {
					return false
				}
				continue
			}
		}

		if !equal(got, want) {
			return false
		}
	}
	return true
}

func equal(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	// Values that entered through different paths (raw vs round-tripped)
	// may differ in concrete type; compare their bson forms.
	ra, errA := bson.Marshal(bson.M{"v": a})
	rb, errB := bson.Marshal(bson.M{"v": b})
	return errA == nil && errB == nil && string(ra) == string(rb)
}
