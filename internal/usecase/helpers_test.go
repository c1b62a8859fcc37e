package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"wastecare-sesnet/internal/data/repository"
	"wastecare-sesnet/internal/dto/request"
	"wastecare-sesnet/pkg/database"
	"wastecare-sesnet/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const stubFlyerURL = "https://img/x.jpg"

type stubUploader struct {
	url   string
	err   error
	calls int
}

func (u *stubUploader) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	u.calls++
	if u.err != nil {
		return "", u.err
	}
	return u.url, nil
}

// failingStore makes inserts into one collection fail, for exercising the
// compensating delete during registration.
type failingStore struct {
	database.Store
	failCollection string
}

func (s *failingStore) InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	if collection == s.failCollection {
		return primitive.NilObjectID, errors.New("insert failed")
	}
	return s.Store.InsertOne(ctx, collection, doc)
}

type testEnv struct {
	repo     *repository.Repository
	svc      *Service
	uploader *stubUploader
	tokens   *utils.TokenManager
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithStore(t, database.NewMemoryStore())
}

func newTestEnvWithStore(t *testing.T, store database.Store) *testEnv {
	t.Helper()

	logger := zap.NewNop()
	repo := repository.NewRepository(store, logger)
	uploader := &stubUploader{url: stubFlyerURL}
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	config := &utils.Config{
		Blob: utils.BlobConfig{UploadTimeout: 5 * time.Second},
	}

	return &testEnv{
		repo:     repo,
		svc:      NewService(repo, uploader, tokens, config, logger),
		uploader: uploader,
		tokens:   tokens,
	}
}

func customerRegisterReq(email string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Email:    email,
		Password: "correct-horse-8",
		Username: "kwame",
		Phone:    "0244000000",
		District: "Accra",
		Role:     "customer",
	}
}

func enterpriseRegisterReq(email string) *request.RegisterRequest {
	address := "GA-123-4567"
	lat := 5.6037
	lon := -0.1870
	description := "Plastic recycling enterprise"

	return &request.RegisterRequest{
		Email:    email,
		Password: "correct-horse-8",
		Username: "greenco",
		Phone:    "0244000001",
		District: "Accra",
		Role:     "enterprise",
		Profile: request.ProfileForm{
			Flyer:          []byte("fake image bytes"),
			FlyerType:      "image/jpeg",
			DigitalAddress: &address,
			Latitude:       &lat,
			Longitude:      &lon,
			Description:    &description,
		},
	}
}

func builderRegisterReq(email, company string) *request.RegisterRequest {
	lead := "Ama Mensah"

	return &request.RegisterRequest{
		Email:    email,
		Password: "correct-horse-8",
		Username: "buildit",
		Phone:    "0244000002",
		District: "Kumasi",
		Role:     "builder",
		Profile: request.ProfileForm{
			CompanyName: &company,
			Lead:        &lead,
		},
	}
}

func mustObjectID(t *testing.T, hex string) primitive.ObjectID {
	t.Helper()
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		t.Fatalf("invalid object id %q: %v", hex, err)
	}
	return id
}
