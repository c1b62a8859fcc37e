package usecase

import (
	"context"
	"testing"

	"wastecare-sesnet/internal/data/entity"
	"wastecare-sesnet/internal/dto/request"
	"wastecare-sesnet/pkg/apperr"
	"wastecare-sesnet/pkg/database"
)

func TestRegisterCustomer(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.svc.Auth.Register(ctx, customerRegisterReq("kwame@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Role != entity.RoleCustomer {
		t.Fatalf("role = %q, want %q", resp.Role, entity.RoleCustomer)
	}
	if resp.ProfileID != "" {
		t.Fatalf("customer got profile id %q, want none", resp.ProfileID)
	}

	user, err := env.repo.User.FindByEmail(ctx, "kwame@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if user == nil {
		t.Fatal("user not stored")
	}
	if user.PasswordHash == "correct-horse-8" {
		t.Fatal("password stored in plaintext")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.svc.Auth.Register(ctx, customerRegisterReq("dup@example.com")); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := env.svc.Auth.Register(ctx, customerRegisterReq("dup@example.com"))
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("second Register err = %v, want conflict", err)
	}

	users, err := env.repo.User.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("stored %d users, want 1", len(users))
	}
}

func TestRegisterEnterprise(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.svc.Auth.Register(ctx, enterpriseRegisterReq("green@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.ProfileID == "" {
		t.Fatal("enterprise register returned no profile id")
	}
	if env.uploader.calls != 1 {
		t.Fatalf("uploader called %d times, want 1", env.uploader.calls)
	}

	profile, err := env.repo.Enterprise.FindByID(ctx, mustObjectID(t, resp.ProfileID))
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if profile == nil {
		t.Fatal("profile not stored")
	}
	if profile.Approved {
		t.Fatal("new profile must start unapproved")
	}
	if profile.Flyer != stubFlyerURL {
		t.Fatalf("flyer = %q, want %q", profile.Flyer, stubFlyerURL)
	}
	if profile.GPSLocation.Lat != 5.6037 || profile.GPSLocation.Lon != -0.1870 {
		t.Fatalf("gps = %+v, unexpected", profile.GPSLocation)
	}
}

func TestRegisterEnterpriseMissingFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	description := "only a description"
	req := customerRegisterReq("partial@example.com")
	req.Role = "enterprise"
	req.Profile = request.ProfileForm{Description: &description}

	_, err := env.svc.Auth.Register(ctx, req)
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("err = %v, want validation", err)
	}

	// Every missing field reported at once, not just the first.
	fields := apperr.From(err).Fields
	for _, want := range []string{"flyer", "digital_address", "latitude", "longitude"} {
		if _, ok := fields[want]; !ok {
			t.Errorf("missing fields lack %q: %v", want, fields)
		}
	}
	if _, ok := fields["description"]; ok {
		t.Errorf("description was provided but reported missing: %v", fields)
	}

	// Nothing written: no user, no profile, no upload.
	user, err := env.repo.User.FindByEmail(ctx, "partial@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if user != nil {
		t.Fatal("user was created despite invalid profile")
	}
	pending, err := env.repo.Enterprise.FindPending(ctx)
	if err != nil {
		t.Fatalf("FindPending: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("stored %d profiles, want 0", len(pending))
	}
	if env.uploader.calls != 0 {
		t.Fatalf("uploader called %d times, want 0", env.uploader.calls)
	}
}

func TestRegisterUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	req := customerRegisterReq("who@example.com")
	req.Role = "superadmin"

	_, err := env.svc.Auth.Register(context.Background(), req)
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestRegisterProfileInsertFailureDeletesUser(t *testing.T) {
	store := &failingStore{Store: database.NewMemoryStore(), failCollection: "enterprises"}
	env := newTestEnvWithStore(t, store)
	ctx := context.Background()

	_, err := env.svc.Auth.Register(ctx, enterpriseRegisterReq("rollback@example.com"))
	if err == nil {
		t.Fatal("Register succeeded despite profile insert failure")
	}

	// The compensating delete removed the half-registered user.
	user, err := env.repo.User.FindByEmail(ctx, "rollback@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if user != nil {
		t.Fatal("user survived a failed profile insert")
	}
}

func TestLoginRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	reg, err := env.svc.Auth.Register(ctx, customerRegisterReq("login@example.com"))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	resp, err := env.svc.Auth.Login(ctx, &request.LoginRequest{
		Email:    "login@example.com",
		Password: "correct-horse-8",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.UserID != reg.UserID {
		t.Fatalf("user id = %q, want %q", resp.UserID, reg.UserID)
	}

	claims, err := env.tokens.Verify(resp.AccessToken)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != reg.UserID {
		t.Fatalf("token sub = %q, want %q", claims.UserID, reg.UserID)
	}
	if claims.Role != string(entity.RoleCustomer) {
		t.Fatalf("token role = %q, want %q", claims.Role, entity.RoleCustomer)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.svc.Auth.Register(ctx, customerRegisterReq("wrongpw@example.com")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := env.svc.Auth.Login(ctx, &request.LoginRequest{
		Email:    "wrongpw@example.com",
		Password: "not-the-password",
	})
	if !apperr.IsKind(err, apperr.KindUnauthorized) {
		t.Fatalf("err = %v, want unauthorized", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Auth.Login(context.Background(), &request.LoginRequest{
		Email:    "ghost@example.com",
		Password: "correct-horse-8",
	})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("err = %v, want not_found", err)
	}
}
