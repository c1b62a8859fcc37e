package wire

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"wastecare-sesnet/internal/data/repository"
	"wastecare-sesnet/pkg/database"
	"wastecare-sesnet/pkg/utils"

	"go.uber.org/zap"
)

type stubUploader struct{ url string }

func (u *stubUploader) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	return u.url, nil
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  json.RawMessage `json:"errors"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := zap.NewNop()
	store := database.NewMemoryStore()
	repo := repository.NewRepository(store, logger)
	config := &utils.Config{
		JWT: utils.JWTConfig{Secret: "test-secret", ExpiryMinutes: 120},
	}

	app := Wiring(repo, &stubUploader{url: "https://img/x.jpg"}, config, logger)
	server := httptest.NewServer(app.Router)
	t.Cleanup(server.Close)
	return server
}

func postForm(t *testing.T, serverURL, path string, form url.Values, token string) (*http.Response, envelope) {
	t.Helper()
	return doForm(t, http.MethodPost, serverURL, path, form, token)
}

func doForm(t *testing.T, method, serverURL, path string, form url.Values, token string) (*http.Response, envelope) {
	t.Helper()

	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req, err := http.NewRequest(method, serverURL+path, body)
	if err != nil {
		t.Fatalf("NewRequest %s %s: %v", method, path, err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode %s %s response: %v", method, path, err)
	}
	return resp, env
}

func get(t *testing.T, serverURL, path, token string) (*http.Response, envelope) {
	t.Helper()
	return doForm(t, http.MethodGet, serverURL, path, nil, token)
}

func TestHealth(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestRegisterLoginApproveFlow(t *testing.T) {
	server := newTestServer(t)

	// Supplier signs up.
	resp, env := postForm(t, server.URL, "/users/register", url.Values{
		"email":     {"shop@example.com"},
		"password":  {"correct-horse-8"},
		"username":  {"shopkeeper"},
		"phone":     {"0244000000"},
		"district":  {"Tamale"},
		"role":      {"supplier"},
		"shop_name": {"EcoBlocks"},
		"owner":     {"Yaw Boateng"},
	}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d (%s), want 201", resp.StatusCode, env.Message)
	}
	var reg struct {
		ProfileID string `json:"profile_id"`
	}
	if err := json.Unmarshal(env.Data, &reg); err != nil {
		t.Fatalf("decode register data: %v", err)
	}
	if reg.ProfileID == "" {
		t.Fatal("register returned no profile id")
	}

	// Pending profiles stay off the public listing.
	resp, env = get(t, server.URL, "/suppliers", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("public list status = %d, want 200", resp.StatusCode)
	}
	var list struct {
		Count int `json:"count"`
	}
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Count != 0 {
		t.Fatalf("public count = %d, want 0 before approval", list.Count)
	}

	// Admin signs up and logs in.
	resp, _ = postForm(t, server.URL, "/users/register", url.Values{
		"email":    {"admin@example.com"},
		"password": {"correct-horse-8"},
		"username": {"boss"},
		"phone":    {"0244000001"},
		"district": {"Accra"},
		"role":     {"admin"},
	}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("admin register status = %d, want 201", resp.StatusCode)
	}

	resp, env = postForm(t, server.URL, "/users/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"correct-horse-8"},
	}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}
	var login struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(env.Data, &login); err != nil {
		t.Fatalf("decode login data: %v", err)
	}
	if login.AccessToken == "" {
		t.Fatal("login returned no token")
	}

	// Admin approves the supplier.
	resp, env = doForm(t, http.MethodPatch, server.URL, "/admin/suppliers/"+reg.ProfileID+"/approval", url.Values{
		"approved": {"true"},
	}, login.AccessToken)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("approval status = %d (%s), want 200", resp.StatusCode, env.Message)
	}

	// Now it is public.
	resp, env = get(t, server.URL, "/suppliers", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("public list status = %d, want 200", resp.StatusCode)
	}
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Count != 1 {
		t.Fatalf("public count = %d, want 1 after approval", list.Count)
	}

	resp, _ = get(t, server.URL, "/suppliers/"+reg.ProfileID, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("public detail status = %d, want 200", resp.StatusCode)
	}
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	server := newTestServer(t)

	// No token at all.
	resp, _ := get(t, server.URL, "/admin/users", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d, want 401", resp.StatusCode)
	}

	// A customer token is not enough.
	if resp, env := postForm(t, server.URL, "/users/register", url.Values{
		"email":    {"plain@example.com"},
		"password": {"correct-horse-8"},
		"username": {"plainuser"},
		"phone":    {"0244000002"},
		"district": {"Accra"},
	}, ""); resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status = %d (%s), want 201", resp.StatusCode, env.Message)
	}

	_, env := postForm(t, server.URL, "/users/login", url.Values{
		"email":    {"plain@example.com"},
		"password": {"correct-horse-8"},
	}, "")
	var login struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(env.Data, &login); err != nil {
		t.Fatalf("decode login data: %v", err)
	}

	resp, _ = get(t, server.URL, "/admin/users", login.AccessToken)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("customer status = %d, want 403", resp.StatusCode)
	}
}

func TestRegisterMissingProfileFields(t *testing.T) {
	server := newTestServer(t)

	resp, env := postForm(t, server.URL, "/users/register", url.Values{
		"email":    {"half@example.com"},
		"password": {"correct-horse-8"},
		"username": {"halfdone"},
		"phone":    {"0244000003"},
		"district": {"Accra"},
		"role":     {"builder"},
		// company_name and lead are absent
	}, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d (%s), want 400", resp.StatusCode, env.Message)
	}

	var fields map[string]string
	if err := json.Unmarshal(env.Errors, &fields); err != nil {
		t.Fatalf("decode errors: %v", err)
	}
	for _, want := range []string{"company_name", "lead"} {
		if _, ok := fields[want]; !ok {
			t.Errorf("errors lack %q: %v", want, fields)
		}
	}
}
