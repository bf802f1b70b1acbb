package usersrepobridge_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/taskflow/taskflow/bridge/repositories/usersrepobridge"
	"github.com/taskflow/taskflow/bridge/scaffolding/mid"
	"github.com/taskflow/taskflow/core/repositories/notificationsrepo"
	"github.com/taskflow/taskflow/core/repositories/usersrepo"
	"github.com/taskflow/taskflow/infrastructure/web"
	"github.com/taskflow/taskflow/sdk/logger"
	"github.com/taskflow/taskflow/sdk/passwords"
)

type stubUserStorer struct {
	byEmail map[string]usersrepo.User
}

func (s *stubUserStorer) GetByEmail(ctx context.Context, email string) (usersrepo.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return usersrepo.User{}, usersrepo.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserStorer) Create(ctx context.Context, input usersrepo.CreateUser) (usersrepo.User, error) {
	user := usersrepo.User{
		ID:           "u1",
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: input.PasswordHash,
	}
	s.byEmail[input.Email] = user
	return user, nil
}

func (s *stubUserStorer) Update(ctx context.Context, id string, input usersrepo.UpdateProfile) error {
	return nil
}

type stubNotificationStorer struct {
	created []notificationsrepo.CreateNotification
}

func (s *stubNotificationStorer) ListByUser(ctx context.Context, userID string) ([]notificationsrepo.Notification, error) {
	return []notificationsrepo.Notification{}, nil
}

func (s *stubNotificationStorer) ExistsByUserAndMessage(ctx context.Context, userID, message string) (bool, error) {
	return false, nil
}

func (s *stubNotificationStorer) Create(ctx context.Context, input notificationsrepo.CreateNotification) (notificationsrepo.Notification, error) {
	s.created = append(s.created, input)
	return notificationsrepo.Notification{ID: "n1", UserID: input.UserID}, nil
}

func (s *stubNotificationStorer) MarkRead(ctx context.Context, id string) error {
	return nil
}

func (s *stubNotificationStorer) OverdueTasks(ctx context.Context, userID string, now time.Time) ([]notificationsrepo.OverdueTask, error) {
	return nil, nil
}

func newAuthServer(t *testing.T) (*httptest.Server, *stubUserStorer, *stubNotificationStorer) {
	t.Helper()

	log := logger.NewDefault()
	users := &stubUserStorer{byEmail: map[string]usersrepo.User{}}
	notifications := &stubNotificationStorer{}

	app := web.NewWebHandler(
		web.WithGlobalMiddleware(mid.Errors(log)),
	)
	usersrepobridge.AddHttpRoutes(app.Group(""), usersrepobridge.Config{
		Log:           log,
		Repository:    usersrepo.NewRepository(log, users),
		Notifications: notificationsrepo.NewRepository(log, notifications),
	})

	server := httptest.NewServer(app)
	t.Cleanup(server.Close)
	return server, users, notifications
}

func postAuth(t *testing.T, server *httptest.Server, body string) (*http.Response, map[string]any) {
	t.Helper()

	resp, err := http.Post(server.URL+"/auth", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /auth failed: %v", err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, decoded
}

func TestAuthRegister(t *testing.T) {
	server, _, notifications := newAuthServer(t)

	resp, body := postAuth(t, server, `{"action":"register","username":"claire","email":"claire@example.com","password":"s3cret"}`)

	if resp.StatusCode != http.StatusCreated {
		t.Errorf("Expected 201, got %d", resp.StatusCode)
	}
	if body["message"] != "User created" {
		t.Errorf("Unexpected body: %v", body)
	}
	if len(notifications.created) != 1 {
		t.Fatalf("Expected a welcome notification, got %d", len(notifications.created))
	}
	if notifications.created[0].Title != "Bienvenue !" {
		t.Errorf("Unexpected welcome title: %q", notifications.created[0].Title)
	}
}

func TestAuthRegisterConflict(t *testing.T) {
	server, users, _ := newAuthServer(t)
	users.byEmail["claire@example.com"] = usersrepo.User{ID: "u1", Email: "claire@example.com"}

	resp, body := postAuth(t, server, `{"action":"register","username":"claire","email":"claire@example.com","password":"s3cret"}`)

	if resp.StatusCode != http.StatusConflict {
		t.Errorf("Expected 409, got %d", resp.StatusCode)
	}
	if body["error"] != "Email already exists" {
		t.Errorf("Unexpected body: %v", body)
	}
}

func TestAuthLogin(t *testing.T) {
	server, users, _ := newAuthServer(t)

	hash, err := passwords.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	users.byEmail["claire@example.com"] = usersrepo.User{
		ID:           "u1",
		Username:     "claire",
		Email:        "claire@example.com",
		PasswordHash: hash,
	}

	resp, body := postAuth(t, server, `{"action":"login","email":"claire@example.com","password":"s3cret"}`)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
	if body["id"] != "u1" || body["username"] != "claire" {
		t.Errorf("Unexpected identity: %v", body)
	}
}

func TestAuthLoginRejected(t *testing.T) {
	server, users, _ := newAuthServer(t)

	hash, err := passwords.Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	users.byEmail["claire@example.com"] = usersrepo.User{ID: "u1", Email: "claire@example.com", PasswordHash: hash}

	for _, body := range []string{
		`{"action":"login","email":"claire@example.com","password":"wrong"}`,
		`{"action":"login","email":"nobody@example.com","password":"s3cret"}`,
	} {
		resp, decoded := postAuth(t, server, body)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("Expected 401, got %d", resp.StatusCode)
		}
		if decoded["error"] != "Invalid credentials" {
			t.Errorf("Unexpected body: %v", decoded)
		}
	}
}

func TestAuthUpdateProfile(t *testing.T) {
	server, _, _ := newAuthServer(t)

	resp, body := postAuth(t, server, `{"action":"update_profile","userId":"u1","username":"claire2"}`)

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200, got %d", resp.StatusCode)
	}
	if body["message"] != "Profile updated" {
		t.Errorf("Unexpected body: %v", body)
	}
}

func TestAuthUnknownAction(t *testing.T) {
	server, _, _ := newAuthServer(t)

	resp, body := postAuth(t, server, `{"action":"destroy"}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", resp.StatusCode)
	}
	if body["error"] != "Invalid action" {
		t.Errorf("Unexpected body: %v", body)
	}
}
