package authhandler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dmitry2004126/ai-assistant/internal/domain/user"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/auth"
	"github.com/Dmitry2004126/ai-assistant/internal/infrastructure/logger"
	"github.com/Dmitry2004126/ai-assistant/internal/interfaces/httpserver/middlewares"
)

type memoryUserRepo struct {
	byEmail map[string]*user.User
	nextID  uint
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byEmail: map[string]*user.User{}, nextID: 1}
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uint) (*user.User, error) {
	for _, usr := range r.byEmail {
		if usr.ID == id {
			return usr, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	return r.byEmail[email], nil
}

func (r *memoryUserRepo) Create(_ context.Context, usr *user.User) error {
	usr.ID = r.nextID
	r.nextID++
	usr.CreatedAt = time.Now()
	r.byEmail[usr.Email] = usr
	return nil
}

func newRouter(repo user.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	traces := logger.NewTraceFactoryWithSinks(logger.LevelError, "json", io.Discard, io.Discard)
	handler := NewAuthHandler(repo, "test-secret", time.Hour)

	router := gin.New()
	router.Use(middlewares.RequestID())
	router.Use(middlewares.RequestLogging(traces))
	router.POST("/auth/register", handler.Register)
	router.POST("/auth/login", handler.Login)
	return router
}

func TestRegisterCreatesActiveUser(t *testing.T) {
	repo := newMemoryUserRepo()
	router := newRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"a@b.c","password":"hunter22"}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	for _, want := range []string{`"email":"a@b.c"`, `"is_active":true`, `"is_superuser":false`} {
		if !strings.Contains(w.Body.String(), want) {
			t.Errorf("response missing %q: %s", want, w.Body.String())
		}
	}
	if strings.Contains(w.Body.String(), "hunter22") {
		t.Fatal("password must never appear in the response")
	}

	stored := repo.byEmail["a@b.c"]
	if stored == nil {
		t.Fatal("user not persisted")
	}
	if stored.HashedPassword == "hunter22" || stored.HashedPassword == "" {
		t.Fatal("password must be stored hashed")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMemoryUserRepo()
	router := newRouter(repo)

	body := `{"email":"a@b.c","password":"hunter22"}`
	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body)))
	if first.Code != http.StatusCreated {
		t.Fatalf("first register failed: %d", first.Code)
	}

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body)))

	if second.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", second.Code)
	}
	if !strings.Contains(second.Body.String(), "REGISTER_USER_ALREADY_EXISTS") {
		t.Fatalf("unexpected body: %s", second.Body.String())
	}
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	router := newRouter(newMemoryUserRepo())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(`{"email":"not-an-email","password":"hunter22"}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLoginIssuesBearerToken(t *testing.T) {
	repo := newMemoryUserRepo()
	hashed, err := auth.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	_ = repo.Create(context.Background(), &user.User{Email: "a@b.c", HashedPassword: hashed, IsActive: true})
	router := newRouter(repo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.c","password":"hunter22"}`))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"token_type":"bearer"`) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"access_token":"`) {
		t.Fatalf("missing access token: %s", w.Body.String())
	}
}

func TestLoginRejections(t *testing.T) {
	repo := newMemoryUserRepo()
	hashed, err := auth.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	_ = repo.Create(context.Background(), &user.User{Email: "a@b.c", HashedPassword: hashed, IsActive: true})
	_ = repo.Create(context.Background(), &user.User{Email: "off@b.c", HashedPassword: hashed, IsActive: false})
	router := newRouter(repo)

	cases := []struct {
		name string
		body string
	}{
		{"wrong password", `{"email":"a@b.c","password":"wrong-pass"}`},
		{"unknown email", `{"email":"ghost@b.c","password":"hunter22"}`},
		{"inactive user", `{"email":"off@b.c","password":"hunter22"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tc.body))
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), "LOGIN_BAD_CREDENTIALS") {
				t.Fatalf("unexpected body: %s", w.Body.String())
			}
		})
	}
}
