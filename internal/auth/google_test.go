package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"

	sharedauth "annadata-backend/internal/shared/auth"
	"annadata-backend/internal/users"
)

func newGoogleFixture(t *testing.T) (*GoogleService, *gin.Engine, *users.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("ENV", "dev")
	t.Setenv("JWT_SECRET", "google-test-secret")

	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"access_token":"access-1","token_type":"Bearer","expires_in":3600}`)
		case "/userinfo":
			if r.Header.Get("Authorization") != "Bearer access-1" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"id":"g-1","email":"ana@example.com","name":"Ana Lima","picture":"https://pic.example.com/ana.png"}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(provider.Close)

	userSvc := users.NewService(users.NewMemoryRepo())
	svc := NewGoogleService("client", "secret", "http://localhost:8080/api/v1/auth/google/callback", "http://localhost:3000/auth/done", userSvc)
	svc.oauthConfig.Endpoint = oauth2.Endpoint{AuthURL: provider.URL + "/auth", TokenURL: provider.URL + "/token"}
	svc.userInfoURL = provider.URL + "/userinfo"

	router := gin.New()
	svc.RegisterRoutes(router.Group("/api/v1"))
	return svc, router, userSvc
}

func TestGoogleStartRedirectsWithState(t *testing.T) {
	svc, router, _ := newGoogleFixture(t)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/start", nil))

	if resp.Code != http.StatusFound {
		t.Fatalf("status = %d", resp.Code)
	}
	loc, err := url.Parse(resp.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	state := loc.Query().Get("state")
	if state == "" || len(svc.stateStore.items) != 1 {
		t.Fatalf("state not issued: %q", state)
	}
}

func TestGoogleCallbackIssuesTokenForStoredUser(t *testing.T) {
	svc, router, userSvc := newGoogleFixture(t)
	svc.stateStore.put("state-1", time.Minute)

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=state-1&code=abc", nil))
	if resp.Code != http.StatusFound {
		t.Fatalf("status = %d body=%s", resp.Code, resp.Body.String())
	}
	loc, err := url.Parse(resp.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	if loc.Host != "localhost:3000" || loc.Path != "/auth/done" {
		t.Fatalf("redirect = %s", loc)
	}
	claims, err := sharedauth.VerifyJWT(loc.Query().Get("token"))
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}

	user, err := userSvc.Current(context.Background(), "", "ana@example.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if claims.Subject != user.ID || claims.Email != "ana@example.com" || claims.Name != "Ana Lima" {
		t.Fatalf("claims = %+v", claims)
	}

	// The state is single use.
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/callback?state=state-1&code=abc", nil))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("replayed state status = %d", resp.Code)
	}
}

func TestGoogleCallbackRejects(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{name: "missing code", target: "/api/v1/auth/google/callback?state=s"},
		{name: "unknown state", target: "/api/v1/auth/google/callback?state=nope&code=abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, router, _ := newGoogleFixture(t)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, tt.target, nil))
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("status = %d", resp.Code)
			}
		})
	}
}

func TestGoogleNotConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewGoogleService("", "", "", "", nil)
	router := gin.New()
	svc.RegisterRoutes(router.Group("/api/v1"))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/auth/google/start", nil))
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", resp.Code)
	}
}

func TestStateStoreExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store := newStateStore(func() time.Time { return now })
	store.put("a", time.Minute)
	store.put("b", time.Minute)
	now = now.Add(2 * time.Minute)
	if store.consume("a") {
		t.Fatalf("expired state accepted")
	}
	store.put("c", time.Minute)
	if _, ok := store.items["b"]; ok {
		t.Fatalf("expired state not purged")
	}
	if !store.consume("c") {
		t.Fatalf("fresh state rejected")
	}
}

func TestAppendToken(t *testing.T) {
	got, err := appendToken("http://ui.example.com/cb?x=1", "tok")
	if err != nil {
		t.Fatalf("appendToken: %v", err)
	}
	if got != "http://ui.example.com/cb?token=tok&x=1" {
		t.Fatalf("appendToken = %q", got)
	}
	if _, err := appendToken("", "tok"); err == nil {
		t.Fatalf("expected error for empty url")
	}
}
