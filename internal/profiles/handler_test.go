package profiles

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	sharedauth "annadata-backend/internal/shared/auth"
	"annadata-backend/internal/shared/server/middleware"
	"annadata-backend/internal/users"
)

// caller is how a test request identifies itself.
type caller func(*http.Request)

func anonymous(*http.Request) {}

func bearer(t *testing.T, userID string) caller {
	t.Helper()
	token, err := sharedauth.SignJWT(sharedauth.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: userID}})
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func emailCookie(email string) caller {
	return func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "userEmail", Value: email}) }
}

func newTestRouter(t *testing.T) (*gin.Engine, users.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("ENV", "dev")
	t.Setenv("JWT_SECRET", "profiles-test-secret")
	userSvc := users.NewService(users.NewMemoryRepo())
	user, err := userSvc.Sync(context.Background(), users.SyncInput{ClerkID: "c1", Email: "ana@example.com", Name: "Ana"})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	router := gin.New()
	router.Use(middleware.Auth())
	NewHandler(NewService(NewMemoryRepo()), userSvc).RegisterRoutes(router.Group("/api/v1"))
	return router, user
}

func do(router *gin.Engine, method, body string, as caller) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != "" {
		reader = bytes.NewBufferString(body)
	} else {
		reader = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, "/api/v1/profile", reader)
	req.Header.Set("Content-Type", "application/json")
	as(req)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestProfileHandlerRoundTrip(t *testing.T) {
	router, user := newTestRouter(t)
	ana := bearer(t, user.ID)

	if resp := do(router, http.MethodGet, "", ana); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 before save, got %d", resp.Code)
	}

	resp := do(router, http.MethodPut, `{"settings":{"height":175,"activityLevel":"high"},"fitness":{"age":28}}`, ana)
	if resp.Code != http.StatusOK {
		t.Fatalf("PUT status = %d body=%s", resp.Code, resp.Body.String())
	}

	resp = do(router, http.MethodGet, "", ana)
	if resp.Code != http.StatusOK {
		t.Fatalf("GET status = %d", resp.Code)
	}
	var body struct {
		Profile Profile `json:"profile"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Profile.UserID != user.ID || body.Profile.Settings.HeightCm != 175 || body.Profile.Fitness.Age != 28 {
		t.Fatalf("profile = %+v", body.Profile)
	}
}

func TestProfileHandlerErrors(t *testing.T) {
	router, user := newTestRouter(t)
	ana := bearer(t, user.ID)
	tests := []struct {
		name       string
		method     string
		body       string
		as         caller
		wantStatus int
		wantCode   string
	}{
		{name: "anonymous get", method: http.MethodGet, as: anonymous, wantStatus: http.StatusUnauthorized, wantCode: "unauthorized"},
		{name: "anonymous put", method: http.MethodPut, body: `{}`, as: anonymous, wantStatus: http.StatusUnauthorized, wantCode: "unauthorized"},
		{name: "cookie get", method: http.MethodGet, as: emailCookie("ana@example.com"), wantStatus: http.StatusUnauthorized, wantCode: "unauthorized"},
		{name: "unknown subject", method: http.MethodGet, as: bearer(t, "missing-user"), wantStatus: http.StatusNotFound, wantCode: "not_found"},
		{name: "bad json", method: http.MethodPut, body: `{`, as: ana, wantStatus: http.StatusBadRequest, wantCode: "invalid_request"},
		{name: "validation", method: http.MethodPut, body: `{"fitness":{"age":-2}}`, as: ana, wantStatus: http.StatusBadRequest, wantCode: "validation_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(router, tt.method, tt.body, tt.as)
			if resp.Code != tt.wantStatus {
				t.Fatalf("status = %d body=%s", resp.Code, resp.Body.String())
			}
			var body struct {
				Error struct {
					Code string `json:"code"`
				} `json:"error"`
			}
			if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error.Code != tt.wantCode {
				t.Fatalf("code = %q", body.Error.Code)
			}
		})
	}
}

func TestProfilePutRejectsForgedEmailCookie(t *testing.T) {
	router, user := newTestRouter(t)
	ana := bearer(t, user.ID)

	if resp := do(router, http.MethodPut, `{"settings":{"height":175}}`, ana); resp.Code != http.StatusOK {
		t.Fatalf("owner PUT status = %d", resp.Code)
	}

	resp := do(router, http.MethodPut, `{"settings":{"height":150},"fitness":{"age":99}}`, emailCookie("ana@example.com"))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("cookie-only PUT status = %d, want 401", resp.Code)
	}

	resp = do(router, http.MethodGet, "", ana)
	var body struct {
		Profile Profile `json:"profile"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Profile.Settings.HeightCm != 175 || body.Profile.Fitness.Age != 0 {
		t.Fatalf("profile overwritten: %+v", body.Profile)
	}
}
