package grocery

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"annadata-backend/internal/grocery/suggestions"
	"annadata-backend/internal/profiles"
	"annadata-backend/internal/shared/server/middleware"
	"annadata-backend/internal/users"
)

type fixture struct {
	router   *gin.Engine
	users    *users.Service
	profiles *profiles.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	userSvc := users.NewService(users.NewMemoryRepo())
	profileSvc := profiles.NewService(profiles.NewMemoryRepo())
	svc := NewService(profileSvc, rand.New(rand.NewPCG(1, 2)))

	router := gin.New()
	router.Use(middleware.Auth())
	NewHandler(svc, userSvc).RegisterRoutes(router.Group("/api/v1"))
	return fixture{router: router, users: userSvc, profiles: profileSvc}
}

func (f fixture) get(target, email string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if email != "" {
		req.AddCookie(&http.Cookie{Name: "userEmail", Value: email})
	}
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	return resp
}

func legacyMessage(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	msg, _ := body["message"].(string)
	return msg
}

func TestHealthSuggestionsErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	if _, err := f.users.Sync(ctx, users.SyncInput{ClerkID: "c1", Email: "noprofile@example.com"}); err != nil {
		t.Fatalf("Sync: %v", err)
	}

	tests := []struct {
		name       string
		email      string
		guest      bool
		wantStatus int
		wantMsg    string
	}{
		{name: "anonymous", wantStatus: http.StatusUnauthorized, wantMsg: "Unauthorized - User not logged in"},
		{name: "guest", guest: true, wantStatus: http.StatusUnauthorized, wantMsg: "Unauthorized - User not logged in"},
		{name: "unknown user", email: "ghost@example.com", wantStatus: http.StatusNotFound, wantMsg: "User not found"},
		{name: "missing profile", email: "noprofile@example.com", wantStatus: http.StatusNotFound, wantMsg: "Profile data not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/grocery/health-suggestions", nil)
			if tt.email != "" {
				req.AddCookie(&http.Cookie{Name: "userEmail", Value: tt.email})
			}
			if tt.guest {
				req.Header.Set("X-Guest-Id", "g-1")
			}
			resp := httptest.NewRecorder()
			f.router.ServeHTTP(resp, req)
			if resp.Code != tt.wantStatus {
				t.Fatalf("status = %d body=%s", resp.Code, resp.Body.String())
			}
			if msg := legacyMessage(t, resp); msg != tt.wantMsg {
				t.Fatalf("message = %q", msg)
			}
		})
	}
}

func TestHealthSuggestionsSuccess(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user, err := f.users.Sync(ctx, users.SyncInput{ClerkID: "c1", Email: "ana@example.com", Name: "Ana"})
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	_, err = f.profiles.Save(ctx, user.ID, profiles.Profile{
		Settings: profiles.Settings{HeightCm: 170, DietaryRestrictions: []string{"vegan"}},
		HealthData: suggestions.HealthData{
			Weight: []suggestions.Reading{{Value: 80}},
			Macros: []suggestions.Macro{{Name: "Protein", Value: 15}},
		},
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	resp := f.get("/api/v1/grocery/health-suggestions?existing=Tofu,%20quinoa", "ana@example.com")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d body=%s", resp.Code, resp.Body.String())
	}
	var body HealthResult
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success {
		t.Fatalf("success = false")
	}
	if n := len(body.Suggestions); n < 5 || n > 7 {
		t.Fatalf("expected 5-7 suggestions, got %d", n)
	}
	for _, s := range body.Suggestions {
		switch strings.ToLower(s.Name) {
		case "tofu", "quinoa", "chicken breast", "fish", "greek yogurt":
			t.Fatalf("unexpected suggestion %q", s.Name)
		}
	}
	if body.UserData.BMI != 27.7 || body.UserData.WeightKg != 80 {
		t.Fatalf("userData = %+v", body.UserData)
	}
}

func TestSuggest(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "diet only", body: `{"currentDiet":"keto"}`, wantStatus: http.StatusOK},
		{name: "list only", body: `{"existingList":[{"name":"Apples"}]}`, wantStatus: http.StatusOK},
		{name: "neither", body: `{"currentDiet":"  ","existingList":[]}`, wantStatus: http.StatusBadRequest},
		{name: "bad json", body: `nope`, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/grocery/suggest", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			resp := httptest.NewRecorder()
			f.router.ServeHTTP(resp, req)
			if resp.Code != tt.wantStatus {
				t.Fatalf("status = %d body=%s", resp.Code, resp.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				if msg := legacyMessage(t, resp); msg != "Please provide current diet information or an existing grocery list." {
					t.Fatalf("message = %q", msg)
				}
				return
			}
			var body struct {
				Suggestions []string `json:"suggestions"`
			}
			if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if n := len(body.Suggestions); n < 5 || n > 7 {
				t.Fatalf("expected 5-7 suggestions, got %d", n)
			}
			for _, s := range body.Suggestions {
				if s == "Apples" && strings.Contains(tt.body, "Apples") {
					t.Fatalf("existing item suggested")
				}
			}
		})
	}
}

func TestParseExisting(t *testing.T) {
	got := ParseExisting(" Tofu, ,quinoa,")
	if len(got) != 2 || got[0].Name != "Tofu" || got[1].Name != "quinoa" {
		t.Fatalf("ParseExisting = %+v", got)
	}
	if ParseExisting("") != nil {
		t.Fatalf("expected nil for empty input")
	}
}
