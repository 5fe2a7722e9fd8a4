package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
)

var userColumns = []string{
	"id", "clerk_id", "name", "email", "username", "profile_image", "bio", "location", "theme",
	"settings", "stats", "achievements", "goals", "subscription_tier", "last_login", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return &PGRepo{DB: db}, mock
}

func TestPGRepoGetByIDDecodesDocuments(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows(userColumns).AddRow(
		"u1", nil, "Ana", "ana@example.com", "ana", "", "bio", "", "primary",
		[]byte(`{"darkMode":true,"language":"english"}`),
		[]byte(`{"daysTracked":4,"nutritionScore":61}`),
		[]byte(`[1,2]`),
		[]byte(`["drink water"]`),
		"free", now, now, now,
	)
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").WithArgs("u1").WillReturnRows(rows)

	user, err := repo.GetByID(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if user.ClerkID != "" || user.Username != "ana" {
		t.Fatalf("nullable columns decoded wrong: %+v", user)
	}
	if !user.Settings.DarkMode || user.Settings.Language != "english" {
		t.Fatalf("settings = %+v", user.Settings)
	}
	if user.Stats.DaysTracked != 4 || user.Stats.NutritionScore != 61 {
		t.Fatalf("stats = %+v", user.Stats)
	}
	if len(user.Achievements) != 2 || len(user.Goals) != 1 {
		t.Fatalf("arrays = %v %v", user.Achievements, user.Goals)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByEmailNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM users WHERE lower\\(email\\)").
		WithArgs("none@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns))

	if _, err := repo.GetByEmail(context.Background(), "none@example.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoFindByClerkIDOrEmailArgs(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM users WHERE (.+) clerk_id = \\$1(.+) OR lower\\(email\\) = lower\\(\\$2\\)").
		WithArgs("c1", "ana@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			"u1", "c1", "Ana", "ana@example.com", nil, "", "", "", "primary",
			nil, nil, nil, nil, "free", now, now, now,
		))

	user, err := repo.FindByClerkIDOrEmail(context.Background(), "c1", "ana@example.com")
	if err != nil {
		t.Fatalf("FindByClerkIDOrEmail: %v", err)
	}
	if user.Achievements == nil || user.Goals == nil {
		t.Fatalf("null documents should decode to empty slices")
	}
}

func TestPGRepoCreateEncodesDocuments(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()
	user := newUser("u1", SyncInput{ClerkID: "c1", Name: "Ana", Email: "ana@example.com"}, now)

	mock.ExpectExec("INSERT INTO users").
		WithArgs(
			"u1", "c1", "Ana", "ana@example.com",
			nil, // username
			"", user.Bio, "", "primary",
			[]byte(`{"emailNotifications":true,"pushNotifications":true,"weeklyReports":true,"darkMode":true,"language":"english","unitSystem":"metric","privacyMode":"friends"}`),
			[]byte(`{"totalRecipes":0,"totalWorkouts":0,"daysTracked":1,"goalsMet":0,"streakDays":1,"caloriesBurned":0,"nutritionScore":50}`),
			[]byte(`[]`),
			[]byte(`[]`),
			"free", now, now, now,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateMapsUniqueViolation(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("INSERT INTO users").WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), User{ID: "u1", Email: "a@example.com"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestPGRepoUpdateMissingRow(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec("UPDATE users SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), User{ID: "missing", Email: "a@example.com"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
