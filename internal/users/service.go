package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"annadata-backend/internal/shared/telemetry"
)

type Service struct {
	Repo  Repo
	now   func() time.Time
	newID func() string
}

func NewService(repo Repo) *Service {
	return &Service{
		Repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

// Sync records the identity the front end received from its sign-in
// provider. An existing account matched by clerk id or email is refreshed;
// otherwise a new one is created with default settings.
func (s *Service) Sync(ctx context.Context, in SyncInput) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	in = trimInput(in)
	if in.ClerkID == "" || in.Email == "" {
		return User{}, fmt.Errorf("%w: clerkId and email are required", ErrInvalidInput)
	}
	if err := validateIdentity(in.Email, in.Name); err != nil {
		return User{}, err
	}

	now := s.now()
	existing, err := s.Repo.FindByClerkIDOrEmail(ctx, in.ClerkID, in.Email)
	switch {
	case errors.Is(err, ErrNotFound):
		if in.Name == "" {
			in.Name = nameFromEmail(in.Email)
		}
		user := newUser(s.newID(), in, now)
		if err := s.Repo.Create(ctx, user); err != nil {
			return User{}, fmt.Errorf("create user: %w", err)
		}
		telemetry.Info("users.created", map[string]any{"user_id": user.ID})
		return user, nil
	case err != nil:
		return User{}, fmt.Errorf("find user: %w", err)
	}

	existing.ClerkID = in.ClerkID
	existing.Email = in.Email
	if in.Name != "" {
		existing.Name = in.Name
	}
	if in.Username != "" {
		existing.Username = in.Username
	}
	if in.ProfileImage != "" {
		existing.ProfileImage = in.ProfileImage
	}
	existing.LastLogin = now
	existing.UpdatedAt = now
	if err := s.Repo.Update(ctx, existing); err != nil {
		return User{}, fmt.Errorf("update user: %w", err)
	}
	return existing, nil
}

// UpsertFromOAuth creates or refreshes the account behind a Google sign-in.
func (s *Service) UpsertFromOAuth(ctx context.Context, email, name, picture string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" {
		return User{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len([]rune(name)) > maxNameLength {
		name = string([]rune(name)[:maxNameLength])
	}

	now := s.now()
	existing, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		if name == "" {
			name = nameFromEmail(email)
		}
		user := newUser(s.newID(), SyncInput{Name: name, Email: email, ProfileImage: picture}, now)
		if err := s.Repo.Create(ctx, user); err != nil {
			return User{}, fmt.Errorf("create user: %w", err)
		}
		return user, nil
	}
	if err != nil {
		return User{}, fmt.Errorf("find user: %w", err)
	}
	if name != "" {
		existing.Name = name
	}
	if picture != "" {
		existing.ProfileImage = picture
	}
	existing.LastLogin = now
	existing.UpdatedAt = now
	if err := s.Repo.Update(ctx, existing); err != nil {
		return User{}, fmt.Errorf("update user: %w", err)
	}
	return existing, nil
}

// Current resolves the signed-in caller. A token subject is preferred over
// the session email.
func (s *Service) Current(ctx context.Context, userID, email string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	userID = strings.TrimSpace(userID)
	email = strings.TrimSpace(email)
	if userID != "" && !strings.HasPrefix(userID, "guest:") {
		return s.Repo.GetByID(ctx, userID)
	}
	if email != "" {
		return s.Repo.GetByEmail(ctx, email)
	}
	return User{}, ErrNoIdentity
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, userID)
}

func trimInput(in SyncInput) SyncInput {
	in.ClerkID = strings.TrimSpace(in.ClerkID)
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Username = strings.TrimSpace(in.Username)
	in.ProfileImage = strings.TrimSpace(in.ProfileImage)
	return in
}

func validateIdentity(email, name string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: please provide a valid email", ErrInvalidInput)
	}
	if len([]rune(name)) > maxNameLength {
		return fmt.Errorf("%w: name cannot be more than %d characters", ErrInvalidInput, maxNameLength)
	}
	return nil
}

func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}
