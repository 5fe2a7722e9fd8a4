package users

import (
	"context"
	"slices"
	"strings"
	"sync"
)

type MemoryRepo struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{users: make(map[string]User)}
}

func (r *MemoryRepo) FindByClerkIDOrEmail(ctx context.Context, clerkID, email string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var byEmail *User
	for _, user := range r.users {
		if clerkID != "" && user.ClerkID == clerkID {
			return cloneUser(user), nil
		}
		if email != "" && strings.EqualFold(user.Email, email) && byEmail == nil {
			u := user
			byEmail = &u
		}
	}
	if byEmail != nil {
		return cloneUser(*byEmail), nil
	}
	return User{}, ErrNotFound
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[userID]
	if !ok {
		return User{}, ErrNotFound
	}
	return cloneUser(user), nil
}

func (r *MemoryRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return cloneUser(user), nil
		}
	}
	return User{}, ErrNotFound
}

func (r *MemoryRepo) Create(ctx context.Context, user User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; ok {
		return ErrConflict
	}
	if r.takenLocked(user) {
		return ErrConflict
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, user User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return ErrNotFound
	}
	if r.takenLocked(user) {
		return ErrConflict
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

// takenLocked reports whether another user already owns user's email or
// username.
func (r *MemoryRepo) takenLocked(user User) bool {
	for id, other := range r.users {
		if id == user.ID {
			continue
		}
		if strings.EqualFold(other.Email, user.Email) {
			return true
		}
		if user.Username != "" && other.Username == user.Username {
			return true
		}
	}
	return false
}

func cloneUser(u User) User {
	u.Achievements = slices.Clone(u.Achievements)
	u.Goals = slices.Clone(u.Goals)
	return u
}
