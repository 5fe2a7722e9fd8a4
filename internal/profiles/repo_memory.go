package profiles

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu       sync.RWMutex
	profiles map[string][]byte
	now      func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		profiles: make(map[string][]byte),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepo) Get(ctx context.Context, userID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	raw, ok := r.profiles[userID]
	r.mu.RUnlock()
	if !ok {
		return Profile{}, ErrNotFound
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Upsert stores a JSON snapshot so callers never share slices with the repo.
func (r *MemoryRepo) Upsert(ctx context.Context, p Profile) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	p.CreatedAt = now
	if raw, ok := r.profiles[p.UserID]; ok {
		var existing Profile
		if err := json.Unmarshal(raw, &existing); err == nil {
			p.CreatedAt = existing.CreatedAt
		}
	}
	p.UpdatedAt = now
	raw, err := json.Marshal(p)
	if err != nil {
		return Profile{}, err
	}
	r.profiles[p.UserID] = raw
	return p, nil
}
