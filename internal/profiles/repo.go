package profiles

import "context"

type Repo interface {
	Get(ctx context.Context, userID string) (Profile, error)
	// Upsert stores p and returns it with the stored timestamps.
	Upsert(ctx context.Context, p Profile) (Profile, error)
}
