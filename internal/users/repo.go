package users

import "context"

type Repo interface {
	// FindByClerkIDOrEmail returns the user matching either key. A clerkID
	// match wins over an email match.
	FindByClerkIDOrEmail(ctx context.Context, clerkID, email string) (User, error)
	GetByID(ctx context.Context, userID string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) error
	Update(ctx context.Context, user User) error
}
