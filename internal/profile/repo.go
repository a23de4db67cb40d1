package profile

import "context"

// Repo stores the single user profile.
type Repo interface {
	Get(ctx context.Context) (Profile, error)
	Save(ctx context.Context, p Profile) error
}
