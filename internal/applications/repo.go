package applications

import "context"

// Repo stores tracked applications.
type Repo interface {
	Create(ctx context.Context, app Application) error
	GetByID(ctx context.Context, id string) (Application, error)
	// List returns applications ordered by applied date descending, then by
	// creation time descending for same-day entries.
	List(ctx context.Context) ([]Application, error)
	Update(ctx context.Context, app Application) error
	Delete(ctx context.Context, id string) error
}
