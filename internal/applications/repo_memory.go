package applications

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo keeps applications in process memory for database-less runs.
type MemoryRepo struct {
	mu   sync.RWMutex
	apps map[string]Application
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{apps: make(map[string]Application)}
}

func (r *MemoryRepo) Create(ctx context.Context, app Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[app.ID] = app
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, ok := r.apps[id]
	if !ok {
		return Application{}, ErrNotFound
	}
	return app, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Application, 0, len(r.apps))
	for _, app := range r.apps {
		out = append(out, app)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].AppliedOn.Equal(out[j].AppliedOn) {
			return out[i].AppliedOn.After(out[j].AppliedOn)
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MemoryRepo) Update(ctx context.Context, app Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[app.ID]; !ok {
		return ErrNotFound
	}
	r.apps[app.ID] = app
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[id]; !ok {
		return ErrNotFound
	}
	delete(r.apps, id)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
