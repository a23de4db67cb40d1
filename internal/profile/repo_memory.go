package profile

import (
	"context"
	"sync"
)

// MemoryRepo keeps the profile in process memory. It backs the API when no
// database is configured; contents are lost on restart.
type MemoryRepo struct {
	mu      sync.RWMutex
	profile Profile
	saved   bool
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Get(ctx context.Context) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.saved {
		return Profile{}, ErrNotFound
	}
	p := r.profile
	p.WorkExperience = append([]WorkExperience(nil), r.profile.WorkExperience...)
	return p, nil
}

func (r *MemoryRepo) Save(ctx context.Context, p Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.WorkExperience = append([]WorkExperience(nil), p.WorkExperience...)
	r.profile = p
	r.saved = true
	return nil
}
