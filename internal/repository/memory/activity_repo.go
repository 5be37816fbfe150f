package memory

import (
	"context"
	"slices"
	"sync"

	"mergingtonactivities/internal/domain"
)

// activityRepository is an in-process implementation of
// domain.ActivityRepository. The catalog is fixed at construction; only
// rosters mutate. A single RWMutex serializes every check-then-mutate so
// concurrent handler dispatch cannot lose updates or duplicate entries.
type activityRepository struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewActivityRepository creates a registry holding the given activities,
// keyed by name. The input is deep-copied so the caller cannot alias
// repository state.
func NewActivityRepository(activities []*domain.Activity) domain.ActivityRepository {
	m := make(map[string]*domain.Activity, len(activities))
	for _, a := range activities {
		m[a.Name] = copyActivity(a)
	}
	return &activityRepository{activities: m}
}

func (r *activityRepository) List(ctx context.Context) (map[string]*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]*domain.Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = copyActivity(a)
	}
	return out, nil
}

func (r *activityRepository) GetByName(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyActivity(a), nil
}

func (r *activityRepository) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return domain.ErrNotFound
	}
	if slices.Contains(a.Participants, email) {
		return domain.ErrAlreadySignedUp
	}
	// Capacity is tracked but not enforced; rosters may exceed MaxParticipants.
	a.Participants = append(a.Participants, email)
	return nil
}

func (r *activityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return domain.ErrNotFound
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return domain.ErrNotRegistered
	}
	a.Participants = slices.Delete(a.Participants, i, i+1)
	return nil
}

func copyActivity(a *domain.Activity) *domain.Activity {
	c := *a
	c.Participants = make([]string, len(a.Participants))
	copy(c.Participants, a.Participants)
	return &c
}
