package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"mergingtonactivities/internal/domain"

	"github.com/stretchr/testify/require"
)

func newTestRepo() domain.ActivityRepository {
	return NewActivityRepository([]*domain.Activity{
		{
			Name:            "Basketball",
			Description:     "Team basketball practice and games",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"alex@mergington.edu"},
		},
		{
			Name:            "Soccer",
			Description:     "Outdoor soccer matches and training",
			Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"sarah@mergington.edu", "james@mergington.edu"},
		},
	})
}

func TestActivityRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	activities, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	require.Equal(t, 15, activities["Basketball"].MaxParticipants)
	require.Equal(t, []string{"alex@mergington.edu"}, activities["Basketball"].Participants)

	// Mutating the returned copy must not touch repository state.
	activities["Basketball"].Participants[0] = "tampered@mergington.edu"
	fresh, err := repo.GetByName(ctx, "Basketball")
	require.NoError(t, err)
	require.Equal(t, []string{"alex@mergington.edu"}, fresh.Participants)
}

func TestActivityRepository_GetByName(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	a, err := repo.GetByName(ctx, "Soccer")
	require.NoError(t, err)
	require.Equal(t, "Soccer", a.Name)

	_, err = repo.GetByName(ctx, "NonExistent")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityRepository_AddParticipant(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		activity string
		email    string
		wantErr  error
	}{
		{
			name:     "success",
			activity: "Basketball",
			email:    "newstudent@mergington.edu",
		},
		{
			name:     "duplicate",
			activity: "Basketball",
			email:    "alex@mergington.edu",
			wantErr:  domain.ErrAlreadySignedUp,
		},
		{
			name:     "unknown activity",
			activity: "NonExistent",
			email:    "newstudent@mergington.edu",
			wantErr:  domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo()
			err := repo.AddParticipant(ctx, tt.activity, tt.email)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				// Failure paths leave the roster unchanged.
				if a, gerr := repo.GetByName(ctx, "Basketball"); gerr == nil {
					require.Equal(t, []string{"alex@mergington.edu"}, a.Participants)
				}
				return
			}
			require.NoError(t, err)
			a, err := repo.GetByName(ctx, tt.activity)
			require.NoError(t, err)
			require.Equal(t, []string{"alex@mergington.edu", tt.email}, a.Participants)
		})
	}
}

func TestActivityRepository_AddParticipant_PreservesSignupOrder(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo()

	emails := []string{"a@mergington.edu", "b@mergington.edu", "c@mergington.edu"}
	for _, e := range emails {
		require.NoError(t, repo.AddParticipant(ctx, "Soccer", e))
	}

	a, err := repo.GetByName(ctx, "Soccer")
	require.NoError(t, err)
	require.Equal(t,
		append([]string{"sarah@mergington.edu", "james@mergington.edu"}, emails...),
		a.Participants)
}

func TestActivityRepository_AddParticipant_CapacityNotEnforced(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository([]*domain.Activity{
		{Name: "Tiny Club", MaxParticipants: 1, Participants: []string{"first@mergington.edu"}},
	})

	// Signing up past max_participants succeeds; capacity is informational.
	require.NoError(t, repo.AddParticipant(ctx, "Tiny Club", "second@mergington.edu"))
	a, err := repo.GetByName(ctx, "Tiny Club")
	require.NoError(t, err)
	require.Len(t, a.Participants, 2)
}

func TestActivityRepository_RemoveParticipant(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		activity string
		email    string
		wantErr  error
	}{
		{
			name:     "success",
			activity: "Soccer",
			email:    "sarah@mergington.edu",
		},
		{
			name:     "not registered",
			activity: "Soccer",
			email:    "ghost@mergington.edu",
			wantErr:  domain.ErrNotRegistered,
		},
		{
			name:     "unknown activity",
			activity: "NonExistent",
			email:    "sarah@mergington.edu",
			wantErr:  domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo()
			err := repo.RemoveParticipant(ctx, tt.activity, tt.email)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			a, err := repo.GetByName(ctx, tt.activity)
			require.NoError(t, err)
			require.Equal(t, []string{"james@mergington.edu"}, a.Participants)

			// A second removal of the same email fails.
			require.ErrorIs(t,
				repo.RemoveParticipant(ctx, tt.activity, tt.email),
				domain.ErrNotRegistered)
		})
	}
}

func TestActivityRepository_ConcurrentSignups(t *testing.T) {
	ctx := context.Background()
	repo := NewActivityRepository([]*domain.Activity{
		{Name: "Gym Class", MaxParticipants: 30, Participants: []string{}},
	})

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("student%d@mergington.edu", i)
			// Every goroutine signs up twice; exactly one attempt may win.
			_ = repo.AddParticipant(ctx, "Gym Class", email)
			_ = repo.AddParticipant(ctx, "Gym Class", email)
		}(i)
	}
	wg.Wait()

	a, err := repo.GetByName(ctx, "Gym Class")
	require.NoError(t, err)
	require.Len(t, a.Participants, n)

	seen := make(map[string]struct{}, n)
	for _, e := range a.Participants {
		_, dup := seen[e]
		require.False(t, dup, "duplicate participant %s", e)
		seen[e] = struct{}{}
	}
}
