package domain

import "context"

// Activity is a named extracurricular activity with a participant roster.
// Name is the unique key and never changes after seeding. Participants holds
// unique emails in signup order. MaxParticipants is informational only; the
// roster is allowed to grow past it.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NewActivity returns an Activity with an empty roster.
func NewActivity(name, description, schedule string, maxParticipants int) *Activity {
	return &Activity{
		Name:            name,
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    []string{},
	}
}

// ActivityRepository defines storage operations for the activity registry.
// AddParticipant and RemoveParticipant perform their membership check and
// mutation atomically; on any error the stored roster is unchanged.
type ActivityRepository interface {
	// List returns the full catalog keyed by activity name. Returned
	// activities are copies and safe to read without further locking.
	List(ctx context.Context) (map[string]*Activity, error)
	GetByName(ctx context.Context, name string) (*Activity, error)
	// AddParticipant appends email to the activity's roster. Returns
	// ErrNotFound for an unknown activity, ErrAlreadySignedUp when the
	// email is already on the roster.
	AddParticipant(ctx context.Context, name, email string) error
	// RemoveParticipant removes email from the activity's roster. Returns
	// ErrNotFound for an unknown activity, ErrNotRegistered when the email
	// is not on the roster.
	RemoveParticipant(ctx context.Context, name, email string) error
}

// ActivityService defines the operations exposed over HTTP.
type ActivityService interface {
	ListActivities(ctx context.Context) (map[string]*Activity, error)
	// Signup enrolls email in the named activity and returns a confirmation
	// message referencing both.
	Signup(ctx context.Context, activityName, email string) (string, error)
	// Unregister removes email from the named activity and returns a
	// confirmation message referencing both.
	Unregister(ctx context.Context, activityName, email string) (string, error)
}
