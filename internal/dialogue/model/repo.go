package model

import "context"

// SessionRepository stores per-user sessions. Implementations must tolerate
// concurrent calls; per-user write ordering is the engine's responsibility.
type SessionRepository interface {
	// Get retrieves the session for userID. A missing session is (nil, nil);
	// the engine creates sessions lazily.
	Get(ctx context.Context, userID string) (*Session, error)

	// Save persists the session under its UserID, overwriting any previous state.
	Save(ctx context.Context, session *Session) error

	// Delete removes the session for userID. Deleting a missing session is a no-op.
	Delete(ctx context.Context, userID string) error

	// Count returns the number of stored sessions.
	Count(ctx context.Context) (int, error)
}
