package resumes

import "context"

// Store holds the current resume of each session.
type Store interface {
	// Put replaces the session's resume entirely.
	Put(ctx context.Context, resume Resume) error
	// Get returns ErrNotFound when the session has no upload.
	Get(ctx context.Context, sessionID string) (Resume, error)
}
