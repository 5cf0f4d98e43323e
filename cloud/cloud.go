// Package cloud abstracts the identity and liked-songs sync service behind
// a minimal capability interface, so the concrete backing service is
// swappable without touching the player core.
package cloud

import (
	"context"
	"errors"
	"sync"

	"iretro/core"
)

// ErrNotConfigured gates every operation when the service credentials are
// absent. The UI treats it as "local-only mode", not as a failure.
var ErrNotConfigured = errors.New("cloud sync not configured")

// User is the authenticated identity.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is a signed-in user plus the token that authorizes sync calls.
type Session struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// SignUpResult distinguishes the three sign-up outcomes: a session means
// the account was auto-confirmed and is signed in; a user without a
// session means a confirmation email is pending; neither means the
// service answered ambiguously and the UI falls through silently.
type SignUpResult struct {
	Session *Session
	User    *User
}

// Service is the capability surface the player depends on.
type Service interface {
	// Configured reports whether credentials are present at all.
	Configured() bool

	SignUp(ctx context.Context, email, password string) (SignUpResult, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, session *Session) error

	// GetUser validates a session token against the service and returns
	// the identity it belongs to.
	GetUser(ctx context.Context, session *Session) (*User, error)

	// FetchLikedSongs returns the user's synced list, or nil when no
	// record exists yet (which is not an error).
	FetchLikedSongs(ctx context.Context, session *Session) ([]core.Track, error)

	// SyncLikedSongs replaces the user's record wholesale.
	SyncLikedSongs(ctx context.Context, session *Session, songs []core.Track) error
}

// Disabled is the Service used when no credentials were supplied.
type Disabled struct{}

func (Disabled) Configured() bool { return false }

func (Disabled) SignUp(context.Context, string, string) (SignUpResult, error) {
	return SignUpResult{}, ErrNotConfigured
}

func (Disabled) SignIn(context.Context, string, string) (*Session, error) {
	return nil, ErrNotConfigured
}

func (Disabled) SignOut(context.Context, *Session) error { return ErrNotConfigured }

func (Disabled) GetUser(context.Context, *Session) (*User, error) {
	return nil, ErrNotConfigured
}

func (Disabled) FetchLikedSongs(context.Context, *Session) ([]core.Track, error) {
	return nil, ErrNotConfigured
}

func (Disabled) SyncLikedSongs(context.Context, *Session, []core.Track) error {
	return ErrNotConfigured
}

// SessionRef shares the current session between the UI goroutine and
// background sync pushes.
type SessionRef struct {
	mu sync.RWMutex
	s  *Session
}

func (r *SessionRef) Get() *Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.s
}

func (r *SessionRef) Set(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.s = s
}
