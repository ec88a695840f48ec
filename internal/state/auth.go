package state

import (
	"context"
	"strconv"
	"time"

	"github.com/abertrand/vitrine/internal/apperrors"
	"github.com/abertrand/vitrine/internal/logging"
	"github.com/abertrand/vitrine/internal/models"
	"github.com/abertrand/vitrine/internal/repositories/session"
	"github.com/abertrand/vitrine/internal/repositories/users"
)

// Status is the authentication state. A machine starts in StatusUnknown and
// leaves it on the first CheckAuth, login, or signup.
type Status int

const (
	StatusUnknown Status = iota
	StatusAuthenticated
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

// AuthSnapshot is what the UI reads: the session user (nil when none), the
// machine status, a spinner flag, and the last normalized error.
type AuthSnapshot struct {
	User      *models.SessionUser
	Status    Status
	IsLoading bool
	Err       *apperrors.AppError
}

// IsAuthenticated reports whether a session user is present.
func (s AuthSnapshot) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated
}

// Auth is the authentication state machine.
type Auth struct {
	users    users.Repository
	sessions session.Repository
	log      logging.Logger

	// now is a seam for tests; defaults to time.Now.
	now func() time.Time

	state *emitter[AuthSnapshot]
}

// NewAuth returns an Auth in StatusUnknown.
func NewAuth(userRepo users.Repository, sessionRepo session.Repository, log logging.Logger) *Auth {
	return &Auth{
		users:    userRepo,
		sessions: sessionRepo,
		log:      log,
		now:      time.Now,
		state:    newEmitter(AuthSnapshot{Status: StatusUnknown}),
	}
}

// Snapshot returns the current state.
func (a *Auth) Snapshot() AuthSnapshot {
	return a.state.get()
}

// CurrentUser returns the session user, or nil when unauthenticated.
func (a *Auth) CurrentUser() *models.SessionUser {
	return a.state.get().User
}

// Subscribe registers fn to be called with every state change and returns
// the unsubscribe function.
func (a *Auth) Subscribe(fn func(AuthSnapshot)) func() {
	return a.state.subscribe(fn)
}

// CheckAuth restores a persisted session. It returns true when a session was
// found. A read or decode failure records the normalized error and leaves
// the authentication status untouched.
func (a *Auth) CheckAuth(ctx context.Context) bool {
	u, err := a.sessions.Get(ctx)
	if err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
		appErr := apperrors.Normalize(err)
		a.state.update(func(s *AuthSnapshot) { s.Err = appErr })
		return false
	}

	if u == nil {
		a.state.update(func(s *AuthSnapshot) {
			s.Status = StatusUnauthenticated
			s.User = nil
		})
		return false
	}

	a.log.Info(ctx, "session restored", "email", u.Email)
	a.state.update(func(s *AuthSnapshot) {
		s.Status = StatusAuthenticated
		s.User = u
		s.Err = nil
	})
	return true
}

// Login authenticates against the user store and persists the session.
// It returns true on success. The loading flag is cleared on every exit.
func (a *Auth) Login(ctx context.Context, email, password string) bool {
	a.state.update(func(s *AuthSnapshot) {
		s.IsLoading = true
		s.Err = nil
	})

	record, err := a.users.Authenticate(ctx, email, password)
	if err != nil {
		return a.loginFailed(ctx, err)
	}

	u := &models.SessionUser{ID: record.ID, Name: record.Username, Email: record.Email}
	if u.ID == "" {
		// Seeded accounts predate id assignment.
		u.ID = strconv.FormatInt(a.now().UnixMilli(), 10)
	}

	if err := a.sessions.Set(ctx, u); err != nil {
		return a.loginFailed(ctx, err)
	}

	a.log.Info(ctx, "login successful", "email", u.Email)
	a.state.update(func(s *AuthSnapshot) {
		s.IsLoading = false
		s.Status = StatusAuthenticated
		s.User = u
		s.Err = nil
	})
	return true
}

func (a *Auth) loginFailed(ctx context.Context, err error) bool {
	a.log.Warn(ctx, "login failed", "error", err)
	appErr := apperrors.Normalize(err)
	a.state.update(func(s *AuthSnapshot) {
		s.IsLoading = false
		s.Status = StatusUnauthenticated
		s.User = nil
		s.Err = appErr
	})
	return false
}

// Signup registers a new account and logs it in with the same credentials.
// A registration failure short-circuits before the login attempt.
func (a *Auth) Signup(ctx context.Context, name, email, password string) bool {
	a.state.update(func(s *AuthSnapshot) {
		s.IsLoading = true
		s.Err = nil
	})

	if err := a.users.Register(ctx, email, name, password); err != nil {
		a.log.Warn(ctx, "signup failed", "error", err)
		appErr := apperrors.NormalizeAs(err, apperrors.KindSignupFailed)
		a.state.update(func(s *AuthSnapshot) {
			s.IsLoading = false
			s.Status = StatusUnauthenticated
			s.User = nil
			s.Err = appErr
		})
		return false
	}

	return a.Login(ctx, email, password)
}

// Logout clears the persisted session. The in-memory transition to
// StatusUnauthenticated happens even when the storage clear fails; the
// failure is recorded as the error state.
func (a *Auth) Logout(ctx context.Context) {
	var appErr *apperrors.AppError
	if err := a.sessions.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear persisted session", "error", err)
		appErr = apperrors.Normalize(err)
	}

	a.state.update(func(s *AuthSnapshot) {
		s.Status = StatusUnauthenticated
		s.User = nil
		s.Err = appErr
	})
}

// UpdateProfile merges the given fields into the account record and, on
// success, into both the persisted and in-memory session. It requires an
// authenticated session.
func (a *Auth) UpdateProfile(ctx context.Context, update users.Update) {
	snap := a.state.get()
	if !snap.IsAuthenticated() || snap.User == nil {
		appErr := apperrors.Normalize(apperrors.ErrNoUserLoggedIn)
		a.state.update(func(s *AuthSnapshot) { s.Err = appErr })
		return
	}
	current := snap.User

	a.state.update(func(s *AuthSnapshot) {
		s.IsLoading = true
		s.Err = nil
	})

	record, err := a.users.Update(ctx, current.Email, update)
	if err != nil {
		a.log.Warn(ctx, "profile update failed", "error", err)
		appErr := apperrors.Normalize(err)
		a.state.update(func(s *AuthSnapshot) {
			s.IsLoading = false
			s.Err = appErr
		})
		return
	}

	u := &models.SessionUser{ID: current.ID, Name: record.Username, Email: current.Email}
	if err := a.sessions.Set(ctx, u); err != nil {
		a.log.Error(ctx, "failed to persist updated session", "error", err)
		appErr := apperrors.Normalize(err)
		a.state.update(func(s *AuthSnapshot) {
			s.IsLoading = false
			s.Err = appErr
		})
		return
	}

	a.state.update(func(s *AuthSnapshot) {
		s.IsLoading = false
		s.User = u
		s.Err = nil
	})
}

// ClearError drops the error state. Idempotent, no other side effects.
func (a *Auth) ClearError() {
	a.state.update(func(s *AuthSnapshot) { s.Err = nil })
}
