// Package services holds the application services behind the CLI: the
// session/identity manager, the per-user event repository, the one-shot
// legacy migration and the demo-data tooling.
package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/eventdesk/internal/common"
	"github.com/dmitrijs2005/eventdesk/internal/cryptox"
	"github.com/dmitrijs2005/eventdesk/internal/logging"
	"github.com/dmitrijs2005/eventdesk/internal/models"
	"github.com/dmitrijs2005/eventdesk/internal/store"
	"github.com/google/uuid"
)

// AuthService manages accounts and the current session.
//
// Contract:
//   - Signup: create an account and log it in; ErrDuplicateAccount if the
//     email is taken (exact, case-sensitive match).
//   - Login: ErrUnknownUser if no account has the email, ErrInvalidCredential
//     if the password does not verify.
//   - Logout: end the session; calling it without a session is fine.
//   - CurrentUser: the logged-in user, or nil.
//
// Storage faults never fail an operation. The session is kept in memory as
// well, so the desk keeps working in an ephemeral mode.
type AuthService interface {
	Signup(ctx context.Context, email string, password []byte, name string) (*models.User, error)
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) *models.User
}

type authService struct {
	store   *store.Store
	scheme  cryptox.Scheme
	logger  logging.Logger
	current *models.User

	now   func() time.Time
	newID func() string
}

// NewAuthService restores the persisted session, if any. New credentials are
// derived with scheme.
func NewAuthService(ctx context.Context, st *store.Store, scheme cryptox.Scheme, logger logging.Logger) AuthService {
	return &authService{
		store:   st,
		scheme:  scheme,
		logger:  logger.With("service", "auth"),
		current: st.LoadSession(ctx),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

func (a *authService) Signup(ctx context.Context, email string, password []byte, name string) (*models.User, error) {
	users := a.store.LoadUsers(ctx)
	if slices.ContainsFunc(users, func(u models.User) bool { return u.Email == email }) {
		return nil, common.ErrDuplicateAccount
	}

	credential, err := cryptox.Derive(a.scheme, password)
	if err != nil {
		return nil, fmt.Errorf("derive credential: %w", err)
	}

	user := models.User{
		ID:        a.newID(),
		Email:     email,
		Name:      name,
		CreatedAt: a.now(),
	}

	err = a.store.Atomically(ctx, func(ctx context.Context, tx *store.Store) error {
		if err := tx.SaveUsers(ctx, append(users, user)); err != nil {
			return err
		}
		if err := tx.SaveCredential(ctx, email, credential); err != nil {
			return err
		}
		return tx.SaveSession(ctx, user)
	})
	if err != nil {
		a.logger.Warn(ctx, "signup not persisted", "email", email, "err", err)
	}

	a.current = &user
	a.logger.Info(ctx, "account created", "user_id", user.ID)
	return clone(a.current), nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	users := a.store.LoadUsers(ctx)
	idx := slices.IndexFunc(users, func(u models.User) bool { return u.Email == email })
	if idx < 0 {
		return nil, common.ErrUnknownUser
	}
	user := users[idx]

	stored, ok := a.store.LoadCredential(ctx, email)
	if !ok || !cryptox.Verify(stored, password) {
		return nil, common.ErrInvalidCredential
	}

	if cryptox.SchemeOf(stored) != a.scheme {
		a.rehash(ctx, email, password)
	}

	if err := a.store.SaveSession(ctx, user); err != nil {
		a.logger.Warn(ctx, "session not persisted", "user_id", user.ID, "err", err)
	}

	a.current = &user
	a.logger.Info(ctx, "logged in", "user_id", user.ID)
	return clone(a.current), nil
}

// rehash re-derives a verified credential under the configured scheme.
func (a *authService) rehash(ctx context.Context, email string, password []byte) {
	credential, err := cryptox.Derive(a.scheme, password)
	if err != nil {
		a.logger.Warn(ctx, "credential upgrade skipped", "email", email, "err", err)
		return
	}
	if err := a.store.SaveCredential(ctx, email, credential); err != nil {
		return
	}
	a.logger.Info(ctx, "credential upgraded", "email", email, "scheme", string(a.scheme))
}

func (a *authService) Logout(ctx context.Context) error {
	if a.current != nil {
		a.logger.Info(ctx, "logged out", "user_id", a.current.ID)
	}
	a.current = nil
	if err := a.store.ClearSession(ctx); err != nil {
		a.logger.Warn(ctx, "session not cleared", "err", err)
	}
	return nil
}

func (a *authService) CurrentUser(ctx context.Context) *models.User {
	return clone(a.current)
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
