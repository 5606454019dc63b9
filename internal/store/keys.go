package store

import (
	"context"

	"github.com/dmitrijs2005/eventdesk/internal/models"
)

const (
	UsersKey          = "eventapp_users"
	CurrentUserKey    = "eventapp_current_user"
	LegacyEventsKey   = "eventapp_events"
	MigrationKey      = "eventapp_migration_v1"
	AppKeyPrefix      = "eventapp_"
	UserEventsPrefix  = "eventapp_user_events_"
	CredentialsPrefix = "password_"
)

func UserEventsKey(userID string) string {
	return UserEventsPrefix + userID
}

func CredentialKey(email string) string {
	return CredentialsPrefix + email
}

// LoadUsers returns the users directory, or an empty slice.
func (s *Store) LoadUsers(ctx context.Context) []models.User {
	var users []models.User
	if !s.Get(ctx, UsersKey, &users) || users == nil {
		return []models.User{}
	}
	return users
}

func (s *Store) SaveUsers(ctx context.Context, users []models.User) error {
	return s.Set(ctx, UsersKey, users)
}

// LoadSession returns the logged-in user, or nil.
func (s *Store) LoadSession(ctx context.Context) *models.User {
	var u models.User
	if !s.Get(ctx, CurrentUserKey, &u) || u.ID == "" {
		return nil
	}
	return &u
}

func (s *Store) SaveSession(ctx context.Context, u models.User) error {
	return s.Set(ctx, CurrentUserKey, u)
}

func (s *Store) ClearSession(ctx context.Context) error {
	return s.Remove(ctx, CurrentUserKey)
}

// LoadUserEvents returns the user's events, or an empty slice.
func (s *Store) LoadUserEvents(ctx context.Context, userID string) []models.Event {
	var events []models.Event
	if !s.Get(ctx, UserEventsKey(userID), &events) || events == nil {
		return []models.Event{}
	}
	return events
}

func (s *Store) SaveUserEvents(ctx context.Context, userID string, events []models.Event) error {
	return s.Set(ctx, UserEventsKey(userID), events)
}

// LoadLegacyEvents reads the old shared collection and whether it exists.
func (s *Store) LoadLegacyEvents(ctx context.Context) ([]models.Event, bool) {
	var events []models.Event
	if !s.Get(ctx, LegacyEventsKey, &events) {
		return nil, false
	}
	return events, true
}

// Credentials are stored as bare strings, not JSON, matching older data.

func (s *Store) LoadCredential(ctx context.Context, email string) (string, bool) {
	return s.GetRaw(ctx, CredentialKey(email))
}

func (s *Store) SaveCredential(ctx context.Context, email, credential string) error {
	return s.SetRaw(ctx, CredentialKey(email), credential)
}
