package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/eventdesk/internal/cryptox"
	"github.com/dmitrijs2005/eventdesk/internal/models"
	"github.com/dmitrijs2005/eventdesk/internal/store"
)

const (
	DemoUserID   = "demo-user-1"
	DemoEmail    = "demo@example.com"
	DemoPassword = "demo123"
	demoName     = "Demo User"
)

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func demoEvents() []models.Event {
	stamp := mustTime("2025-08-08T07:00:00Z")
	ev := func(id, title, desc string, typ models.EventType, place, start, end, category string) models.Event {
		e := models.Event{
			ID:          id,
			Title:       title,
			Description: desc,
			Type:        typ,
			Start:       mustTime(start),
			End:         mustTime(end),
			Category:    category,
			Organizer:   demoName,
			OrganizerID: DemoUserID,
			CreatedAt:   stamp,
			UpdatedAt:   stamp,
		}
		if typ == models.EventTypeOnline {
			e.EventLink = place
		} else {
			e.Location = place
		}
		return e
	}

	return []models.Event{
		ev("event-1", "React Conference 2025",
			"A comprehensive conference covering the latest in React development, featuring industry experts and hands-on workshops.",
			models.EventTypeOnline, "https://zoom.in/",
			"2025-08-15T09:00:00Z", "2025-08-15T17:00:00Z", models.CategoryTechnology),
		ev("event-2", "Team Building Workshop",
			"Interactive team building activities designed to improve collaboration and communication among team members.",
			models.EventTypeInPerson, "Conference Center, Downtown Office",
			"2025-08-20T10:00:00Z", "2025-08-20T16:00:00Z", models.CategoryBusiness),
		ev("event-3", "TypeScript Deep Dive",
			"Advanced TypeScript concepts and best practices for enterprise applications.",
			models.EventTypeOnline, "https://meet.google.com/typescript",
			"2025-08-25T14:00:00Z", "2025-08-25T18:00:00Z", models.CategoryTechnology),
		ev("event-4", "Wellness Wednesday Yoga",
			"Weekly yoga session focused on mindfulness and stress relief for better work-life balance.",
			models.EventTypeInPerson, "Wellness Room, 5th Floor",
			"2025-08-27T12:00:00Z", "2025-08-27T13:00:00Z", models.CategoryHealth),
	}
}

// SeedDemoData installs the demo account with four events and logs it in.
// Re-seeding replaces the demo account and its events.
func SeedDemoData(ctx context.Context, st *store.Store, scheme cryptox.Scheme) (*models.User, error) {
	user := models.User{
		ID:        DemoUserID,
		Email:     DemoEmail,
		Name:      demoName,
		CreatedAt: time.Now().UTC(),
	}

	credential, err := cryptox.Derive(scheme, []byte(DemoPassword))
	if err != nil {
		return nil, fmt.Errorf("derive demo credential: %w", err)
	}

	users := slices.DeleteFunc(st.LoadUsers(ctx), func(u models.User) bool {
		return u.ID == DemoUserID || u.Email == DemoEmail
	})

	err = st.Atomically(ctx, func(ctx context.Context, tx *store.Store) error {
		if err := tx.SaveUsers(ctx, append(users, user)); err != nil {
			return err
		}
		if err := tx.SaveCredential(ctx, DemoEmail, credential); err != nil {
			return err
		}
		if err := tx.SaveSession(ctx, user); err != nil {
			return err
		}
		return tx.SaveUserEvents(ctx, DemoUserID, demoEvents())
	})
	if err != nil {
		return nil, fmt.Errorf("seed demo data: %w", err)
	}
	return &user, nil
}

// ClearAllData removes every key the desk owns: users, session, event
// collections, credentials and the migration marker.
func ClearAllData(ctx context.Context, st *store.Store) (int, error) {
	keys := append(st.Keys(ctx, store.AppKeyPrefix), st.Keys(ctx, store.CredentialsPrefix)...)

	err := st.Atomically(ctx, func(ctx context.Context, tx *store.Store) error {
		for _, k := range keys {
			if err := tx.Remove(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("clear data: %w", err)
	}
	return len(keys), nil
}
