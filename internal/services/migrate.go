package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eventdesk/internal/logging"
	"github.com/dmitrijs2005/eventdesk/internal/models"
	"github.com/dmitrijs2005/eventdesk/internal/store"
)

// unknownOrganizer is the owner id older data used for unattributed events.
const unknownOrganizer = "unknown"

// MigrationResult describes what MigrateLegacyEvents did.
type MigrationResult struct {
	// Skipped is set when the migration had already run.
	Skipped bool
	Users   int
	Moved   int
	Dropped int
}

// MigrateLegacyEvents moves the old shared event list into per-user
// collections, once per store. Records are grouped by organizer id in their
// original order and written over each owner's collection; records without
// an organizer id, or with the placeholder id "unknown", are dropped. A legacy
// value that does not decode is left in place and the migration stays pending. The legacy key is then removed and a marker
// stored, all in one transaction. Later calls return Skipped.
func MigrateLegacyEvents(ctx context.Context, st *store.Store, logger logging.Logger) (MigrationResult, error) {
	if st.Has(ctx, store.MigrationKey) {
		return MigrationResult{Skipped: true}, nil
	}

	legacy, ok := st.LoadLegacyEvents(ctx)
	present := st.Has(ctx, store.LegacyEventsKey)
	if present && !ok {
		logger.Warn(ctx, "legacy events unreadable, migration postponed", "key", store.LegacyEventsKey)
		return MigrationResult{}, nil
	}

	var res MigrationResult
	var owners []string
	byOwner := make(map[string][]models.Event)
	for _, e := range legacy {
		if e.OrganizerID == "" || e.OrganizerID == unknownOrganizer {
			res.Dropped++
			continue
		}
		if _, ok := byOwner[e.OrganizerID]; !ok {
			owners = append(owners, e.OrganizerID)
		}
		byOwner[e.OrganizerID] = append(byOwner[e.OrganizerID], e)
		res.Moved++
	}
	res.Users = len(owners)

	err := st.Atomically(ctx, func(ctx context.Context, tx *store.Store) error {
		for _, id := range owners {
			if err := tx.SaveUserEvents(ctx, id, byOwner[id]); err != nil {
				return err
			}
		}
		if present {
			if err := tx.Remove(ctx, store.LegacyEventsKey); err != nil {
				return err
			}
		}
		return tx.Set(ctx, store.MigrationKey, time.Now().UTC())
	})
	if err != nil {
		return MigrationResult{}, fmt.Errorf("legacy events migration: %w", err)
	}

	if present {
		logger.Info(ctx, "legacy events migrated",
			"users", res.Users, "moved", res.Moved, "dropped", res.Dropped)
	}
	return res, nil
}
