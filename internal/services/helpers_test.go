package services

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/eventdesk/internal/logging"
	"github.com/dmitrijs2005/eventdesk/internal/models"
	"github.com/dmitrijs2005/eventdesk/internal/repositories/records"
	"github.com/dmitrijs2005/eventdesk/internal/storage"
	"github.com/dmitrijs2005/eventdesk/internal/store"
	"github.com/stretchr/testify/require"
)

func memStore() *store.Store {
	return store.NewWithRepository(records.NewMemoryRepository(), logging.Discard())
}

func sqliteStore(t *testing.T) *store.Store {
	t.Helper()
	d, err := storage.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "desk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return store.New(d.DB, d.Records, logging.Discard())
}

// fixedClock returns a clock that advances one minute per call.
func fixedClock(start time.Time) func() time.Time {
	n := 0
	return func() time.Time {
		t := start.Add(time.Duration(n) * time.Minute)
		n++
		return t
	}
}

func seqIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func jan1(hour, min int) time.Time {
	return time.Date(2025, 1, 1, hour, min, 0, 0, time.UTC)
}

func draft(title string, start, end time.Time) models.EventDraft {
	return models.EventDraft{
		Title:       title,
		Description: "something to attend",
		Type:        models.EventTypeInPerson,
		Location:    "Room 1",
		Start:       start,
		End:         end,
		Category:    models.CategoryOther,
	}
}

var ann = &models.User{ID: "ann-id", Email: "a@x.com", Name: "Ann"}
