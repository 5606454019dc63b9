package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/eventdesk/internal/common"
	"github.com/dmitrijs2005/eventdesk/internal/cryptox"
	"github.com/dmitrijs2005/eventdesk/internal/logging"
	"github.com/dmitrijs2005/eventdesk/internal/models"
	"github.com/dmitrijs2005/eventdesk/internal/repositories/records"
	"github.com/dmitrijs2005/eventdesk/internal/services"
	"github.com/dmitrijs2005/eventdesk/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, st *store.Store) (*App, *bytes.Buffer) {
	t.Helper()
	if st == nil {
		st = store.NewWithRepository(records.NewMemoryRepository(), logging.Discard())
	}
	var out bytes.Buffer
	a := newApp(context.Background(), st, cryptox.SchemeLegacy, time.UTC, logging.Discard(), strings.NewReader(""), &out)
	return a, &out
}

// feed replaces the app's input with the given answers, one per line.
func feed(a *App, answers ...string) {
	a.in = rdr(strings.Join(answers, "\n") + "\n")
}

func signup(t *testing.T, a *App) {
	t.Helper()
	feed(a, "Ann Lee", "ann@example.com", "secret1", "secret1")
	require.NoError(t, a.Signup(context.Background()))
}

// addAnswers are the prompts of Add in order: title, description, type,
// link or location, start, end, category.
func addAnswers(title, start, end string) []string {
	return []string{title, "A session worth attending", "2", "Room 4", start, end, "1"}
}

func TestApp_SignupAddListShow(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t, nil)

	signup(t, a)
	assert.Contains(t, out.String(), "Welcome, Ann Lee!")
	assert.Equal(t, "(ann@example.com)", a.status())

	feed(a, addAnswers("Planning", "2025-08-15T09:00", "2025-08-15T10:00")...)
	require.NoError(t, a.Add(ctx))

	events := a.events.List()
	require.Len(t, events, 1)
	e := events[0]
	assert.Equal(t, "Planning", e.Title)
	assert.Equal(t, models.EventTypeInPerson, e.Type)
	assert.Equal(t, "Room 4", e.Location)
	assert.Equal(t, models.CategoryTechnology, e.Category)
	assert.Equal(t, "Ann Lee", e.Organizer)
	assert.Equal(t, time.Date(2025, 8, 15, 9, 0, 0, 0, time.UTC), e.Start)

	out.Reset()
	require.NoError(t, a.List(ctx))
	assert.Contains(t, out.String(), "Planning")
	assert.Contains(t, out.String(), e.ID)

	out.Reset()
	require.NoError(t, a.Show(ctx, e.ID))
	assert.Contains(t, out.String(), "Location:    Room 4")

	assert.ErrorIs(t, a.Show(ctx, "missing"), common.ErrNotFound)
}

func TestApp_AddRejectsOverlapAndInvalidForm(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, nil)
	signup(t, a)

	feed(a, addAnswers("Planning", "2025-08-15T09:00", "2025-08-15T10:00")...)
	require.NoError(t, a.Add(ctx))

	feed(a, addAnswers("Overlap", "2025-08-15T09:30", "2025-08-15T11:00")...)
	assert.ErrorIs(t, a.Add(ctx), common.ErrScheduleConflict)

	feed(a, addAnswers("Adjacent", "2025-08-15T10:00", "2025-08-15T11:00")...)
	assert.NoError(t, a.Add(ctx))

	feed(a, addAnswers("No", "2025-08-16T10:00", "2025-08-16T09:00")...)
	err := a.Add(ctx)
	var fe *models.FormError
	require.ErrorAs(t, err, &fe)
	assert.Contains(t, fe.Problems, "Title must be at least 3 characters")
	assert.Contains(t, fe.Problems, "End time must be after start time")

	assert.Len(t, a.events.List(), 2)
}

func TestApp_AddRetriesUnparsableDate(t *testing.T) {
	a, out := newTestApp(t, nil)
	signup(t, a)

	feed(a, "Planning", "A session worth attending", "2", "Room 4",
		"tomorrow", "2025-08-15T09:00", "2025-08-15T10:00", "1")
	require.NoError(t, a.Add(context.Background()))
	assert.Contains(t, out.String(), `got "tomorrow"`)
	assert.Len(t, a.events.List(), 1)
}

func TestApp_EditKeepsUnchangedFields(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t, nil)
	signup(t, a)

	feed(a, addAnswers("Planning", "2025-08-15T09:00", "2025-08-15T10:00")...)
	require.NoError(t, a.Add(ctx))
	before := a.events.List()[0]

	feed(a, "Quarterly planning", "", "", "", "", "", "")
	require.NoError(t, a.Edit(ctx, before.ID))

	after := a.events.GetByID(before.ID)
	require.NotNil(t, after)
	assert.Equal(t, "Quarterly planning", after.Title)
	assert.Equal(t, before.Description, after.Description)
	assert.True(t, before.Start.Equal(after.Start))
	assert.Equal(t, before.CreatedAt, after.CreatedAt)

	out.Reset()
	feed(a, "", "", "", "", "", "", "")
	require.NoError(t, a.Edit(ctx, before.ID))
	assert.Contains(t, out.String(), "Nothing changed.")

	assert.ErrorIs(t, a.Edit(ctx, "missing"), common.ErrNotFound)
}

func TestApp_EditSwitchesToOnline(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, nil)
	signup(t, a)

	feed(a, addAnswers("Planning", "2025-08-15T09:00", "2025-08-15T10:00")...)
	require.NoError(t, a.Add(ctx))
	id := a.events.List()[0].ID

	feed(a, "", "", "Online", "not a url", "", "", "")
	var fe *models.FormError
	require.ErrorAs(t, a.Edit(ctx, id), &fe)
	assert.Equal(t, []string{"Must be a valid URL"}, fe.Problems)

	feed(a, "", "", "Online", "https://meet.example.com/plan", "", "", "")
	require.NoError(t, a.Edit(ctx, id))
	e := a.events.GetByID(id)
	assert.Equal(t, models.EventTypeOnline, e.Type)
	assert.Equal(t, "https://meet.example.com/plan", e.EventLink)
	assert.Empty(t, e.Location)
}

func TestApp_DeleteAsksForConfirmation(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t, nil)
	signup(t, a)

	feed(a, addAnswers("Planning", "2025-08-15T09:00", "2025-08-15T10:00")...)
	require.NoError(t, a.Add(ctx))
	id := a.events.List()[0].ID

	feed(a, "n")
	require.NoError(t, a.Delete(ctx, id))
	assert.Contains(t, out.String(), "Cancelled.")
	assert.Len(t, a.events.List(), 1)

	feed(a, "y")
	require.NoError(t, a.Delete(ctx, id))
	assert.Empty(t, a.events.List())
}

func TestApp_RequiresLogin(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, nil)

	assert.False(t, a.isLoggedIn())
	assert.Empty(t, a.status())
	assert.ErrorIs(t, a.List(ctx), common.ErrNotAuthenticated)
	assert.ErrorIs(t, a.Add(ctx), common.ErrNotAuthenticated)
	assert.ErrorIs(t, a.Show(ctx, "x"), common.ErrNotAuthenticated)
	assert.ErrorIs(t, a.Export(ctx, filepath.Join(t.TempDir(), "x.ics")), common.ErrNotAuthenticated)
	assert.ErrorIs(t, a.WhoAmI(ctx), common.ErrNotAuthenticated)
}

func TestApp_LoginLogoutAndRestart(t *testing.T) {
	ctx := context.Background()
	st := store.NewWithRepository(records.NewMemoryRepository(), logging.Discard())
	a, _ := newTestApp(t, st)
	signup(t, a)

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.isLoggedIn())

	feed(a, "ann@example.com", "wrong")
	assert.ErrorIs(t, a.Login(ctx), common.ErrInvalidCredential)

	feed(a, "nobody@example.com", "secret1")
	assert.ErrorIs(t, a.Login(ctx), common.ErrUnknownUser)

	feed(a, "ann@example.com", "secret1")
	require.NoError(t, a.Login(ctx))
	assert.True(t, a.isLoggedIn())

	restarted, _ := newTestApp(t, st)
	assert.Equal(t, "(ann@example.com)", restarted.status())
}

func TestApp_SeedFilterExportClear(t *testing.T) {
	ctx := context.Background()
	a, out := newTestApp(t, nil)

	require.NoError(t, a.Seed(ctx))
	assert.Equal(t, "("+services.DemoEmail+")", a.status())
	assert.Len(t, a.events.List(), 4)

	out.Reset()
	require.NoError(t, a.Filter(ctx, "eventType=Online&sortBy=title"))
	assert.Contains(t, out.String(), "Showing 2 of 4 events")
	assert.NotContains(t, out.String(), "Wellness Wednesday Yoga")

	out.Reset()
	require.NoError(t, a.Filter(ctx, ""))
	assert.Contains(t, out.String(), "Current filter: eventType=Online&sortBy=title")

	path := filepath.Join(t.TempDir(), "events.ics")
	require.NoError(t, a.Export(ctx, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "BEGIN:VEVENT"))

	out.Reset()
	require.NoError(t, a.Filter(ctx, "reset"))
	assert.Contains(t, out.String(), "Filter cleared.")
	assert.Contains(t, out.String(), "Wellness Wednesday Yoga")

	feed(a, "no")
	require.NoError(t, a.Clear(ctx))
	assert.True(t, a.isLoggedIn())

	feed(a, "y")
	require.NoError(t, a.Clear(ctx))
	assert.False(t, a.isLoggedIn())
	assert.Empty(t, a.store.LoadUsers(ctx))
}

func TestApp_RunEndToEnd(t *testing.T) {
	var out bytes.Buffer
	st := store.NewWithRepository(records.NewMemoryRepository(), logging.Discard())
	script := strings.Join([]string{
		"list",
		"seed",
		"whoami",
		"filter search=yoga",
		"logout",
		"exit",
	}, "\n") + "\n"
	a := newApp(context.Background(), st, cryptox.SchemeLegacy, time.UTC, logging.Discard(), strings.NewReader(script), &out)

	a.Run(context.Background())

	got := out.String()
	assert.Contains(t, got, "Error: Please log in first")
	assert.Contains(t, got, "Demo data loaded")
	assert.Contains(t, got, "Demo User <demo@example.com>")
	assert.Contains(t, got, "Wellness Wednesday Yoga")
	assert.Contains(t, got, "Logged out.")
	assert.Contains(t, got, "Bye!")
}

func TestApp_ExportCreatesDirectories(t *testing.T) {
	ctx := context.Background()
	a, _ := newTestApp(t, nil)
	require.NoError(t, a.Seed(ctx))

	path := filepath.Join(t.TempDir(), "exports", "demo.ics")
	require.NoError(t, a.Export(ctx, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(data), "BEGIN:VEVENT"))
}
