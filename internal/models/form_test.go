package models

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOnlineForm() EventForm {
	return EventForm{
		Title:       "Go Meetup",
		Description: "Monthly gathering of gophers",
		Type:        EventTypeOnline,
		EventLink:   "https://meet.example.com/go",
		Start:       at(18, 0),
		End:         at(20, 0),
		Category:    CategoryTechnology,
	}
}

func problems(t *testing.T, err error) []string {
	t.Helper()
	var fe *FormError
	require.True(t, errors.As(err, &fe), "expected *FormError, got %v", err)
	return fe.Problems
}

func TestEventForm_Valid(t *testing.T) {
	require.NoError(t, validOnlineForm().Validate())

	f := validOnlineForm()
	f.Type = EventTypeInPerson
	f.EventLink = ""
	f.Location = "Room 5"
	require.NoError(t, f.Validate())
}

func TestEventForm_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *EventForm)
		want   string
	}{
		{"short title", func(f *EventForm) { f.Title = "Go" }, "Title must be at least 3 characters"},
		{"missing title", func(f *EventForm) { f.Title = "" }, "Title is required"},
		{"short description", func(f *EventForm) { f.Description = "short" }, "Description must be at least 10 characters"},
		{"bad type", func(f *EventForm) { f.Type = "Hybrid" }, "Event type must be one of: Online, In-Person"},
		{"online without link", func(f *EventForm) { f.EventLink = "" }, "Event link is required for online events"},
		{"online with bad link", func(f *EventForm) { f.EventLink = "not a url" }, "Must be a valid URL"},
		{"in-person without location", func(f *EventForm) {
			f.Type = EventTypeInPerson
			f.EventLink = ""
		}, "Location is required for in-person events"},
		{"end equals start", func(f *EventForm) { f.End = f.Start }, "End time must be after start time"},
		{"end before start", func(f *EventForm) { f.End = at(17, 0) }, "End time must be after start time"},
		{"unknown category", func(f *EventForm) { f.Category = "Gaming" }, "Category must be one of"},
		{"missing start", func(f *EventForm) { f.Start = time.Time{} }, "Start date and time is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validOnlineForm()
			tt.mutate(&f)
			err := f.Validate()
			require.Error(t, err)

			found := false
			for _, p := range problems(t, err) {
				if strings.HasPrefix(p, tt.want) {
					found = true
				}
			}
			assert.True(t, found, "want %q in %v", tt.want, err)
		})
	}
}

func TestEventForm_DraftTrims(t *testing.T) {
	f := validOnlineForm()
	f.Title = "  Go Meetup  "
	d := f.Draft()
	assert.Equal(t, "Go Meetup", d.Title)
	assert.Equal(t, f.Start, d.Start)
	assert.Equal(t, CategoryTechnology, d.Category)
}

func TestEventForm_PatchOnlyChangedFields(t *testing.T) {
	e := Event{ID: "e1", Title: "Go Meetup", Description: "Monthly gathering of gophers", Type: EventTypeOnline,
		EventLink: "https://meet.example.com/go", Start: at(18, 0), End: at(20, 0), Category: CategoryTechnology}

	f := FormFromEvent(e)
	assert.Equal(t, EventPatch{}, f.Patch(e))

	f.Title = "Go Night"
	f.End = at(21, 0)
	p := f.Patch(e)
	require.NotNil(t, p.Title)
	require.NotNil(t, p.End)
	assert.Equal(t, "Go Night", *p.Title)
	assert.Nil(t, p.Start)
	assert.True(t, p.ChangesSchedule())
}

func TestSignupForm(t *testing.T) {
	ok := SignupForm{Name: "Ann", Email: "ann@example.com", Password: "secret1", ConfirmPassword: "secret1"}
	require.NoError(t, ok.Validate())

	bad := SignupForm{Name: "A", Email: "nope", Password: "123", ConfirmPassword: "124"}
	got := problems(t, bad.Validate())
	assert.Contains(t, got, "Name must be at least 2 characters")
	assert.Contains(t, got, "Invalid email")
	assert.Contains(t, got, "Password must be at least 6 characters")
	assert.Contains(t, got, "Passwords must match")
}

func TestLoginForm(t *testing.T) {
	require.NoError(t, LoginForm{Email: "ann@example.com", Password: "x"}.Validate())

	got := problems(t, LoginForm{}.Validate())
	assert.Contains(t, got, "Email is required")
	assert.Contains(t, got, "Password is required")
}
