package cli

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventdesk/internal/common"
	"github.com/dmitrijs2005/eventdesk/internal/models"
	"github.com/dmitrijs2005/eventdesk/internal/query"
)

// List prints the user's events through the current filter.
func (a *App) List(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrNotAuthenticated
	}

	all := a.events.List()
	shown := query.ApplyIn(a.loc, all, a.filter)
	if len(shown) == 0 {
		if len(all) == 0 {
			a.println("No events yet. Use 'add' to create one.")
		} else {
			a.println("No events match the current filter.")
		}
		return nil
	}

	writeEventTable(a.out, shown, a.loc)
	if len(shown) != len(all) {
		a.printf("Showing %d of %d events (filter: %s)\n", len(shown), len(all), query.Values(a.filter).Encode())
	}
	return nil
}

// Filter sets the list filter from a query string such as
// "search=yoga&eventType=In-Person&sortBy=title". "reset" restores the
// defaults and no argument prints the current filter.
func (a *App) Filter(ctx context.Context, raw string) error {
	switch raw {
	case "":
		if enc := query.Values(a.filter).Encode(); enc != "" {
			a.println("Current filter:", enc)
		} else {
			a.println("No filter set.")
		}
		return nil
	case "reset":
		a.filter = models.DefaultFilter()
		a.println("Filter cleared.")
		return a.List(ctx)
	}

	spec, err := query.ParseQuery(raw)
	if err != nil {
		return err
	}
	a.filter = spec
	return a.List(ctx)
}

func (a *App) Show(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		return common.ErrNotAuthenticated
	}
	e := a.events.GetByID(id)
	if e == nil {
		return common.ErrNotFound
	}
	writeEventDetails(a.out, *e, a.loc)
	return nil
}

// Add prompts for a new event, validates it and creates it.
func (a *App) Add(ctx context.Context) error {
	if !a.isLoggedIn() {
		return common.ErrNotAuthenticated
	}

	var f models.EventForm
	if err := a.fillForm(&f); err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return err
	}

	e, err := a.events.Create(ctx, f.Draft())
	if err != nil {
		return err
	}
	a.printf("Event created: %s (%s)\n", e.Title, e.ID)
	return nil
}

// Edit prompts for each field with the current value as default and applies
// the fields that changed.
func (a *App) Edit(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		return common.ErrNotAuthenticated
	}
	existing := a.events.GetByID(id)
	if existing == nil {
		return common.ErrNotFound
	}

	f := models.FormFromEvent(*existing)
	if err := a.fillForm(&f); err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return err
	}

	patch := f.Patch(*existing)
	if patch == (models.EventPatch{}) {
		a.println("Nothing changed.")
		return nil
	}

	e, err := a.events.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	a.printf("Event updated: %s\n", e.Title)
	return nil
}

// Delete asks for confirmation and removes the event.
func (a *App) Delete(ctx context.Context, id string) error {
	if !a.isLoggedIn() {
		return common.ErrNotAuthenticated
	}
	e := a.events.GetByID(id)
	if e == nil {
		return common.ErrNotFound
	}

	answer, err := a.text("Delete \"" + e.Title + "\"? [y/N]")
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
		a.println("Cancelled.")
		return nil
	}

	if err := a.events.Delete(ctx, id); err != nil {
		return err
	}
	a.println("Event deleted.")
	return nil
}

// fillForm prompts for every event field, offering the values already in f.
func (a *App) fillForm(f *models.EventForm) error {
	var err error

	if f.Title, err = GetTextWithDefault(a.in, "Title", f.Title, a.out); err != nil {
		return err
	}
	if f.Description, err = GetTextWithDefault(a.in, "Description", f.Description, a.out); err != nil {
		return err
	}

	typ, err := GetChoice(a.in, "Event type",
		[]string{string(models.EventTypeOnline), string(models.EventTypeInPerson)}, string(f.Type), a.out)
	if err != nil {
		return err
	}
	f.Type = models.EventType(typ)

	if f.Type == models.EventTypeOnline {
		if f.EventLink, err = GetTextWithDefault(a.in, "Event link", f.EventLink, a.out); err != nil {
			return err
		}
		f.Location = ""
	} else {
		if f.Location, err = GetTextWithDefault(a.in, "Location", f.Location, a.out); err != nil {
			return err
		}
		f.EventLink = ""
	}

	if f.Start, err = a.dateTime("Start (YYYY-MM-DDTHH:MM, "+a.loc.String()+")", f.Start.IsZero(), formatInput(f.Start, a.loc)); err != nil {
		return err
	}
	if f.End, err = a.dateTime("End (YYYY-MM-DDTHH:MM, "+a.loc.String()+")", f.End.IsZero(), formatInput(f.End, a.loc)); err != nil {
		return err
	}

	f.Category, err = GetChoice(a.in, "Category", models.Categories(), f.Category, a.out)
	return err
}

// dateTime keeps asking until the answer parses. With a current value an
// empty answer keeps it.
func (a *App) dateTime(prompt string, required bool, current string) (time.Time, error) {
	for {
		s, err := GetTextWithDefault(a.in, prompt, current, a.out)
		if err != nil {
			return time.Time{}, err
		}
		if s == "" && required {
			a.println("A date and time is required.")
			continue
		}
		t, err := parseDateTime(s, a.loc)
		if err == nil {
			return t, nil
		}
		a.println(err.Error())
	}
}
