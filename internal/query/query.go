// Package query derives display lists from an event collection: filtering
// by text, type, category and date range, then a stable sort. It never
// modifies its input.
package query

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/eventdesk/internal/common"
	"github.com/dmitrijs2005/eventdesk/internal/models"
)

// Apply filters and sorts events, reading calendar dates in UTC.
func Apply(events []models.Event, spec models.FilterSpec) []models.Event {
	return ApplyIn(time.UTC, events, spec)
}

// ApplyIn is Apply with an event's start date taken in loc.
func ApplyIn(loc *time.Location, events []models.Event, spec models.FilterSpec) []models.Event {
	search := strings.ToLower(spec.Search)

	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if matches(loc, e, spec, search) {
			out = append(out, e)
		}
	}

	slices.SortStableFunc(out, comparator(spec))
	return out
}

func matches(loc *time.Location, e models.Event, spec models.FilterSpec, search string) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(e.Title), search) &&
		!strings.Contains(strings.ToLower(e.Description), search) {
		return false
	}

	if spec.EventType != "" && spec.EventType != models.FilterTypeAll && string(e.Type) != spec.EventType {
		return false
	}

	if spec.Category != "" && e.Category != spec.Category {
		return false
	}

	// YYYY-MM-DD strings order the same way as the dates they name
	if spec.StartDate != "" || spec.EndDate != "" {
		day := e.Start.In(loc).Format(common.DateLayout)
		if spec.StartDate != "" && day < spec.StartDate {
			return false
		}
		if spec.EndDate != "" && day > spec.EndDate {
			return false
		}
	}

	return true
}

func comparator(spec models.FilterSpec) func(a, b models.Event) int {
	var by func(a, b models.Event) int
	if spec.SortBy == models.SortByTitle {
		by = func(a, b models.Event) int {
			return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		}
	} else {
		by = func(a, b models.Event) int {
			return a.Start.Compare(b.Start)
		}
	}

	if spec.SortOrder == models.SortDesc {
		return func(a, b models.Event) int { return -by(a, b) }
	}
	return by
}
