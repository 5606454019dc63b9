package models

import (
	"slices"
	"time"
)

type EventType string

const (
	EventTypeOnline   EventType = "Online"
	EventTypeInPerson EventType = "In-Person"
)

const (
	CategoryTechnology = "Technology"
	CategoryBusiness   = "Business"
	CategoryEducation  = "Education"
	CategoryHealth     = "Health & Wellness"
	CategoryArts       = "Arts & Culture"
	CategorySports     = "Sports & Recreation"
	CategorySocial     = "Social & Networking"
	CategoryOther      = "Other"
)

var categories = []string{
	CategoryTechnology,
	CategoryBusiness,
	CategoryEducation,
	CategoryHealth,
	CategoryArts,
	CategorySports,
	CategorySocial,
	CategoryOther,
}

// Categories returns the fixed category list in display order.
func Categories() []string {
	return slices.Clone(categories)
}

func IsCategory(s string) bool {
	return slices.Contains(categories, s)
}

// Event is a scheduled item owned by one user. [Start, End) is half-open.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Type        EventType `json:"eventType"`
	Location    string    `json:"location,omitempty"`
	EventLink   string    `json:"eventLink,omitempty"`
	Start       time.Time `json:"startDateTime"`
	End         time.Time `json:"endDateTime"`
	Category    string    `json:"category"`
	Organizer   string    `json:"organizer"`
	OrganizerID string    `json:"organizerId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EventDraft is what a caller supplies for a new event. Identity, ownership
// and timestamps are assigned by the event service.
type EventDraft struct {
	Title       string
	Description string
	Type        EventType
	Location    string
	EventLink   string
	Start       time.Time
	End         time.Time
	Category    string
}

// EventPatch is a partial update. Nil fields are left unchanged.
type EventPatch struct {
	Title       *string
	Description *string
	Type        *EventType
	Location    *string
	EventLink   *string
	Start       *time.Time
	End         *time.Time
	Category    *string
}

// ChangesSchedule reports whether the patch moves the event in time.
func (p EventPatch) ChangesSchedule() bool {
	return p.Start != nil || p.End != nil
}

// Merge returns a copy of e with the non-nil fields of p applied.
func (e Event) Merge(p EventPatch) Event {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Location != nil {
		e.Location = *p.Location
	}
	if p.EventLink != nil {
		e.EventLink = *p.EventLink
	}
	if p.Start != nil {
		e.Start = *p.Start
	}
	if p.End != nil {
		e.End = *p.End
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	return e
}

// Overlaps reports whether [s1, e1) and [s2, e2) intersect. Instants are
// compared, so the zones of the arguments do not matter, and intervals that
// only touch do not overlap.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

func (e Event) Overlaps(start, end time.Time) bool {
	return Overlaps(e.Start, e.End, start, end)
}
