// Package export writes event collections to iCalendar (RFC 5545) so they
// can be imported into calendar applications.
package export

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/dmitrijs2005/eventdesk/internal/common"
	"github.com/dmitrijs2005/eventdesk/internal/models"
)

const uidDomain = "@" + common.AppName

// WriteICS writes one VEVENT per event. Times are written in UTC; loc is
// advertised as the calendar's display zone. owner, when set, supplies the
// organizer's address for events it organizes.
func WriteICS(w io.Writer, owner *models.User, events []models.Event, loc *time.Location) error {
	if loc == nil {
		loc = time.UTC
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//" + common.AppName + "//events//EN")
	cal.SetXWRTimezone(loc.String())
	if owner != nil {
		cal.SetXWRCalName(owner.Name + " events")
	}

	stamp := time.Now().UTC()
	for _, e := range events {
		ve := cal.AddEvent(e.ID + uidDomain)
		ve.SetDtStampTime(stamp)
		ve.SetCreatedTime(e.CreatedAt)
		ve.SetModifiedAt(e.UpdatedAt)
		ve.SetStartAt(e.Start)
		ve.SetEndAt(e.End)
		ve.SetSummary(e.Title)
		ve.SetDescription(e.Description)
		if e.Category != "" {
			ve.AddCategory(e.Category)
		}

		switch e.Type {
		case models.EventTypeOnline:
			if e.EventLink != "" {
				ve.SetURL(e.EventLink)
				ve.SetLocation(e.EventLink)
			}
		default:
			if e.Location != "" {
				ve.SetLocation(e.Location)
			}
		}

		if owner != nil && owner.ID == e.OrganizerID && owner.Email != "" {
			ve.SetOrganizer("mailto:"+owner.Email, ical.WithCN(e.Organizer))
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}
