package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/eventdesk/internal/common"
	"github.com/dmitrijs2005/eventdesk/internal/models"
)

func formatDateTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Jan 02, 2006 - 03:04 PM")
}

func formatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Jan 02, 2006")
}

// formatInput renders t the way parseDateTime reads it.
func formatInput(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(common.DateTimeInputLayout)
}

// parseDateTime reads "YYYY-MM-DDTHH:MM" (a space instead of T also works)
// as a wall-clock time in loc and returns it in UTC.
func parseDateTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.Replace(strings.TrimSpace(s), " ", "T", 1)
	t, err := time.ParseInLocation(common.DateTimeInputLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected date and time as YYYY-MM-DDTHH:MM, got %q", s)
	}
	return t.UTC(), nil
}

func writeEventTable(w io.Writer, events []models.Event, loc *time.Location) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tTYPE\tCATEGORY\tSTART\tEND")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.Title, e.Type, e.Category, formatDateTime(e.Start, loc), formatDateTime(e.End, loc))
	}
	_ = tw.Flush()
}

func writeEventDetails(w io.Writer, e models.Event, loc *time.Location) {
	fmt.Fprintf(w, "%s\n", e.Title)
	fmt.Fprintf(w, "  ID:          %s\n", e.ID)
	fmt.Fprintf(w, "  Type:        %s\n", e.Type)
	if e.Type == models.EventTypeOnline {
		fmt.Fprintf(w, "  Link:        %s\n", e.EventLink)
	} else {
		fmt.Fprintf(w, "  Location:    %s\n", e.Location)
	}
	fmt.Fprintf(w, "  Category:    %s\n", e.Category)
	fmt.Fprintf(w, "  Starts:      %s\n", formatDateTime(e.Start, loc))
	fmt.Fprintf(w, "  Ends:        %s\n", formatDateTime(e.End, loc))
	fmt.Fprintf(w, "  Organizer:   %s\n", e.Organizer)
	fmt.Fprintf(w, "  Description: %s\n", e.Description)
	fmt.Fprintf(w, "  Updated:     %s\n", formatDateTime(e.UpdatedAt, loc))
}
