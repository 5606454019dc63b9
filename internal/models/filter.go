package models

const (
	FilterTypeAll = "All"

	SortByStart = "startDateTime"
	SortByTitle = "title"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// FilterSpec selects and orders events for display. It is never persisted.
//
// StartDate and EndDate are calendar dates (YYYY-MM-DD) and bound the
// event's start date inclusively; empty means unbounded. EventType is "All"
// or one of the event types; Category is empty for all categories.
type FilterSpec struct {
	Search    string
	EventType string
	Category  string
	StartDate string
	EndDate   string
	SortBy    string
	SortOrder string
}

func DefaultFilter() FilterSpec {
	return FilterSpec{
		EventType: FilterTypeAll,
		SortBy:    SortByStart,
		SortOrder: SortAsc,
	}
}
