package query

import (
	"net/url"

	"github.com/dmitrijs2005/eventdesk/internal/models"
)

const (
	ParamSearch    = "search"
	ParamEventType = "eventType"
	ParamCategory  = "category"
	ParamStartDate = "startDate"
	ParamEndDate   = "endDate"
	ParamSortBy    = "sortBy"
	ParamSortOrder = "sortOrder"
)

// ParseValues reads a FilterSpec from query parameters. Missing or
// unrecognised values fall back to the defaults.
func ParseValues(v url.Values) models.FilterSpec {
	spec := models.DefaultFilter()

	spec.Search = v.Get(ParamSearch)
	spec.Category = v.Get(ParamCategory)
	spec.StartDate = v.Get(ParamStartDate)
	spec.EndDate = v.Get(ParamEndDate)

	switch t := v.Get(ParamEventType); t {
	case string(models.EventTypeOnline), string(models.EventTypeInPerson):
		spec.EventType = t
	}
	if v.Get(ParamSortBy) == models.SortByTitle {
		spec.SortBy = models.SortByTitle
	}
	if v.Get(ParamSortOrder) == models.SortDesc {
		spec.SortOrder = models.SortDesc
	}

	return spec
}

// ParseQuery is ParseValues for a raw query string such as
// "search=yoga&sortBy=title". A leading '?' is allowed.
func ParseQuery(raw string) (models.FilterSpec, error) {
	if len(raw) > 0 && raw[0] == '?' {
		raw = raw[1:]
	}
	v, err := url.ParseQuery(raw)
	if err != nil {
		return models.FilterSpec{}, err
	}
	return ParseValues(v), nil
}

// Values encodes spec, leaving out fields that hold their default.
func Values(spec models.FilterSpec) url.Values {
	v := url.Values{}
	set := func(key, val, def string) {
		if val != "" && val != def {
			v.Set(key, val)
		}
	}

	set(ParamSearch, spec.Search, "")
	set(ParamEventType, spec.EventType, models.FilterTypeAll)
	set(ParamCategory, spec.Category, "")
	set(ParamStartDate, spec.StartDate, "")
	set(ParamEndDate, spec.EndDate, "")
	set(ParamSortBy, spec.SortBy, models.SortByStart)
	set(ParamSortOrder, spec.SortOrder, models.SortAsc)

	return v
}
