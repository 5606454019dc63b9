package query

import (
	"net/url"
	"testing"

	"github.com/dmitrijs2005/eventdesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValues_Defaults(t *testing.T) {
	assert.Equal(t, models.DefaultFilter(), ParseValues(url.Values{}))
}

func TestParseValues_AllFields(t *testing.T) {
	v := url.Values{
		"search":    {"yoga"},
		"eventType": {"In-Person"},
		"category":  {"Health & Wellness"},
		"startDate": {"2025-08-01"},
		"endDate":   {"2025-08-31"},
		"sortBy":    {"title"},
		"sortOrder": {"desc"},
	}
	assert.Equal(t, models.FilterSpec{
		Search:    "yoga",
		EventType: "In-Person",
		Category:  "Health & Wellness",
		StartDate: "2025-08-01",
		EndDate:   "2025-08-31",
		SortBy:    "title",
		SortOrder: "desc",
	}, ParseValues(v))
}

func TestParseValues_UnknownEnumsFallBack(t *testing.T) {
	v := url.Values{"eventType": {"Hybrid"}, "sortBy": {"price"}, "sortOrder": {"sideways"}}
	assert.Equal(t, models.DefaultFilter(), ParseValues(v))
}

func TestValues_OmitsDefaults(t *testing.T) {
	assert.Empty(t, Values(models.DefaultFilter()))
	assert.Empty(t, Values(models.FilterSpec{}))

	spec := models.DefaultFilter()
	spec.Search = "go"
	spec.SortOrder = models.SortDesc
	assert.Equal(t, "search=go&sortOrder=desc", Values(spec).Encode())
}

func TestValues_RoundTrip(t *testing.T) {
	spec := models.FilterSpec{
		Search:    "a & b",
		EventType: "Online",
		Category:  "Arts & Culture",
		StartDate: "2025-01-01",
		EndDate:   "2025-12-31",
		SortBy:    "title",
		SortOrder: "desc",
	}
	got, err := ParseQuery(Values(spec).Encode())
	require.NoError(t, err)
	assert.Equal(t, spec, got)
}

func TestParseQuery(t *testing.T) {
	got, err := ParseQuery("?search=react&eventType=Online")
	require.NoError(t, err)
	assert.Equal(t, "react", got.Search)
	assert.Equal(t, "Online", got.EventType)
	assert.Equal(t, models.SortByStart, got.SortBy)

	_, err = ParseQuery("search=%zz")
	require.Error(t, err)
}
