package voat

import (
	"net/url"
	"strconv"
)

// MaxSearchCount is the server-side ceiling on records per page.
const MaxSearchCount = 50

// Span restricts listings to a time window.
type Span string

const (
	SpanAll     Span = "all"
	SpanHour    Span = "hour"
	SpanDay     Span = "day"
	SpanWeek    Span = "week"
	SpanMonth   Span = "month"
	SpanQuarter Span = "quarter"
	SpanYear    Span = "year"
)

// Sort selects the ordering algorithm for listings.
type Sort string

const (
	SortNew          Sort = "new"
	SortTop          Sort = "top"
	SortRank         Sort = "rank"
	SortRelativeRank Sort = "relativerank"
	SortActive       Sort = "active"
	SortViewed       Sort = "viewed"
	SortDiscussed    Sort = "discussed"
	SortBottom       Sort = "bottom"
	SortIntensity    Sort = "intensity"
)

// SearchOptions are the querystring arguments accepted by listing endpoints
// for searching, sorting and paging submissions and comments. The zero value
// applies the server defaults.
type SearchOptions struct {
	// Span is the time window to include
	Span Span

	// Sort is the ordering algorithm
	Sort Sort

	// Reversed flips the sort direction
	Reversed bool

	// Date anchors the listing at a point in time (ISO 8601)
	Date string

	// Count is the number of records per page, capped at MaxSearchCount
	Count int

	// Index is the record offset to start from
	Index int

	// Page selects a page; it overrides Index when set
	Page int

	// Search is a phrase submissions or comments must match
	Search string
}

// Values encodes the options into querystring parameters. Only set fields are
// emitted.
func (o *SearchOptions) Values() url.Values {
	if o == nil {
		return nil
	}

	v := url.Values{}
	if o.Span != "" {
		v.Set("span", string(o.Span))
	}
	if o.Sort != "" {
		v.Set("sort", string(o.Sort))
	}
	if o.Reversed {
		v.Set("direction", "reversed")
	}
	if o.Date != "" {
		v.Set("date", o.Date)
	}
	if o.Count > 0 {
		count := o.Count
		if count > MaxSearchCount {
			count = MaxSearchCount
		}
		v.Set("count", strconv.Itoa(count))
	}
	if o.Page > 0 {
		v.Set("page", strconv.Itoa(o.Page))
	} else if o.Index > 0 {
		v.Set("index", strconv.Itoa(o.Index))
	}
	if o.Search != "" {
		v.Set("search", o.Search)
	}

	if len(v) == 0 {
		return nil
	}
	return v
}
