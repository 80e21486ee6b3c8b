package voat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearchOptionsValues(t *testing.T) {
	t.Parallel()

	t.Run("nil options", func(t *testing.T) {
		var opts *SearchOptions
		require.Nil(t, opts.Values())
	})

	t.Run("zero value", func(t *testing.T) {
		require.Nil(t, (&SearchOptions{}).Values())
	})

	t.Run("all fields", func(t *testing.T) {
		opts := &SearchOptions{
			Span:     SpanWeek,
			Sort:     SortTop,
			Reversed: true,
			Date:     "2014-07-03",
			Count:    25,
			Index:    10,
			Search:   "golang",
		}

		v := opts.Values()
		require.Equal(t, "week", v.Get("span"))
		require.Equal(t, "top", v.Get("sort"))
		require.Equal(t, "reversed", v.Get("direction"))
		require.Equal(t, "2014-07-03", v.Get("date"))
		require.Equal(t, "25", v.Get("count"))
		require.Equal(t, "10", v.Get("index"))
		require.Equal(t, "golang", v.Get("search"))
	})

	t.Run("count capped", func(t *testing.T) {
		v := (&SearchOptions{Count: 1000}).Values()
		require.Equal(t, "50", v.Get("count"))
	})

	t.Run("page overrides index", func(t *testing.T) {
		v := (&SearchOptions{Page: 3, Index: 10}).Values()
		require.Equal(t, "3", v.Get("page"))
		require.Empty(t, v.Get("index"))
	})
}
