package titlex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "already clean",
			title: "A perfectly normal title",
			want:  "A perfectly normal title",
		},
		{
			name:  "zero width characters removed",
			title: "zero\u200bwidth\ufeffchars\u180ehere",
			want:  "zerowidthcharshere",
		},
		{
			name:  "whitespace collapses",
			title: "too   many\t\tspaces\n here",
			want:  "too many spaces here",
		},
		{
			name:  "typographic spaces collapse",
			title: "en\u2002space and\u00a0nbsp and\u205fmath space",
			want:  "en space and nbsp and math space",
		},
		{
			name:  "open box becomes underscore",
			title: "visible␣space",
			want:  "visible_space",
		},
		{
			name:  "latin1 preserved",
			title: "café déjà vu",
			want:  "café déjà vu",
		},
		{
			name:  "trademark normalizes",
			title: "Voat™",
			want:  "VoatTM",
		},
		{
			name:  "cyrillic transliterates",
			title: "Привет мир",
			want:  "Privet mir",
		},
		{
			name:  "cjk transliterates",
			title: "你好",
			want:  "Ni Hao",
		},
		{
			name:  "emoji dropped",
			title: "nice \U0001f44d post",
			want:  "nice post",
		},
		{
			name:  "surrounding whitespace trimmed",
			title: "  padded  ",
			want:  "padded",
		},
		{
			name:  "empty",
			title: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, Clean(tt.title))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	t.Parallel()

	titles := []string{
		"A perfectly normal title",
		"zero\u200bwidth 你好 Привет™  spaces ",
		strings.Repeat("long ", 60),
	}

	for _, title := range titles {
		once := Clean(title)
		require.Equal(t, once, Clean(once))
	}
}

func TestCleanTruncates(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 300)
	cleaned := Clean(long)

	require.LessOrEqual(t, len(cleaned), MaxLength)
	require.True(t, strings.HasSuffix(cleaned, truncateSuffix))
	require.Equal(t, truncateAt+len(truncateSuffix), len(cleaned))
}

func TestCleanTruncationTrimsTrailingSpace(t *testing.T) {
	t.Parallel()

	// A space right at the cut point must not leave "word  [...]".
	long := strings.Repeat("abc ", 60)
	cleaned := Clean(long)

	require.LessOrEqual(t, len(cleaned), MaxLength)
	require.NotContains(t, cleaned, "  ")
}

func TestCleanExactlyMaxLength(t *testing.T) {
	t.Parallel()

	exact := strings.Repeat("a", MaxLength)
	require.Equal(t, exact, Clean(exact))
}
