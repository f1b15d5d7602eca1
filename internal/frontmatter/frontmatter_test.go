package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var frontOnly = []string{
	"---\n",
	"title: \"Python tutorial for beginners\"\n",
	"slug: \"python-tutorial\"\n",
	"---\n",
}

func TestSplitLines_NoFrontmatter_ReturnsInputAsBody(t *testing.T) {
	cases := [][]string{
		{},
		{"", ""},
		{" ", "foobar"},
		{" ", "foobar", "second line"},
		{"foobar"},
		{"foobar", "second line"},
		{"# Title\n", "\n", "Hello\n"},
	}

	for _, lines := range cases {
		fm, body := SplitLines(lines)
		require.Empty(t, fm)
		require.Equal(t, lines, body)
	}
}

func TestSplitLines_Unterminated_ReturnsInputAsBody(t *testing.T) {
	cases := [][]string{
		{"---"},
		{"", "---"},
		{"", "---", "foobar"},
		{"---", "foobar"},
		{"---\n", "foo\n"},
	}

	for _, lines := range cases {
		fm, body := SplitLines(lines)
		require.Empty(t, fm)
		require.Equal(t, lines, body)
	}
}

func TestSplitLines_LeadingSpaceOnDelimiter_IsNotFrontmatter(t *testing.T) {
	startIndented := []string{
		" ---\n",
		"title: \"Python tutorial for beginners\"\n",
		"slug: \"python-tutorial\"\n",
		"---\n",
		"\n",
		"Python is dynamically typed\n",
	}
	fm, body := SplitLines(startIndented)
	require.Empty(t, fm)
	require.Equal(t, startIndented, body)

	endIndented := []string{
		"---\n",
		"title: \"Python tutorial for beginners\"\n",
		"slug: \"python-tutorial\"\n",
		" ---\n",
		"\n",
		"Python is dynamically typed\n",
	}
	fm, body = SplitLines(endIndented)
	require.Empty(t, fm)
	require.Equal(t, endIndented, body)
}

func TestSplitLines_TrailingSpaceOnDelimiter_IsNormalized(t *testing.T) {
	cases := map[string][]string{
		"opening": {
			"--- \n",
			"title: \"Python tutorial for beginners\"\n",
			"slug: \"python-tutorial\"\n",
			"---\n",
			"\n",
			"Python is dynamically typed\n",
		},
		"closing": {
			"---\n",
			"title: \"Python tutorial for beginners\"\n",
			"slug: \"python-tutorial\"\n",
			"--- \n",
			"\n",
			"Python is dynamically typed\n",
		},
	}

	for name, lines := range cases {
		t.Run(name, func(t *testing.T) {
			fm, body := SplitLines(lines)
			require.Equal(t, frontOnly, fm)
			require.Equal(t, []string{"\n", "Python is dynamically typed\n"}, body)
		})
	}
}

func TestSplitLines_Frontmatter(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		body []string
	}{
		{
			name: "front only",
			in:   frontOnly,
			body: []string{},
		},
		{
			name: "leading blank line is dropped",
			in:   append([]string{"\n"}, frontOnly...),
			body: []string{},
		},
		{
			name: "whitespace-only leading lines are dropped",
			in:   append([]string{"\n", "  \t\n"}, frontOnly...),
			body: []string{},
		},
		{
			name: "blank line after",
			in:   append(append([]string{}, frontOnly...), "\n"),
			body: []string{"\n"},
		},
		{
			name: "text directly after",
			in:   append(append([]string{}, frontOnly...), "Python is dynamically typed programming language.\n"),
			body: []string{"Python is dynamically typed programming language.\n"},
		},
		{
			name: "multiple blank lines and text after",
			in: append(append([]string{}, frontOnly...),
				"\n", "\n",
				"Python is dynamically typed programming language\n",
				"with extensive standard library and active community.\n"),
			body: []string{
				"\n", "\n",
				"Python is dynamically typed programming language\n",
				"with extensive standard library and active community.\n",
			},
		},
		{
			name: "unterminated last line kept verbatim",
			in:   append(append([]string{}, frontOnly...), "no newline"),
			body: []string{"no newline"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body := SplitLines(tt.in)
			require.Equal(t, frontOnly, fm)
			require.Equal(t, tt.body, body)
		})
	}
}

func TestSplitLines_DelimitersWithoutNewline_AreNormalized(t *testing.T) {
	fm, body := SplitLines([]string{"---", "title: x", "---", "[a](https://h.test)"})
	require.Equal(t, []string{"---\n", "title: x\n", "---\n"}, fm)
	require.Equal(t, []string{"[a](https://h.test)"}, body)
}

func TestSplitLines_CRLF(t *testing.T) {
	fm, body := SplitLines([]string{"---\r\n", "key: value\r\n", "---\r\n", "# Title\r\n"})
	require.Equal(t, []string{"---\n", "key: value\n", "---\n"}, fm)
	require.Equal(t, []string{"# Title\r\n"}, body)
}

func TestSplitLines_Scenario(t *testing.T) {
	in := []string{"---\n", "title: x\n", "---\n", "\n", "[a](https://h.test)\n"}

	fm, body := SplitLines(in)
	require.Equal(t, in[:3], fm)
	require.Equal(t, in[3:], body)
}

func TestSplit_Document(t *testing.T) {
	fm, body, had := Split("\n---\nkey: value\n---\n# Title\n")
	require.True(t, had)
	require.Equal(t, "---\nkey: value\n---\n", fm)
	require.Equal(t, "# Title\n", body)

	fm, body, had = Split("---\nkey: value\n# Title\n")
	require.False(t, had)
	require.Empty(t, fm)
	require.Equal(t, "---\nkey: value\n# Title\n", body)
}

func TestLines_KeepsTerminators(t *testing.T) {
	require.Empty(t, Lines(""))
	require.Equal(t, []string{"a\n", "b"}, Lines("a\nb"))
	require.Equal(t, []string{"a\n", "\n"}, Lines("a\n\n"))
	require.Equal(t, []string{"a\r\n", "b\r\n"}, Lines("a\r\nb\r\n"))
}
