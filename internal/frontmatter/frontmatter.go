package frontmatter

import (
	"strings"
	"unicode"
)

// Delimiter opens and closes a frontmatter block.
const Delimiter = "---"

// SplitLines separates a leading `---` delimited frontmatter block from the
// Markdown body.
//
// Lines are expected to keep their terminators. Blank lines before the opening
// delimiter are skipped during detection. When no well-formed block exists the
// frontmatter is empty and body is lines, untouched. When a block is found,
// the returned frontmatter holds both delimiters with every line normalized to
// a single trailing "\n", and body holds everything after the closing
// delimiter. The leading blank lines are dropped in that case.
func SplitLines(lines []string) (frontmatter []string, body []string) {
	i := 0
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i >= len(lines) || !isDelimiter(lines[i]) {
		return []string{}, lines
	}

	start := i
	i++
	for i < len(lines) && !isDelimiter(lines[i]) {
		i++
	}
	if i >= len(lines) {
		return []string{}, lines
	}
	end := i

	frontmatter = make([]string, 0, end-start+1)
	for _, line := range lines[start : end+1] {
		frontmatter = append(frontmatter, trimRight(line)+"\n")
	}
	return frontmatter, lines[end+1:]
}

// Split is SplitLines over a whole document. had reports whether a
// frontmatter block was recognized.
func Split(content string) (frontmatter string, body string, had bool) {
	fm, rest := SplitLines(Lines(content))
	return strings.Join(fm, ""), strings.Join(rest, ""), len(fm) > 0
}

// Lines splits content into lines that keep their "\n" terminator. A final
// line without a terminator is returned as-is; empty content yields no lines.
func Lines(content string) []string {
	if content == "" {
		return []string{}
	}
	lines := strings.SplitAfter(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// isDelimiter reports whether line is exactly the delimiter once trailing
// whitespace is removed. Leading whitespace disqualifies it.
func isDelimiter(line string) bool {
	return trimRight(line) == Delimiter
}

func trimRight(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}
