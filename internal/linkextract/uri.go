package linkextract

import (
	"errors"
	"strings"
)

var errUnbalancedBrackets = errors.New("invalid IPv6 host: unbalanced brackets in authority")

// uri is a link target decomposed into the parts the decision table looks
// at. Every part is a raw substring of the target; nothing is escaped or
// decoded. Query is carried along but never inspected.
type uri struct {
	Scheme   string
	Netloc   string
	Path     string
	Query    string
	Fragment string

	// Authority records a "//" marker, which may introduce an empty netloc
	// as in "file:///etc/hosts".
	Authority bool
}

// parseURI splits raw into scheme, authority, path, query and fragment
// without validating or re-encoding any part. The scheme is lowercased.
//
// An authority with unbalanced IPv6 brackets cannot be decomposed. Such a
// target is still returned, as an opaque path with empty scheme and netloc,
// together with an error so the caller can log it.
func parseURI(raw string) (uri, error) {
	rest := strings.Map(dropTabsAndNewlines, strings.TrimLeft(raw, c0ControlOrSpace))

	var u uri
	if i := strings.IndexByte(rest, ':'); i > 0 && validScheme(rest[:i]) {
		u.Scheme = strings.ToLower(rest[:i])
		rest = rest[i+1:]
	}

	if strings.HasPrefix(rest, "//") {
		rest = rest[2:]
		end := strings.IndexAny(rest, "/?#")
		if end < 0 {
			end = len(rest)
		}
		u.Authority = true
		u.Netloc = rest[:end]
		rest = rest[end:]

		if strings.Contains(u.Netloc, "[") != strings.Contains(u.Netloc, "]") {
			path, fragment, _ := strings.Cut(raw, "#")
			return uri{Path: path, Fragment: fragment}, errUnbalancedBrackets
		}
	}

	rest, u.Fragment, _ = strings.Cut(rest, "#")
	u.Path, u.Query, _ = strings.Cut(rest, "?")
	return u, nil
}

// String reassembles the parts. Empty parts leave no separator behind, so a
// target reduced to nothing serializes to "".
func (u uri) String() string {
	var b strings.Builder
	if u.Scheme != "" {
		b.WriteString(u.Scheme)
		b.WriteByte(':')
	}
	if u.Netloc != "" || u.Authority {
		b.WriteString("//")
		b.WriteString(u.Netloc)
		if u.Path != "" && !strings.HasPrefix(u.Path, "/") {
			b.WriteByte('/')
		}
	}
	b.WriteString(u.Path)
	if u.Query != "" {
		b.WriteByte('?')
		b.WriteString(u.Query)
	}
	if u.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}
	return b.String()
}

// c0ControlOrSpace is stripped from the front of a target before splitting.
const c0ControlOrSpace = "\x00\x01\x02\x03\x04\x05\x06\x07\x08\t\n\x0b\x0c\r\x0e\x0f" +
	"\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f "

func dropTabsAndNewlines(r rune) rune {
	if r == '\t' || r == '\n' || r == '\r' {
		return -1
	}
	return r
}

// validScheme reports whether s is an ASCII letter followed by letters,
// digits, "+", "-" or ".".
func validScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return s != ""
}
