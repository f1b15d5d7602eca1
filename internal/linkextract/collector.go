// Package linkextract turns the link-like nodes of a Markdown document into a
// set of canonical URI strings.
package linkextract

import (
	"log/slog"
	"strings"
	"time"

	"git.home.luguber.info/inful/linkextr/internal/frontmatter"
	"git.home.luguber.info/inful/linkextr/internal/logfields"
	"git.home.luguber.info/inful/linkextr/internal/markdown"
	"git.home.luguber.info/inful/linkextr/internal/metrics"
	"git.home.luguber.info/inful/linkextr/internal/util/sets"
)

const (
	schemeHTTPS  = "https"
	schemeMailto = "mailto"
)

// Options controls which links are collected and how they are rewritten.
type Options struct {
	// Prefix is joined in front of absolute-path links ("/blog/a"). Trailing
	// slashes on the prefix are ignored. Empty disables the rewrite.
	Prefix string
	// Images also collects image sources.
	Images bool
	// AllURIs keeps targets without a host (relative paths) verbatim.
	AllURIs bool

	// Recorder receives one verdict per link-like node. Nil means no metrics.
	Recorder metrics.Recorder
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

func (o Options) recorder() metrics.Recorder {
	if o.Recorder == nil {
		return metrics.NoopRecorder{}
	}
	return o.Recorder
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Normalize runs the decision table for a single node. The returned string is
// only meaningful when the verdict is Kept.
//
// Rules apply in order and the first one that settles the node wins:
//
//  1. email-style autolinks are dropped
//  2. the fragment is removed; a target that is then empty is dropped
//  3. a host without a scheme gets https
//  4. with a prefix, a host-less absolute path becomes prefix+path
//  5. anything but mailto is kept if it has a host, or always with AllURIs
//  6. everything else is dropped
func Normalize(link markdown.Link, opts Options) (string, Verdict) {
	if link.Kind == markdown.LinkKindAuto && link.Email {
		return "", VerdictEmailAutoLink
	}

	raw := link.Target()
	u, err := parseURI(raw)
	if err != nil {
		opts.logger().Debug("Unparseable link target, treating as path",
			logfields.Target(raw), logfields.Error(err))
	}

	u.Fragment = ""
	if u.String() == "" {
		return "", VerdictEmpty
	}

	if u.Scheme == "" && u.Netloc != "" {
		u.Scheme = schemeHTTPS
	}

	if opts.Prefix != "" && u.Netloc == "" && strings.HasPrefix(u.Path, "/") {
		return strings.TrimRight(opts.Prefix, "/") + u.Path, VerdictPrefixed
	}

	if u.Scheme != schemeMailto && (u.Netloc != "" || opts.AllURIs) {
		return u.String(), VerdictKept
	}

	if u.Scheme == schemeMailto {
		return "", VerdictMailto
	}
	return "", VerdictRelative
}

// Collect parses the body lines (frontmatter already removed) and returns the
// set of normalized link targets.
//
// Lines are expected to keep their terminators; a line without one is
// treated as if it ended with "\n". A node that cannot be normalized is
// dropped on its own and never stops the rest of the document.
func Collect(lines []string, opts Options) sets.Set[string] {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			b.WriteByte('\n')
		}
	}

	log := opts.logger()
	rec := opts.recorder()

	links, err := markdown.ExtractLinks([]byte(b.String()), markdown.Options{Images: opts.Images})
	if err != nil {
		log.Warn("Markdown walk stopped early, keeping links found so far",
			logfields.Links(len(links)), logfields.Error(err))
	}

	out := sets.New[string]()
	for _, link := range links {
		target, verdict := Normalize(link, opts)
		rec.IncLinkVerdict(string(verdict))
		if !verdict.Kept() {
			log.Debug("Link discarded", logfields.Target(link.Target()), logfields.Verdict(string(verdict)))
			continue
		}
		out.Add(target)
	}
	return out
}

// CollectDocument strips a leading frontmatter block from content and
// collects the links of what remains.
func CollectDocument(content string, opts Options) sets.Set[string] {
	start := time.Now()
	_, body := frontmatter.SplitLines(frontmatter.Lines(content))
	out := Collect(body, opts)
	opts.recorder().ObserveExtractDuration(time.Since(start))
	return out
}
