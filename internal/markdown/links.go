package markdown

// Options controls how Markdown is parsed for link extraction.
type Options struct {
	// Images also reports image sources.
	Images bool
}

type LinkKind string

const (
	LinkKindInline LinkKind = "inline"
	LinkKindImage  LinkKind = "image"
	LinkKindAuto   LinkKind = "auto"
)

// Link is one link-like node found in a document.
//
// Destination is the raw target (or image source) exactly as the parser
// resolved it. Email is only ever set for autolinks written in the
// `<user@host>` form.
type Link struct {
	Kind        LinkKind
	Destination string
	Email       bool
}

// Target returns the raw target string of the node.
func (l Link) Target() string { return l.Destination }
