package markdown

import (
	"fmt"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// ParseBody parses a Markdown body (frontmatter already removed) into a Goldmark AST.
func ParseBody(body []byte) gmast.Node {
	md := goldmark.New()
	return md.Parser().Parse(text.NewReader(body), parser.WithContext(parser.NewContext()))
}

// parseBody is swapped out in tests.
var parseBody = ParseBody

// ExtractLinks parses a Markdown body and returns its link-like nodes in
// depth-first document order.
//
// Reference-style links surface as inline links carrying the resolved
// destination; the reference definitions themselves are not reported.
// A panic inside the parser or walker is returned as an error together with
// the links found before it.
func ExtractLinks(body []byte, opts Options) (links []Link, err error) {
	links = make([]Link, 0)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("markdown parser panic: %v", r)
		}
	}()

	root := parseBody(body)
	err = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{
				Kind:        LinkKindAuto,
				Destination: string(node.URL(body)),
				Email:       node.AutoLinkType == gmast.AutoLinkEmail,
			})
		case *gmast.Image:
			if opts.Images {
				links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
			}
		case *gmast.Link:
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})
	return links, err
}
