package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
	gmast "github.com/yuin/goldmark/ast"
)

func TestExtractLinks_InlineLink(t *testing.T) {
	links, err := ExtractLinks([]byte("See [API](api.md) for details."), Options{})
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.Equal(t, LinkKindInline, links[0].Kind)
	require.Equal(t, "api.md", links[0].Destination)
	require.False(t, links[0].Email)
}

func TestExtractLinks_ImageSkippedUnlessRequested(t *testing.T) {
	src := []byte("![Diagram](diagram.png)")

	links, err := ExtractLinks(src, Options{})
	require.NoError(t, err)
	require.Empty(t, links)

	links, err = ExtractLinks(src, Options{Images: true})
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.Equal(t, LinkKindImage, links[0].Kind)
	require.Equal(t, "diagram.png", links[0].Target())
}

func TestExtractLinks_AutoLink(t *testing.T) {
	links, err := ExtractLinks([]byte("<https://example.com/path>"), Options{})
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.Equal(t, LinkKindAuto, links[0].Kind)
	require.Equal(t, "https://example.com/path", links[0].Destination)
	require.False(t, links[0].Email)
}

func TestExtractLinks_EmailAutoLinkIsFlagged(t *testing.T) {
	links, err := ExtractLinks([]byte("Mail <john@example.com> now."), Options{})
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.Equal(t, LinkKindAuto, links[0].Kind)
	require.True(t, links[0].Email)
}

func TestExtractLinks_ReferenceLinkReportsUsageOnly(t *testing.T) {
	src := []byte("See [API][ref].\n\n[ref]: api.md\n")
	links, err := ExtractLinks(src, Options{})
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.Equal(t, LinkKindInline, links[0].Kind)
	require.Equal(t, "api.md", links[0].Destination)
}

func TestExtractLinks_SkipsInlineCodeAndCodeBlocks(t *testing.T) {
	src := []byte("" +
		"Inline code: `[Link](./ignored-inline.md)`\n" +
		"\n" +
		"```\n" +
		"[Link](./ignored-fence.md)\n" +
		"```\n" +
		"\n" +
		"Real: [OK](./real.md)\n")

	links, err := ExtractLinks(src, Options{})
	require.NoError(t, err)
	require.Len(t, links, 1)
	require.Equal(t, "./real.md", links[0].Destination)
}

func TestExtractLinks_DocumentOrder(t *testing.T) {
	src := []byte("[a](/x)\n[![logo](logo.png)](https://h.test/y)\n<https://z.test>\n")

	links, err := ExtractLinks(src, Options{Images: true})
	require.NoError(t, err)
	require.Equal(t, []Link{
		{Kind: LinkKindInline, Destination: "/x"},
		{Kind: LinkKindInline, Destination: "https://h.test/y"},
		{Kind: LinkKindImage, Destination: "logo.png"},
		{Kind: LinkKindAuto, Destination: "https://z.test"},
	}, links)
}

func TestExtractLinks_Empty(t *testing.T) {
	links, err := ExtractLinks(nil, Options{})
	require.NoError(t, err)
	require.Empty(t, links)
}

func TestExtractLinks_ParserPanicReturnsPartialLinks(t *testing.T) {
	orig := parseBody
	t.Cleanup(func() { parseBody = orig })

	parseBody = func([]byte) gmast.Node {
		doc := gmast.NewDocument()
		link := gmast.NewLink()
		link.Destination = []byte("https://h.test/first")
		doc.AppendChild(doc, link)
		doc.AppendChild(doc, &explodingNode{})
		return doc
	}

	links, err := ExtractLinks([]byte("ignored"), Options{})
	require.ErrorContains(t, err, "broken tree")
	require.Equal(t, []Link{{Kind: LinkKindInline, Destination: "https://h.test/first"}}, links)
}

var kindExploding = gmast.NewNodeKind("Exploding")

// explodingNode panics as soon as the walker descends into it.
type explodingNode struct {
	gmast.BaseInline
}

func (n *explodingNode) Kind() gmast.NodeKind { return kindExploding }

func (n *explodingNode) Dump(source []byte, level int) {
	gmast.DumpHelper(n, source, level, nil, nil)
}

func (n *explodingNode) FirstChild() gmast.Node { panic("broken tree") }
