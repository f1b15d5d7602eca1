package config

import "git.home.luguber.info/inful/linkextr/internal/foundation/normalization"

// Format selects how the result set is written.
type Format string

const (
	FormatText Format = "text" // one link per line
	FormatJSON Format = "json" // a JSON array of strings
)

var formatNormalizer = normalization.NewNormalizer(map[string]Format{
	"text": FormatText,
	"json": FormatJSON,
}, FormatText)

// ParseFormat normalizes raw; empty input yields FormatText.
func ParseFormat(raw string) (Format, error) {
	return formatNormalizer.NormalizeWithError(raw)
}
