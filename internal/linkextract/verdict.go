package linkextract

// Verdict names the rule of the decision table that settled a link.
type Verdict string

const (
	// VerdictKept: the serialized URI was kept.
	VerdictKept Verdict = "kept"
	// VerdictPrefixed: an absolute path was rewritten under the prefix.
	VerdictPrefixed Verdict = "prefixed"

	VerdictEmailAutoLink Verdict = "email_autolink"
	VerdictEmpty         Verdict = "empty"
	VerdictMailto        Verdict = "mailto"
	VerdictRelative      Verdict = "relative"
)

// Kept reports whether the verdict puts a string in the result set.
func (v Verdict) Kept() bool {
	return v == VerdictKept || v == VerdictPrefixed
}
