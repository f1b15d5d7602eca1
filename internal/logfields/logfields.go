package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeySource     = "source"
	KeySources    = "sources"
	KeyTarget     = "target"
	KeyVerdict    = "verdict"
	KeyLinks      = "links"
	KeyDurationMS = "duration_ms"
	KeyOutput     = "output"
	KeyEvent      = "event"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Source(s string) slog.Attr        { return slog.String(KeySource, s) }
func Sources(n int) slog.Attr          { return slog.Int(KeySources, n) }
func Target(t string) slog.Attr        { return slog.String(KeyTarget, t) }
func Verdict(v string) slog.Attr       { return slog.String(KeyVerdict, v) }
func Links(n int) slog.Attr            { return slog.Int(KeyLinks, n) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Output(o string) slog.Attr        { return slog.String(KeyOutput, o) }
func Event(e string) slog.Attr         { return slog.String(KeyEvent, e) }
func Error(err error) slog.Attr {
	if err == nil { return slog.String(KeyError, "") }
	return slog.String(KeyError, err.Error())
}
