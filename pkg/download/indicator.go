package download

import "net/url"

// NoopIndicator satisfies Indicator without observing anything. The
// coordinator substitutes it when no default indicator is configured so
// waits proceed unobserved instead of failing.
type NoopIndicator struct{}

// Listener returns a listener that ignores every callback.
func (NoopIndicator) Listener(string, []*url.URL) Listener { return noopListener{} }

// DisposeListener is a no-op.
func (NoopIndicator) DisposeListener(Listener) {}

type noopListener struct{}

func (noopListener) Progress(*url.URL, int64, int64, int)   {}
func (noopListener) Validating(*url.URL, int64, int64, int) {}
func (noopListener) Failed(*url.URL)                        {}
