//go:generate mockgen -destination=./mocks/download.go . Tracker,Indicator,Listener

// Package download coordinates "wait until these resources are fully
// downloaded" against an external resource tracker, wiring a pluggable
// progress listener for the duration of the wait. The actual transfer
// and storage of bytes belongs to the tracker, not to this package.
package download

import (
	"context"
	"net/url"

	version "github.com/hashicorp/go-version"
)

// Tracker is the external component that retrieves and stores resource
// bytes. It owns all transfer parallelism, retries and cancellation.
type Tracker interface {
	// AddResource registers a resource (with an optional version) for download.
	AddResource(location *url.URL, ver *version.Version) error

	// AddListener attaches a progress listener to location, scoped to
	// the given resource set. Must be called before WaitForResources so
	// no early progress events are missed.
	AddListener(location *url.URL, resources []*url.URL, listener Listener)

	// WaitForResources blocks until every resource in the set has been
	// resolved, or the tracker gives up.
	WaitForResources(ctx context.Context, resources []*url.URL) error

	// CacheFile returns the local cache file for a previously added
	// resource, blocking until it is available.
	CacheFile(ctx context.Context, location *url.URL) (string, error)
}

// Listener receives progress callbacks for a named set of resources.
type Listener interface {
	// Progress reports transfer progress for one resource.
	Progress(location *url.URL, readSoFar, total int64, overallPercent int)

	// Validating reports validation progress after transfer.
	Validating(location *url.URL, entry, total int64, overallPercent int)

	// Failed reports that a resource could not be downloaded.
	Failed(location *url.URL)
}

// Indicator hands out listeners and releases them again. A listener
// acquired from an indicator must be disposed exactly once.
type Indicator interface {
	// Listener returns a listener observing the named download.
	Listener(title string, resources []*url.URL) Listener

	// DisposeListener releases a listener obtained from Listener.
	DisposeListener(listener Listener)
}
