package download

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/glorpus-work/rescache/pkg/model"
)

// Coordinator blocks callers until a set of resources has been
// downloaded by an external tracker, wiring a progress listener for
// the duration of the wait. All collaborators are injected; a nil
// Indicator degrades to an unobserved wait and a nil Logger falls back
// to slog.Default().
type Coordinator struct {
	Indicator Indicator
	Listeners *ListenerRegistry
	Logger    *slog.Logger
}

// WaitForResources blocks until every location in resources has been
// resolved by the tracker. The entry point may name a custom progress
// listener; otherwise the configured indicator observes the download.
// The listener is registered with the tracker before waiting starts
// and disposed exactly once afterwards, on every exit path.
//
// WaitForResources never returns an error: failures are logged and
// swallowed, so completion is best effort and callers needing
// certainty must verify resource availability themselves.
func (c *Coordinator) WaitForResources(ctx context.Context, tracker Tracker, entry model.EntryPoint, resources []*url.URL, title string) {
	if len(resources) == 0 {
		return
	}
	log := c.logger()
	if tracker == nil {
		log.Error("downloading of resources ended with error", "title", title, "error", "no tracker supplied")
		return
	}

	indicator := c.Indicator
	if indicator == nil {
		indicator = NoopIndicator{}
	}

	listener := c.resolveListener(entry, indicator, title, resources)
	defer indicator.DisposeListener(listener)

	for _, location := range resources {
		tracker.AddListener(location, resources, listener)
	}
	if err := tracker.WaitForResources(ctx, resources); err != nil {
		log.Error("downloading of resources ended with error", "title", title, "error", err)
	}
}

// resolveListener picks the custom listener named by the entry point
// when one is registered, falling back to the indicator's listener.
// Listener selection never aborts the wait.
func (c *Coordinator) resolveListener(entry model.EntryPoint, indicator Indicator, title string, resources []*url.URL) Listener {
	if id, ok := entry.ProgressListener(); ok {
		if c.Listeners != nil {
			listener, err := c.Listeners.New(id)
			if err == nil {
				return listener
			}
			c.logger().Warn("could not construct custom progress listener, using default download progress indicator instead",
				"listener", id, "error", err)
		} else {
			c.logger().Warn("no listener registry configured, using default download progress indicator instead",
				"listener", id)
		}
	}
	return indicator.Listener(title, resources)
}

func (c *Coordinator) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
