// Package cache exposes the resolution entry point that stages a
// resource into the local cache, plus read-only inspection of the
// cache directory tree. Byte transfer and storage stay behind the
// download.Tracker interface.
package cache

import (
	"context"
	"log/slog"
	"net/url"
	"path/filepath"

	version "github.com/hashicorp/go-version"

	"github.com/glorpus-work/rescache/pkg/cachepath"
	"github.com/glorpus-work/rescache/pkg/download"
	"github.com/glorpus-work/rescache/pkg/errors"
)

// TrackerFactory creates a fresh tracker for one resolution.
type TrackerFactory func() download.Tracker

// Resolver caches a resource via an externally supplied tracker and
// returns its local cache file.
type Resolver struct {
	NewTracker TrackerFactory
	Logger     *slog.Logger
}

// DownloadAndGetCacheFile caches a resource and returns the local file
// for it, blocking until the resource is cached. If downloading fails
// and the location is a direct filesystem reference, the local file
// path is returned instead; every other failure yields ErrUnresolved.
func (r *Resolver) DownloadAndGetCacheFile(ctx context.Context, location *url.URL, ver *version.Version) (string, error) {
	if location == nil {
		return "", errors.ErrNilLocation
	}
	if r.NewTracker == nil {
		return "", errors.Wrap(errors.ErrUnresolved, "no tracker factory configured")
	}

	path, err := r.stage(ctx, location, ver)
	if err == nil {
		return path, nil
	}

	if location.Scheme == cachepath.SchemeFile {
		// The resource is already a local artifact; read it in place.
		return LocalFilePath(location), nil
	}
	r.logger().Debug("resource could not be staged", "location", location.String(), "error", err)
	return "", errors.Wrapf(errors.ErrUnresolved, "%s: %v", location, err)
}

func (r *Resolver) stage(ctx context.Context, location *url.URL, ver *version.Version) (string, error) {
	tracker := r.NewTracker()
	if err := tracker.AddResource(location, ver); err != nil {
		return "", err
	}
	return tracker.CacheFile(ctx, location)
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// LocalFilePath converts a file-scheme location into a filesystem path.
func LocalFilePath(location *url.URL) string {
	return filepath.FromSlash(location.Path)
}
