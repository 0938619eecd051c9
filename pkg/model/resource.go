// Package model defines the shared value types passed between the
// cache path mapper, the resolver and the download coordinator.
package model

import (
	"net/url"

	version "github.com/hashicorp/go-version"

	"github.com/glorpus-work/rescache/pkg/errors"
)

// Resource identifies one remote artifact to stage into the cache.
// It is parsed once from its raw inputs and immutable afterwards.
type Resource struct {
	Location *url.URL
	Version  *version.Version // optional, nil when the caller did not pin one
}

// NewResource parses a raw URL and an optional version string into a Resource.
// An empty rawVersion leaves Version nil.
func NewResource(rawURL, rawVersion string) (*Resource, error) {
	if rawURL == "" {
		return nil, errors.ErrNilLocation
	}
	location, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid resource location %q", rawURL)
	}

	res := &Resource{Location: location}
	if rawVersion != "" {
		ver, err := version.NewVersion(rawVersion)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidVersion, "%q: %v", rawVersion, err)
		}
		res.Version = ver
	}
	return res, nil
}

// String renders the resource as location[@version] for logs and events.
func (r *Resource) String() string {
	if r == nil || r.Location == nil {
		return ""
	}
	if r.Version == nil {
		return r.Location.String()
	}
	return r.Location.String() + "@" + r.Version.String()
}
