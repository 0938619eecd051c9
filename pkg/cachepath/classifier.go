package cachepath

import (
	"net/url"
	"slices"

	"github.com/glorpus-work/rescache/pkg/errors"
)

// Schemes whose resources are already addressable as local artifacts.
const (
	// SchemeFile is a direct filesystem reference.
	SchemeFile = "file"
	// SchemeJar is an entry inside a packaged archive.
	SchemeJar = "jar"
)

var nonCacheableSchemes = []string{SchemeFile, SchemeJar}

// IsCacheable reports whether the resource at source can be staged as a
// local cache file. Local-file and archive-entry locations are read in
// place instead; every network-retrievable scheme is cacheable.
func IsCacheable(source *url.URL) (bool, error) {
	if source == nil {
		return false, errors.ErrNilLocation
	}
	return !slices.Contains(nonCacheableSchemes, source.Scheme), nil
}
