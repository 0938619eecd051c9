// Package cachepath maps remote resource locations to deterministic,
// collision-safe cache file paths under a configured root directory.
// Mapping is a pure function: identical inputs always yield identical
// paths, and no derived path ever escapes the root.
package cachepath

import (
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/glorpus-work/rescache/pkg/errors"
	"github.com/glorpus-work/rescache/pkg/fsutil"
)

// URLToPath converts a resource location into a local path under root.
// The layout is {root}/{scheme}/{host}/{port}/{path}[.{query}], which
// groups cached files by origin so two origins can never collide on the
// same relative path. Locations whose path or query contain a parent
// traversal sequence, and final segments longer than the filesystem
// limit, are replaced by their Digest instead.
func URLToPath(location *url.URL, root string) (string, error) {
	if location == nil {
		return "", errors.ErrNilLocation
	}
	if root == "" {
		return "", errors.ErrEmptyRoot
	}

	origin := filepath.Join(location.Scheme, location.Hostname(), portSegment(location))

	locationPath := location.Path
	query := location.RawQuery
	if strings.Contains(locationPath, "..") || strings.Contains(query, "..") {
		// A traversal sequence could climb out of root once the path
		// is concatenated, so the whole remainder is hashed instead.
		hexed := Digest(path.Base(locationPath), locationPath)
		return filepath.Join(root, origin, hexed), nil
	}

	rel := sanitizeRelPath(locationPath)
	if query != "" {
		rel += "." + sanitizeQuery(query)
	}

	candidate := filepath.Join(root, origin, rel)
	if base := filepath.Base(candidate); len(base) > fsutil.MaxSegmentLen {
		// Filesystems commonly refuse names beyond 255 characters, and
		// naive truncation would collide files differing only in their
		// tails (e.g. long hash-carrying queries). Hash the segment,
		// keeping its extension.
		hexed := Digest(base, base)
		candidate = filepath.Join(filepath.Dir(candidate), hexed)
	}
	return candidate, nil
}

// portSegment returns the explicit port if the location names one,
// otherwise the scheme's conventional default port.
func portSegment(location *url.URL) string {
	if p := location.Port(); p != "" {
		return p
	}
	return strconv.Itoa(defaultPort(location.Scheme))
}

func defaultPort(scheme string) int {
	switch scheme {
	case "http":
		return 80
	case "https":
		return 443
	case "ftp":
		return 21
	default:
		return 0
	}
}

// sanitizeRelPath collapses relative components and strips any leading
// separator so the result is always relative to its origin directory.
// Callers have already excluded ".." sequences.
func sanitizeRelPath(p string) string {
	cleaned := path.Clean("/" + p)
	cleaned = strings.TrimPrefix(cleaned, "/")
	return filepath.FromSlash(cleaned)
}

// sanitizeQuery keeps the query part of a location inside the final
// path segment by replacing anything that would act as a separator.
func sanitizeQuery(q string) string {
	q = strings.ReplaceAll(q, "/", "_")
	if os.PathSeparator != '/' {
		q = strings.ReplaceAll(q, string(os.PathSeparator), "_")
	}
	return q
}
