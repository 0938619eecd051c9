package cache

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/glorpus-work/rescache/pkg/errors"
	"github.com/glorpus-work/rescache/pkg/fsutil"
)

// Manager inspects the on-disk cache tree. Paths under the root follow
// the {scheme}/{host}/{port}/... layout produced by cachepath, so the
// first three directory levels identify a cache origin.
type Manager struct {
	directory string
}

// Info summarizes the whole cache directory.
type Info struct {
	Directory string
	TotalSize int64
	Files     int
}

// Origin describes the cached files of one {scheme}/{host}/{port} id.
type Origin struct {
	ID    string
	Size  int64
	Files int
}

// NewManager creates a cache manager over the given directory.
func NewManager(directory string) *Manager {
	return &Manager{directory: directory}
}

// NewDefaultManager creates a cache manager over the platform cache
// directory, creating it if needed.
func NewDefaultManager() (*Manager, error) {
	cacheDir, err := fsutil.GetCacheDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user cache directory")
	}
	if err := os.MkdirAll(cacheDir, fsutil.DirModePrivate); err != nil {
		return nil, errors.Wrap(err, "failed to create cache directory")
	}
	return NewManager(cacheDir), nil
}

// Directory returns the cache root directory.
func (m *Manager) Directory() string {
	return m.directory
}

// SetDirectory changes the cache root directory.
func (m *Manager) SetDirectory(dir string) error {
	if dir == "" {
		return errors.ErrCacheDirectory
	}
	m.directory = dir
	return nil
}

// Info returns the total size and file count of the cache.
func (m *Manager) Info() (*Info, error) {
	size, files, err := dirSizeAndFiles(m.directory)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCacheInfo, err.Error())
	}
	return &Info{Directory: m.directory, TotalSize: size, Files: files}, nil
}

// Origins lists the cache origins whose id matches filter, a regular
// expression; an empty filter matches every origin. IDs are relative
// {scheme}/{host}/{port} paths in slash form.
func (m *Manager) Origins(filter string) ([]Origin, error) {
	var matcher *regexp.Regexp
	if filter != "" {
		var err error
		matcher, err = regexp.Compile(filter)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid origin filter %q", filter)
		}
	}

	var origins []Origin
	for _, id := range m.originIDs() {
		if matcher != nil && !matcher.MatchString(id) {
			continue
		}
		size, files, err := dirSizeAndFiles(filepath.Join(m.directory, filepath.FromSlash(id)))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to inspect origin %s", id)
		}
		origins = append(origins, Origin{ID: id, Size: size, Files: files})
	}
	return origins, nil
}

// LogOrigins writes the matching origin ids to the logger, with file
// counts at debug level, mirroring the cache id listing of the control
// panel tooling.
func (m *Manager) LogOrigins(log *slog.Logger, filter string) error {
	origins, err := m.Origins(filter)
	if err != nil {
		return err
	}
	for _, origin := range origins {
		if log.Enabled(context.Background(), slog.LevelDebug) {
			log.Debug(origin.ID, "files", origin.Files, "size", origin.Size)
		} else {
			log.Info(origin.ID)
		}
	}
	return nil
}

// originIDs walks the first three directory levels under the root.
func (m *Manager) originIDs() []string {
	var ids []string
	for _, scheme := range subdirs(m.directory) {
		schemeDir := filepath.Join(m.directory, scheme)
		for _, host := range subdirs(schemeDir) {
			hostDir := filepath.Join(schemeDir, host)
			for _, port := range subdirs(hostDir) {
				ids = append(ids, scheme+"/"+host+"/"+port)
			}
		}
	}
	return ids
}

func subdirs(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names
}

// dirSizeAndFiles calculates directory size and file count. A missing
// directory counts as empty.
func dirSizeAndFiles(dir string) (int64, int, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0, 0, nil
	}

	var size int64
	var files int
	err := filepath.WalkDir(dir, func(_ string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		size += info.Size()
		files++
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return size, files, nil
}
