package inventory

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Snapshotter keeps best-effort immutable copies of the data file, one per
// save, tagged with the acting principal. It stands in for external version
// control: the save has already succeeded when a snapshot is taken, so
// snapshot failures are swallowed rather than surfaced as application
// errors.
type Snapshotter struct {
	// Dir is the snapshot directory, created on first use.
	Dir string

	// now is the snapshot timestamp source, replaceable in tests.
	now func() time.Time
}

// NewSnapshotter creates a snapshotter writing into dir.
func NewSnapshotter(dir string) *Snapshotter {
	return &Snapshotter{Dir: dir, now: time.Now}
}

// Take copies the data file at path into the snapshot directory under a name
// recording the moment and the acting principal, e.g.
// "20250831-154502.000-administrator.json". Every failure is swallowed.
func (s *Snapshotter) Take(path string, principal Principal) {
	if s == nil || s.Dir == "" {
		return
	}
	if s.now == nil {
		s.now = time.Now
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return
	}

	src, err := os.Open(path)
	if err != nil {
		return
	}
	defer src.Close()

	stamp := s.now().UTC().Format("20060102-150405.000")
	name := stamp + "-" + sanitize(string(principal)) + filepath.Ext(path)
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return
	}
	defer dst.Close()

	io.Copy(dst, src)
}

// List returns the snapshot file names in the directory, oldest first by
// name. A missing directory is an empty history, not an error.
func (s *Snapshotter) List() []string {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

// sanitize keeps a principal usable as a file name component.
func sanitize(principal string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '_'
		}
		return r
	}, principal)
}
