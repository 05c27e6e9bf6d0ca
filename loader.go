package inventory

import (
	"fmt"
	"os"
	"path/filepath"
)

// LoadStore reads the whole persisted collection from path. A missing file
// surfaces as an error wrapping fs.ErrNotExist so callers can decide between
// bootstrapping an import and starting empty.
func LoadStore(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open data file %q: %w", path, err)
	}
	defer f.Close()

	records, err := DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode data file %q: %w", path, err)
	}
	return newStoreOf(records), nil
}

// SaveStore overwrites the entire persisted collection at path with the
// store's records, then lets the snapshotter take a best-effort immutable
// copy tagged with the acting principal. A nil snapshotter skips the copy;
// snapshot failures never abort the save.
//
// The write goes to a temporary file in the same directory, synced, then
// renamed over the target, so readers observe either the previous document
// or the new one, never a partial write.
func SaveStore(path string, s *Store, principal Principal, snap *Snapshotter) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for data file %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary data file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if err := EncodeRecords(tmp, s.Records()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("could not flush data file %q: %w", tmpName, err)
	}
	// CreateTemp opens with 0600; widen to the usual data-file mode before
	// the rename makes it the visible document.
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("could not set permissions on data file %q: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close data file %q: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("could not replace data file %q: %w", path, err)
	}

	if snap != nil {
		snap.Take(path, principal)
	}
	return nil
}
