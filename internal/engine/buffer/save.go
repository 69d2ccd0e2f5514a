package buffer

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SaveToDisk writes every line joined by single LF terminators to the
// buffer's path, one trailing terminator after every line including
// the last. The dirty flag clears only on success; a failed save
// leaves the buffer content and flag untouched.
//
// Saving a buffer with no path returns ErrNoPath rather than silently
// clearing the flag.
func (b *Buffer) SaveToDisk() error {
	if b.path == "" {
		return ErrNoPath
	}

	dir := filepath.Dir(b.path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%d.%d.tmp",
		filepath.Base(b.path), os.Getpid(), time.Now().UnixNano()))

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("saving %s: %w", b.path, err)
	}

	if err := b.writeTo(f); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("saving %s: %w", b.path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("saving %s: %w", b.path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("saving %s: %w", b.path, err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("saving %s: %w", b.path, err)
	}

	b.dirty = false
	return nil
}

func (b *Buffer) writeTo(f *os.File) error {
	for _, ln := range b.lines {
		if _, err := f.Write(ln.Bytes()); err != nil {
			return err
		}
		if _, err := f.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}
