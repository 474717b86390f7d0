package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hupe1980/brepgo/codec"
)

// SaveFile writes a snapshot to filename atomically: the container is
// written to a temp file in the same directory, synced, and renamed over
// the target. A crash mid-save never leaves a partial snapshot behind.
func SaveFile[T any](filename string, m Manifest, payload T, optFns ...Option) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	_ = tmp.Chmod(0644)

	buf := bufio.NewWriterSize(tmp, 256*1024)
	if err := Save(buf, m, payload, optFns...); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	// Success: prevent deferred cleanup from removing the final file.
	tmpName = ""
	return nil
}

// LoadFile reads a snapshot from filename.
func LoadFile[T any](filename string) (Manifest, T, error) {
	f, err := os.Open(filename)
	if err != nil {
		var zero T
		return Manifest{}, zero, err
	}
	defer f.Close()

	return Load[T](f)
}

// Peek reads only the manifest of a snapshot, skipping the payload.
func Peek(r io.ReadSeeker) (Manifest, error) {
	codecName, compression, sections, err := readDirectory(r)
	if err != nil {
		return Manifest{}, err
	}

	c, ok := codec.ByName(codecName)
	if !ok {
		return Manifest{}, fmt.Errorf("unsupported snapshot codec %q", codecName)
	}

	var m Manifest
	if err := loadSection(r, sections, sectionManifest, compression, c, &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}
