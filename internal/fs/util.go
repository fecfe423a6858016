package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/akeil/deckgen/internal/logging"
)

// Move moves a file from src to dst.
// It tries os.Rename() first and falls back on "copy and delete".
//
// If src cannot be delted after a successful copy,
// NO error is returned and src remains as it was.
func Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	// Rename may have failed when moving across file systems
	// so try again w/ copy & delete.
	logging.Debug("Rename failed for %v -> %v, fall back on copy and delete", src, dst)
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, r)
	if err != nil {
		w.Close()
		return err
	}
	err = w.Close()
	if err != nil {
		return err
	}

	// A bit untidy, but we carry on even if we fail to clean up behind us.
	ignoredErr := os.Remove(src)
	if ignoredErr != nil {
		logging.Error("Failed to remove file %v", src)
	}

	return nil
}

// WriteFile writes the output of fn to path.
//
// Data goes to a temporary file next to path which replaces path once fn
// returns without error. An existing file at path is overwritten.
func WriteFile(path string, fn func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	logging.Debug("Write %q via temporary file %q", path, tmpName)

	// CreateTemp uses 0600, output files should be readable like os.Create's
	err = tmp.Chmod(0644)
	if err != nil {
		logging.Warning("Failed to set permissions on %q: %v", tmpName, err)
	}

	err = fn(tmp)
	if err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}

	err = tmp.Close()
	if err != nil {
		os.Remove(tmpName)
		return err
	}

	err = Move(tmpName, path)
	if err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
