// Package atomicfile replaces files through a temporary sibling and a rename,
// so readers see either the old content or the new content, never a partial
// write.
package atomicfile

import (
	"bytes"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/agentstation/termipaper/pkg/constants"
	"github.com/agentstation/termipaper/pkg/errors"
)

// Write replaces path with data. pattern names the temporary file and must
// contain a "*"; an empty pattern derives one from the target name.
func Write(fsys afero.Fs, path, pattern string, data []byte) error {
	return WriteFrom(fsys, path, pattern, bytes.NewReader(data))
}

// WriteFrom replaces path with everything read from r.
func WriteFrom(fsys afero.Fs, path, pattern string, r io.Reader) error {
	tmpName, err := Stage(fsys, path, pattern, r)
	if err != nil {
		return err
	}
	if err := fsys.Rename(tmpName, path); err != nil {
		_ = fsys.Remove(tmpName)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

// Stage writes everything read from r to a temporary sibling of path and
// returns its name. path itself is untouched until the caller renames the
// staged file over it.
func Stage(fsys afero.Fs, path, pattern string, r io.Reader) (string, error) {
	if pattern == "" {
		pattern = "." + filepath.Base(path) + ".*.tmp"
	}

	tmp, err := afero.TempFile(fsys, filepath.Dir(path), pattern)
	if err != nil {
		return "", errors.WrapIO("create", path, err)
	}
	tmpName := tmp.Name()

	fail := func(op string, err error) (string, error) {
		_ = tmp.Close()
		_ = fsys.Remove(tmpName)
		return "", errors.WrapIO(op, path, err)
	}

	if _, err := io.Copy(tmp, r); err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("write", err)
	}
	if err := tmp.Close(); err != nil {
		_ = fsys.Remove(tmpName)
		return "", errors.WrapIO("write", path, err)
	}
	_ = fsys.Chmod(tmpName, constants.FilePermissions)
	return tmpName, nil
}
