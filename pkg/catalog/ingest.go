package catalog

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/agentstation/termipaper/internal/atomicfile"
	"github.com/agentstation/termipaper/pkg/constants"
	"github.com/agentstation/termipaper/pkg/errors"
)

// StoredName derives the file name a source is stored under: the identifier
// plus the source's extension, or the bare identifier when it has none.
// Leading dots do not start an extension, so ".paperrc" has none.
func StoredName(id, source string) string {
	base := filepath.Base(source)
	dot := strings.LastIndexByte(base, '.')
	if dot <= 0 || dot == len(base)-1 {
		return id
	}
	return id + base[dot:]
}

// checkStoredName rejects derived names that would clobber the category's own
// bookkeeping or escape the directory.
func checkStoredName(name string) error {
	switch name {
	case ".", "..", constants.IndexFileName:
		return errors.NewValidationError("file", name, "derived file name is reserved")
	}
	return nil
}

// ingest copies source into dir under name. A source that already is the
// destination is left in place. When a file of that name already exists the
// copy is staged beside it instead, and the staged path is returned for the
// caller to move into place once the index is saved.
func ingest(fsys afero.Fs, dir, source, name string) (string, error) {
	info, err := fsys.Stat(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errors.NewNotFoundError(ResourceSourceFile, source)
		}
		return "", errors.WrapIO("read", source, err)
	}
	if info.IsDir() {
		return "", errors.NewIOError("copy", source, fmt.Errorf("source is a directory"))
	}

	dest := filepath.Join(dir, name)
	if samePath(source, dest) {
		return "", nil
	}

	exists, err := afero.Exists(fsys, dest)
	if err != nil {
		return "", errors.WrapIO("read", dest, err)
	}
	if exists {
		return stageFile(fsys, source, dest)
	}
	return "", copyFile(fsys, source, dest)
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// copyFile streams src into dst through a temporary sibling, so an
// interrupted copy never replaces an existing file.
func copyFile(fsys afero.Fs, src, dst string) error {
	in, err := fsys.Open(src)
	if err != nil {
		return errors.WrapIO("read", src, err)
	}
	defer func() { _ = in.Close() }()

	return atomicfile.WriteFrom(fsys, dst, "", in)
}

// stageFile streams src into a temporary sibling of dst and returns its path.
func stageFile(fsys afero.Fs, src, dst string) (string, error) {
	in, err := fsys.Open(src)
	if err != nil {
		return "", errors.WrapIO("read", src, err)
	}
	defer func() { _ = in.Close() }()

	return atomicfile.Stage(fsys, dst, "."+filepath.Base(dst)+".*.staged", in)
}
