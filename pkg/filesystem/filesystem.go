package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/lootifier/pkg/errors"
	"github.com/spf13/afero"
)

// FilePerm is used for every file lootifier creates.
const FilePerm fs.FileMode = 0644

// NewOS returns the host filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// ReadSource returns the full content of path. A missing file, a directory
// or any read failure is reported as ErrSourceUnreadable.
func ReadSource(fsys afero.Fs, path string) (string, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrSourceUnreadable, "cannot read %s", path).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return "", errors.Newf(errors.ErrSourceUnreadable, "cannot read %s: is a directory", path).
			WithDetail("path", path)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrSourceUnreadable, "cannot read %s", path).
			WithDetail("path", path)
	}
	return string(data), nil
}

// WriteSink replaces the content of path with content, creating the file
// when needed.
func WriteSink(fsys afero.Fs, path, content string) error {
	if err := afero.WriteFile(fsys, path, []byte(content), FilePerm); err != nil {
		return errors.Wrapf(err, errors.ErrDestinationUnwritable, "cannot write %s", path).
			WithDetail("path", path)
	}
	return nil
}

// Clear empties path if it exists and reports whether it did.
func Clear(fsys afero.Fs, path string) (bool, error) {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrDestinationUnwritable, "cannot stat %s", path).
			WithDetail("path", path)
	}
	if !exists {
		return false, nil
	}
	if err := WriteSink(fsys, path, ""); err != nil {
		return false, err
	}
	return true, nil
}
