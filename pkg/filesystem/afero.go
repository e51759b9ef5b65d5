package filesystem

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/eolmix/pkg/errors"
	"github.com/spf13/afero"
)

// DefaultFileMode is used for newly created files.
const DefaultFileMode fs.FileMode = 0644

// BackupPrefix is prepended to a file's base name to form its backup name.
const BackupPrefix = ".~"

// NewOS returns the OS filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// WriteExact creates or truncates name and writes chunks to it in order.
// The handle is closed on every path; a close failure is reported when
// nothing else went wrong.
func WriteExact(fsys afero.Fs, name string, perm fs.FileMode, chunks ...[]byte) (err error) {
	f, err := fsys.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileCreate, "cannot create %s", name)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, errors.ErrFileWrite, "cannot close %s", name)
		}
	}()

	for _, chunk := range chunks {
		if _, err = f.Write(chunk); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", name)
		}
	}
	return nil
}

// ReadRaw returns the untranslated content of name.
func ReadRaw(fsys afero.Fs, name string) ([]byte, error) {
	info, err := fsys.Stat(name)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "%s not found", name)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", name)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "%s is a directory", name)
	}
	data, err := afero.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", name)
	}
	return data, nil
}

// BackupName returns the backup path for name: same directory, base name
// prefixed with BackupPrefix.
func BackupName(name string) string {
	dir, base := filepath.Split(name)
	return filepath.Join(dir, BackupPrefix+base)
}

// Replace rewrites an existing file with data, keeping its permission
// bits. When keepBackup is set the previous content is left at
// BackupName(name).
func Replace(fsys afero.Fs, name string, data []byte, keepBackup bool) error {
	info, err := fsys.Stat(name)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(err, errors.ErrFileNotFound, "%s not found", name)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", name)
	}
	mode := info.Mode().Perm()

	backup := BackupName(name)
	if err := fsys.Rename(name, backup); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot back up %s", name)
	}

	if err := WriteExact(fsys, name, mode, data); err != nil {
		// put the original back so a failed rewrite loses nothing
		if rerr := fsys.Rename(backup, name); rerr != nil {
			return stderrors.Join(err, rerr)
		}
		return err
	}
	if err := fsys.Chmod(name, mode); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot restore mode of %s", name)
	}

	if !keepBackup {
		if err := fsys.Remove(backup); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot remove backup %s", backup)
		}
	}
	return nil
}
