package testutil

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// FaultFS wraps an afero.Fs and fails selected paths on demand
type FaultFS struct {
	afero.Fs

	mu          sync.Mutex
	openErrors  map[string]error
	writeErrors map[string]error

	// Statistics
	opens int
}

// NewFaultFS wraps base
func NewFaultFS(base afero.Fs) *FaultFS {
	return &FaultFS{
		Fs:          base,
		openErrors:  make(map[string]error),
		writeErrors: make(map[string]error),
	}
}

// FailOpen makes every open of path return err
func (f *FaultFS) FailOpen(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.openErrors[filepath.Clean(path)] = err
}

// FailWrite lets path open normally but makes every write to it return err
func (f *FaultFS) FailWrite(path string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writeErrors[filepath.Clean(path)] = err
}

// Opens reports how many opens reached the wrapped filesystem
func (f *FaultFS) Opens() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opens
}

func (f *FaultFS) Name() string {
	return "FaultFS"
}

func (f *FaultFS) Create(name string) (afero.File, error) {
	return f.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
}

func (f *FaultFS) Open(name string) (afero.File, error) {
	return f.OpenFile(name, os.O_RDONLY, 0)
}

func (f *FaultFS) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	key := filepath.Clean(name)

	f.mu.Lock()
	openErr := f.openErrors[key]
	writeErr := f.writeErrors[key]
	if openErr == nil {
		f.opens++
	}
	f.mu.Unlock()

	if openErr != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: openErr}
	}
	file, err := f.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	if writeErr != nil {
		return &faultFile{File: file, err: writeErr}, nil
	}
	return file, nil
}

// faultFile fails every write with err
type faultFile struct {
	afero.File
	err error
}

func (f *faultFile) Write(p []byte) (int, error) {
	return 0, &os.PathError{Op: "write", Path: f.Name(), Err: f.err}
}

func (f *faultFile) WriteAt(p []byte, off int64) (int, error) {
	return 0, &os.PathError{Op: "write", Path: f.Name(), Err: f.err}
}

func (f *faultFile) WriteString(s string) (int, error) {
	return f.Write([]byte(s))
}
