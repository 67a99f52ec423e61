// SPDX-License-Identifier: EPL-2.0

package convert

import (
	"os"
	"path/filepath"
)

// File is a named byte source handed to the pipeline.
type File interface {
	Name() string
	// Size in bytes, or -1 when unknown.
	Size() int64
	ReadAll() ([]byte, error)
}

// OSFile is a file on disk.
type OSFile struct {
	Path string
}

// Name is the base name of Path.
func (f OSFile) Name() string { return filepath.Base(f.Path) }

func (f OSFile) Size() int64 {
	info, err := os.Stat(f.Path)
	if err != nil {
		return -1
	}

	return info.Size()
}

func (f OSFile) ReadAll() ([]byte, error) {
	return os.ReadFile(f.Path)
}

// MemFile is an in-memory file. A non-nil Err is returned from ReadAll
// instead of Data.
type MemFile struct {
	FileName string
	Data     []byte
	Err      error
}

func NewMemFile(name string, data []byte) MemFile {
	return MemFile{FileName: name, Data: data}
}

func (f MemFile) Name() string { return f.FileName }

func (f MemFile) Size() int64 { return int64(len(f.Data)) }

func (f MemFile) ReadAll() ([]byte, error) {
	if f.Err != nil {
		return nil, f.Err
	}

	return f.Data, nil
}

// Paths wraps each path as an OSFile.
func Paths(paths ...string) []File {
	files := make([]File, len(paths))
	for i, p := range paths {
		files[i] = OSFile{Path: p}
	}

	return files
}
