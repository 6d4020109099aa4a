// Package upload defines the file descriptors that flow through the pipeline.
package upload

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File is an uploaded file whose content type can be read and replaced.
// An absent content type is the empty string.
type File interface {
	OriginalFilename() string
	ContentType() string
	SetContentType(contentType string)
}

// Opener is implemented by files whose content can be read back,
// e.g. for content sniffing.
type Opener interface {
	Open() (io.ReadCloser, error)
}

var (
	_ File   = (*LocalFile)(nil)
	_ Opener = (*LocalFile)(nil)
	_ File   = (*MemFile)(nil)
	_ Opener = (*MemFile)(nil)
)

// LocalFile is a regular file on disk.
type LocalFile struct {
	Path   string
	Name   string // original filename used for type lookup and as the upload name
	Size   int64
	SHA256 string // filled by the checksum pipe

	contentType string
}

// NewLocalFile validates path and returns a descriptor carrying the declared
// content type. Symlinks and non-regular files are rejected.
func NewLocalFile(path, declaredType string) (*LocalFile, error) {
	if path == "" {
		return nil, fmt.Errorf("file path is required")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	info, err := os.Lstat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access file: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return nil, fmt.Errorf("%s: file cannot be a symbolic link", path)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: not a regular file", path)
	}

	return &LocalFile{
		Path:        absPath,
		Name:        filepath.Base(absPath),
		Size:        info.Size(),
		contentType: declaredType,
	}, nil
}

func (f *LocalFile) OriginalFilename() string { return f.Name }

func (f *LocalFile) ContentType() string { return f.contentType }

func (f *LocalFile) SetContentType(contentType string) { f.contentType = contentType }

// Open opens the file for reading.
func (f *LocalFile) Open() (io.ReadCloser, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.Name, err)
	}
	return file, nil
}

// MemFile is an in-memory file.
type MemFile struct {
	name        string
	contentType string
	data        []byte
}

// NewMemFile returns an in-memory descriptor.
func NewMemFile(name, contentType string, data []byte) *MemFile {
	return &MemFile{name: name, contentType: contentType, data: data}
}

func (f *MemFile) OriginalFilename() string { return f.name }

func (f *MemFile) ContentType() string { return f.contentType }

func (f *MemFile) SetContentType(contentType string) { f.contentType = contentType }

func (f *MemFile) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

// Len returns the content length in bytes.
func (f *MemFile) Len() int { return len(f.data) }
