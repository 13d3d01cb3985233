package document

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// File is a document picked for upload. Only the name is known up front, the content is read when the upload
// actually happens.
type File struct {
	Name string
	open func() (io.ReadCloser, error)
}

// FromPath selects a file on the local disk. The upload name is the base name of the path.
func FromPath(path string) File {
	return File{
		Name: filepath.Base(path),
		open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// FromHeader selects a file that arrived as part of a multipart form
func FromHeader(header *multipart.FileHeader) File {
	return File{
		Name: header.Filename,
		open: func() (io.ReadCloser, error) {
			return header.Open()
		},
	}
}

// FromBytes selects in-memory content under the given name
func FromBytes(name string, content []byte) File {
	return File{
		Name: name,
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(content)), nil
		},
	}
}

// Read returns the full content of the file
func (f File) Read() ([]byte, error) {
	if f.open == nil {
		return nil, fmt.Errorf("no content available for %q", f.Name)
	}

	r, err := f.open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", f.Name, err)
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.Name, err)
	}

	return content, nil
}
