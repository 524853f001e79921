package inputkit

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"

	"github.com/dmitrymomot/inputkit/pkg/upload"
)

// defaultMaxMemory bounds in-memory multipart parsing (10MB); larger parts
// spill to disk through the standard library.
const defaultMaxMemory = 10 << 20

// RequestSource builds a Source from an HTTP request: query parameters,
// urlencoded or multipart form fields, and uploaded files. Multi-value
// fields become string slices; uploaded files are streamed into temporary
// files so the pipeline can sniff and relocate them.
//
// This is a convenience for HTTP consumers; the pipeline itself only ever
// sees the resulting map and works the same with hand-built sources.
func RequestSource(r *http.Request) (Source, error) {
	source := make(Source)

	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("failed to parse form data: %w", err)
	}

	isMultipart := false
	if ct := r.Header.Get("Content-Type"); ct != "" {
		if err := r.ParseMultipartForm(defaultMaxMemory); err == nil {
			isMultipart = true
		}
	}

	for name, values := range r.Form {
		if len(values) == 1 {
			source[name] = values[0]
		} else {
			source[name] = values
		}
	}

	if isMultipart && r.MultipartForm != nil {
		for name, headers := range r.MultipartForm.File {
			if len(headers) == 0 {
				continue
			}
			f, err := tempUpload(headers[0])
			if err != nil {
				return nil, err
			}
			source[name] = f
		}
	}

	return source, nil
}

// tempUpload spools one multipart file into a temporary file and wraps it
// as an upload record.
func tempUpload(fh *multipart.FileHeader) (*upload.File, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file %q: %w", fh.Filename, err)
	}
	defer func() { _ = src.Close() }()

	tmp, err := os.CreateTemp("", "inputkit-upload-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}

	size, err := io.Copy(tmp, src)
	closeErr := tmp.Close()
	if err != nil || closeErr != nil {
		_ = os.Remove(tmp.Name())
		if err == nil {
			err = closeErr
		}
		return nil, fmt.Errorf("failed to spool uploaded file %q: %w", fh.Filename, err)
	}

	return &upload.File{
		Name:     fh.Filename,
		MIMEType: fh.Header.Get("Content-Type"),
		Size:     size,
		TempPath: tmp.Name(),
		Code:     upload.CodeOK,
	}, nil
}
