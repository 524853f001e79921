package upload

import (
	"errors"
	"path/filepath"
	"strings"
)

// Code is the transport-level upload error code, mirroring the classic
// form-upload convention where zero means success.
type Code int

const (
	CodeOK        Code = 0 // upload completed
	CodeIniSize   Code = 1 // exceeds the server-wide size limit
	CodeFormSize  Code = 2 // exceeds the size limit declared by the form
	CodePartial   Code = 3 // only part of the file arrived
	CodeNoFile    Code = 4 // no file was submitted
	CodeNoTmpDir  Code = 6 // no temporary directory to receive the file
	CodeCantWrite Code = 7 // could not write the file to disk
	CodeExtension Code = 8 // a server extension aborted the upload
)

var codeMessages = map[Code]string{
	CodeIniSize:   "file size exceeds the maximum allowed by the server",
	CodeFormSize:  "file size exceeds the maximum allowed by the form",
	CodePartial:   "file was only partially uploaded",
	CodeNoFile:    "no file was uploaded",
	CodeNoTmpDir:  "missing a temporary folder to store the file",
	CodeCantWrite: "permission denied while writing the file to disk",
	CodeExtension: "the upload was aborted by an extension",
}

// File is one uploaded file as reported by the transport layer.
type File struct {
	Name     string `yaml:"name" json:"name"`
	MIMEType string `yaml:"type" json:"type"`
	Size     int64  `yaml:"size" json:"size"`
	TempPath string `yaml:"tmp_name" json:"tmp_name"`
	Code     Code   `yaml:"error" json:"error"`
}

// CodeError translates a non-ok upload code into its human message.
// Returns nil when the upload completed cleanly.
func (f *File) CodeError() error {
	if f.Code == CodeOK {
		return nil
	}
	if msg, ok := codeMessages[f.Code]; ok {
		return errors.New(msg)
	}
	return errors.New("unknown file upload error")
}

// Ext returns the claimed extension, lowercased and without the leading dot.
// Empty when the client-supplied name carries no extension.
func (f *File) Ext() string {
	ext := filepath.Ext(f.Name)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsMissing reports whether no file was actually submitted for this field,
// which the pipeline treats the same as an absent value.
func (f *File) IsMissing() bool {
	if f == nil {
		return true
	}
	return f.Code == CodeNoFile || (f.Name == "" && f.TempPath == "")
}
