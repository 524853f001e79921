package upload

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// Extension families. An extension belongs to exactly one family; content
// sniffed into a different family than the claimed extension is a spoof.
var familyExtensions = map[string][]string{
	"image":    {"jpg", "jpeg", "png", "gif", "webp", "bmp"},
	"audio":    {"mp3", "wav", "ogg", "aac", "flac", "m4a"},
	"video":    {"mp4", "webm", "mpeg", "mpg", "mov", "avi", "mkv"},
	"document": {"pdf", "doc", "docx", "txt", "rtf", "odt"},
	"archive":  {"zip", "tar", "gz", "rar", "7z"},
}

var extensionFamily = func() map[string]string {
	m := make(map[string]string)
	for family, exts := range familyExtensions {
		for _, ext := range exts {
			m[ext] = family
		}
	}
	return m
}()

// MIME values http.DetectContentType can produce, mapped to a family.
var mimeFamily = map[string]string{
	"image/jpeg":               "image",
	"image/png":                "image",
	"image/gif":                "image",
	"image/webp":               "image",
	"image/bmp":                "image",
	"image/x-icon":             "image",
	"audio/mpeg":               "audio",
	"audio/wave":               "audio",
	"audio/basic":              "audio",
	"audio/aiff":               "audio",
	"audio/midi":               "audio",
	"application/ogg":          "audio",
	"video/mp4":                "video",
	"video/webm":               "video",
	"video/avi":                "video",
	"application/pdf":          "document",
	"application/postscript":   "document",
	"text/plain":               "document",
	"text/html":                "document",
	"application/zip":          "archive",
	"application/x-gzip":       "archive",
	"application/x-rar-compressed": "archive",
}

// Canonical extension adopted by extension-less files after sniffing.
var mimeExtension = map[string]string{
	"image/jpeg":               "jpg",
	"image/png":                "png",
	"image/gif":                "gif",
	"image/webp":               "webp",
	"image/bmp":                "bmp",
	"audio/mpeg":               "mp3",
	"audio/wave":               "wav",
	"application/ogg":          "ogg",
	"video/mp4":                "mp4",
	"video/webm":               "webm",
	"video/avi":                "avi",
	"application/pdf":          "pdf",
	"text/plain":               "txt",
	"text/html":                "txt",
	"application/zip":          "zip",
	"application/x-gzip":       "gz",
	"application/x-rar-compressed": "rar",
}

// FamilyExtensions returns the union of the extension allow-lists for the
// given families. Unknown family names contribute nothing.
func FamilyExtensions(families ...string) []string {
	var out []string
	for _, f := range families {
		out = append(out, familyExtensions[f]...)
	}
	return out
}

// DetectMIME sniffs the content type from the first 512 bytes of the file,
// with any media-type parameters stripped.
func DetectMIME(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file for sniffing: %w", err)
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file for sniffing: %w", err)
	}

	mime := http.DetectContentType(buf[:n])
	if idx := strings.Index(mime, ";"); idx != -1 {
		mime = strings.TrimSpace(mime[:idx])
	}
	return mime, nil
}

func familyOfMIME(mime string) string {
	return mimeFamily[mime]
}

func canonicalExt(mime string) string {
	return mimeExtension[mime]
}
