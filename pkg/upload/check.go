package upload

import (
	"errors"
	"fmt"
	"strings"
)

// CheckType verifies that the file's sniffed content type is consistent with
// its claimed extension and that the extension is acceptable.
//
// Files without an extension adopt the canonical extension of the sniffed
// type. When an explicit mimes allow-list is given it wins over the family
// allow-list derived from the declared type. The effective extension is
// returned so that a subsequent move can preserve it.
func CheckType(f *File, allowed, mimes []string, mimesErr string) (string, error) {
	ext := f.Ext()

	sniffed := ""
	if f.TempPath != "" {
		if mime, err := DetectMIME(f.TempPath); err == nil && mime != "application/octet-stream" {
			sniffed = mime
		}
	}

	if ext == "" && sniffed != "" {
		ext = canonicalExt(sniffed)
	}

	if ext != "" && sniffed != "" {
		sniffedFamily := familyOfMIME(sniffed)
		claimedFamily, known := extensionFamily[ext]
		if known && sniffedFamily != "" && claimedFamily != sniffedFamily {
			return "", errors.New("File extension spoofing detected")
		}
	}

	if len(mimes) > 0 {
		if !containsFold(mimes, ext) {
			return "", extensionError(ext, mimesErr)
		}
		return ext, nil
	}

	if len(allowed) > 0 && !containsFold(allowed, ext) {
		return "", extensionError(ext, mimesErr)
	}

	return ext, nil
}

func extensionError(ext, custom string) error {
	if custom != "" {
		return errors.New(custom)
	}
	if ext == "" {
		return errors.New("files without an extension are not accepted")
	}
	return fmt.Errorf(".%s files are not accepted", ext)
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(strings.TrimPrefix(item, "."), s) {
			return true
		}
	}
	return false
}
