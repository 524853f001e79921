package upload

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage is the destination for validated uploads.
type Storage interface {
	// Exists reports whether the destination directory (or prefix) exists.
	Exists(ctx context.Context, dir string) bool
	// Move relocates src into dir under the given name and removes src.
	Move(ctx context.Context, src, dir, name string) error
}

// LocalStorage moves files on the local filesystem. The zero value is ready
// to use.
type LocalStorage struct{}

func (LocalStorage) Exists(_ context.Context, dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// Move renames the file into place, falling back to copy-and-remove when
// src and dir live on different filesystems.
func (LocalStorage) Move(_ context.Context, src, dir, name string) error {
	dst := filepath.Join(dir, name)
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst) // Clean up partial file
		return fmt.Errorf("failed to write destination file: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to flush destination file: %w", err)
	}

	_ = os.Remove(src)
	return nil
}

// HashFile computes the SHA-256 hex digest of the file content.
// Used for content-addressed storage names and deduplication.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file for hashing: %w", err)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("failed to hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Move validates the destination, renames the temporary file to its
// content-hash name inside dir, and returns the stored filename.
//
// A missing destination directory is a configuration error (ErrDirNotFound)
// and any write problem is an operational one (ErrMoveFailed); both are
// distinguishable from ordinary validation failures with errors.Is.
func Move(ctx context.Context, storage Storage, f *File, dir, ext string) (string, error) {
	if storage == nil {
		storage = LocalStorage{}
	}

	if !storage.Exists(ctx, dir) {
		return "", fmt.Errorf("%w: %s", ErrDirNotFound, dir)
	}

	sum, err := HashFile(f.TempPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMoveFailed, err)
	}

	name := sum
	if ext != "" {
		name += "." + ext
	}

	if err := storage.Move(ctx, f.TempPath, dir, name); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMoveFailed, err)
	}
	return name, nil
}
