package validator_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/upload"
	"github.com/dmitrymomot/inputkit/pkg/validator"
)

var pngPayload = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func tempUploadFile(t *testing.T, name string, content []byte) *upload.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload-tmp")
	require.NoError(t, os.WriteFile(path, content, 0644))
	return &upload.File{
		Name:     name,
		Size:     int64(len(content)),
		TempPath: path,
		Code:     upload.CodeOK,
	}
}

func TestValidateFile(t *testing.T) {
	ctx := context.Background()
	v := validator.New()

	t.Run("valid image keeps the client name as value", func(t *testing.T) {
		f := tempUploadFile(t, "avatar.png", pngPayload)
		out, err := v.Validate(ctx, validator.KindImage, validator.Input{
			Field: "avatar", Value: f, Raw: f.Name,
		})
		require.NoError(t, err)
		assert.Equal(t, "avatar.png", out)
	})

	t.Run("non-file value is rejected", func(t *testing.T) {
		_, err := v.Validate(ctx, validator.KindFile, validator.Input{
			Field: "doc", Value: "just a string", Raw: "just a string",
		})
		assert.EqualError(t, err, "doc is not an uploaded file")
	})

	t.Run("transport error code fails first", func(t *testing.T) {
		f := tempUploadFile(t, "avatar.png", pngPayload)
		f.Code = upload.CodePartial
		_, err := v.Validate(ctx, validator.KindImage, validator.Input{
			Field: "avatar", Value: f, Raw: f.Name,
		})
		assert.EqualError(t, err, "file was only partially uploaded")
	})

	t.Run("size limits count bytes", func(t *testing.T) {
		f := tempUploadFile(t, "avatar.png", pngPayload)
		f.Size = 3_000_000
		_, err := v.Validate(ctx, validator.KindImage, validator.Input{
			Field: "avatar", Value: f, Raw: f.Name,
			Opts: validator.Options{Max: "2mb"},
		})
		assert.EqualError(t, err, "avatar should not be greater than 2,000,000 bytes")
	})

	t.Run("spoofed extension is rejected", func(t *testing.T) {
		f := tempUploadFile(t, "evil.png", []byte("plain text, not an image"))
		_, err := v.Validate(ctx, validator.KindImage, validator.Input{
			Field: "avatar", Value: f, Raw: f.Name,
		})
		assert.EqualError(t, err, "File extension spoofing detected")
	})

	t.Run("family mismatch is rejected", func(t *testing.T) {
		f := tempUploadFile(t, "track.mp3", nil)
		f.TempPath = ""
		_, err := v.Validate(ctx, validator.KindImage, validator.Input{
			Field: "avatar", Value: f, Raw: f.Name,
		})
		assert.EqualError(t, err, ".mp3 files are not accepted")
	})

	t.Run("generic file kind accepts any extension", func(t *testing.T) {
		f := tempUploadFile(t, "notes.txt", []byte("some notes"))
		out, err := v.Validate(ctx, validator.KindFile, validator.Input{
			Field: "doc", Value: f, Raw: f.Name,
		})
		require.NoError(t, err)
		assert.Equal(t, "notes.txt", out)
	})

	t.Run("moveTo stores under the content hash and returns the stored name", func(t *testing.T) {
		dir := t.TempDir()
		f := tempUploadFile(t, "avatar.png", pngPayload)

		out, err := v.Validate(ctx, validator.KindImage, validator.Input{
			Field: "avatar", Value: f, Raw: f.Name,
			Opts: validator.Options{MoveTo: dir},
		})
		require.NoError(t, err)

		name, ok := out.(string)
		require.True(t, ok)
		assert.Regexp(t, `^[0-9a-f]{64}\.png$`, name)

		_, err = os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err)
	})

	t.Run("missing destination directory is fatal", func(t *testing.T) {
		f := tempUploadFile(t, "avatar.png", pngPayload)
		_, err := v.Validate(ctx, validator.KindImage, validator.Input{
			Field: "avatar", Value: f, Raw: f.Name,
			Opts: validator.Options{MoveTo: filepath.Join(t.TempDir(), "missing")},
		})
		assert.ErrorIs(t, err, upload.ErrDirNotFound)
	})
}
