// Package upload stores employee profile pictures.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"employee-directory/internal/apperror"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// MaxSize 為大頭照上限
const MaxSize = 5 << 20

var (
	allowedExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}
	allowedTypes      = []string{"image/png", "image/jpeg"}
	unsafeChars       = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
)

// Storage persists an uploaded file under name. Remove of a missing name is not an error.
type Storage interface {
	Save(ctx context.Context, name string, data []byte) error
	Remove(ctx context.Context, name string) error
}

// FSStorage writes files into Dir, which is served as /static/uploads.
type FSStorage struct {
	Dir string
}

func NewFSStorage(dir string) (*FSStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("NewFSStorage: %w", err)
	}
	return &FSStorage{Dir: dir}, nil
}

func (s *FSStorage) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0o644); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

func (s *FSStorage) Remove(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(s.Dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("Remove: %w", err)
	}
	return nil
}

// Allowed reports whether filename has a png, jpg or jpeg extension.
func Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SanitizeName keeps the base name and replaces anything outside [A-Za-z0-9_.-].
func SanitizeName(filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, `\`, "/"))
	base = strings.ReplaceAll(strings.TrimSpace(base), " ", "_")
	base = unsafeChars.ReplaceAllString(base, "")
	return strings.TrimLeft(base, "._")
}

// Save stores fh and returns its stored name. A missing file, or one whose
// extension is not allowed, is skipped with an empty name.
func Save(ctx context.Context, st Storage, fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Filename == "" || !Allowed(fh.Filename) {
		return "", nil
	}
	if fh.Size > MaxSize {
		return "", apperror.New(apperror.CodeValidation, "Profile picture is too large")
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxSize+1))
	if err != nil {
		return "", fmt.Errorf("Save: %w", err)
	}
	if len(data) > MaxSize {
		return "", apperror.New(apperror.CodeValidation, "Profile picture is too large")
	}
	if mt := mimetype.Detect(data); !mimetype.EqualsAny(mt.String(), allowedTypes...) {
		return "", apperror.New(apperror.CodeValidation, "Profile picture must be a PNG or JPEG image")
	}

	name := uuid.NewString() + "_" + SanitizeName(fh.Filename)
	if err := st.Save(ctx, name, data); err != nil {
		return "", err
	}
	return name, nil
}
