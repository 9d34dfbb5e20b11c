package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var unsafeRunes = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Allowed reports whether the filename carries an accepted image extension.
func Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Filename builds a collision-resistant stored name: a high-resolution
// time-of-day+date prefix followed by the sanitized original name.
func Filename(original string, now time.Time) string {
	prefix := now.Format("030405") + fmt.Sprintf("%06d", now.Nanosecond()/1000) + now.Format("02012006")
	return prefix + sanitize(original)
}

// sanitize strips directory components and anything outside a conservative
// character set, so the stored name can never traverse out of the upload dir.
func sanitize(name string) string {
	name = filepath.Base(name)
	name = unsafeRunes.ReplaceAllString(name, "")
	name = strings.TrimLeft(name, ".")
	return name
}

// Saver stores uploaded images into a configured directory.
type Saver struct {
	dir string
}

// NewSaver creates a saver rooted at dir.
func NewSaver(dir string) *Saver {
	return &Saver{dir: dir}
}

// Save writes the uploaded file and returns the stored filename. A missing
// or disallowed file returns "" without error; the caller leaves the image
// field unset in that case.
func (s *Saver) Save(file *multipart.FileHeader) (string, error) {
	if file == nil || !Allowed(file.Filename) {
		return "", nil
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := Filename(file.Filename, time.Now())
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return name, nil
}
