// Package images persists fetched quote images to disk.
package images

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/ubuntpunk/xenquotes/internal/zenquotes"
)

const (
	filePrefix     = "xenquote-"
	fileTimeLayout = "20060102-150405"
	defaultExt     = ".jpg"
	maxSuffix      = 100
)

// Save writes img into dir, creating it if needed, and returns the path of
// the new file. The name is derived from now. When that name is taken, a
// numeric suffix is appended ("-1", "-2", ...) until a free name is found.
func Save(dir string, img zenquotes.Image, now time.Time) (string, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", fmt.Errorf("image directory is empty")
	}
	if len(img.Data) == 0 {
		return "", fmt.Errorf("image has no data")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}

	path, file, err := create(dir, filePrefix+now.Format(fileTimeLayout), extension(img.ContentType))
	if err != nil {
		return "", err
	}
	if _, err := file.Write(img.Data); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write image: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close image: %w", err)
	}
	return path, nil
}

// create opens a new file named base+ext in dir, falling back to suffixed
// names while the candidate already exists.
func create(dir, base, ext string) (string, *os.File, error) {
	for i := 0; i <= maxSuffix; i++ {
		name := base
		if i > 0 {
			name += "-" + strconv.Itoa(i)
		}
		path := filepath.Join(dir, name+ext)
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return path, file, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", nil, fmt.Errorf("create image: %w", err)
		}
	}
	return "", nil, fmt.Errorf("create image: no free name for %s%s in %s", base, ext, dir)
}

func extension(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return defaultExt
	}
	switch mediaType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return defaultExt
	}
}
