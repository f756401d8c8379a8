// Package storage persists uploaded product images and hands back the
// reference recorded on the product. The local driver writes to a fixed
// directory served by the HTTP server; the S3 driver uploads to a bucket.
package storage

import (
	"context"
	"io"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

type ImageStorage interface {
	// Save stores the file content under the given (already sanitized)
	// filename and returns the site-relative path or URL to record.
	Save(ctx context.Context, content io.Reader, filename string) (string, error)
}

// allowedExtensions is the upload allow-list. Matching is on the filename
// extension only; file content is never sniffed.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// AllowedFilename reports whether the filename carries an allowed image
// extension, case-insensitively.
func AllowedFilename(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedExtensions[ext]
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SanitizeFilename strips any path components and characters that are not
// safe in a filename. Spaces become underscores. The result may collide with
// an earlier upload of the same name, in which case the later file wins.
func SanitizeFilename(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}
