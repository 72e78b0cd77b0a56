// Package media validates visitor uploads and stores them either in the
// Firebase Storage bucket or under the local data directory.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultMaxBytes caps a single upload.
const DefaultMaxBytes = 100 << 20

var (
	ErrTooLarge    = errors.New("file too large")
	ErrUnsupported = errors.New("unsupported file type")
	ErrEmpty       = errors.New("empty file")
)

// Kind is the broad media family of an upload.
type Kind string

const (
	KindPhoto Kind = "photo"
	KindVideo Kind = "video"
	KindAudio Kind = "audio"
)

var allowedTypes = map[string]Kind{
	"image/jpeg":      KindPhoto,
	"image/png":       KindPhoto,
	"image/gif":       KindPhoto,
	"image/webp":      KindPhoto,
	"video/mp4":       KindVideo,
	"video/webm":      KindVideo,
	"video/quicktime": KindVideo,
	"audio/mpeg":      KindAudio,
	"audio/wav":       KindAudio,
	"audio/wave":      KindAudio,
	"audio/x-wav":     KindAudio,
	"audio/mp4":       KindAudio,
	"audio/m4a":       KindAudio,
	"audio/x-m4a":     KindAudio,
}

// Upload is a validated file ready to be stored. It can be opened more
// than once, so a failed live attempt can be retried locally.
type Upload struct {
	Name        string
	ContentType string
	Kind        Kind
	Size        int64

	open func() (io.ReadCloser, error)
}

// Open returns a fresh reader over the file contents.
func (u Upload) Open() (io.ReadCloser, error) { return u.open() }

func baseType(ct string) string {
	ct, _, _ = strings.Cut(ct, ";")
	return strings.ToLower(strings.TrimSpace(ct))
}

// resolveType picks the stored content type from the declared and sniffed
// types. The sniffer cannot tell some containers apart (QuickTime, M4A), so
// an allowed declared type wins when the sniffed one is generic or is the
// same container.
func resolveType(declared, sniffed string) (string, error) {
	declared, sniffed = baseType(declared), baseType(sniffed)
	_, declaredOK := allowedTypes[declared]
	_, sniffedOK := allowedTypes[sniffed]
	switch {
	case declaredOK && (sniffed == declared || sniffed == "application/octet-stream" || sniffed == "video/mp4"):
		return declared, nil
	case sniffedOK:
		return sniffed, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupported, firstNonEmpty(declared, sniffed))
}

func inspect(name, declared string, size, max int64, open func() (io.ReadCloser, error)) (Upload, error) {
	if max <= 0 {
		max = DefaultMaxBytes
	}
	if size == 0 {
		return Upload{}, ErrEmpty
	}
	if size > max {
		return Upload{}, fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, size, max)
	}

	f, err := open()
	if err != nil {
		return Upload{}, fmt.Errorf("opening upload: %w", err)
	}
	head := make([]byte, 512)
	n, err := io.ReadFull(f, head)
	f.Close()
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Upload{}, fmt.Errorf("reading upload: %w", err)
	}

	ct, err := resolveType(declared, http.DetectContentType(head[:n]))
	if err != nil {
		return Upload{}, err
	}
	return Upload{
		Name:        SafeName(name),
		ContentType: ct,
		Kind:        allowedTypes[ct],
		Size:        size,
		open:        open,
	}, nil
}

// FromFileHeader validates one part of a multipart form.
func FromFileHeader(fh *multipart.FileHeader, max int64) (Upload, error) {
	open := func() (io.ReadCloser, error) { return fh.Open() }
	return inspect(fh.Filename, fh.Header.Get("Content-Type"), fh.Size, max, open)
}

// FromBytes validates an in-memory file.
func FromBytes(name, declared string, data []byte, max int64) (Upload, error) {
	open := func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(data)), nil }
	return inspect(name, declared, int64(len(data)), max, open)
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SafeName reduces a client file name to a single safe path element.
func SafeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = strings.Trim(unsafeChars.ReplaceAllString(name, "_"), "._")
	if name == "" {
		return "upload"
	}
	return name
}

// Owner is the path segment of the uploading user.
func Owner(uid string) string {
	if uid == "" {
		return "guest"
	}
	return SafeName(uid)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
