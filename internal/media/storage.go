package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"time"

	gcs "cloud.google.com/go/storage"
	fbstorage "firebase.google.com/go/v4/storage"
	"github.com/google/uuid"
	"google.golang.org/api/googleapi"

	"github.com/voicethroughimage/vti/internal/apperr"
)

// Uploader stores a validated file and returns its public URL.
type Uploader interface {
	Store(ctx context.Context, owner string, u Upload) (string, error)
}

func objectName(now time.Time, u Upload) string {
	return strconv.FormatInt(now.UnixMilli(), 10) + "_" + u.Name
}

// FirebaseUploader writes to a Firebase Storage bucket and returns a
// download URL carrying a Firebase download token.
type FirebaseUploader struct {
	bucket *gcs.BucketHandle
	name   string
	now    func() time.Time
}

// NewFirebaseUploader opens the named bucket.
func NewFirebaseUploader(client *fbstorage.Client, bucket string) (*FirebaseUploader, error) {
	h, err := client.Bucket(bucket)
	if err != nil {
		return nil, fmt.Errorf("opening bucket %s: %w", bucket, err)
	}
	return &FirebaseUploader{bucket: h, name: bucket, now: time.Now}, nil
}

func (f *FirebaseUploader) Store(ctx context.Context, owner string, u Upload) (string, error) {
	object := path.Join("uploads", owner, objectName(f.now(), u))
	token := uuid.NewString()

	r, err := u.Open()
	if err != nil {
		return "", err
	}
	defer r.Close()

	w := f.bucket.Object(object).NewWriter(ctx)
	w.ContentType = u.ContentType
	w.Metadata = map[string]string{"firebaseStorageDownloadTokens": token}
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", classify(err)
	}
	if err := w.Close(); err != nil {
		return "", classify(err)
	}
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s",
		f.name, url.PathEscape(object), token), nil
}

func classify(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusTooManyRequests {
		return apperr.Quota("storage", err)
	}
	return apperr.Transient("storage upload", err)
}

// LocalUploader keeps files under a directory served at URLPrefix.
type LocalUploader struct {
	dir     string
	prefix  string
	latency time.Duration
	now     func() time.Time
}

// NewLocalUploader creates dir if needed.
func NewLocalUploader(dir, urlPrefix string, latency time.Duration) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &LocalUploader{dir: dir, prefix: urlPrefix, latency: latency, now: time.Now}, nil
}

// Dir is the root served for local uploads.
func (l *LocalUploader) Dir() string { return l.dir }

func (l *LocalUploader) Store(ctx context.Context, owner string, u Upload) (string, error) {
	if l.latency > 0 {
		t := time.NewTimer(l.latency)
		select {
		case <-ctx.Done():
			t.Stop()
			return "", ctx.Err()
		case <-t.C:
		}
	}

	name := objectName(l.now(), u)
	dir := filepath.Join(l.dir, owner)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload dir: %w", err)
	}

	r, err := u.Open()
	if err != nil {
		return "", err
	}
	defer r.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("saving file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("saving file: %w", err)
	}
	return path.Join(l.prefix, owner, name), nil
}
