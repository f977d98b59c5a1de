package gcs

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"pharma-place/logger"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const publicBaseURL = "https://storage.googleapis.com"

// Uploader writes medicine images to a single bucket.
type Uploader struct {
	client *storage.Client
	bucket string
	now    func() time.Time
}

// NewUploader connects to Cloud Storage and checks the bucket is reachable.
// With an empty credentialsFile the default application credentials are used.
func NewUploader(ctx context.Context, bucket, credentialsFile string) (*Uploader, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("gcs client: %w", err)
	}
	if _, err := client.Bucket(bucket).Attrs(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("gcs bucket %s: %w", bucket, err)
	}

	logger.L().Info("cloud storage bucket ready", zap.String("bucket", bucket))
	return &Uploader{client: client, bucket: bucket, now: time.Now}, nil
}

// Upload stores r under folder and returns the object's public URL.
func (u *Uploader) Upload(ctx context.Context, r io.Reader, contentType, folder string) (string, error) {
	if contentType == "" {
		contentType = "image/jpeg"
	}
	name := u.objectName(folder, contentType)

	w := u.client.Bucket(u.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("copy to gcs: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close gcs writer: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s", publicBaseURL, u.bucket, name)
	logger.FromCtx(ctx).Info("image uploaded", zap.String("url", url))
	return url, nil
}

func (u *Uploader) Close() error {
	if u == nil || u.client == nil {
		return nil
	}
	return u.client.Close()
}

func (u *Uploader) objectName(folder, contentType string) string {
	return fmt.Sprintf("%s/%s_%d.%s", folder, uuid.NewString(), u.now().UnixNano(), extension(contentType))
}

func extension(contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	default:
		return "jpg"
	}
}
