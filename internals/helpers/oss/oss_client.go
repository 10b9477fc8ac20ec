package helper

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"tecnischool_backend/internals/configs"
)

const maxUploadSize = int64(5 * 1024 * 1024)

// NewOSSBucket opens the configured bucket. Credentials come from env:
// OSS_ENDPOINT, OSS_ACCESS_KEY_ID, OSS_ACCESS_KEY_SECRET, OSS_BUCKET.
func NewOSSBucket() (*oss.Bucket, error) {
	endpoint := configs.GetEnv("OSS_ENDPOINT")
	keyID := configs.GetEnv("OSS_ACCESS_KEY_ID")
	keySecret := configs.GetEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := configs.GetEnv("OSS_BUCKET")
	if endpoint == "" || keyID == "" || keySecret == "" || bucketName == "" {
		return nil, fmt.Errorf("oss: incomplete configuration")
	}

	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, fmt.Errorf("oss: client: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("oss: bucket: %w", err)
	}
	return bucket, nil
}

// UploadBytes stores data under keyPrefix with a random name and returns the
// public object URL.
func UploadBytes(bucket *oss.Bucket, keyPrefix, ext, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("%s/%s/%s%s",
		strings.Trim(keyPrefix, "/"),
		time.Now().UTC().Format("2006/01"),
		uuid.NewString(),
		ext,
	)
	if err := bucket.PutObject(key, bytes.NewReader(data), oss.ContentType(contentType)); err != nil {
		return "", fmt.Errorf("oss: put %s: %w", key, err)
	}
	return publicURL(bucket, key), nil
}

// UploadDocument streams a multipart file as-is (PDFs, scans).
func UploadDocument(bucket *oss.Bucket, fh *multipart.FileHeader, keyPrefix string) (string, error) {
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("oss: file exceeds %d bytes", maxUploadSize)
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	key := fmt.Sprintf("%s/%s/%s%s",
		strings.Trim(keyPrefix, "/"),
		time.Now().UTC().Format("2006/01"),
		uuid.NewString(),
		ext,
	)
	if err := bucket.PutObject(key, f); err != nil {
		return "", fmt.Errorf("oss: put %s: %w", key, err)
	}
	return publicURL(bucket, key), nil
}

func publicURL(bucket *oss.Bucket, key string) string {
	if base := configs.GetEnv("OSS_PUBLIC_BASE_URL"); base != "" {
		return strings.TrimRight(base, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.%s/%s",
		bucket.BucketName, configs.GetEnv("OSS_ENDPOINT"), key)
}
