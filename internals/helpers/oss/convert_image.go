package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"tecnischool_backend/internals/configs"
)

// UploadImageWebP decodes an uploaded photo, bounds it to the configured
// max dimensions and re-encodes as lossy WebP before storing it.
func UploadImageWebP(bucket *oss.Bucket, fh *multipart.FileHeader, keyPrefix string) (string, error) {
	if fh.Size > maxUploadSize {
		return "", fmt.Errorf("oss: image exceeds %d bytes", maxUploadSize)
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("oss: decode image: %w", err)
	}

	maxW := configs.GetEnvInt("IMAGE_WEBP_MAX_W", 1600)
	maxH := configs.GetEnvInt("IMAGE_WEBP_MAX_H", 1600)
	if b := img.Bounds(); b.Dx() > maxW || b.Dy() > maxH {
		img = imaging.Fit(img, maxW, maxH, imaging.Lanczos)
	}

	quality := float32(configs.GetEnvInt("IMAGE_WEBP_QUALITY", 80))
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("oss: encode webp: %w", err)
	}

	return UploadBytes(bucket, keyPrefix, ".webp", "image/webp", buf.Bytes())
}
