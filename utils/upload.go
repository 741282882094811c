package utils

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// AllowedImageTypes defines the allowed image file extensions
var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var (
	mediaClient *minio.Client
	mediaBucket string
	mediaSSL    bool
)

// InitMediaStore connects to the object store used for product images and
// ensures the bucket exists. The store is optional; when it is not
// configured, image uploads are skipped.
func InitMediaStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) error {
	if endpoint == "" || bucket == "" {
		LogInfo("Media store not configured, product image upload disabled")
		return nil
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return fmt.Errorf("failed to init media store client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check media bucket: %v", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create media bucket: %v", err)
		}
	}

	mediaClient = client
	mediaBucket = bucket
	mediaSSL = useSSL
	LogInfo("Media store initialized, bucket: %s", bucket)
	return nil
}

// ValidateImageFile checks if the uploaded file is a valid image
func ValidateImageFile(file *multipart.FileHeader) error {
	// Check file size (max 5MB)
	if file.Size > 5*1024*1024 {
		return fmt.Errorf("file size exceeds 5MB limit")
	}

	// Check file extension
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !AllowedImageTypes[ext] {
		return fmt.Errorf("invalid file type. Allowed types: jpg, jpeg, png, gif, webp")
	}

	return nil
}

// UploadProductImage pushes an uploaded image to the object store and
// returns its public URL. Returns an empty URL when no store is configured.
func UploadProductImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if err := ValidateImageFile(file); err != nil {
		return "", err
	}
	if mediaClient == nil {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := "products/" + uuid.New().String() + ext

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if _, err := mediaClient.PutObject(ctx, mediaBucket, key, src, file.Size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return "", fmt.Errorf("failed to upload image: %v", err)
	}

	scheme := "http"
	if mediaSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, mediaClient.EndpointURL().Host, mediaBucket, key), nil
}

// DeleteProductImage removes a stored object given the public URL produced
// by UploadProductImage. URLs pointing outside the configured bucket are
// ignored.
func DeleteProductImage(ctx context.Context, imageURL string) error {
	if mediaClient == nil {
		return nil
	}

	marker := "/" + mediaBucket + "/"
	idx := strings.Index(imageURL, marker)
	if idx < 0 {
		return nil
	}
	key := imageURL[idx+len(marker):]

	if err := mediaClient.RemoveObject(ctx, mediaBucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete image: %v", err)
	}
	return nil
}
