package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// CloudStorageClient archives export reports and stores property images.
type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

func NewCloudStorageClient(ctx context.Context, bucketName, credentialsPath string) (*CloudStorageClient, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// UploadReport archives an export artifact and returns its object path.
func (c *CloudStorageClient) UploadReport(ctx context.Context, body io.Reader, format string) (string, error) {
	ext := ".json"
	contentType := "application/json"
	if format == "csv" {
		ext = ".csv"
		contentType = "text/csv"
	}

	objectName := fmt.Sprintf("exports/%s-%s%s", time.Now().Format("20060102150405"), uuid.New().String(), ext)

	obj := c.client.Bucket(c.bucketName).Object(objectName)
	w := obj.NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, body); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write report object: %v", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize report object: %v", err)
	}

	return objectName, nil
}

// UploadImage stores a property image and returns its public URL.
func (c *CloudStorageClient) UploadImage(ctx context.Context, body io.Reader, contentType string) (string, error) {
	ext := ".bin"
	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	}

	objectName := fmt.Sprintf("properties/%s%s", uuid.New().String(), ext)

	obj := c.client.Bucket(c.bucketName).Object(objectName)
	w := obj.NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, body); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write image object: %v", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize image object: %v", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName), nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}
