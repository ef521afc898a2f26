package usecase

import (
	"context"
	"io"
)

// TokenManager issues and verifies session tokens.
type TokenManager interface {
	Generate(userID, role string, verified bool) (string, error)
}

// NotificationPusher delivers a payload to a connected user, if any.
type NotificationPusher interface {
	SendToUser(userID string, payload interface{})
}

// ReportArchiver stores a copy of an export artifact. Archiving is best
// effort; failures are logged, not surfaced.
type ReportArchiver interface {
	UploadReport(ctx context.Context, body io.Reader, format string) (string, error)
}

// ImageStore persists a listing image and returns its public URL.
type ImageStore interface {
	UploadImage(ctx context.Context, body io.Reader, contentType string) (string, error)
}
