package storage

import (
	"context"
)

//go:generate mockery --name ArtifactStore --output ./mocks
type ArtifactStore interface {
	UploadInvoicePDF(ctx context.Context, objectPath string, data []byte) (string, error)
	ReadInvoicePDF(ctx context.Context, objectPath string) ([]byte, error)
}
