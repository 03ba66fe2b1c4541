package storage

import (
	"context"
	"io"
	"time"

	"cloud.google.com/go/storage"

	"github.com/faseops/membership/scheduled-tasks/common"
	"github.com/faseops/membership/scheduled-tasks/framework/connection"
)

const (
	pdfContentType = "application/pdf"

	signedURLExpiry = 7 * 24 * time.Hour
)

// GCSArtifactStore persists invoice PDFs on Cloud Storage and hands out
// time-limited download links.
type GCSArtifactStore struct {
	storageClientFun connection.CloudStorageFromContextFun
}

func NewGCSArtifactStore(conn *connection.Connection) *GCSArtifactStore {
	return &GCSArtifactStore{
		storageClientFun: conn.CloudStorage,
	}
}

// UploadInvoicePDF writes the PDF under the invoices bucket and returns a
// signed URL valid for seven days.
func (s *GCSArtifactStore) UploadInvoicePDF(ctx context.Context, objectPath string, data []byte) (string, error) {
	bucket := s.storageClientFun(ctx).Bucket(common.GetInvoicesBucket())

	objWriter := bucket.Object(objectPath).NewWriter(ctx)
	objWriter.ContentType = pdfContentType

	if _, err := objWriter.Write(data); err != nil {
		return "", err
	}

	if err := objWriter.Close(); err != nil {
		return "", err
	}

	return bucket.SignedURL(objectPath, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().UTC().Add(signedURLExpiry),
	})
}

// ReadInvoicePDF fetches a previously stored invoice PDF.
func (s *GCSArtifactStore) ReadInvoicePDF(ctx context.Context, objectPath string) ([]byte, error) {
	bucket := s.storageClientFun(ctx).Bucket(common.GetInvoicesBucket())

	reader, err := bucket.Object(objectPath).NewReader(ctx)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return io.ReadAll(reader)
}
