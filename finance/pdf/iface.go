package pdf

import (
	"context"

	"github.com/faseops/membership/scheduled-tasks/finance/domain"
)

//go:generate mockery --name Renderer --output ./mocks
type Renderer interface {
	RenderInvoice(ctx context.Context, invoice *domain.Invoice) ([]byte, error)
}

//go:generate mockery --name DriveService --output ./mocks
type DriveService interface {
	CreateFolder(parentFolderID string, folderName string) (string, error)
	CopyFile(srcDocID string, destFolderID string, destFileName string) (string, error)
	ReplaceText(docID string, changes []PlaceholderChange) error
	ExportFileAsPDF(docID string) ([]byte, error)
}
