package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/faseops/membership/scheduled-tasks/common"
	"github.com/faseops/membership/scheduled-tasks/finance/domain"
)

const (
	invoiceTemplateDocID    = "1yQmVhkR3dKX0aNzM7uPcFse2LoWtg9Jb8vRiAHqT4Ec"
	devInvoiceTemplateDocID = "1tKfWLc8xRpD2mYaZGv5Bqs0UjhOe6NnS3dAwPioHX7g"

	invoicesSharedDriveID    = "0AHq2LXc5ukBnUk9PVA"
	devInvoicesSharedDriveID = "0AMx8TWp3ebFvUk9PVA"
)

// DocsRenderer renders invoice PDFs by filling a Google Docs template and
// exporting the filled copy through the Drive API.
type DocsRenderer struct {
	templateDocID string
	rootFolderID  string
	driveService  DriveService
}

func NewDocsRenderer(ctx context.Context) (*DocsRenderer, error) {
	templateDocID := devInvoiceTemplateDocID
	sharedDriveID := devInvoicesSharedDriveID

	if common.Production {
		templateDocID = invoiceTemplateDocID
		sharedDriveID = invoicesSharedDriveID
	}

	driveService, err := NewGoogleDriveService(ctx, sharedDriveID)
	if err != nil {
		return nil, err
	}

	return &DocsRenderer{
		templateDocID: templateDocID,
		rootFolderID:  sharedDriveID,
		driveService:  driveService,
	}, nil
}

func NewDocsRendererWithDrive(templateDocID, rootFolderID string, driveService DriveService) *DocsRenderer {
	return &DocsRenderer{
		templateDocID: templateDocID,
		rootFolderID:  rootFolderID,
		driveService:  driveService,
	}
}

// RenderInvoice produces the PDF bytes for the given invoice. The filled
// document copy is kept on the shared drive, grouped by issue month.
func (r *DocsRenderer) RenderInvoice(ctx context.Context, invoice *domain.Invoice) ([]byte, error) {
	folderName := invoice.GeneratedAt.Format("2006-01")

	folderID, err := r.driveService.CreateFolder(r.rootFolderID, folderName)
	if err != nil {
		return nil, err
	}

	fileID, err := r.driveService.CopyFile(r.templateDocID, folderID, invoice.InvoiceNumber)
	if err != nil {
		return nil, err
	}

	if err := r.driveService.ReplaceText(fileID, invoiceChanges(invoice)); err != nil {
		return nil, err
	}

	return r.driveService.ExportFileAsPDF(fileID)
}

func invoiceChanges(invoice *domain.Invoice) []PlaceholderChange {
	return []PlaceholderChange{
		{Placeholder: "invoiceNumber", TextReplace: invoice.InvoiceNumber},
		{Placeholder: "organizationName", TextReplace: invoice.OrganizationName},
		{Placeholder: "issueDate", TextReplace: invoice.GeneratedAt.Format("January 2, 2006")},
		{Placeholder: "lineItems", TextReplace: formatLineItems(invoice.LineItems)},
		{Placeholder: "totalAmount", TextReplace: common.FormatAmount(invoice.TotalAmount, "USD")},
	}
}

func formatLineItems(lineItems []domain.LineItem) string {
	lines := make([]string, 0, len(lineItems))

	for _, lineItem := range lineItems {
		lines = append(lines, fmt.Sprintf("%s\t%d x %s\t%s",
			lineItem.Description,
			lineItem.Quantity,
			common.FormatAmount(lineItem.UnitPrice, "USD"),
			common.FormatAmount(lineItem.Total, "USD"),
		))
	}

	return strings.Join(lines, "\n")
}
