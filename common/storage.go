package common

import "fmt"

// GetInvoicesBucket returns the bucket that stores generated invoice PDFs.
func GetInvoicesBucket() string {
	if Production {
		return "fase-membership-invoices"
	}

	return fmt.Sprintf("%s-invoices", ProjectID)
}
