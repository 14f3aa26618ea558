package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateInvoiceNumber builds a human-readable invoice number from the
// issue date and a short random suffix.
func GenerateInvoiceNumber(issuedAt time.Time) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("INV-%s-%s", issuedAt.Format("20060102"), suffix)
}
