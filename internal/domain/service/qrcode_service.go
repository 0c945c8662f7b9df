package service

import "github.com/google/uuid"

// QRCodeService generates and parses QR codes for order pickup slips.
type QRCodeService interface {
	// GeneratePickupQRCode encodes an order's pickup payload as a PNG image.
	GeneratePickupQRCode(orderID uuid.UUID, orderNumber string) ([]byte, error)

	// ParsePickupQRCode decodes a scanned pickup payload and returns the
	// order ID it references.
	ParsePickupQRCode(qrData string) (uuid.UUID, error)
}
