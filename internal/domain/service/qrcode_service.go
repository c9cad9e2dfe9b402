package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateInvitationQR generates a QR code for a company membership invitation
	GenerateInvitationQR(invitationID uuid.UUID) ([]byte, error)

	// ParseInvitationQR parses QR code data and returns the invitation ID
	ParseInvitationQR(qrData string) (uuid.UUID, error)
}
