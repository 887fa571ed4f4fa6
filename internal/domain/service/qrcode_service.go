package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for activity invite QR codes
type QRCodeService interface {
	// GenerateInviteQR renders a PNG QR code inviting players to an activity
	GenerateInviteQR(activityID uuid.UUID) ([]byte, error)

	// ParseInviteQR parses the decoded QR payload and returns the activity ID
	ParseInviteQR(qrData string) (uuid.UUID, error)
}
