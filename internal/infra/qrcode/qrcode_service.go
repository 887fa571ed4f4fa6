package qrcode

import (
	"encoding/json"
	"strings"

	"matchdeportivo/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const inviteType = "activity_invite"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// InviteData represents the payload encoded in an invite QR code
type InviteData struct {
	ActivityID string `json:"activity_id"`
	Type       string `json:"type"`
	URL        string `json:"url,omitempty"` // Deep link opened by scanners outside the app
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L", "LOW":
		level = qrcode.Low
	case "Q", "HIGH":
		level = qrcode.High
	case "H", "HIGHEST":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateInviteQR generates a PNG QR code inviting players to an activity
func (s *qrcodeService) GenerateInviteQR(activityID uuid.UUID) ([]byte, error) {
	data := InviteData{
		ActivityID: activityID.String(),
		Type:       inviteType,
		URL:        s.inviteURL(activityID),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseInviteQR parses a scanned invite payload and returns the activity ID
func (s *qrcodeService) ParseInviteQR(qrData string) (uuid.UUID, error) {
	var data InviteData
	if err := json.Unmarshal([]byte(strings.TrimSpace(qrData)), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != inviteType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	activityID, err := uuid.Parse(data.ActivityID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse activity ID")
	}

	return activityID, nil
}

func (s *qrcodeService) inviteURL(activityID uuid.UUID) string {
	if s.baseURL == "" {
		return ""
	}

	return strings.TrimSuffix(s.baseURL, "/") + "/invite/" + activityID.String()
}
