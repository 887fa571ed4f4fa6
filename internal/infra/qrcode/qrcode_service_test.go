package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "medium"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateInviteQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "matchdeportivo://")

			qrBytes, err := service.GenerateInviteQR(uuid.New())
			require.NoError(t, err)
			require.Greater(t, len(qrBytes), len(pngMagic))
			assert.Equal(t, pngMagic, qrBytes[:len(pngMagic)])
		})
	}
}

func TestQRCodeService_InviteURL(t *testing.T) {
	activityID := uuid.MustParse("5b0f8a53-8d1f-4c47-9a37-5c2a3f0e6a11")

	withBase := NewQRCodeService(256, "M", "https://matchdeportivo.app/").(*qrcodeService)
	assert.Equal(t, "https://matchdeportivo.app/invite/"+activityID.String(), withBase.inviteURL(activityID))

	withoutBase := NewQRCodeService(256, "M", "").(*qrcodeService)
	assert.Empty(t, withoutBase.inviteURL(activityID))
}

func TestQRCodeService_ParseInviteQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "")
	activityID := uuid.New()

	encode := func(data InviteData) string {
		raw, err := json.Marshal(data)
		require.NoError(t, err)

		return string(raw)
	}

	tests := []struct {
		name    string
		payload string
		wantID  uuid.UUID
		wantErr string
	}{
		{
			name:    "valid invite",
			payload: encode(InviteData{ActivityID: activityID.String(), Type: inviteType, URL: "matchdeportivo://invite/" + activityID.String()}),
			wantID:  activityID,
		},
		{
			name:    "surrounding whitespace",
			payload: "  " + encode(InviteData{ActivityID: activityID.String(), Type: inviteType}) + "\n",
			wantID:  activityID,
		},
		{
			name:    "not json",
			payload: "invalid json",
			wantErr: "failed to unmarshal QR code data",
		},
		{
			name:    "other type",
			payload: encode(InviteData{ActivityID: activityID.String(), Type: "subscription"}),
			wantErr: "invalid QR code type",
		},
		{
			name:    "bad activity id",
			payload: encode(InviteData{ActivityID: "not-a-valid-uuid", Type: inviteType}),
			wantErr: "failed to parse activity ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsedID, err := service.ParseInviteQR(tt.payload)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Equal(t, uuid.Nil, parsedID)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, parsedID)
		})
	}
}
