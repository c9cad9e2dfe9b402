package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GenerateInvitationQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateInvitationQR(uuid.New())
	require.NoError(t, err)
	require.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, png[:4])
}

func TestQRCodeService_ParseInvitationQR_RoundTrip(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	invitationID := uuid.New()

	// The QR payload is the JSON-encoded invitation envelope.
	payload, err := json.Marshal(QRCodeData{
		InvitationID: invitationID.String(),
		Type:         "invitation",
	})
	require.NoError(t, err)

	parsed, err := svc.ParseInvitationQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, invitationID, parsed)
}

func TestQRCodeService_ParseInvitationQR_RejectsWrongType(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	payload, err := json.Marshal(QRCodeData{
		InvitationID: uuid.NewString(),
		Type:         "coupon",
	})
	require.NoError(t, err)

	_, err = svc.ParseInvitationQR(string(payload))
	assert.Error(t, err)
}

func TestQRCodeService_ParseInvitationQR_RejectsGarbage(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.ParseInvitationQR("not json")
	assert.Error(t, err)

	payload, marshalErr := json.Marshal(QRCodeData{InvitationID: "not-a-uuid", Type: "invitation"})
	require.NoError(t, marshalErr)
	_, err = svc.ParseInvitationQR(string(payload))
	assert.Error(t, err)
}

func TestNewQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(128, "X")

	png, err := svc.GenerateInvitationQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
