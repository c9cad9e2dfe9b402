package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const webhookTestSecret = "whsec_test_secret"

func signPayload(t *testing.T, payload []byte, secret string, at time.Time) string {
	t.Helper()

	timestamp := strconv.FormatInt(at.Unix(), 10)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)

	return fmt.Sprintf("t=%s,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifyWebhookSignature_Valid(t *testing.T) {
	payload := []byte(`{"type":"checkout.session.completed"}`)
	header := signPayload(t, payload, webhookTestSecret, time.Now())

	require.NoError(t, VerifyWebhookSignature(payload, header, webhookTestSecret, DefaultWebhookTolerance))
}

func TestVerifyWebhookSignature_WrongSecret(t *testing.T) {
	payload := []byte(`{"type":"checkout.session.completed"}`)
	header := signPayload(t, payload, "whsec_other", time.Now())

	assert.Error(t, VerifyWebhookSignature(payload, header, webhookTestSecret, DefaultWebhookTolerance))
}

func TestVerifyWebhookSignature_TamperedPayload(t *testing.T) {
	payload := []byte(`{"type":"checkout.session.completed"}`)
	header := signPayload(t, payload, webhookTestSecret, time.Now())

	tampered := []byte(`{"type":"checkout.session.completed","amount":0}`)
	assert.Error(t, VerifyWebhookSignature(tampered, header, webhookTestSecret, DefaultWebhookTolerance))
}

func TestVerifyWebhookSignature_StaleTimestamp(t *testing.T) {
	payload := []byte(`{}`)
	header := signPayload(t, payload, webhookTestSecret, time.Now().Add(-10*time.Minute))

	assert.Error(t, VerifyWebhookSignature(payload, header, webhookTestSecret, DefaultWebhookTolerance))
}

func TestVerifyWebhookSignature_ZeroToleranceSkipsAgeCheck(t *testing.T) {
	payload := []byte(`{}`)
	header := signPayload(t, payload, webhookTestSecret, time.Now().Add(-24*time.Hour))

	require.NoError(t, VerifyWebhookSignature(payload, header, webhookTestSecret, 0))
}

func TestVerifyWebhookSignature_MultipleSignatures(t *testing.T) {
	payload := []byte(`{}`)
	valid := signPayload(t, payload, webhookTestSecret, time.Now())

	// During secret rotation the header carries an old v1 alongside the
	// current one; any match is enough.
	combined := valid + ",v1=" + hex.EncodeToString(make([]byte, 32))
	require.NoError(t, VerifyWebhookSignature(payload, combined, webhookTestSecret, DefaultWebhookTolerance))
}

func TestVerifyWebhookSignature_MalformedHeaders(t *testing.T) {
	payload := []byte(`{}`)

	assert.Error(t, VerifyWebhookSignature(payload, "", webhookTestSecret, DefaultWebhookTolerance))
	assert.Error(t, VerifyWebhookSignature(payload, "v1=abc", webhookTestSecret, DefaultWebhookTolerance))
	assert.Error(t, VerifyWebhookSignature(payload, "t=12345", webhookTestSecret, DefaultWebhookTolerance))
	assert.Error(t, VerifyWebhookSignature(payload, "t=notanumber,v1=abc", webhookTestSecret, DefaultWebhookTolerance))
}
