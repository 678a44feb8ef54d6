package flows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin07696/connector-switch/internal/domain"
)

func TestEnvelopeResultIsUnsetInitially(t *testing.T) {
	var env AuthorizeEnvelope
	_, errResp, ok := env.Result()
	assert.False(t, ok)
	assert.Nil(t, errResp)
	assert.False(t, env.Failed())
}

func TestEnvelopeSuccessIsWriteOnce(t *testing.T) {
	var env AuthorizeEnvelope
	require.NoError(t, env.SetSuccess(domain.PaymentsResponse{ResourceID: "txn_1"}))

	assert.ErrorIs(t, env.SetSuccess(domain.PaymentsResponse{ResourceID: "txn_2"}), ErrResponseAlreadySet)
	assert.ErrorIs(t, env.SetError(domain.NewErrorResponse("", "", 500)), ErrResponseAlreadySet)

	resp, errResp, ok := env.Result()
	require.True(t, ok)
	assert.Nil(t, errResp)
	assert.Equal(t, "txn_1", resp.ResourceID)
	assert.False(t, env.Failed())
}

func TestEnvelopeErrorIsWriteOnce(t *testing.T) {
	var env RefundEnvelope
	require.NoError(t, env.SetError(domain.NewErrorResponse("91506", "declined", 200)))

	assert.ErrorIs(t, env.SetSuccess(domain.RefundsResponse{}), ErrResponseAlreadySet)

	_, errResp, ok := env.Result()
	require.True(t, ok)
	require.NotNil(t, errResp)
	assert.Equal(t, "91506", errResp.Code)
	assert.True(t, env.Failed())
}

func TestEnvelopeFlowNames(t *testing.T) {
	assert.Equal(t, "authorize", (&AuthorizeEnvelope{}).Flow())
	assert.Equal(t, "capture", (&CaptureEnvelope{}).Flow())
	assert.Equal(t, "void", (&VoidEnvelope{}).Flow())
	assert.Equal(t, "refund", (&RefundEnvelope{}).Flow())
	assert.Equal(t, "psync", (&PSyncEnvelope{}).Flow())
	assert.Equal(t, "rsync", (&RSyncEnvelope{}).Flow())
	assert.Equal(t, "tokenize", (&TokenizeEnvelope{}).Flow())
}

func TestCaptureMethodAutoCapture(t *testing.T) {
	assert.True(t, CaptureAutomatic.AutoCapture())
	assert.True(t, CaptureMethod("").AutoCapture())
	assert.False(t, CaptureManual.AutoCapture())
}
