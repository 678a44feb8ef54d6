package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnectorErrorMatchesByKind(t *testing.T) {
	err := NewMissingRequiredField("merchant_account_id")

	assert.True(t, errors.Is(err, NewMissingRequiredField("some_other_field")))
	assert.False(t, errors.Is(err, ErrCurrencyMismatch))
	assert.False(t, errors.Is(err, errors.New("plain error")))
}

func TestConnectorErrorMatchesThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("building request: %w", ErrMissingConnectorTransactionID)

	assert.True(t, errors.Is(wrapped, ErrMissingConnectorTransactionID))
	assert.Equal(t, KindMissingConnectorTransactionID, KindOf(wrapped))
}

func TestConnectorErrorMessageIncludesField(t *testing.T) {
	err := NewMissingRequiredField("merchant_account_id")
	assert.Contains(t, err.Error(), "merchant_account_id")
	assert.Contains(t, err.Error(), string(KindMissingRequiredField))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotImplemented, KindOf(NewNotImplemented("payment method")))
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("not a connector error")))
	assert.Equal(t, ErrorKind(""), KindOf(nil))
}

func TestIsKind(t *testing.T) {
	err := NewResponseDeserializationFailed(errors.New("unexpected EOF"))
	assert.True(t, IsKind(err, KindResponseDeserializationFailed))
	assert.False(t, IsKind(err, KindRequestEncodingFailed))
}

func TestIsNotFoundUpstream(t *testing.T) {
	assert.True(t, IsNotFoundUpstream(ErrMissingConnectorTransactionID))
	assert.True(t, IsNotFoundUpstream(ErrMissingConnectorRefundID))
	assert.False(t, IsNotFoundUpstream(ErrResponseDeserializationFailed))
	assert.False(t, IsNotFoundUpstream(nil))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("status", "cannot be active")
	assert.Contains(t, err.Error(), "status")
	assert.Contains(t, err.Error(), "cannot be active")
}
