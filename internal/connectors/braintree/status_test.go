package braintree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kevin07696/connector-switch/internal/domain"
)

func TestAttemptStatusMapping(t *testing.T) {
	tests := []struct {
		status   paymentStatus
		expected domain.AttemptStatus
	}{
		{statusSettling, domain.AttemptStatusCharged},
		{statusSettled, domain.AttemptStatusCharged},
		{statusAuthorizedExpired, domain.AttemptStatusAuthorizationFailed},
		{statusFailed, domain.AttemptStatusFailure},
		{statusGatewayRejected, domain.AttemptStatusFailure},
		{statusProcessorDeclined, domain.AttemptStatusFailure},
		{statusSettlementDeclined, domain.AttemptStatusFailure},
		{statusAuthorized, domain.AttemptStatusAuthorized},
		{statusVoided, domain.AttemptStatusVoided},
		{statusAuthorizing, domain.AttemptStatusPending},
		{statusSettlementPending, domain.AttemptStatusPending},
		{statusSettlementConfirmed, domain.AttemptStatusPending},
		{statusSubmittedForSettlement, domain.AttemptStatusPending},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, attemptStatus(tt.status))
		})
	}
}

func TestAttemptStatusUnknownValueStaysPending(t *testing.T) {
	// A status Braintree introduces after this mapping was written
	// must not fail the attempt.
	assert.Equal(t, domain.AttemptStatusPending, attemptStatus("SOME_FUTURE_STATUS"))
	assert.Equal(t, domain.AttemptStatusPending, attemptStatus(""))
}

func TestRefundStatusMapping(t *testing.T) {
	tests := []struct {
		status   refundStatus
		expected domain.RefundStatus
	}{
		{refundSettled, domain.RefundStatusSuccess},
		{refundSettling, domain.RefundStatusSuccess},
		{refundSubmittedForSettlement, domain.RefundStatusPending},
		{refundSettlementPending, domain.RefundStatusPending},
		{refundFailed, domain.RefundStatusFailure},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, canonicalRefundStatus(tt.status))
		})
	}
}

func TestRefundStatusUnknownValueStaysPending(t *testing.T) {
	assert.Equal(t, domain.RefundStatusPending, canonicalRefundStatus("SOME_FUTURE_STATUS"))
}
