package braintree

import "github.com/kevin07696/connector-switch/internal/domain"

// paymentStatus is the transaction status vocabulary of the Braintree
// GraphQL API, SCREAMING_SNAKE_CASE on the wire.
type paymentStatus string

const (
	statusAuthorized             paymentStatus = "AUTHORIZED"
	statusAuthorizing            paymentStatus = "AUTHORIZING"
	statusAuthorizedExpired      paymentStatus = "AUTHORIZED_EXPIRED"
	statusFailed                 paymentStatus = "FAILED"
	statusProcessorDeclined      paymentStatus = "PROCESSOR_DECLINED"
	statusGatewayRejected        paymentStatus = "GATEWAY_REJECTED"
	statusVoided                 paymentStatus = "VOIDED"
	statusSettling               paymentStatus = "SETTLING"
	statusSettled                paymentStatus = "SETTLED"
	statusSettlementPending      paymentStatus = "SETTLEMENT_PENDING"
	statusSettlementDeclined     paymentStatus = "SETTLEMENT_DECLINED"
	statusSettlementConfirmed    paymentStatus = "SETTLEMENT_CONFIRMED"
	statusSubmittedForSettlement paymentStatus = "SUBMITTED_FOR_SETTLEMENT"
)

// attemptStatus maps a Braintree transaction status onto the canonical
// attempt status.
func attemptStatus(s paymentStatus) domain.AttemptStatus {
	switch s {
	case statusSettling, statusSettled:
		return domain.AttemptStatusCharged
	case statusAuthorizedExpired:
		return domain.AttemptStatusAuthorizationFailed
	case statusFailed, statusGatewayRejected, statusProcessorDeclined, statusSettlementDeclined:
		return domain.AttemptStatusFailure
	case statusAuthorized:
		return domain.AttemptStatusAuthorized
	case statusVoided:
		return domain.AttemptStatusVoided
	default:
		// Authorizing, SettlementPending, SettlementConfirmed,
		// SubmittedForSettlement, and any status Braintree adds later
		// stay in flight rather than failing the attempt.
		return domain.AttemptStatusPending
	}
}

// refundStatus is the refund status vocabulary of the Braintree
// GraphQL API.
type refundStatus string

const (
	refundSettlementPending      refundStatus = "SETTLEMENT_PENDING"
	refundSettling               refundStatus = "SETTLING"
	refundSettled                refundStatus = "SETTLED"
	refundSubmittedForSettlement refundStatus = "SUBMITTED_FOR_SETTLEMENT"
	refundFailed                 refundStatus = "FAILED"
)

// canonicalRefundStatus maps a Braintree refund status onto the
// canonical refund status.
func canonicalRefundStatus(s refundStatus) domain.RefundStatus {
	switch s {
	case refundSettled, refundSettling:
		return domain.RefundStatusSuccess
	case refundFailed:
		return domain.RefundStatusFailure
	default:
		// SubmittedForSettlement, SettlementPending, and anything new.
		return domain.RefundStatusPending
	}
}
