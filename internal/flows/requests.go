package flows

import "github.com/kevin07696/connector-switch/internal/domain"

// CaptureMethod controls whether an authorization settles immediately.
type CaptureMethod string

const (
	CaptureAutomatic CaptureMethod = "automatic"
	CaptureManual    CaptureMethod = "manual"
)

// AutoCapture reports whether the method settles in the same call.
// An unset capture method defaults to automatic.
func (c CaptureMethod) AutoCapture() bool {
	return c == CaptureAutomatic || c == ""
}

// AuthorizeRequest carries everything needed to build an authorization
// or a combined authorize-and-capture call. Amount is in minor units.
type AuthorizeRequest struct {
	Amount            int64
	Currency          string
	CaptureMethod     CaptureMethod
	PaymentMethodData domain.PaymentMethodData
	// Email and StatementDescriptor are optional shopper context some
	// connectors require.
	Email               string
	StatementDescriptor string
}

// CaptureRequest settles a previously authorized transaction, in full
// or for a smaller amount. Amount is in minor units.
type CaptureRequest struct {
	ConnectorTransactionID string
	Amount                 int64
	Currency               string
}

// VoidRequest cancels an uncaptured authorization.
type VoidRequest struct {
	ConnectorTransactionID string
}

// RefundRequest returns settled funds. Amount is in minor units.
type RefundRequest struct {
	ConnectorTransactionID string
	RefundID               string
	Amount                 int64
	Currency               string
}

// SyncRequest looks up the current state of a payment attempt.
type SyncRequest struct {
	ConnectorTransactionID string
}

// RefundSyncRequest looks up the current state of a refund.
type RefundSyncRequest struct {
	ConnectorRefundID      string
	ConnectorTransactionID string
}

// TokenizeRequest exchanges raw payment method data for a connector
// token.
type TokenizeRequest struct {
	PaymentMethodData domain.PaymentMethodData
	Currency          string
}
