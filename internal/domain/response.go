package domain

import "encoding/json"

// Sentinel values substituted when a connector error payload omits a
// code or message. The normalized ErrorResponse never has empty
// Code/Message fields.
const (
	NoErrorCode    = "no error code"
	NoErrorMessage = "no error message"
)

// ErrorResponse is the canonical connector-reported error shape. It is
// the only error shape exposed upward; no connector-specific field
// names cross this boundary.
type ErrorResponse struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Reason     string `json:"reason,omitempty"`
	StatusCode int    `json:"status_code"`
}

// NewErrorResponse normalizes an optional connector code/message pair
// and the transport HTTP status into the canonical shape. StatusCode
// always reflects the transport status, independent of the payload.
func NewErrorResponse(code, message string, httpStatus int) ErrorResponse {
	if code == "" {
		code = NoErrorCode
	}
	if message == "" {
		message = NoErrorMessage
	}
	return ErrorResponse{
		Code:       code,
		Message:    message,
		StatusCode: httpStatus,
	}
}

// RedirectionData carries the redirect the shopper must follow to
// complete a payment, when the connector requires one.
type RedirectionData struct {
	URL    string            `json:"url"`
	Method string            `json:"method"`
	Params map[string]string `json:"params,omitempty"`
}

// MandateReference identifies a stored mandate created by the
// connector for future off-session payments.
type MandateReference struct {
	ConnectorMandateID string          `json:"connector_mandate_id,omitempty"`
	PaymentMethodID    string          `json:"payment_method_id,omitempty"`
	MandateMetadata    json.RawMessage `json:"mandate_metadata,omitempty"`
}

// PaymentsResponse is the canonical success payload for payment flows
// (authorize, capture, void, sync).
type PaymentsResponse struct {
	// ResourceID is the connector's transaction identifier.
	ResourceID string `json:"resource_id"`

	RedirectionData              *RedirectionData  `json:"redirection_data,omitempty"`
	MandateReference             *MandateReference `json:"mandate_reference,omitempty"`
	ConnectorMetadata            json.RawMessage   `json:"connector_metadata,omitempty"`
	NetworkTxnID                 string            `json:"network_txn_id,omitempty"`
	ConnectorResponseReferenceID string            `json:"connector_response_reference_id,omitempty"`
}

// RefundsResponse is the canonical success payload for refund flows.
type RefundsResponse struct {
	ConnectorRefundID string       `json:"connector_refund_id"`
	RefundStatus      RefundStatus `json:"refund_status"`
}

// TokenizationResponse is the canonical success payload for the
// tokenize flow.
type TokenizationResponse struct {
	Token string `json:"token"`
}
