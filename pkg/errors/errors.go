// Package errors defines the transformation error taxonomy shared by
// every connector adapter. Each failure carries a machine-readable
// kind so the execution engine can distinguish malformed payloads from
// missing upstream resources and from configuration problems.
package errors

import (
	"errors"
	"fmt"
)

// ErrorKind is a machine-readable transformation failure kind.
type ErrorKind string

const (
	// Outbound build failures
	KindMissingRequiredField  ErrorKind = "MISSING_REQUIRED_FIELD"
	KindNotImplemented        ErrorKind = "NOT_IMPLEMENTED"
	KindRequestEncodingFailed ErrorKind = "REQUEST_ENCODING_FAILED"
	KindCurrencyMismatch      ErrorKind = "CURRENCY_MISMATCH"

	// Inbound parse failures
	KindResponseDeserializationFailed ErrorKind = "RESPONSE_DESERIALIZATION_FAILED"
	KindMissingConnectorTransactionID ErrorKind = "MISSING_CONNECTOR_TRANSACTION_ID"
	KindMissingConnectorRefundID      ErrorKind = "MISSING_CONNECTOR_REFUND_ID"

	// Configuration / credential validation failures
	KindInvalidConnectorName   ErrorKind = "INVALID_CONNECTOR_NAME"
	KindInvalidConnectorConfig ErrorKind = "INVALID_CONNECTOR_CONFIG"
	KindFailedToObtainAuthType ErrorKind = "FAILED_TO_OBTAIN_AUTH_TYPE"
)

// ConnectorError is a structured transformation error.
type ConnectorError struct {
	Err     error
	Kind    ErrorKind
	Field   string // field name or capability the kind refers to
	Message string
}

// Error implements the error interface.
func (e *ConnectorError) Error() string {
	switch {
	case e.Field != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %s: %v", e.Kind, e.Field, e.Message, e.Err)
	case e.Field != "":
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ConnectorError) Unwrap() error {
	return e.Err
}

// Is matches by kind so predeclared sentinels work with errors.Is.
func (e *ConnectorError) Is(target error) bool {
	var other *ConnectorError
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}
	return false
}

// NewMissingRequiredField reports an absent mandatory field, usually a
// piece of per-merchant connector configuration.
func NewMissingRequiredField(field string) *ConnectorError {
	return &ConnectorError{
		Kind:    KindMissingRequiredField,
		Field:   field,
		Message: "required field is missing",
	}
}

// NewNotImplemented reports a capability the connector does not
// support, e.g. a payment method variant.
func NewNotImplemented(capability string) *ConnectorError {
	return &ConnectorError{
		Kind:    KindNotImplemented,
		Field:   capability,
		Message: "capability is not implemented by this connector",
	}
}

// NewInvalidConnectorConfig reports a connector configuration field
// that failed validation at account setup time.
func NewInvalidConnectorConfig(field string) *ConnectorError {
	return &ConnectorError{
		Kind:    KindInvalidConnectorConfig,
		Field:   field,
		Message: "connector configuration is invalid",
	}
}

// NewRequestEncodingFailed wraps a serialization failure while
// building an outbound wire request.
func NewRequestEncodingFailed(err error) *ConnectorError {
	return &ConnectorError{
		Kind:    KindRequestEncodingFailed,
		Message: "failed to encode connector request",
		Err:     err,
	}
}

// NewResponseDeserializationFailed wraps a malformed or incomplete
// connector response payload.
func NewResponseDeserializationFailed(err error) *ConnectorError {
	return &ConnectorError{
		Kind:    KindResponseDeserializationFailed,
		Message: "failed to deserialize connector response",
		Err:     err,
	}
}

// Sentinels for field-less kinds; compare with errors.Is.
var (
	ErrResponseDeserializationFailed = &ConnectorError{
		Kind:    KindResponseDeserializationFailed,
		Message: "failed to deserialize connector response",
	}
	ErrMissingConnectorTransactionID = &ConnectorError{
		Kind:    KindMissingConnectorTransactionID,
		Message: "no matching transaction found upstream",
	}
	ErrMissingConnectorRefundID = &ConnectorError{
		Kind:    KindMissingConnectorRefundID,
		Message: "no matching refund found upstream",
	}
	ErrInvalidConnectorName = &ConnectorError{
		Kind:    KindInvalidConnectorName,
		Message: "the connector name is invalid",
	}
	ErrFailedToObtainAuthType = &ConnectorError{
		Kind:    KindFailedToObtainAuthType,
		Message: "the auth type is invalid for the connector",
	}
	ErrCurrencyMismatch = &ConnectorError{
		Kind:    KindCurrencyMismatch,
		Message: "request currency does not match the connector account currency",
	}
)

// KindOf extracts the kind from an error, or "" if it is not a
// ConnectorError.
func KindOf(err error) ErrorKind {
	var connectorErr *ConnectorError
	if errors.As(err, &connectorErr) {
		return connectorErr.Kind
	}
	return ""
}

// IsKind checks whether an error is a ConnectorError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

// IsNotFoundUpstream reports whether an error means the connector
// located no matching resource, as opposed to a malformed payload.
// Polling logic treats these differently from hard failures.
func IsNotFoundUpstream(err error) bool {
	kind := KindOf(err)
	return kind == KindMissingConnectorTransactionID ||
		kind == KindMissingConnectorRefundID
}

// ValidationError reports a credential or configuration shape problem
// at connector-account setup time.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
