package flows

import (
	"encoding/json"
	"errors"

	"github.com/kevin07696/connector-switch/internal/domain"
)

// ErrResponseAlreadySet is returned when a second result is written to
// an envelope. The first write wins.
var ErrResponseAlreadySet = errors.New("envelope response already set")

// Envelope carries a single connector call: the flow's request payload
// in, the connector's normalized result out. The response side is
// write-once so a transform stage cannot silently overwrite an earlier
// outcome.
type Envelope[F Flow, Req, Resp any] struct {
	// Status is the normalized attempt status after parsing. For
	// refund flows the refund status travels in the response payload
	// and Status tracks the underlying payment attempt.
	Status domain.AttemptStatus

	Request  Req
	AuthType domain.ConnectorAuthType

	// ConnectorMetaData is the merchant's connector-specific
	// configuration blob, passed through untouched for the adapter to
	// interpret.
	ConnectorMetaData json.RawMessage

	// PaymentMethodToken holds a previously tokenized payment method,
	// when one exists.
	PaymentMethodToken string

	// HTTPStatusCode is the transport status of the connector reply.
	// Set before parsing; error normalization reports it verbatim.
	HTTPStatusCode int

	resp    Resp
	respErr *domain.ErrorResponse
	written bool
}

// SetSuccess records the parsed success payload. A second write of
// either kind returns ErrResponseAlreadySet.
func (e *Envelope[F, Req, Resp]) SetSuccess(resp Resp) error {
	if e.written {
		return ErrResponseAlreadySet
	}
	e.resp = resp
	e.written = true
	return nil
}

// SetError records a normalized connector error.
func (e *Envelope[F, Req, Resp]) SetError(errResp domain.ErrorResponse) error {
	if e.written {
		return ErrResponseAlreadySet
	}
	e.respErr = &errResp
	e.written = true
	return nil
}

// Result returns the recorded outcome. ok is false until one of the
// setters has run. errResp is nil on success.
func (e *Envelope[F, Req, Resp]) Result() (resp Resp, errResp *domain.ErrorResponse, ok bool) {
	if !e.written {
		return resp, nil, false
	}
	return e.resp, e.respErr, true
}

// Failed reports whether an error outcome was recorded.
func (e *Envelope[F, Req, Resp]) Failed() bool {
	return e.written && e.respErr != nil
}

// Flow returns the envelope's flow name, for logging.
func (e *Envelope[F, Req, Resp]) Flow() string {
	var f F
	return f.String()
}

// Instantiations used across the adapter contract.
type (
	AuthorizeEnvelope = Envelope[Authorize, AuthorizeRequest, domain.PaymentsResponse]
	CaptureEnvelope   = Envelope[Capture, CaptureRequest, domain.PaymentsResponse]
	VoidEnvelope      = Envelope[Void, VoidRequest, domain.PaymentsResponse]
	RefundEnvelope    = Envelope[Refund, RefundRequest, domain.RefundsResponse]
	PSyncEnvelope     = Envelope[PSync, SyncRequest, domain.PaymentsResponse]
	RSyncEnvelope     = Envelope[RSync, RefundSyncRequest, domain.RefundsResponse]
	TokenizeEnvelope  = Envelope[Tokenize, TokenizeRequest, domain.TokenizationResponse]
)
