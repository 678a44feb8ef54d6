// Package connectors defines the adapter contract every payment
// connector implements, plus the registry that resolves connectors by
// name. Adapters live in subpackages and only transform data; they
// never perform I/O.
package connectors

import (
	"github.com/kevin07696/connector-switch/internal/domain"
	"github.com/kevin07696/connector-switch/internal/flows"
)

// Content types a connector request body may carry.
const (
	ContentTypeJSON           = "application/json"
	ContentTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

// WireRequest is a connector-ready request body. The transport layer
// owns URLs, headers, and the HTTP client; adapters only produce the
// payload.
type WireRequest struct {
	ContentType string
	Body        []byte
}

// Per-flow handler pairs. A connector implements a flow by building
// the outbound body from the envelope and parsing the raw reply back
// into it. Parse must tolerate failure replies: connector-reported
// errors become a normalized ErrorResponse on the envelope, not a Go
// error.

type AuthorizeHandler interface {
	BuildAuthorizeRequest(env *flows.AuthorizeEnvelope) (WireRequest, error)
	ParseAuthorizeResponse(env *flows.AuthorizeEnvelope, body []byte) error
}

type CaptureHandler interface {
	BuildCaptureRequest(env *flows.CaptureEnvelope) (WireRequest, error)
	ParseCaptureResponse(env *flows.CaptureEnvelope, body []byte) error
}

type VoidHandler interface {
	BuildVoidRequest(env *flows.VoidEnvelope) (WireRequest, error)
	ParseVoidResponse(env *flows.VoidEnvelope, body []byte) error
}

type RefundHandler interface {
	BuildRefundRequest(env *flows.RefundEnvelope) (WireRequest, error)
	ParseRefundResponse(env *flows.RefundEnvelope, body []byte) error
}

type PSyncHandler interface {
	BuildPSyncRequest(env *flows.PSyncEnvelope) (WireRequest, error)
	ParsePSyncResponse(env *flows.PSyncEnvelope, body []byte) error
}

type RSyncHandler interface {
	BuildRSyncRequest(env *flows.RSyncEnvelope) (WireRequest, error)
	ParseRSyncResponse(env *flows.RSyncEnvelope, body []byte) error
}

type TokenizeHandler interface {
	BuildTokenizeRequest(env *flows.TokenizeEnvelope) (WireRequest, error)
	ParseTokenizeResponse(env *flows.TokenizeEnvelope, body []byte) error
}

// Connector is the minimal surface every adapter exposes. Flow support
// is discovered by interface assertion against the handler types
// above; a connector that does not implement a flow's handler simply
// does not support that flow.
type Connector interface {
	// Name is the registry key, lowercase.
	Name() string

	// ValidateAuthType checks that the parsed credentials match the
	// shape this connector accepts.
	ValidateAuthType(auth domain.ConnectorAuthType) error

	// ValidateConnectorMetaData checks the merchant's
	// connector-specific configuration blob.
	ValidateConnectorMetaData(meta []byte) error
}

// SupportsFlow reports whether the connector implements the named
// flow's handler pair.
func SupportsFlow(c Connector, f flows.Flow) bool {
	switch f.(type) {
	case flows.Authorize:
		_, ok := c.(AuthorizeHandler)
		return ok
	case flows.Capture:
		_, ok := c.(CaptureHandler)
		return ok
	case flows.Void:
		_, ok := c.(VoidHandler)
		return ok
	case flows.Refund:
		_, ok := c.(RefundHandler)
		return ok
	case flows.PSync:
		_, ok := c.(PSyncHandler)
		return ok
	case flows.RSync:
		_, ok := c.(RSyncHandler)
		return ok
	case flows.Tokenize:
		_, ok := c.(TokenizeHandler)
		return ok
	}
	return false
}
