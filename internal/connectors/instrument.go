package connectors

import (
	"time"

	"github.com/kevin07696/connector-switch/internal/flows"
	perrors "github.com/kevin07696/connector-switch/pkg/errors"
	"github.com/kevin07696/connector-switch/pkg/observability"
)

// Instrumented entry points. The execution engine calls these rather
// than the handler interfaces directly: they reject unsupported flows
// with NotImplemented and record transformation metrics around every
// build and parse.

func record(connector, flow, direction string, err error, start time.Time) {
	observability.RecordTransformation(connector, flow, direction, err, time.Since(start))
	if err != nil {
		observability.RecordTransformationError(connector, flow, string(perrors.KindOf(err)))
	}
}

func BuildAuthorize(c Connector, env *flows.AuthorizeEnvelope) (WireRequest, error) {
	h, ok := c.(AuthorizeHandler)
	if !ok {
		return WireRequest{}, perrors.NewNotImplemented("authorize")
	}
	start := time.Now()
	req, err := h.BuildAuthorizeRequest(env)
	record(c.Name(), "authorize", "build", err, start)
	return req, err
}

func ParseAuthorize(c Connector, env *flows.AuthorizeEnvelope, body []byte) error {
	h, ok := c.(AuthorizeHandler)
	if !ok {
		return perrors.NewNotImplemented("authorize")
	}
	start := time.Now()
	err := h.ParseAuthorizeResponse(env, body)
	record(c.Name(), "authorize", "parse", err, start)
	if err == nil {
		observability.RecordAttemptStatus(c.Name(), "authorize", string(env.Status))
		if _, errResp, ok := env.Result(); ok && errResp != nil {
			observability.RecordConnectorError(c.Name(), "authorize", errResp.Code)
		}
	}
	return err
}

func BuildCapture(c Connector, env *flows.CaptureEnvelope) (WireRequest, error) {
	h, ok := c.(CaptureHandler)
	if !ok {
		return WireRequest{}, perrors.NewNotImplemented("capture")
	}
	start := time.Now()
	req, err := h.BuildCaptureRequest(env)
	record(c.Name(), "capture", "build", err, start)
	return req, err
}

func ParseCapture(c Connector, env *flows.CaptureEnvelope, body []byte) error {
	h, ok := c.(CaptureHandler)
	if !ok {
		return perrors.NewNotImplemented("capture")
	}
	start := time.Now()
	err := h.ParseCaptureResponse(env, body)
	record(c.Name(), "capture", "parse", err, start)
	if err == nil {
		observability.RecordAttemptStatus(c.Name(), "capture", string(env.Status))
		if _, errResp, ok := env.Result(); ok && errResp != nil {
			observability.RecordConnectorError(c.Name(), "capture", errResp.Code)
		}
	}
	return err
}

func BuildVoid(c Connector, env *flows.VoidEnvelope) (WireRequest, error) {
	h, ok := c.(VoidHandler)
	if !ok {
		return WireRequest{}, perrors.NewNotImplemented("void")
	}
	start := time.Now()
	req, err := h.BuildVoidRequest(env)
	record(c.Name(), "void", "build", err, start)
	return req, err
}

func ParseVoid(c Connector, env *flows.VoidEnvelope, body []byte) error {
	h, ok := c.(VoidHandler)
	if !ok {
		return perrors.NewNotImplemented("void")
	}
	start := time.Now()
	err := h.ParseVoidResponse(env, body)
	record(c.Name(), "void", "parse", err, start)
	if err == nil {
		observability.RecordAttemptStatus(c.Name(), "void", string(env.Status))
		if _, errResp, ok := env.Result(); ok && errResp != nil {
			observability.RecordConnectorError(c.Name(), "void", errResp.Code)
		}
	}
	return err
}

func BuildRefund(c Connector, env *flows.RefundEnvelope) (WireRequest, error) {
	h, ok := c.(RefundHandler)
	if !ok {
		return WireRequest{}, perrors.NewNotImplemented("refund")
	}
	start := time.Now()
	req, err := h.BuildRefundRequest(env)
	record(c.Name(), "refund", "build", err, start)
	return req, err
}

func ParseRefund(c Connector, env *flows.RefundEnvelope, body []byte) error {
	h, ok := c.(RefundHandler)
	if !ok {
		return perrors.NewNotImplemented("refund")
	}
	start := time.Now()
	err := h.ParseRefundResponse(env, body)
	record(c.Name(), "refund", "parse", err, start)
	if err == nil {
		if _, errResp, ok := env.Result(); ok && errResp != nil {
			observability.RecordConnectorError(c.Name(), "refund", errResp.Code)
		}
	}
	return err
}

func BuildPSync(c Connector, env *flows.PSyncEnvelope) (WireRequest, error) {
	h, ok := c.(PSyncHandler)
	if !ok {
		return WireRequest{}, perrors.NewNotImplemented("psync")
	}
	start := time.Now()
	req, err := h.BuildPSyncRequest(env)
	record(c.Name(), "psync", "build", err, start)
	return req, err
}

func ParsePSync(c Connector, env *flows.PSyncEnvelope, body []byte) error {
	h, ok := c.(PSyncHandler)
	if !ok {
		return perrors.NewNotImplemented("psync")
	}
	start := time.Now()
	err := h.ParsePSyncResponse(env, body)
	record(c.Name(), "psync", "parse", err, start)
	if err == nil {
		observability.RecordAttemptStatus(c.Name(), "psync", string(env.Status))
	}
	return err
}

func BuildRSync(c Connector, env *flows.RSyncEnvelope) (WireRequest, error) {
	h, ok := c.(RSyncHandler)
	if !ok {
		return WireRequest{}, perrors.NewNotImplemented("rsync")
	}
	start := time.Now()
	req, err := h.BuildRSyncRequest(env)
	record(c.Name(), "rsync", "build", err, start)
	return req, err
}

func ParseRSync(c Connector, env *flows.RSyncEnvelope, body []byte) error {
	h, ok := c.(RSyncHandler)
	if !ok {
		return perrors.NewNotImplemented("rsync")
	}
	start := time.Now()
	err := h.ParseRSyncResponse(env, body)
	record(c.Name(), "rsync", "parse", err, start)
	return err
}

func BuildTokenize(c Connector, env *flows.TokenizeEnvelope) (WireRequest, error) {
	h, ok := c.(TokenizeHandler)
	if !ok {
		return WireRequest{}, perrors.NewNotImplemented("tokenize")
	}
	start := time.Now()
	req, err := h.BuildTokenizeRequest(env)
	record(c.Name(), "tokenize", "build", err, start)
	return req, err
}

func ParseTokenize(c Connector, env *flows.TokenizeEnvelope, body []byte) error {
	h, ok := c.(TokenizeHandler)
	if !ok {
		return perrors.NewNotImplemented("tokenize")
	}
	start := time.Now()
	err := h.ParseTokenizeResponse(env, body)
	record(c.Name(), "tokenize", "parse", err, start)
	return err
}
