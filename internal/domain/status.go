package domain

// AttemptStatus is the platform-wide payment attempt status, independent
// of any connector's own vocabulary. Every connector status maps to
// exactly one of these values; unknown connector statuses map to
// AttemptStatusPending, never to an error.
type AttemptStatus string

const (
	AttemptStatusStarted             AttemptStatus = "started"
	AttemptStatusAuthorized          AttemptStatus = "authorized"
	AttemptStatusAuthorizationFailed AttemptStatus = "authorization_failed"
	AttemptStatusCharged             AttemptStatus = "charged"
	AttemptStatusVoided              AttemptStatus = "voided"
	AttemptStatusFailure             AttemptStatus = "failure"
	AttemptStatusPending             AttemptStatus = "pending"
)

// IsTerminal reports whether the attempt has reached a final state.
func (s AttemptStatus) IsTerminal() bool {
	switch s {
	case AttemptStatusCharged, AttemptStatusVoided, AttemptStatusFailure, AttemptStatusAuthorizationFailed:
		return true
	default:
		return false
	}
}

// RefundStatus is the platform-wide refund status.
type RefundStatus string

const (
	RefundStatusSuccess RefundStatus = "success"
	RefundStatusPending RefundStatus = "pending"
	RefundStatusFailure RefundStatus = "failure"
)

// ConnectorStatus is the lifecycle state of a configured connector
// account.
type ConnectorStatus string

const (
	ConnectorStatusActive   ConnectorStatus = "active"
	ConnectorStatusInactive ConnectorStatus = "inactive"
)
