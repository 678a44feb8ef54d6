// Package masking provides a redacting wrapper for credential and
// cardholder data. A Secret never reveals its value through fmt or
// default string rendering; the only way to read it is Expose.
package masking

import (
	"encoding/json"
	"strings"
)

// RedactedMarker is what a Secret renders as in any textual output.
const RedactedMarker = "*** REDACTED ***"

// Secret holds a sensitive string (API key, card number, CVC, IBAN).
type Secret struct {
	inner string
}

// New wraps a sensitive value.
func New(value string) Secret {
	return Secret{inner: value}
}

// Expose returns the underlying value. Call sites of Expose are the
// audit surface for secret usage; nothing else reads the value.
func (s Secret) Expose() string {
	return s.inner
}

// IsEmpty reports whether the value is empty after trimming whitespace.
func (s Secret) IsEmpty() bool {
	return strings.TrimSpace(s.inner) == ""
}

// String implements fmt.Stringer with a fixed redaction marker.
func (s Secret) String() string {
	return RedactedMarker
}

// GoString keeps %#v output redacted as well.
func (s Secret) GoString() string {
	return RedactedMarker
}

// MarshalJSON emits the real value. Wire requests to processors must
// carry actual card numbers and keys; redaction applies to logs and
// debug rendering, not to outbound serialization.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.inner)
}

// UnmarshalJSON accepts a plain JSON string.
func (s *Secret) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	s.inner = value
	return nil
}
