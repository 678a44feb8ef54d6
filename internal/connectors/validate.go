package connectors

import (
	"encoding/json"

	"github.com/kevin07696/connector-switch/internal/domain"
	"github.com/kevin07696/connector-switch/pkg/observability"
)

// ValidateCredentials runs the full credential check for a merchant
// connector account: parse the auth blob, apply the generic per-shape
// validation, then the connector's own acceptance check, and finally
// the connector's metadata check. The parsed auth is returned so the
// caller can persist or use it.
func (r *Registry) ValidateCredentials(connectorName string, rawAuth json.RawMessage, meta []byte) (auth domain.ConnectorAuthType, err error) {
	defer func() { observability.RecordCredentialValidation(connectorName, err) }()

	c, err := r.Get(connectorName)
	if err != nil {
		return nil, err
	}
	auth, err = domain.ParseAuthType(rawAuth)
	if err != nil {
		return nil, err
	}
	if err = domain.ValidateAuthType(auth); err != nil {
		return nil, err
	}
	if err = c.ValidateAuthType(auth); err != nil {
		return nil, err
	}
	if err = c.ValidateConnectorMetaData(meta); err != nil {
		return nil, err
	}
	return auth, nil
}
