// Package braintree transforms canonical payment flows into Braintree
// GraphQL calls and normalizes the replies. It is the reference
// adapter for the connector contract; it performs no I/O.
package braintree

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/kevin07696/connector-switch/internal/domain"
	perrors "github.com/kevin07696/connector-switch/pkg/errors"
)

const Name = "braintree"

// Connector implements the adapter contract for Braintree's GraphQL
// API. All seven flows are supported.
type Connector struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Connector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Connector{logger: logger}
}

func (c *Connector) Name() string { return Name }

// ValidateAuthType accepts only the three-part signature credential:
// public key, merchant id, private key.
func (c *Connector) ValidateAuthType(auth domain.ConnectorAuthType) error {
	if _, ok := auth.(domain.SignatureKey); !ok {
		return perrors.ErrFailedToObtainAuthType
	}
	return nil
}

// meta is the merchant's Braintree-specific configuration blob. Both
// fields are checked at account setup; merchant_account_id is also
// re-checked at build time because older accounts may predate the
// setup validation.
type meta struct {
	MerchantAccountID      string `json:"merchant_account_id"`
	MerchantConfigCurrency string `json:"merchant_config_currency"`
}

// ValidateConnectorMetaData checks the configuration blob shape at
// account setup time.
func (c *Connector) ValidateConnectorMetaData(raw []byte) error {
	m, err := parseMeta(raw)
	if err != nil {
		return err
	}
	if m.MerchantAccountID == "" {
		return perrors.NewMissingRequiredField("merchant_account_id")
	}
	if m.MerchantConfigCurrency == "" {
		return perrors.NewMissingRequiredField("merchant_config_currency")
	}
	return nil
}

func parseMeta(raw []byte) (meta, error) {
	var m meta
	if len(raw) == 0 {
		return m, perrors.NewMissingRequiredField("connector_meta_data")
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return m, perrors.NewInvalidConnectorConfig("connector_meta_data")
	}
	return m, nil
}

// validateCurrency enforces that the request currency matches the
// merchant account's configured currency.
func validateCurrency(requestCurrency string, m meta) error {
	if m.MerchantConfigCurrency == "" {
		return perrors.NewMissingRequiredField("merchant_config_currency")
	}
	if requestCurrency != m.MerchantConfigCurrency {
		return perrors.ErrCurrencyMismatch
	}
	return nil
}

// AuthHeader renders the Basic authorization header value for a
// validated signature credential. The transport layer attaches it.
func AuthHeader(auth domain.ConnectorAuthType) (string, error) {
	sig, ok := auth.(domain.SignatureKey)
	if !ok {
		return "", perrors.ErrFailedToObtainAuthType
	}
	pair := fmt.Sprintf("%s:%s", sig.APIKey.Expose(), sig.APISecret.Expose())
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(pair)), nil
}
