package domain

import (
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"fmt"

	pkgerrors "github.com/kevin07696/connector-switch/pkg/errors"
	"github.com/kevin07696/connector-switch/pkg/masking"
)

// ConnectorAuthType is the closed set of credential shapes a connector
// account can carry. Exactly one variant is active per account; the
// persisted JSON blob is tagged by an "auth_type" discriminator field.
type ConnectorAuthType interface {
	isConnectorAuthType()
	// AuthKind returns the discriminator value for this variant.
	AuthKind() string
}

// NoKey is for connectors that require no credentials.
type NoKey struct{}

// TemporaryAuth marks a connector account created without real
// credentials. Accounts using it can never be active.
type TemporaryAuth struct{}

// HeaderKey carries a single API key sent in a request header.
type HeaderKey struct {
	APIKey masking.Secret `json:"api_key"`
}

// BodyKey carries an API key plus one extra key sent in the body.
type BodyKey struct {
	APIKey masking.Secret `json:"api_key"`
	Key1   masking.Secret `json:"key1"`
}

// SignatureKey carries a key pair plus a signing secret.
type SignatureKey struct {
	APIKey    masking.Secret `json:"api_key"`
	Key1      masking.Secret `json:"key1"`
	APISecret masking.Secret `json:"api_secret"`
}

// MultiAuthKey carries four independent credentials.
type MultiAuthKey struct {
	APIKey    masking.Secret `json:"api_key"`
	Key1      masking.Secret `json:"key1"`
	APISecret masking.Secret `json:"api_secret"`
	Key2      masking.Secret `json:"key2"`
}

// CurrencyAuthKey maps each transacting currency to its own opaque
// credential blob.
type CurrencyAuthKey struct {
	AuthKeyMap map[string]json.RawMessage `json:"auth_key_map"`
}

// CertificateAuth carries a base64-encoded PEM certificate and private
// key used for mutual TLS.
type CertificateAuth struct {
	Certificate masking.Secret `json:"certificate"`
	PrivateKey  masking.Secret `json:"private_key"`
}

func (NoKey) isConnectorAuthType()           {}
func (TemporaryAuth) isConnectorAuthType()   {}
func (HeaderKey) isConnectorAuthType()       {}
func (BodyKey) isConnectorAuthType()         {}
func (SignatureKey) isConnectorAuthType()    {}
func (MultiAuthKey) isConnectorAuthType()    {}
func (CurrencyAuthKey) isConnectorAuthType() {}
func (CertificateAuth) isConnectorAuthType() {}

func (NoKey) AuthKind() string           { return "no_key" }
func (TemporaryAuth) AuthKind() string   { return "temporary_auth" }
func (HeaderKey) AuthKind() string       { return "header_key" }
func (BodyKey) AuthKind() string         { return "body_key" }
func (SignatureKey) AuthKind() string    { return "signature_key" }
func (MultiAuthKey) AuthKind() string    { return "multi_auth_key" }
func (CurrencyAuthKey) AuthKind() string { return "currency_auth_key" }
func (CertificateAuth) AuthKind() string { return "certificate_auth" }

// ParseAuthType decodes a decrypted connector-account-details blob
// into its auth variant using the "auth_type" discriminator.
func ParseAuthType(raw json.RawMessage) (ConnectorAuthType, error) {
	var tag struct {
		AuthType string `json:"auth_type"`
	}
	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, pkgerrors.ErrFailedToObtainAuthType
	}

	switch tag.AuthType {
	case "no_key":
		return NoKey{}, nil
	case "temporary_auth":
		return TemporaryAuth{}, nil
	case "header_key":
		var auth HeaderKey
		if err := json.Unmarshal(raw, &auth); err != nil {
			return nil, pkgerrors.ErrFailedToObtainAuthType
		}
		return auth, nil
	case "body_key":
		var auth BodyKey
		if err := json.Unmarshal(raw, &auth); err != nil {
			return nil, pkgerrors.ErrFailedToObtainAuthType
		}
		return auth, nil
	case "signature_key":
		var auth SignatureKey
		if err := json.Unmarshal(raw, &auth); err != nil {
			return nil, pkgerrors.ErrFailedToObtainAuthType
		}
		return auth, nil
	case "multi_auth_key":
		var auth MultiAuthKey
		if err := json.Unmarshal(raw, &auth); err != nil {
			return nil, pkgerrors.ErrFailedToObtainAuthType
		}
		return auth, nil
	case "currency_auth_key":
		var auth CurrencyAuthKey
		if err := json.Unmarshal(raw, &auth); err != nil {
			return nil, pkgerrors.ErrFailedToObtainAuthType
		}
		return auth, nil
	case "certificate_auth":
		var auth CertificateAuth
		if err := json.Unmarshal(raw, &auth); err != nil {
			return nil, pkgerrors.ErrFailedToObtainAuthType
		}
		return auth, nil
	default:
		return nil, pkgerrors.ErrFailedToObtainAuthType
	}
}

// ValidateAuthType runs the shape validation shared by every
// connector: credential fields must be non-empty after trimming, a
// per-currency key map must be non-empty, and a certificate pair must
// load as a usable certificate/key identity now, not at use time.
func ValidateAuthType(auth ConnectorAuthType) error {
	nonEmpty := func(value masking.Secret, field string) error {
		if value.IsEmpty() {
			return pkgerrors.NewValidationError(
				"connector_account_details."+field, "expected a non-empty string")
		}
		return nil
	}

	switch auth := auth.(type) {
	case NoKey, TemporaryAuth:
		return nil
	case HeaderKey:
		return nonEmpty(auth.APIKey, "api_key")
	case BodyKey:
		if err := nonEmpty(auth.APIKey, "api_key"); err != nil {
			return err
		}
		return nonEmpty(auth.Key1, "key1")
	case SignatureKey:
		if err := nonEmpty(auth.APIKey, "api_key"); err != nil {
			return err
		}
		if err := nonEmpty(auth.Key1, "key1"); err != nil {
			return err
		}
		return nonEmpty(auth.APISecret, "api_secret")
	case MultiAuthKey:
		if err := nonEmpty(auth.APIKey, "api_key"); err != nil {
			return err
		}
		if err := nonEmpty(auth.Key1, "key1"); err != nil {
			return err
		}
		if err := nonEmpty(auth.APISecret, "api_secret"); err != nil {
			return err
		}
		return nonEmpty(auth.Key2, "key2")
	case CurrencyAuthKey:
		if len(auth.AuthKeyMap) == 0 {
			return pkgerrors.NewValidationError(
				"connector_account_details.auth_key_map", "expected a non-empty map")
		}
		return nil
	case CertificateAuth:
		if _, err := IdentityFromCertificateAndKey(auth.Certificate, auth.PrivateKey); err != nil {
			return pkgerrors.NewValidationError(
				"connector_account_details.certificate or connector_account_details.private_key",
				"expected a valid base64 encoded string of PEM encoded certificate and private key")
		}
		return nil
	default:
		return pkgerrors.ErrFailedToObtainAuthType
	}
}

// IdentityFromCertificateAndKey decodes a base64-wrapped PEM
// certificate and private key into a TLS identity.
func IdentityFromCertificateAndKey(certificate, privateKey masking.Secret) (tls.Certificate, error) {
	certPEM, err := base64.StdEncoding.DecodeString(certificate.Expose())
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("decoding certificate: %w", err)
	}
	keyPEM, err := base64.StdEncoding.DecodeString(privateKey.Expose())
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("decoding private key: %w", err)
	}
	identity, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("loading key pair: %w", err)
	}
	return identity, nil
}

// ResolveConnectorStatus reconciles a requested status/disabled pair
// with the auth variant. TemporaryAuth accounts can never be active,
// and an inactive connector cannot be enabled.
func ResolveConnectorStatus(
	requested *ConnectorStatus,
	disabled *bool,
	auth ConnectorAuthType,
	current ConnectorStatus,
) (ConnectorStatus, *bool, error) {
	_, temporary := auth.(TemporaryAuth)

	var status ConnectorStatus
	switch {
	case requested != nil && *requested == ConnectorStatusActive && temporary:
		return "", nil, pkgerrors.NewValidationError(
			"status", "connector status cannot be active when using temporary auth")
	case requested != nil:
		status = *requested
	case temporary:
		status = ConnectorStatusInactive
	default:
		status = current
	}

	switch {
	case disabled != nil && !*disabled && status == ConnectorStatusInactive:
		return "", nil, pkgerrors.NewValidationError(
			"disabled", "connector cannot be enabled while its status is inactive")
	case disabled != nil:
		return status, disabled, nil
	case status == ConnectorStatusInactive:
		inactive := true
		return status, &inactive, nil
	default:
		return status, nil, nil
	}
}
