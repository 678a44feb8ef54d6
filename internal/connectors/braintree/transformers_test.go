package braintree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin07696/connector-switch/internal/connectors"
	"github.com/kevin07696/connector-switch/internal/domain"
	"github.com/kevin07696/connector-switch/internal/flows"
	perrors "github.com/kevin07696/connector-switch/pkg/errors"
	"github.com/kevin07696/connector-switch/pkg/masking"
)

var testMeta = json.RawMessage(`{"merchant_account_id":"acct_1","merchant_config_currency":"USD"}`)

func testConnector() *Connector { return New(nil) }

func decodeBody(t *testing.T, req connectors.WireRequest) map[string]any {
	t.Helper()
	require.Equal(t, connectors.ContentTypeJSON, req.ContentType)
	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	return body
}

func authorizeEnvelope(capture flows.CaptureMethod) *flows.AuthorizeEnvelope {
	return &flows.AuthorizeEnvelope{
		Request: flows.AuthorizeRequest{
			Amount:        1050,
			Currency:      "USD",
			CaptureMethod: capture,
		},
		ConnectorMetaData:  testMeta,
		PaymentMethodToken: "pm_token_1",
	}
}

func TestBuildAuthorizeRequestAutoCapture(t *testing.T) {
	req, err := testConnector().BuildAuthorizeRequest(authorizeEnvelope(flows.CaptureAutomatic))
	require.NoError(t, err)

	body := decodeBody(t, req)
	query := body["query"].(string)
	assert.Contains(t, query, "chargeCreditCard")
	assert.NotContains(t, query, "authorizeCreditCard")

	input := body["variables"].(map[string]any)["input"].(map[string]any)
	assert.Equal(t, "pm_token_1", input["paymentMethodId"])
	txn := input["transaction"].(map[string]any)
	assert.Equal(t, "10.50", txn["amount"])
	assert.Equal(t, "acct_1", txn["merchantAccountId"])
}

func TestBuildAuthorizeRequestManualCapture(t *testing.T) {
	req, err := testConnector().BuildAuthorizeRequest(authorizeEnvelope(flows.CaptureManual))
	require.NoError(t, err)

	query := decodeBody(t, req)["query"].(string)
	assert.Contains(t, query, "authorizeCreditCard")
	assert.NotContains(t, query, "chargeCreditCard")
}

func TestBuildAuthorizeRequestMissingMerchantAccountID(t *testing.T) {
	env := authorizeEnvelope(flows.CaptureAutomatic)
	env.ConnectorMetaData = json.RawMessage(`{"merchant_config_currency":"USD"}`)

	_, err := testConnector().BuildAuthorizeRequest(env)
	require.Error(t, err)
	assert.True(t, perrors.IsKind(err, perrors.KindMissingRequiredField))
	assert.Contains(t, err.Error(), "merchant_account_id")
}

func TestBuildAuthorizeRequestMissingMetadata(t *testing.T) {
	env := authorizeEnvelope(flows.CaptureAutomatic)
	env.ConnectorMetaData = nil

	_, err := testConnector().BuildAuthorizeRequest(env)
	assert.True(t, perrors.IsKind(err, perrors.KindMissingRequiredField))
}

func TestBuildAuthorizeRequestCurrencyMismatch(t *testing.T) {
	env := authorizeEnvelope(flows.CaptureAutomatic)
	env.Request.Currency = "EUR"

	_, err := testConnector().BuildAuthorizeRequest(env)
	assert.ErrorIs(t, err, perrors.ErrCurrencyMismatch)
}

func TestBuildAuthorizeRequestMissingToken(t *testing.T) {
	env := authorizeEnvelope(flows.CaptureAutomatic)
	env.PaymentMethodToken = ""

	_, err := testConnector().BuildAuthorizeRequest(env)
	assert.True(t, perrors.IsKind(err, perrors.KindMissingRequiredField))
}

func TestParseAuthorizeResponseCharged(t *testing.T) {
	env := authorizeEnvelope(flows.CaptureAutomatic)
	env.HTTPStatusCode = 200
	body := []byte(`{"data":{"chargeCreditCard":{"transaction":{"id":"txn_1","legacyId":"legacy_1","status":"SETTLED"}}}}`)

	require.NoError(t, testConnector().ParseAuthorizeResponse(env, body))

	assert.Equal(t, domain.AttemptStatusCharged, env.Status)
	resp, errResp, ok := env.Result()
	require.True(t, ok)
	assert.Nil(t, errResp)
	assert.Equal(t, "txn_1", resp.ResourceID)
	assert.Equal(t, "legacy_1", resp.ConnectorResponseReferenceID)
}

func TestParseAuthorizeResponseManualCaptureReadsAuthorizeField(t *testing.T) {
	env := authorizeEnvelope(flows.CaptureManual)
	body := []byte(`{"data":{"authorizeCreditCard":{"transaction":{"id":"txn_2","status":"AUTHORIZED"}}}}`)

	require.NoError(t, testConnector().ParseAuthorizeResponse(env, body))
	assert.Equal(t, domain.AttemptStatusAuthorized, env.Status)
}

func TestParseAuthorizeResponseProcessorDeclined(t *testing.T) {
	env := authorizeEnvelope(flows.CaptureAutomatic)
	env.HTTPStatusCode = 200
	body := []byte(`{"errors":[
		{"message":"Processor Declined","extensions":{"legacyCode":"2001"}},
		{"message":"second error ignored","extensions":{"legacyCode":"9999"}}
	]}`)

	require.NoError(t, testConnector().ParseAuthorizeResponse(env, body))

	_, errResp, ok := env.Result()
	require.True(t, ok)
	require.NotNil(t, errResp)
	// Only the first element of the errors array is authoritative.
	assert.Equal(t, "2001", errResp.Code)
	assert.Equal(t, "Processor Declined", errResp.Message)
	assert.Equal(t, 200, errResp.StatusCode)
}

func TestParseAuthorizeResponseErrorWithoutExtensions(t *testing.T) {
	env := authorizeEnvelope(flows.CaptureAutomatic)
	env.HTTPStatusCode = 422
	body := []byte(`{"errors":[{"message":""}]}`)

	require.NoError(t, testConnector().ParseAuthorizeResponse(env, body))

	_, errResp, _ := env.Result()
	require.NotNil(t, errResp)
	assert.Equal(t, domain.NoErrorCode, errResp.Code)
	assert.Equal(t, domain.NoErrorMessage, errResp.Message)
	assert.Equal(t, 422, errResp.StatusCode)
}

func TestParseAuthorizeResponseErrorsTakePrecedenceOverData(t *testing.T) {
	env := authorizeEnvelope(flows.CaptureAutomatic)
	env.HTTPStatusCode = 200
	body := []byte(`{
		"data":{"chargeCreditCard":{"transaction":{"id":"txn_1","status":"SETTLED"}}},
		"errors":[{"message":"partial failure","extensions":{"legacyCode":"81528"}}]
	}`)

	require.NoError(t, testConnector().ParseAuthorizeResponse(env, body))

	_, errResp, ok := env.Result()
	require.True(t, ok)
	require.NotNil(t, errResp)
	assert.Equal(t, "81528", errResp.Code)
}

func TestParseAuthorizeResponseMalformed(t *testing.T) {
	c := testConnector()

	err := c.ParseAuthorizeResponse(authorizeEnvelope(flows.CaptureAutomatic), []byte(`{not json`))
	assert.True(t, perrors.IsKind(err, perrors.KindResponseDeserializationFailed))

	// Missing nested fields are a deserialization failure too.
	for _, body := range []string{
		`{}`,
		`{"data":{}}`,
		`{"data":{"chargeCreditCard":{}}}`,
	} {
		err := c.ParseAuthorizeResponse(authorizeEnvelope(flows.CaptureAutomatic), []byte(body))
		assert.True(t, perrors.IsKind(err, perrors.KindResponseDeserializationFailed), body)
	}
}

func TestBuildCaptureRequest(t *testing.T) {
	env := &flows.CaptureEnvelope{
		Request: flows.CaptureRequest{
			ConnectorTransactionID: "txn_1",
			Amount:                 500,
			Currency:               "USD",
		},
	}
	req, err := testConnector().BuildCaptureRequest(env)
	require.NoError(t, err)

	body := decodeBody(t, req)
	assert.Contains(t, body["query"], "captureTransaction")
	input := body["variables"].(map[string]any)["input"].(map[string]any)
	assert.Equal(t, "txn_1", input["transactionId"])
	assert.Equal(t, "5.00", input["transaction"].(map[string]any)["amount"])
}

func TestParseCaptureResponse(t *testing.T) {
	env := &flows.CaptureEnvelope{HTTPStatusCode: 200}
	body := []byte(`{"data":{"captureTransaction":{"transaction":{"id":"txn_1","status":"SUBMITTED_FOR_SETTLEMENT"}}}}`)

	require.NoError(t, testConnector().ParseCaptureResponse(env, body))
	assert.Equal(t, domain.AttemptStatusPending, env.Status)
}

func TestBuildVoidRequest(t *testing.T) {
	env := &flows.VoidEnvelope{Request: flows.VoidRequest{ConnectorTransactionID: "txn_1"}}
	req, err := testConnector().BuildVoidRequest(env)
	require.NoError(t, err)

	body := decodeBody(t, req)
	assert.Contains(t, body["query"], "reverseTransaction")
	input := body["variables"].(map[string]any)["input"].(map[string]any)
	assert.Equal(t, "txn_1", input["transactionId"])
}

func TestParseVoidResponse(t *testing.T) {
	env := &flows.VoidEnvelope{}
	body := []byte(`{"data":{"reverseTransaction":{"reversal":{"id":"txn_1","status":"VOIDED"}}}}`)

	require.NoError(t, testConnector().ParseVoidResponse(env, body))
	assert.Equal(t, domain.AttemptStatusVoided, env.Status)

	resp, _, ok := env.Result()
	require.True(t, ok)
	assert.Equal(t, "txn_1", resp.ResourceID)
}

func TestBuildRefundRequest(t *testing.T) {
	env := &flows.RefundEnvelope{
		Request: flows.RefundRequest{
			ConnectorTransactionID: "txn_1",
			Amount:                 1050,
			Currency:               "USD",
		},
		ConnectorMetaData: testMeta,
	}
	req, err := testConnector().BuildRefundRequest(env)
	require.NoError(t, err)

	body := decodeBody(t, req)
	assert.Contains(t, body["query"], "refundTransaction")
	input := body["variables"].(map[string]any)["input"].(map[string]any)
	assert.Equal(t, "txn_1", input["transactionId"])
	refund := input["refund"].(map[string]any)
	assert.Equal(t, "10.50", refund["amount"])
	assert.Equal(t, "acct_1", refund["merchantAccountId"])
}

func TestBuildRefundRequestCurrencyMismatch(t *testing.T) {
	env := &flows.RefundEnvelope{
		Request:           flows.RefundRequest{ConnectorTransactionID: "txn_1", Amount: 100, Currency: "GBP"},
		ConnectorMetaData: testMeta,
	}
	_, err := testConnector().BuildRefundRequest(env)
	assert.ErrorIs(t, err, perrors.ErrCurrencyMismatch)
}

func TestParseRefundResponse(t *testing.T) {
	env := &flows.RefundEnvelope{HTTPStatusCode: 200}
	body := []byte(`{"data":{"refundTransaction":{"refund":{"id":"ref_1","status":"SETTLING"}}}}`)

	require.NoError(t, testConnector().ParseRefundResponse(env, body))

	resp, errResp, ok := env.Result()
	require.True(t, ok)
	assert.Nil(t, errResp)
	assert.Equal(t, "ref_1", resp.ConnectorRefundID)
	assert.Equal(t, domain.RefundStatusSuccess, resp.RefundStatus)
}

func TestParseRefundResponseFailure(t *testing.T) {
	env := &flows.RefundEnvelope{HTTPStatusCode: 200}
	body := []byte(`{"data":{"refundTransaction":{"refund":{"id":"ref_1","status":"FAILED"}}}}`)

	require.NoError(t, testConnector().ParseRefundResponse(env, body))

	resp, _, _ := env.Result()
	assert.Equal(t, domain.RefundStatusFailure, resp.RefundStatus)
}

func TestBuildPSyncRequest(t *testing.T) {
	env := &flows.PSyncEnvelope{Request: flows.SyncRequest{ConnectorTransactionID: "txn_1"}}
	req, err := testConnector().BuildPSyncRequest(env)
	require.NoError(t, err)

	query := decodeBody(t, req)["query"].(string)
	assert.Contains(t, query, `transactions(input: { id: {is: "txn_1"} }, first: 1)`)
}

func TestBuildPSyncRequestMissingID(t *testing.T) {
	_, err := testConnector().BuildPSyncRequest(&flows.PSyncEnvelope{})
	assert.ErrorIs(t, err, perrors.ErrMissingConnectorTransactionID)
}

func TestParsePSyncResponse(t *testing.T) {
	env := &flows.PSyncEnvelope{}
	body := []byte(`{"data":{"search":{"transactions":{"edges":[{"node":{"id":"txn_1","status":"AUTHORIZED_EXPIRED"}}]}}}}`)

	require.NoError(t, testConnector().ParsePSyncResponse(env, body))
	assert.Equal(t, domain.AttemptStatusAuthorizationFailed, env.Status)

	resp, _, ok := env.Result()
	require.True(t, ok)
	assert.Equal(t, "txn_1", resp.ResourceID)
}

func TestParsePSyncResponseNoMatch(t *testing.T) {
	env := &flows.PSyncEnvelope{}
	body := []byte(`{"data":{"search":{"transactions":{"edges":[]}}}}`)

	err := testConnector().ParsePSyncResponse(env, body)
	assert.ErrorIs(t, err, perrors.ErrMissingConnectorTransactionID)
}

func TestBuildRSyncRequest(t *testing.T) {
	env := &flows.RSyncEnvelope{Request: flows.RefundSyncRequest{ConnectorRefundID: "ref_1"}}
	req, err := testConnector().BuildRSyncRequest(env)
	require.NoError(t, err)

	query := decodeBody(t, req)["query"].(string)
	assert.Contains(t, query, `refunds(input: { id: {is: "ref_1"} }, first: 1)`)
}

func TestParseRSyncResponse(t *testing.T) {
	env := &flows.RSyncEnvelope{}
	body := []byte(`{"data":{"search":{"refunds":{"edges":[{"node":{"id":"ref_1","status":"SETTLED"}}]}}}}`)

	require.NoError(t, testConnector().ParseRSyncResponse(env, body))

	resp, _, ok := env.Result()
	require.True(t, ok)
	assert.Equal(t, "ref_1", resp.ConnectorRefundID)
	assert.Equal(t, domain.RefundStatusSuccess, resp.RefundStatus)
}

func TestParseRSyncResponseNoMatch(t *testing.T) {
	env := &flows.RSyncEnvelope{}
	body := []byte(`{"data":{"search":{"refunds":{"edges":[]}}}}`)

	err := testConnector().ParseRSyncResponse(env, body)
	assert.ErrorIs(t, err, perrors.ErrMissingConnectorRefundID)
}

func TestBuildTokenizeRequestCard(t *testing.T) {
	env := &flows.TokenizeEnvelope{
		Request: flows.TokenizeRequest{
			PaymentMethodData: domain.Card{
				Number:   masking.New("4111111111111111"),
				ExpMonth: masking.New("10"),
				ExpYear:  masking.New("2027"),
				CVC:      masking.New("123"),
			},
		},
	}
	req, err := testConnector().BuildTokenizeRequest(env)
	require.NoError(t, err)

	body := decodeBody(t, req)
	assert.Contains(t, body["query"], "tokenizeCreditCard")
	input := body["variables"].(map[string]any)["input"].(map[string]any)
	assert.NotEmpty(t, input["clientMutationId"])
	card := input["creditCard"].(map[string]any)
	assert.Equal(t, "4111111111111111", card["number"])
	assert.Equal(t, "10", card["expirationMonth"])
	assert.Equal(t, "2027", card["expirationYear"])
	assert.Equal(t, "123", card["cvv"])
}

func TestBuildTokenizeRequestNonCard(t *testing.T) {
	env := &flows.TokenizeEnvelope{
		Request: flows.TokenizeRequest{
			PaymentMethodData: domain.Wallet{Data: domain.PaypalRedirect{}},
		},
	}
	_, err := testConnector().BuildTokenizeRequest(env)
	assert.True(t, perrors.IsKind(err, perrors.KindNotImplemented))
}

func TestParseTokenizeResponse(t *testing.T) {
	env := &flows.TokenizeEnvelope{}
	body := []byte(`{"data":{"tokenizeCreditCard":{"paymentMethod":{"id":"pm_token_1"}}}}`)

	require.NoError(t, testConnector().ParseTokenizeResponse(env, body))

	resp, _, ok := env.Result()
	require.True(t, ok)
	assert.Equal(t, "pm_token_1", resp.Token)
}

func TestValidateAuthTypeRequiresSignatureKey(t *testing.T) {
	c := testConnector()

	assert.NoError(t, c.ValidateAuthType(domain.SignatureKey{
		APIKey:    masking.New("pk"),
		Key1:      masking.New("mid"),
		APISecret: masking.New("sk"),
	}))
	assert.ErrorIs(t, c.ValidateAuthType(domain.HeaderKey{APIKey: masking.New("pk")}),
		perrors.ErrFailedToObtainAuthType)
}

func TestAuthHeader(t *testing.T) {
	header, err := AuthHeader(domain.SignatureKey{
		APIKey:    masking.New("public"),
		Key1:      masking.New("merchant"),
		APISecret: masking.New("private"),
	})
	require.NoError(t, err)
	// base64("public:private")
	assert.Equal(t, "Basic cHVibGljOnByaXZhdGU=", header)

	_, err = AuthHeader(domain.NoKey{})
	assert.ErrorIs(t, err, perrors.ErrFailedToObtainAuthType)
}

func TestValidateConnectorMetaData(t *testing.T) {
	c := testConnector()

	assert.NoError(t, c.ValidateConnectorMetaData(testMeta))
	assert.Error(t, c.ValidateConnectorMetaData(nil))
	assert.Error(t, c.ValidateConnectorMetaData([]byte(`{"merchant_config_currency":"USD"}`)))
	assert.Error(t, c.ValidateConnectorMetaData([]byte(`{"merchant_account_id":"acct_1"}`)))
}
