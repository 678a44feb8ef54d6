package braintree

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kevin07696/connector-switch/internal/connectors"
	"github.com/kevin07696/connector-switch/internal/domain"
	"github.com/kevin07696/connector-switch/internal/flows"
	"github.com/kevin07696/connector-switch/pkg/currency"
	perrors "github.com/kevin07696/connector-switch/pkg/errors"
)

// GraphQL documents. Braintree's API is a single POST endpoint; the
// operation lives in the query text and the variables object.
const (
	chargeCreditCardQuery    = "mutation ChargeCreditCard($input: ChargeCreditCardInput!) { chargeCreditCard(input: $input) { transaction { id legacyId createdAt amount { value currencyCode } status } } }"
	authorizeCreditCardQuery = "mutation authorizeCreditCard($input: AuthorizeCreditCardInput!) { authorizeCreditCard(input: $input) { transaction { id legacyId amount { value currencyCode } status } } }"
	captureTransactionQuery  = "mutation captureTransaction($input: CaptureTransactionInput!) { captureTransaction(input: $input) { clientMutationId transaction { id legacyId amount { value currencyCode } status } } }"
	voidTransactionQuery     = "mutation voidTransaction($input: ReverseTransactionInput!) { reverseTransaction(input: $input) { clientMutationId reversal { ... on Transaction { id legacyId amount { value currencyCode } status } } } }"
	refundTransactionQuery   = "mutation refundTransaction($input: RefundTransactionInput!) { refundTransaction(input: $input) { clientMutationId refund { id legacyId amount { value currencyCode } status } } }"
	tokenizeCreditCardQuery  = "mutation tokenizeCreditCard($input: TokenizeCreditCardInput!) { tokenizeCreditCard(input: $input) { clientMutationId paymentMethod { id } } }"
)

// graphQLError is one entry of the errors array Braintree returns.
// The numeric gateway code hides in the legacyCode extension.
type graphQLError struct {
	Message    string `json:"message"`
	Extensions *struct {
		LegacyCode string `json:"legacyCode"`
	} `json:"extensions"`
}

// errorResponseFrom collapses the errors array into the canonical
// error shape. Only the first element is authoritative; Braintree
// repeats the same failure across elements and the attempt outcome is
// single-valued.
func errorResponseFrom(errs []graphQLError, httpStatus int) domain.ErrorResponse {
	var code, message string
	if len(errs) > 0 {
		message = errs[0].Message
		if errs[0].Extensions != nil {
			code = errs[0].Extensions.LegacyCode
		}
	}
	return domain.NewErrorResponse(code, message, httpStatus)
}

func encode(v any) (connectors.WireRequest, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return connectors.WireRequest{}, perrors.NewRequestEncodingFailed(err)
	}
	return connectors.WireRequest{ContentType: connectors.ContentTypeJSON, Body: body}, nil
}

// --- Authorize ---

type transactionBody struct {
	Amount            string `json:"amount"`
	MerchantAccountID string `json:"merchantAccountId"`
}

type paymentInput struct {
	PaymentMethodID string          `json:"paymentMethodId"`
	Transaction     transactionBody `json:"transaction"`
}

type paymentsRequest struct {
	Query     string `json:"query"`
	Variables struct {
		Input paymentInput `json:"input"`
	} `json:"variables"`
}

func (c *Connector) BuildAuthorizeRequest(env *flows.AuthorizeEnvelope) (connectors.WireRequest, error) {
	m, err := parseMeta(env.ConnectorMetaData)
	if err != nil {
		return connectors.WireRequest{}, err
	}
	if err := validateCurrency(env.Request.Currency, m); err != nil {
		return connectors.WireRequest{}, err
	}
	if m.MerchantAccountID == "" {
		return connectors.WireRequest{}, perrors.NewMissingRequiredField("merchant_account_id")
	}
	if env.PaymentMethodToken == "" {
		return connectors.WireRequest{}, perrors.NewMissingRequiredField("payment_method_token")
	}
	amount, err := currency.ToBaseUnitString(env.Request.Amount, env.Request.Currency)
	if err != nil {
		return connectors.WireRequest{}, perrors.NewRequestEncodingFailed(err)
	}

	query := authorizeCreditCardQuery
	if env.Request.CaptureMethod.AutoCapture() {
		query = chargeCreditCardQuery
	}
	req := paymentsRequest{Query: query}
	req.Variables.Input = paymentInput{
		PaymentMethodID: env.PaymentMethodToken,
		Transaction: transactionBody{
			Amount:            amount,
			MerchantAccountID: m.MerchantAccountID,
		},
	}
	return encode(req)
}

type transactionNode struct {
	ID       string        `json:"id"`
	LegacyID string        `json:"legacyId"`
	Status   paymentStatus `json:"status"`
}

type transactionHolder struct {
	Transaction *transactionNode `json:"transaction"`
}

type paymentsResponse struct {
	Data *struct {
		ChargeCreditCard    *transactionHolder `json:"chargeCreditCard"`
		AuthorizeCreditCard *transactionHolder `json:"authorizeCreditCard"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

func (c *Connector) ParseAuthorizeResponse(env *flows.AuthorizeEnvelope, body []byte) error {
	var resp paymentsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return perrors.NewResponseDeserializationFailed(err)
	}
	if len(resp.Errors) > 0 {
		return env.SetError(errorResponseFrom(resp.Errors, env.HTTPStatusCode))
	}
	if resp.Data == nil {
		return perrors.ErrResponseDeserializationFailed
	}
	holder := resp.Data.ChargeCreditCard
	if !env.Request.CaptureMethod.AutoCapture() {
		holder = resp.Data.AuthorizeCreditCard
	}
	txn, err := transactionFrom(holder)
	if err != nil {
		return err
	}
	return c.setTransaction(env, txn)
}

func transactionFrom(holder *transactionHolder) (*transactionNode, error) {
	if holder == nil || holder.Transaction == nil {
		return nil, perrors.ErrResponseDeserializationFailed
	}
	return holder.Transaction, nil
}

func (c *Connector) setTransaction(env *flows.AuthorizeEnvelope, txn *transactionNode) error {
	env.Status = attemptStatus(txn.Status)
	c.logger.Debug("braintree transaction parsed",
		zap.String("transaction_id", txn.ID),
		zap.String("status", string(txn.Status)),
		zap.String("attempt_status", string(env.Status)))
	return env.SetSuccess(domain.PaymentsResponse{
		ResourceID:                   txn.ID,
		ConnectorResponseReferenceID: txn.LegacyID,
	})
}

// --- Capture ---

type captureRequest struct {
	Query     string `json:"query"`
	Variables struct {
		Input struct {
			TransactionID string `json:"transactionId"`
			Transaction   struct {
				Amount string `json:"amount"`
			} `json:"transaction"`
		} `json:"input"`
	} `json:"variables"`
}

func (c *Connector) BuildCaptureRequest(env *flows.CaptureEnvelope) (connectors.WireRequest, error) {
	amount, err := currency.ToBaseUnitString(env.Request.Amount, env.Request.Currency)
	if err != nil {
		return connectors.WireRequest{}, perrors.NewRequestEncodingFailed(err)
	}
	req := captureRequest{Query: captureTransactionQuery}
	req.Variables.Input.TransactionID = env.Request.ConnectorTransactionID
	req.Variables.Input.Transaction.Amount = amount
	return encode(req)
}

type captureResponse struct {
	Data *struct {
		CaptureTransaction *transactionHolder `json:"captureTransaction"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

func (c *Connector) ParseCaptureResponse(env *flows.CaptureEnvelope, body []byte) error {
	var resp captureResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return perrors.NewResponseDeserializationFailed(err)
	}
	if len(resp.Errors) > 0 {
		return env.SetError(errorResponseFrom(resp.Errors, env.HTTPStatusCode))
	}
	if resp.Data == nil {
		return perrors.ErrResponseDeserializationFailed
	}
	txn, err := transactionFrom(resp.Data.CaptureTransaction)
	if err != nil {
		return err
	}
	env.Status = attemptStatus(txn.Status)
	return env.SetSuccess(domain.PaymentsResponse{
		ResourceID:                   txn.ID,
		ConnectorResponseReferenceID: txn.LegacyID,
	})
}

// --- Void ---

type voidRequest struct {
	Query     string `json:"query"`
	Variables struct {
		Input struct {
			TransactionID string `json:"transactionId"`
		} `json:"input"`
	} `json:"variables"`
}

func (c *Connector) BuildVoidRequest(env *flows.VoidEnvelope) (connectors.WireRequest, error) {
	if env.Request.ConnectorTransactionID == "" {
		return connectors.WireRequest{}, perrors.ErrMissingConnectorTransactionID
	}
	req := voidRequest{Query: voidTransactionQuery}
	req.Variables.Input.TransactionID = env.Request.ConnectorTransactionID
	return encode(req)
}

type voidResponse struct {
	Data *struct {
		ReverseTransaction *struct {
			Reversal *transactionNode `json:"reversal"`
		} `json:"reverseTransaction"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

func (c *Connector) ParseVoidResponse(env *flows.VoidEnvelope, body []byte) error {
	var resp voidResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return perrors.NewResponseDeserializationFailed(err)
	}
	if len(resp.Errors) > 0 {
		return env.SetError(errorResponseFrom(resp.Errors, env.HTTPStatusCode))
	}
	if resp.Data == nil || resp.Data.ReverseTransaction == nil || resp.Data.ReverseTransaction.Reversal == nil {
		return perrors.ErrResponseDeserializationFailed
	}
	txn := resp.Data.ReverseTransaction.Reversal
	env.Status = attemptStatus(txn.Status)
	return env.SetSuccess(domain.PaymentsResponse{
		ResourceID:                   txn.ID,
		ConnectorResponseReferenceID: txn.LegacyID,
	})
}

// --- Refund ---

type refundRequest struct {
	Query     string `json:"query"`
	Variables struct {
		Input struct {
			TransactionID string `json:"transactionId"`
			Refund        struct {
				Amount            string `json:"amount"`
				MerchantAccountID string `json:"merchantAccountId"`
			} `json:"refund"`
		} `json:"input"`
	} `json:"variables"`
}

func (c *Connector) BuildRefundRequest(env *flows.RefundEnvelope) (connectors.WireRequest, error) {
	m, err := parseMeta(env.ConnectorMetaData)
	if err != nil {
		return connectors.WireRequest{}, err
	}
	if err := validateCurrency(env.Request.Currency, m); err != nil {
		return connectors.WireRequest{}, err
	}
	if m.MerchantAccountID == "" {
		return connectors.WireRequest{}, perrors.NewMissingRequiredField("merchant_account_id")
	}
	amount, err := currency.ToBaseUnitString(env.Request.Amount, env.Request.Currency)
	if err != nil {
		return connectors.WireRequest{}, perrors.NewRequestEncodingFailed(err)
	}
	req := refundRequest{Query: refundTransactionQuery}
	req.Variables.Input.TransactionID = env.Request.ConnectorTransactionID
	req.Variables.Input.Refund.Amount = amount
	req.Variables.Input.Refund.MerchantAccountID = m.MerchantAccountID
	return encode(req)
}

type refundNode struct {
	ID     string       `json:"id"`
	Status refundStatus `json:"status"`
}

type refundResponse struct {
	Data *struct {
		RefundTransaction *struct {
			Refund *refundNode `json:"refund"`
		} `json:"refundTransaction"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

func (c *Connector) ParseRefundResponse(env *flows.RefundEnvelope, body []byte) error {
	var resp refundResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return perrors.NewResponseDeserializationFailed(err)
	}
	if len(resp.Errors) > 0 {
		return env.SetError(errorResponseFrom(resp.Errors, env.HTTPStatusCode))
	}
	if resp.Data == nil || resp.Data.RefundTransaction == nil || resp.Data.RefundTransaction.Refund == nil {
		return perrors.ErrResponseDeserializationFailed
	}
	refund := resp.Data.RefundTransaction.Refund
	return env.SetSuccess(domain.RefundsResponse{
		ConnectorRefundID: refund.ID,
		RefundStatus:      canonicalRefundStatus(refund.Status),
	})
}

// --- Payment sync ---

type syncRequest struct {
	Query string `json:"query"`
}

func (c *Connector) BuildPSyncRequest(env *flows.PSyncEnvelope) (connectors.WireRequest, error) {
	if env.Request.ConnectorTransactionID == "" {
		return connectors.WireRequest{}, perrors.ErrMissingConnectorTransactionID
	}
	query := fmt.Sprintf(
		"query { search { transactions(input: { id: {is: %q} }, first: 1) { edges { node { id status createdAt amount { value currencyCode } orderId } } } } }",
		env.Request.ConnectorTransactionID)
	return encode(syncRequest{Query: query})
}

type psyncResponse struct {
	Data *struct {
		Search *struct {
			Transactions *struct {
				Edges []struct {
					Node transactionNode `json:"node"`
				} `json:"edges"`
			} `json:"transactions"`
		} `json:"search"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

func (c *Connector) ParsePSyncResponse(env *flows.PSyncEnvelope, body []byte) error {
	var resp psyncResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return perrors.NewResponseDeserializationFailed(err)
	}
	if len(resp.Errors) > 0 {
		return env.SetError(errorResponseFrom(resp.Errors, env.HTTPStatusCode))
	}
	if resp.Data == nil || resp.Data.Search == nil || resp.Data.Search.Transactions == nil {
		return perrors.ErrResponseDeserializationFailed
	}
	edges := resp.Data.Search.Transactions.Edges
	if len(edges) == 0 {
		// The search ran but matched nothing: the id is unknown
		// upstream, which is distinct from a malformed reply.
		return perrors.ErrMissingConnectorTransactionID
	}
	node := edges[0].Node
	env.Status = attemptStatus(node.Status)
	return env.SetSuccess(domain.PaymentsResponse{ResourceID: node.ID})
}

// --- Refund sync ---

func (c *Connector) BuildRSyncRequest(env *flows.RSyncEnvelope) (connectors.WireRequest, error) {
	if env.Request.ConnectorRefundID == "" {
		return connectors.WireRequest{}, perrors.ErrMissingConnectorRefundID
	}
	query := fmt.Sprintf(
		"query { search { refunds(input: { id: {is: %q} }, first: 1) { edges { node { id status createdAt amount { value currencyCode } orderId } } } } }",
		env.Request.ConnectorRefundID)
	return encode(syncRequest{Query: query})
}

type rsyncResponse struct {
	Data *struct {
		Search *struct {
			Refunds *struct {
				Edges []struct {
					Node refundNode `json:"node"`
				} `json:"edges"`
			} `json:"refunds"`
		} `json:"search"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

func (c *Connector) ParseRSyncResponse(env *flows.RSyncEnvelope, body []byte) error {
	var resp rsyncResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return perrors.NewResponseDeserializationFailed(err)
	}
	if len(resp.Errors) > 0 {
		return env.SetError(errorResponseFrom(resp.Errors, env.HTTPStatusCode))
	}
	if resp.Data == nil || resp.Data.Search == nil || resp.Data.Search.Refunds == nil {
		return perrors.ErrResponseDeserializationFailed
	}
	edges := resp.Data.Search.Refunds.Edges
	if len(edges) == 0 {
		return perrors.ErrMissingConnectorRefundID
	}
	node := edges[0].Node
	return env.SetSuccess(domain.RefundsResponse{
		ConnectorRefundID: node.ID,
		RefundStatus:      canonicalRefundStatus(node.Status),
	})
}

// --- Tokenize ---

type creditCardData struct {
	Number          string `json:"number"`
	ExpirationYear  string `json:"expirationYear"`
	ExpirationMonth string `json:"expirationMonth"`
	CVV             string `json:"cvv"`
}

type tokenizeRequest struct {
	Query     string `json:"query"`
	Variables struct {
		Input struct {
			ClientMutationID string         `json:"clientMutationId"`
			CreditCard       creditCardData `json:"creditCard"`
		} `json:"input"`
	} `json:"variables"`
}

// BuildTokenizeRequest exchanges raw card data for a payment method
// token. Braintree tokenizes cards only; every other method is
// rejected up front.
func (c *Connector) BuildTokenizeRequest(env *flows.TokenizeEnvelope) (connectors.WireRequest, error) {
	card, ok := env.Request.PaymentMethodData.(domain.Card)
	if !ok {
		return connectors.WireRequest{}, perrors.NewNotImplemented("payment method")
	}
	req := tokenizeRequest{Query: tokenizeCreditCardQuery}
	req.Variables.Input.ClientMutationID = uuid.NewString()
	req.Variables.Input.CreditCard = creditCardData{
		Number:          card.Number.Expose(),
		ExpirationYear:  card.ExpYear.Expose(),
		ExpirationMonth: card.ExpMonth.Expose(),
		CVV:             card.CVC.Expose(),
	}
	return encode(req)
}

type tokenizeResponse struct {
	Data *struct {
		TokenizeCreditCard *struct {
			PaymentMethod *struct {
				ID string `json:"id"`
			} `json:"paymentMethod"`
		} `json:"tokenizeCreditCard"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

func (c *Connector) ParseTokenizeResponse(env *flows.TokenizeEnvelope, body []byte) error {
	var resp tokenizeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return perrors.NewResponseDeserializationFailed(err)
	}
	if len(resp.Errors) > 0 {
		return env.SetError(errorResponseFrom(resp.Errors, env.HTTPStatusCode))
	}
	if resp.Data == nil || resp.Data.TokenizeCreditCard == nil || resp.Data.TokenizeCreditCard.PaymentMethod == nil {
		return perrors.ErrResponseDeserializationFailed
	}
	return env.SetSuccess(domain.TokenizationResponse{
		Token: resp.Data.TokenizeCreditCard.PaymentMethod.ID,
	})
}
