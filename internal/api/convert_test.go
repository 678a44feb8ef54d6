package api

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevin07696/connector-switch/internal/domain"
	perrors "github.com/kevin07696/connector-switch/pkg/errors"
)

func TestPaymentMethodDataFromAPIRejectsEmpty(t *testing.T) {
	_, err := PaymentMethodDataFromAPI(PaymentMethodData{})
	var validationErr *perrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "no payment method")
}

func TestPaymentMethodDataFromAPIRejectsMultiple(t *testing.T) {
	_, err := PaymentMethodDataFromAPI(PaymentMethodData{
		Card:   &Card{CardNumber: "4111111111111111"},
		Wallet: &Wallet{ApplePay: &ApplePayWallet{}},
	})
	var validationErr *perrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "multiple")
}

func TestCardConversionDropsHolderName(t *testing.T) {
	data, err := PaymentMethodDataFromAPI(PaymentMethodData{
		Card: &Card{
			CardNumber:     "4111111111111111",
			CardExpMonth:   "10",
			CardExpYear:    "2027",
			CardCVC:        "123",
			CardHolderName: "Ada Lovelace",
			CardNetwork:    "visa",
		},
	})
	require.NoError(t, err)

	card, ok := data.(domain.Card)
	require.True(t, ok)
	assert.Equal(t, "4111111111111111", card.Number.Expose())
	assert.Equal(t, "visa", card.Network)

	// The cardholder name must not survive the conversion anywhere.
	assert.NotContains(t, fmt.Sprintf("%#v", card), "Ada Lovelace")
}

func TestCardSecretsAreWrapped(t *testing.T) {
	data, err := PaymentMethodDataFromAPI(PaymentMethodData{
		Card: &Card{CardNumber: "4111111111111111", CardExpMonth: "10", CardExpYear: "2027", CardCVC: "123"},
	})
	require.NoError(t, err)

	rendered := fmt.Sprintf("%+v", data)
	assert.NotContains(t, rendered, "4111111111111111")
	assert.NotContains(t, rendered, "123")
}

func TestConversionPerCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    PaymentMethodData
		category domain.PaymentMethod
	}{
		{"card redirect knet", PaymentMethodData{CardRedirect: &CardRedirect{Knet: &struct{}{}}}, domain.PaymentMethodCardRedirect},
		{"wallet paypal redirect", PaymentMethodData{Wallet: &Wallet{PaypalRedirect: &PaypalRedirect{Email: "a@b.c"}}}, domain.PaymentMethodWallet},
		{"pay later klarna sdk", PaymentMethodData{PayLater: &PayLater{KlarnaSdk: &KlarnaSdk{Token: "tok"}}}, domain.PaymentMethodPayLater},
		{"bank redirect ideal", PaymentMethodData{BankRedirect: &BankRedirect{Ideal: &BankNameChoice{BankName: "ing"}}}, domain.PaymentMethodBankRedirect},
		{"bank debit sepa", PaymentMethodData{BankDebit: &BankDebit{Sepa: &SepaBankDebit{IBAN: "DE89370400440532013000"}}}, domain.PaymentMethodBankDebit},
		{"bank transfer pix", PaymentMethodData{BankTransfer: &BankTransfer{Pix: &struct{}{}}}, domain.PaymentMethodBankTransfer},
		{"crypto", PaymentMethodData{Crypto: &Crypto{PayCurrency: "BTC"}}, domain.PaymentMethodCrypto},
		{"reward", PaymentMethodData{Reward: &Reward{}}, domain.PaymentMethodReward},
		{"real time payment fps", PaymentMethodData{RealTimePayment: &RealTimePayment{Fps: &struct{}{}}}, domain.PaymentMethodRealTimePayment},
		{"upi collect", PaymentMethodData{Upi: &Upi{Collect: &UpiCollect{VpaID: "name@bank"}}}, domain.PaymentMethodUpi},
		{"voucher oxxo", PaymentMethodData{Voucher: &Voucher{Oxxo: &struct{}{}}}, domain.PaymentMethodVoucher},
		{"gift card givex", PaymentMethodData{GiftCard: &GiftCard{Givex: &GivexGiftCard{Number: "6036", CVC: "123"}}}, domain.PaymentMethodGiftCard},
		{"open banking pis", PaymentMethodData{OpenBanking: &OpenBanking{OpenBankingPIS: &struct{}{}}}, domain.PaymentMethodOpenBanking},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := PaymentMethodDataFromAPI(tt.input)
			require.NoError(t, err)
			category, ok := data.Method()
			require.True(t, ok)
			assert.Equal(t, tt.category, category)
		})
	}
}

func TestStoredDataConversions(t *testing.T) {
	mandate, err := PaymentMethodDataFromAPI(PaymentMethodData{MandatePayment: &MandatePayment{}})
	require.NoError(t, err)
	_, ok := mandate.Method()
	assert.False(t, ok)

	token, err := PaymentMethodDataFromAPI(PaymentMethodData{
		CardToken: &CardToken{CardHolderName: "Ada", CardCVC: "123"},
	})
	require.NoError(t, err)
	_, ok = token.Method()
	assert.False(t, ok)
}

func TestEmptySubUnionIsRejected(t *testing.T) {
	tests := []struct {
		name  string
		input PaymentMethodData
	}{
		{"wallet", PaymentMethodData{Wallet: &Wallet{}}},
		{"bank redirect", PaymentMethodData{BankRedirect: &BankRedirect{}}},
		{"upi", PaymentMethodData{Upi: &Upi{}}},
		{"gift card", PaymentMethodData{GiftCard: &GiftCard{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PaymentMethodDataFromAPI(tt.input)
			var validationErr *perrors.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestWalletPayloadCarriesOver(t *testing.T) {
	data, err := PaymentMethodDataFromAPI(PaymentMethodData{
		Wallet: &Wallet{GooglePay: &GooglePayWallet{
			Type:        "CARD",
			CardNetwork: "VISA",
			Token:       "gp-token",
		}},
	})
	require.NoError(t, err)

	wallet, ok := data.(domain.Wallet)
	require.True(t, ok)
	gpay, ok := wallet.Data.(domain.GooglePayWallet)
	require.True(t, ok)
	assert.Equal(t, "CARD", gpay.Type)
	assert.Equal(t, "VISA", gpay.CardNetwork)
	assert.Equal(t, "gp-token", gpay.Token)
}
