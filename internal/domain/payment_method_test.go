package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodCategoryPerVariant(t *testing.T) {
	tests := []struct {
		name     string
		data     PaymentMethodData
		expected PaymentMethod
	}{
		{"card", Card{}, PaymentMethodCard},
		{"card redirect", CardRedirect{Data: KnetRedirect{}}, PaymentMethodCardRedirect},
		{"wallet", Wallet{Data: ApplePayWallet{}}, PaymentMethodWallet},
		{"pay later", PayLater{Data: KlarnaRedirect{}}, PaymentMethodPayLater},
		{"bank redirect", BankRedirect{Data: Ideal{}}, PaymentMethodBankRedirect},
		{"bank debit", BankDebit{Data: SepaBankDebit{}}, PaymentMethodBankDebit},
		{"bank transfer", BankTransfer{Data: Pix{}}, PaymentMethodBankTransfer},
		{"crypto", Crypto{}, PaymentMethodCrypto},
		{"reward", Reward{}, PaymentMethodReward},
		{"real time payment", RealTimePayment{Data: DuitNow{}}, PaymentMethodRealTimePayment},
		{"upi", Upi{Data: UpiIntent{}}, PaymentMethodUpi},
		{"voucher", Voucher{Data: Oxxo{}}, PaymentMethodVoucher},
		{"gift card", GiftCard{Data: PaySafeCard{}}, PaymentMethodGiftCard},
		{"open banking", OpenBanking{Data: OpenBankingPIS{}}, PaymentMethodOpenBanking},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method, ok := tt.data.Method()
			assert.True(t, ok)
			assert.Equal(t, tt.expected, method)
		})
	}
}

func TestStoredDataVariantsHaveNoCategory(t *testing.T) {
	// CardToken and MandatePayment reference stored instrument data;
	// they are the only variants without a category of their own.
	for _, data := range []PaymentMethodData{CardToken{}, MandatePayment{}} {
		method, ok := data.Method()
		assert.False(t, ok)
		assert.Empty(t, method)
	}
}

func TestAttemptStatusIsTerminal(t *testing.T) {
	terminal := []AttemptStatus{
		AttemptStatusCharged,
		AttemptStatusVoided,
		AttemptStatusFailure,
		AttemptStatusAuthorizationFailed,
	}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), string(s))
	}

	inFlight := []AttemptStatus{
		AttemptStatusStarted,
		AttemptStatusAuthorized,
		AttemptStatusPending,
	}
	for _, s := range inFlight {
		assert.False(t, s.IsTerminal(), string(s))
	}
}
