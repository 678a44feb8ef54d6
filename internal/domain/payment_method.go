package domain

import (
	"github.com/kevin07696/connector-switch/pkg/masking"
)

// PaymentMethod is the canonical payment instrument category.
type PaymentMethod string

const (
	PaymentMethodCard            PaymentMethod = "card"
	PaymentMethodCardRedirect    PaymentMethod = "card_redirect"
	PaymentMethodWallet          PaymentMethod = "wallet"
	PaymentMethodPayLater        PaymentMethod = "pay_later"
	PaymentMethodBankRedirect    PaymentMethod = "bank_redirect"
	PaymentMethodBankDebit       PaymentMethod = "bank_debit"
	PaymentMethodBankTransfer    PaymentMethod = "bank_transfer"
	PaymentMethodCrypto          PaymentMethod = "crypto"
	PaymentMethodReward          PaymentMethod = "reward"
	PaymentMethodRealTimePayment PaymentMethod = "real_time_payment"
	PaymentMethodUpi             PaymentMethod = "upi"
	PaymentMethodVoucher         PaymentMethod = "voucher"
	PaymentMethodGiftCard        PaymentMethod = "gift_card"
	PaymentMethodOpenBanking     PaymentMethod = "open_banking"
)

// PaymentMethodData is the canonical, closed representation of a
// payment instrument. Exactly one variant is active per instance; the
// variant determines the PaymentMethod category. Instances are built
// once per operation from the public API shape (see internal/api) and
// are immutable thereafter.
//
// CardToken and MandatePayment report no category: they reference
// previously stored instrument data instead of carrying any.
type PaymentMethodData interface {
	isPaymentMethodData()
	// Method returns the canonical category, or false for variants
	// that reference stored data (CardToken, MandatePayment).
	Method() (PaymentMethod, bool)
}

// Card is fresh card data entered for this operation. Vanity fields
// such as the raw cardholder name are dropped at the API boundary and
// never reach this type.
type Card struct {
	Number         masking.Secret
	ExpMonth       masking.Secret
	ExpYear        masking.Secret
	CVC            masking.Secret
	Issuer         string
	Network        string
	Type           string
	IssuingCountry string
	BankCode       string
	NickName       masking.Secret
}

// CardRedirect wraps a card-redirect scheme.
type CardRedirect struct {
	Data CardRedirectData
}

// Wallet wraps a wallet sub-variant.
type Wallet struct {
	Data WalletData
}

// PayLater wraps a buy-now-pay-later scheme.
type PayLater struct {
	Data PayLaterData
}

// BankRedirect wraps a per-country redirect banking scheme.
type BankRedirect struct {
	Data BankRedirectData
}

// BankDebit wraps a direct-debit network instrument.
type BankDebit struct {
	Data BankDebitData
}

// BankTransfer wraps a bank transfer scheme.
type BankTransfer struct {
	Data BankTransferData
}

// Crypto carries an optional pay currency and network.
type Crypto struct {
	PayCurrency string
	Network     string
}

// MandatePayment reuses a stored mandate; it carries no payload.
type MandatePayment struct{}

// Reward carries no payload.
type Reward struct{}

// RealTimePayment wraps a real-time payment rail.
type RealTimePayment struct {
	Data RealTimePaymentData
}

// Upi wraps a UPI collection mode.
type Upi struct {
	Data UpiData
}

// Voucher wraps a cash voucher scheme.
type Voucher struct {
	Data VoucherData
}

// GiftCard wraps a gift card scheme.
type GiftCard struct {
	Data GiftCardData
}

// CardToken references a previously tokenized card; only the holder
// name and CVC may accompany the token.
type CardToken struct {
	HolderName masking.Secret
	CVC        masking.Secret
}

// OpenBanking wraps an open banking initiation mode.
type OpenBanking struct {
	Data OpenBankingData
}

func (Card) isPaymentMethodData()            {}
func (CardRedirect) isPaymentMethodData()    {}
func (Wallet) isPaymentMethodData()          {}
func (PayLater) isPaymentMethodData()        {}
func (BankRedirect) isPaymentMethodData()    {}
func (BankDebit) isPaymentMethodData()       {}
func (BankTransfer) isPaymentMethodData()    {}
func (Crypto) isPaymentMethodData()          {}
func (MandatePayment) isPaymentMethodData()  {}
func (Reward) isPaymentMethodData()          {}
func (RealTimePayment) isPaymentMethodData() {}
func (Upi) isPaymentMethodData()             {}
func (Voucher) isPaymentMethodData()         {}
func (GiftCard) isPaymentMethodData()        {}
func (CardToken) isPaymentMethodData()       {}
func (OpenBanking) isPaymentMethodData()     {}

func (Card) Method() (PaymentMethod, bool)         { return PaymentMethodCard, true }
func (CardRedirect) Method() (PaymentMethod, bool) { return PaymentMethodCardRedirect, true }
func (Wallet) Method() (PaymentMethod, bool)       { return PaymentMethodWallet, true }
func (PayLater) Method() (PaymentMethod, bool)     { return PaymentMethodPayLater, true }
func (BankRedirect) Method() (PaymentMethod, bool) { return PaymentMethodBankRedirect, true }
func (BankDebit) Method() (PaymentMethod, bool)    { return PaymentMethodBankDebit, true }
func (BankTransfer) Method() (PaymentMethod, bool) { return PaymentMethodBankTransfer, true }
func (Crypto) Method() (PaymentMethod, bool)       { return PaymentMethodCrypto, true }
func (Reward) Method() (PaymentMethod, bool)       { return PaymentMethodReward, true }
func (Upi) Method() (PaymentMethod, bool)          { return PaymentMethodUpi, true }
func (Voucher) Method() (PaymentMethod, bool)      { return PaymentMethodVoucher, true }
func (GiftCard) Method() (PaymentMethod, bool)     { return PaymentMethodGiftCard, true }
func (OpenBanking) Method() (PaymentMethod, bool)  { return PaymentMethodOpenBanking, true }

func (RealTimePayment) Method() (PaymentMethod, bool) {
	return PaymentMethodRealTimePayment, true
}

// CardToken and MandatePayment reference stored data, so they report
// no category of their own.
func (CardToken) Method() (PaymentMethod, bool)      { return "", false }
func (MandatePayment) Method() (PaymentMethod, bool) { return "", false }
