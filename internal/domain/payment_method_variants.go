package domain

import (
	"github.com/kevin07696/connector-switch/pkg/masking"
)

// CardRedirectData enumerates card-redirect schemes.
type CardRedirectData interface{ isCardRedirectData() }

type KnetRedirect struct{}
type BenefitRedirect struct{}
type MomoAtmRedirect struct{}
type GenericCardRedirect struct{}

func (KnetRedirect) isCardRedirectData()        {}
func (BenefitRedirect) isCardRedirectData()     {}
func (MomoAtmRedirect) isCardRedirectData()     {}
func (GenericCardRedirect) isCardRedirectData() {}

// PayLaterData enumerates buy-now-pay-later schemes.
type PayLaterData interface{ isPayLaterData() }

type KlarnaRedirect struct{}
type KlarnaSdk struct {
	Token string
}
type AffirmRedirect struct{}
type AfterpayClearpayRedirect struct{}
type PayBrightRedirect struct{}
type WalleyRedirect struct{}
type AlmaRedirect struct{}
type AtomeRedirect struct{}

func (KlarnaRedirect) isPayLaterData()           {}
func (KlarnaSdk) isPayLaterData()                {}
func (AffirmRedirect) isPayLaterData()           {}
func (AfterpayClearpayRedirect) isPayLaterData() {}
func (PayBrightRedirect) isPayLaterData()        {}
func (WalleyRedirect) isPayLaterData()           {}
func (AlmaRedirect) isPayLaterData()             {}
func (AtomeRedirect) isPayLaterData()            {}

// WalletData enumerates wallet sub-variants: QR based, redirect based,
// and SDK-token based, each carrying only its minimal payload.
type WalletData interface{ isWalletData() }

type AliPayQr struct{}
type AliPayRedirect struct{}
type AliPayHkRedirect struct{}
type MomoRedirect struct{}
type KakaoPayRedirect struct{}
type GoPayRedirect struct{}
type GcashRedirect struct{}
type DanaRedirect struct{}
type TwintRedirect struct{}
type VippsRedirect struct{}
type TouchNGoRedirect struct{}
type WeChatPayRedirect struct{}
type WeChatPayQr struct{}
type CashappQr struct{}
type SwishQr struct{}
type MbWayRedirect struct{}
type MobilePayRedirect struct{}

type ApplePayWallet struct {
	// PaymentData is the encrypted Apple Pay token.
	PaymentData           string
	DisplayName           string
	Network               string
	TransactionIdentifier string
}
type ApplePayRedirect struct{}
type ApplePayThirdPartySdk struct{}

type GooglePayWallet struct {
	Type        string
	Description string
	CardNetwork string
	CardDetails string
	// TokenType and Token form the Google Pay tokenization payload.
	TokenType string
	Token     string
}
type GooglePayRedirect struct{}
type GooglePayThirdPartySdk struct{}

type PaypalRedirect struct {
	Email string
}
type PaypalSdk struct {
	Token string
}

type SamsungPayWallet struct {
	// Token is the encrypted payment token from Samsung.
	Token masking.Secret
}

type MifinityWallet struct {
	DateOfBirth        string
	LanguagePreference string
}

func (AliPayQr) isWalletData()               {}
func (AliPayRedirect) isWalletData()         {}
func (AliPayHkRedirect) isWalletData()       {}
func (MomoRedirect) isWalletData()           {}
func (KakaoPayRedirect) isWalletData()       {}
func (GoPayRedirect) isWalletData()          {}
func (GcashRedirect) isWalletData()          {}
func (DanaRedirect) isWalletData()           {}
func (TwintRedirect) isWalletData()          {}
func (VippsRedirect) isWalletData()          {}
func (TouchNGoRedirect) isWalletData()       {}
func (WeChatPayRedirect) isWalletData()      {}
func (WeChatPayQr) isWalletData()            {}
func (CashappQr) isWalletData()              {}
func (SwishQr) isWalletData()                {}
func (MbWayRedirect) isWalletData()          {}
func (MobilePayRedirect) isWalletData()      {}
func (ApplePayWallet) isWalletData()         {}
func (ApplePayRedirect) isWalletData()       {}
func (ApplePayThirdPartySdk) isWalletData()  {}
func (GooglePayWallet) isWalletData()        {}
func (GooglePayRedirect) isWalletData()      {}
func (GooglePayThirdPartySdk) isWalletData() {}
func (PaypalRedirect) isWalletData()         {}
func (PaypalSdk) isWalletData()              {}
func (SamsungPayWallet) isWalletData()       {}
func (MifinityWallet) isWalletData()         {}

// BankRedirectData enumerates per-country redirect banking schemes.
// Each carries only the fields its scheme requires.
type BankRedirectData interface{ isBankRedirectData() }

type BancontactCard struct {
	Number   masking.Secret
	ExpMonth masking.Secret
	ExpYear  masking.Secret
}
type Bizum struct{}
type Blik struct {
	BlikCode string
}
type Eps struct {
	BankName string
}
type Giropay struct {
	BIC  masking.Secret
	IBAN masking.Secret
}
type Ideal struct {
	BankName string
}
type Interac struct{}
type OnlineBankingCzechRepublic struct {
	Issuer string
}
type OnlineBankingFinland struct{}
type OnlineBankingPoland struct {
	Issuer string
}
type OnlineBankingSlovakia struct {
	Issuer string
}
type OpenBankingUk struct {
	Issuer string
}
type Przelewy24 struct {
	BankName string
}
type Sofort struct {
	PreferredLanguage string
}
type Trustly struct{}
type OnlineBankingFpx struct {
	Issuer string
}
type OnlineBankingThailand struct {
	Issuer string
}
type LocalBankRedirect struct{}

func (BancontactCard) isBankRedirectData()             {}
func (Bizum) isBankRedirectData()                      {}
func (Blik) isBankRedirectData()                       {}
func (Eps) isBankRedirectData()                        {}
func (Giropay) isBankRedirectData()                    {}
func (Ideal) isBankRedirectData()                      {}
func (Interac) isBankRedirectData()                    {}
func (OnlineBankingCzechRepublic) isBankRedirectData() {}
func (OnlineBankingFinland) isBankRedirectData()       {}
func (OnlineBankingPoland) isBankRedirectData()        {}
func (OnlineBankingSlovakia) isBankRedirectData()      {}
func (OpenBankingUk) isBankRedirectData()              {}
func (Przelewy24) isBankRedirectData()                 {}
func (Sofort) isBankRedirectData()                     {}
func (Trustly) isBankRedirectData()                    {}
func (OnlineBankingFpx) isBankRedirectData()           {}
func (OnlineBankingThailand) isBankRedirectData()      {}
func (LocalBankRedirect) isBankRedirectData()          {}

// BankDebitData enumerates direct-debit networks, each with the
// identifiers that network requires.
type BankDebitData interface{ isBankDebitData() }

type AchBankDebit struct {
	AccountNumber  masking.Secret
	RoutingNumber  masking.Secret
	BankName       string
	BankType       string
	BankHolderType string
}
type SepaBankDebit struct {
	IBAN masking.Secret
}
type BecsBankDebit struct {
	AccountNumber masking.Secret
	BSBNumber     masking.Secret
}
type BacsBankDebit struct {
	AccountNumber masking.Secret
	SortCode      masking.Secret
}

func (AchBankDebit) isBankDebitData()  {}
func (SepaBankDebit) isBankDebitData() {}
func (BecsBankDebit) isBankDebitData() {}
func (BacsBankDebit) isBankDebitData() {}

// BankTransferData enumerates bank transfer schemes.
type BankTransferData interface{ isBankTransferData() }

type AchBankTransfer struct{}
type SepaBankTransfer struct{}
type BacsBankTransfer struct{}
type MultibancoBankTransfer struct{}
type PermataBankTransfer struct{}
type BcaBankTransfer struct{}
type BniVaBankTransfer struct{}
type BriVaBankTransfer struct{}
type CimbVaBankTransfer struct{}
type DanamonVaBankTransfer struct{}
type MandiriVaBankTransfer struct{}
type Pix struct{}
type Pse struct{}
type LocalBankTransfer struct {
	BankCode string
}

func (AchBankTransfer) isBankTransferData()        {}
func (SepaBankTransfer) isBankTransferData()       {}
func (BacsBankTransfer) isBankTransferData()       {}
func (MultibancoBankTransfer) isBankTransferData() {}
func (PermataBankTransfer) isBankTransferData()    {}
func (BcaBankTransfer) isBankTransferData()        {}
func (BniVaBankTransfer) isBankTransferData()      {}
func (BriVaBankTransfer) isBankTransferData()      {}
func (CimbVaBankTransfer) isBankTransferData()     {}
func (DanamonVaBankTransfer) isBankTransferData()  {}
func (MandiriVaBankTransfer) isBankTransferData()  {}
func (Pix) isBankTransferData()                    {}
func (Pse) isBankTransferData()                    {}
func (LocalBankTransfer) isBankTransferData()      {}

// RealTimePaymentData enumerates real-time payment rails.
type RealTimePaymentData interface{ isRealTimePaymentData() }

type DuitNow struct{}
type Fps struct{}
type PromptPay struct{}
type VietQr struct{}

func (DuitNow) isRealTimePaymentData()   {}
func (Fps) isRealTimePaymentData()       {}
func (PromptPay) isRealTimePaymentData() {}
func (VietQr) isRealTimePaymentData()    {}

// UpiData enumerates UPI collection modes.
type UpiData interface{ isUpiData() }

type UpiCollect struct {
	VpaID masking.Secret
}
type UpiIntent struct{}

func (UpiCollect) isUpiData() {}
func (UpiIntent) isUpiData()  {}

// VoucherData enumerates cash voucher schemes.
type VoucherData interface{ isVoucherData() }

type Boleto struct {
	SocialSecurityNumber masking.Secret
}
type Efecty struct{}
type PagoEfectivo struct{}
type RedCompra struct{}
type RedPagos struct{}
type Alfamart struct{}
type Indomaret struct{}
type Oxxo struct{}
type SevenEleven struct{}
type Lawson struct{}
type MiniStop struct{}
type FamilyMart struct{}
type Seicomart struct{}
type PayEasy struct{}

func (Boleto) isVoucherData()       {}
func (Efecty) isVoucherData()       {}
func (PagoEfectivo) isVoucherData() {}
func (RedCompra) isVoucherData()    {}
func (RedPagos) isVoucherData()     {}
func (Alfamart) isVoucherData()     {}
func (Indomaret) isVoucherData()    {}
func (Oxxo) isVoucherData()         {}
func (SevenEleven) isVoucherData()  {}
func (Lawson) isVoucherData()       {}
func (MiniStop) isVoucherData()     {}
func (FamilyMart) isVoucherData()   {}
func (Seicomart) isVoucherData()    {}
func (PayEasy) isVoucherData()      {}

// GiftCardData enumerates gift card schemes.
type GiftCardData interface{ isGiftCardData() }

type GivexGiftCard struct {
	Number masking.Secret
	CVC    masking.Secret
}
type PaySafeCard struct{}

func (GivexGiftCard) isGiftCardData() {}
func (PaySafeCard) isGiftCardData()   {}

// OpenBankingData enumerates open banking initiation modes.
type OpenBankingData interface{ isOpenBankingData() }

type OpenBankingPIS struct{}

func (OpenBankingPIS) isOpenBankingData() {}
