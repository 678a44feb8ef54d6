// Package api holds the public request shapes accepted from the
// platform's edge and their one-way conversion into the canonical
// domain model. Shapes here mirror the JSON the public API accepts;
// exactly one variant pointer must be set at each union level.
package api

// PaymentMethodData is the public tagged-union payment method shape.
type PaymentMethodData struct {
	Card            *Card            `json:"card,omitempty"`
	CardRedirect    *CardRedirect    `json:"card_redirect,omitempty"`
	Wallet          *Wallet          `json:"wallet,omitempty"`
	PayLater        *PayLater        `json:"pay_later,omitempty"`
	BankRedirect    *BankRedirect    `json:"bank_redirect,omitempty"`
	BankDebit       *BankDebit       `json:"bank_debit,omitempty"`
	BankTransfer    *BankTransfer    `json:"bank_transfer,omitempty"`
	Crypto          *Crypto          `json:"crypto,omitempty"`
	MandatePayment  *MandatePayment  `json:"mandate_payment,omitempty"`
	Reward          *Reward          `json:"reward,omitempty"`
	RealTimePayment *RealTimePayment `json:"real_time_payment,omitempty"`
	Upi             *Upi             `json:"upi,omitempty"`
	Voucher         *Voucher         `json:"voucher,omitempty"`
	GiftCard        *GiftCard        `json:"gift_card,omitempty"`
	CardToken       *CardToken       `json:"card_token,omitempty"`
	OpenBanking     *OpenBanking     `json:"open_banking,omitempty"`
}

// Card is the public card shape. CardHolderName is display-only and is
// intentionally dropped during conversion to the canonical model.
type Card struct {
	CardNumber         string `json:"card_number"`
	CardExpMonth       string `json:"card_exp_month"`
	CardExpYear        string `json:"card_exp_year"`
	CardCVC            string `json:"card_cvc"`
	CardHolderName     string `json:"card_holder_name,omitempty"`
	CardIssuer         string `json:"card_issuer,omitempty"`
	CardNetwork        string `json:"card_network,omitempty"`
	CardType           string `json:"card_type,omitempty"`
	CardIssuingCountry string `json:"card_issuing_country,omitempty"`
	BankCode           string `json:"bank_code,omitempty"`
	NickName           string `json:"nick_name,omitempty"`
}

// CardRedirect selects a card-redirect scheme.
type CardRedirect struct {
	Knet         *struct{} `json:"knet,omitempty"`
	Benefit      *struct{} `json:"benefit,omitempty"`
	MomoAtm      *struct{} `json:"momo_atm,omitempty"`
	CardRedirect *struct{} `json:"card_redirect,omitempty"`
}

// Wallet selects a wallet sub-variant.
type Wallet struct {
	AliPayQr               *struct{}         `json:"ali_pay_qr,omitempty"`
	AliPayRedirect         *struct{}         `json:"ali_pay_redirect,omitempty"`
	AliPayHkRedirect       *struct{}         `json:"ali_pay_hk_redirect,omitempty"`
	MomoRedirect           *struct{}         `json:"momo_redirect,omitempty"`
	KakaoPayRedirect       *struct{}         `json:"kakao_pay_redirect,omitempty"`
	GoPayRedirect          *struct{}         `json:"go_pay_redirect,omitempty"`
	GcashRedirect          *struct{}         `json:"gcash_redirect,omitempty"`
	DanaRedirect           *struct{}         `json:"dana_redirect,omitempty"`
	TwintRedirect          *struct{}         `json:"twint_redirect,omitempty"`
	VippsRedirect          *struct{}         `json:"vipps_redirect,omitempty"`
	TouchNGoRedirect       *struct{}         `json:"touch_n_go_redirect,omitempty"`
	WeChatPayRedirect      *struct{}         `json:"we_chat_pay_redirect,omitempty"`
	WeChatPayQr            *struct{}         `json:"we_chat_pay_qr,omitempty"`
	CashappQr              *struct{}         `json:"cashapp_qr,omitempty"`
	SwishQr                *struct{}         `json:"swish_qr,omitempty"`
	MbWayRedirect          *struct{}         `json:"mb_way_redirect,omitempty"`
	MobilePayRedirect      *struct{}         `json:"mobile_pay_redirect,omitempty"`
	ApplePay               *ApplePayWallet   `json:"apple_pay,omitempty"`
	ApplePayRedirect       *struct{}         `json:"apple_pay_redirect,omitempty"`
	ApplePayThirdPartySdk  *struct{}         `json:"apple_pay_third_party_sdk,omitempty"`
	GooglePay              *GooglePayWallet  `json:"google_pay,omitempty"`
	GooglePayRedirect      *struct{}         `json:"google_pay_redirect,omitempty"`
	GooglePayThirdPartySdk *struct{}         `json:"google_pay_third_party_sdk,omitempty"`
	PaypalRedirect         *PaypalRedirect   `json:"paypal_redirect,omitempty"`
	PaypalSdk              *PaypalSdk        `json:"paypal_sdk,omitempty"`
	SamsungPay             *SamsungPayWallet `json:"samsung_pay,omitempty"`
	Mifinity               *MifinityWallet   `json:"mifinity,omitempty"`
}

// ApplePayWallet is the public Apple Pay payload.
type ApplePayWallet struct {
	PaymentData           string `json:"payment_data"`
	DisplayName           string `json:"display_name"`
	Network               string `json:"network"`
	TransactionIdentifier string `json:"transaction_identifier"`
}

// GooglePayWallet is the public Google Pay payload.
type GooglePayWallet struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	CardNetwork string `json:"card_network"`
	CardDetails string `json:"card_details"`
	TokenType   string `json:"token_type"`
	Token       string `json:"token"`
}

// PaypalRedirect is the public PayPal redirect payload.
type PaypalRedirect struct {
	Email string `json:"email,omitempty"`
}

// PaypalSdk is the public PayPal SDK payload.
type PaypalSdk struct {
	Token string `json:"token"`
}

// SamsungPayWallet is the public Samsung Pay payload.
type SamsungPayWallet struct {
	Token string `json:"token"`
}

// MifinityWallet is the public MiFinity payload.
type MifinityWallet struct {
	DateOfBirth        string `json:"date_of_birth"`
	LanguagePreference string `json:"language_preference,omitempty"`
}

// PayLater selects a buy-now-pay-later scheme.
type PayLater struct {
	KlarnaRedirect           *struct{}  `json:"klarna_redirect,omitempty"`
	KlarnaSdk                *KlarnaSdk `json:"klarna_sdk,omitempty"`
	AffirmRedirect           *struct{}  `json:"affirm_redirect,omitempty"`
	AfterpayClearpayRedirect *struct{}  `json:"afterpay_clearpay_redirect,omitempty"`
	PayBrightRedirect        *struct{}  `json:"pay_bright_redirect,omitempty"`
	WalleyRedirect           *struct{}  `json:"walley_redirect,omitempty"`
	AlmaRedirect             *struct{}  `json:"alma_redirect,omitempty"`
	AtomeRedirect            *struct{}  `json:"atome_redirect,omitempty"`
}

// KlarnaSdk is the public Klarna SDK payload.
type KlarnaSdk struct {
	Token string `json:"token"`
}

// BankRedirect selects a per-country redirect banking scheme.
type BankRedirect struct {
	BancontactCard             *BancontactCard  `json:"bancontact_card,omitempty"`
	Bizum                      *struct{}        `json:"bizum,omitempty"`
	Blik                       *Blik            `json:"blik,omitempty"`
	Eps                        *BankNameChoice  `json:"eps,omitempty"`
	Giropay                    *Giropay         `json:"giropay,omitempty"`
	Ideal                      *BankNameChoice  `json:"ideal,omitempty"`
	Interac                    *struct{}        `json:"interac,omitempty"`
	OnlineBankingCzechRepublic *IssuerChoice    `json:"online_banking_czech_republic,omitempty"`
	OnlineBankingFinland       *struct{}        `json:"online_banking_finland,omitempty"`
	OnlineBankingPoland        *IssuerChoice    `json:"online_banking_poland,omitempty"`
	OnlineBankingSlovakia      *IssuerChoice    `json:"online_banking_slovakia,omitempty"`
	OpenBankingUk              *IssuerChoice    `json:"open_banking_uk,omitempty"`
	Przelewy24                 *BankNameChoice  `json:"przelewy24,omitempty"`
	Sofort                     *Sofort          `json:"sofort,omitempty"`
	Trustly                    *struct{}        `json:"trustly,omitempty"`
	OnlineBankingFpx           *IssuerChoice    `json:"online_banking_fpx,omitempty"`
	OnlineBankingThailand      *IssuerChoice    `json:"online_banking_thailand,omitempty"`
	LocalBankRedirect          *struct{}        `json:"local_bank_redirect,omitempty"`
}

// BancontactCard is the public Bancontact card payload.
type BancontactCard struct {
	CardNumber   string `json:"card_number,omitempty"`
	CardExpMonth string `json:"card_exp_month,omitempty"`
	CardExpYear  string `json:"card_exp_year,omitempty"`
}

// Blik carries the one-time BLIK code.
type Blik struct {
	BlikCode string `json:"blik_code,omitempty"`
}

// BankNameChoice carries an optional bank selection.
type BankNameChoice struct {
	BankName string `json:"bank_name,omitempty"`
}

// IssuerChoice carries the issuer bank code.
type IssuerChoice struct {
	Issuer string `json:"issuer,omitempty"`
}

// Giropay carries the optional BIC/IBAN pair.
type Giropay struct {
	BankAccountBIC  string `json:"bank_account_bic,omitempty"`
	BankAccountIBAN string `json:"bank_account_iban,omitempty"`
}

// Sofort carries the shopper's preferred language.
type Sofort struct {
	PreferredLanguage string `json:"preferred_language,omitempty"`
}

// BankDebit selects a direct-debit network.
type BankDebit struct {
	Ach  *AchBankDebit  `json:"ach,omitempty"`
	Sepa *SepaBankDebit `json:"sepa,omitempty"`
	Becs *BecsBankDebit `json:"becs,omitempty"`
	Bacs *BacsBankDebit `json:"bacs,omitempty"`
}

// AchBankDebit is the public ACH debit payload.
type AchBankDebit struct {
	AccountNumber  string `json:"account_number"`
	RoutingNumber  string `json:"routing_number"`
	BankName       string `json:"bank_name,omitempty"`
	BankType       string `json:"bank_type,omitempty"`
	BankHolderType string `json:"bank_holder_type,omitempty"`
}

// SepaBankDebit is the public SEPA debit payload.
type SepaBankDebit struct {
	IBAN string `json:"iban"`
}

// BecsBankDebit is the public BECS debit payload.
type BecsBankDebit struct {
	AccountNumber string `json:"account_number"`
	BSBNumber     string `json:"bsb_number"`
}

// BacsBankDebit is the public BACS debit payload.
type BacsBankDebit struct {
	AccountNumber string `json:"account_number"`
	SortCode      string `json:"sort_code"`
}

// BankTransfer selects a bank transfer scheme.
type BankTransfer struct {
	Ach        *struct{}          `json:"ach,omitempty"`
	Sepa       *struct{}          `json:"sepa,omitempty"`
	Bacs       *struct{}          `json:"bacs,omitempty"`
	Multibanco *struct{}          `json:"multibanco,omitempty"`
	Permata    *struct{}          `json:"permata,omitempty"`
	Bca        *struct{}          `json:"bca,omitempty"`
	BniVa      *struct{}          `json:"bni_va,omitempty"`
	BriVa      *struct{}          `json:"bri_va,omitempty"`
	CimbVa     *struct{}          `json:"cimb_va,omitempty"`
	DanamonVa  *struct{}          `json:"danamon_va,omitempty"`
	MandiriVa  *struct{}          `json:"mandiri_va,omitempty"`
	Pix        *struct{}          `json:"pix,omitempty"`
	Pse        *struct{}          `json:"pse,omitempty"`
	LocalBank  *LocalBankTransfer `json:"local_bank,omitempty"`
}

// LocalBankTransfer carries a local bank code.
type LocalBankTransfer struct {
	BankCode string `json:"bank_code,omitempty"`
}

// Crypto is the public crypto payment payload.
type Crypto struct {
	PayCurrency string `json:"pay_currency,omitempty"`
	Network     string `json:"network,omitempty"`
}

// MandatePayment reuses a stored mandate.
type MandatePayment struct{}

// Reward carries no payload.
type Reward struct{}

// RealTimePayment selects a real-time payment rail.
type RealTimePayment struct {
	DuitNow   *struct{} `json:"duit_now,omitempty"`
	Fps       *struct{} `json:"fps,omitempty"`
	PromptPay *struct{} `json:"prompt_pay,omitempty"`
	VietQr    *struct{} `json:"viet_qr,omitempty"`
}

// Upi selects a UPI collection mode.
type Upi struct {
	Collect *UpiCollect `json:"upi_collect,omitempty"`
	Intent  *struct{}   `json:"upi_intent,omitempty"`
}

// UpiCollect carries the shopper's virtual payment address.
type UpiCollect struct {
	VpaID string `json:"vpa_id,omitempty"`
}

// Voucher selects a cash voucher scheme.
type Voucher struct {
	Boleto       *Boleto   `json:"boleto,omitempty"`
	Efecty       *struct{} `json:"efecty,omitempty"`
	PagoEfectivo *struct{} `json:"pago_efectivo,omitempty"`
	RedCompra    *struct{} `json:"red_compra,omitempty"`
	RedPagos     *struct{} `json:"red_pagos,omitempty"`
	Alfamart     *struct{} `json:"alfamart,omitempty"`
	Indomaret    *struct{} `json:"indomaret,omitempty"`
	Oxxo         *struct{} `json:"oxxo,omitempty"`
	SevenEleven  *struct{} `json:"seven_eleven,omitempty"`
	Lawson       *struct{} `json:"lawson,omitempty"`
	MiniStop     *struct{} `json:"mini_stop,omitempty"`
	FamilyMart   *struct{} `json:"family_mart,omitempty"`
	Seicomart    *struct{} `json:"seicomart,omitempty"`
	PayEasy      *struct{} `json:"pay_easy,omitempty"`
}

// Boleto carries the shopper's social security number.
type Boleto struct {
	SocialSecurityNumber string `json:"social_security_number,omitempty"`
}

// GiftCard selects a gift card scheme.
type GiftCard struct {
	Givex       *GivexGiftCard `json:"givex,omitempty"`
	PaySafeCard *struct{}      `json:"pay_safe_card,omitempty"`
}

// GivexGiftCard is the public Givex payload.
type GivexGiftCard struct {
	Number string `json:"number"`
	CVC    string `json:"cvc"`
}

// CardToken references a previously tokenized card.
type CardToken struct {
	CardHolderName string `json:"card_holder_name,omitempty"`
	CardCVC        string `json:"card_cvc,omitempty"`
}

// OpenBanking selects an open banking initiation mode.
type OpenBanking struct {
	OpenBankingPIS *struct{} `json:"open_banking_pis,omitempty"`
}
