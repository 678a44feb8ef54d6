package api

import (
	"github.com/kevin07696/connector-switch/internal/domain"
	perrors "github.com/kevin07696/connector-switch/pkg/errors"
	"github.com/kevin07696/connector-switch/pkg/masking"
)

// PaymentMethodDataFromAPI converts the public payment method shape
// into the canonical domain union. Exactly one variant must be set;
// the cardholder name on cards is deliberately not carried over.
func PaymentMethodDataFromAPI(pmd PaymentMethodData) (domain.PaymentMethodData, error) {
	var (
		out domain.PaymentMethodData
		err error
		n   int
	)

	pick := func(d domain.PaymentMethodData, e error) {
		n++
		out, err = d, e
	}

	if pmd.Card != nil {
		pick(cardFromAPI(*pmd.Card), nil)
	}
	if pmd.CardRedirect != nil {
		pick(cardRedirectFromAPI(*pmd.CardRedirect))
	}
	if pmd.Wallet != nil {
		pick(walletFromAPI(*pmd.Wallet))
	}
	if pmd.PayLater != nil {
		pick(payLaterFromAPI(*pmd.PayLater))
	}
	if pmd.BankRedirect != nil {
		pick(bankRedirectFromAPI(*pmd.BankRedirect))
	}
	if pmd.BankDebit != nil {
		pick(bankDebitFromAPI(*pmd.BankDebit))
	}
	if pmd.BankTransfer != nil {
		pick(bankTransferFromAPI(*pmd.BankTransfer))
	}
	if pmd.Crypto != nil {
		pick(domain.Crypto{PayCurrency: pmd.Crypto.PayCurrency, Network: pmd.Crypto.Network}, nil)
	}
	if pmd.MandatePayment != nil {
		pick(domain.MandatePayment{}, nil)
	}
	if pmd.Reward != nil {
		pick(domain.Reward{}, nil)
	}
	if pmd.RealTimePayment != nil {
		pick(realTimePaymentFromAPI(*pmd.RealTimePayment))
	}
	if pmd.Upi != nil {
		pick(upiFromAPI(*pmd.Upi))
	}
	if pmd.Voucher != nil {
		pick(voucherFromAPI(*pmd.Voucher))
	}
	if pmd.GiftCard != nil {
		pick(giftCardFromAPI(*pmd.GiftCard))
	}
	if pmd.CardToken != nil {
		pick(domain.CardToken{
			HolderName: masking.New(pmd.CardToken.CardHolderName),
			CVC:        masking.New(pmd.CardToken.CardCVC),
		}, nil)
	}
	if pmd.OpenBanking != nil {
		pick(openBankingFromAPI(*pmd.OpenBanking))
	}

	switch {
	case n == 0:
		return nil, perrors.NewValidationError("payment_method_data", "no payment method variant provided")
	case n > 1:
		return nil, perrors.NewValidationError("payment_method_data", "multiple payment method variants provided")
	}
	return out, err
}

func cardFromAPI(c Card) domain.Card {
	return domain.Card{
		Number:         masking.New(c.CardNumber),
		ExpMonth:       masking.New(c.CardExpMonth),
		ExpYear:        masking.New(c.CardExpYear),
		CVC:            masking.New(c.CardCVC),
		Issuer:         c.CardIssuer,
		Network:        c.CardNetwork,
		Type:           c.CardType,
		IssuingCountry: c.CardIssuingCountry,
		BankCode:       c.BankCode,
		NickName:       masking.New(c.NickName),
	}
}

func cardRedirectFromAPI(cr CardRedirect) (domain.PaymentMethodData, error) {
	var data domain.CardRedirectData
	switch {
	case cr.Knet != nil:
		data = domain.KnetRedirect{}
	case cr.Benefit != nil:
		data = domain.BenefitRedirect{}
	case cr.MomoAtm != nil:
		data = domain.MomoAtmRedirect{}
	case cr.CardRedirect != nil:
		data = domain.GenericCardRedirect{}
	default:
		return nil, perrors.NewValidationError("card_redirect", "no card redirect variant provided")
	}
	return domain.CardRedirect{Data: data}, nil
}

func walletFromAPI(w Wallet) (domain.PaymentMethodData, error) {
	var data domain.WalletData
	switch {
	case w.AliPayQr != nil:
		data = domain.AliPayQr{}
	case w.AliPayRedirect != nil:
		data = domain.AliPayRedirect{}
	case w.AliPayHkRedirect != nil:
		data = domain.AliPayHkRedirect{}
	case w.MomoRedirect != nil:
		data = domain.MomoRedirect{}
	case w.KakaoPayRedirect != nil:
		data = domain.KakaoPayRedirect{}
	case w.GoPayRedirect != nil:
		data = domain.GoPayRedirect{}
	case w.GcashRedirect != nil:
		data = domain.GcashRedirect{}
	case w.DanaRedirect != nil:
		data = domain.DanaRedirect{}
	case w.TwintRedirect != nil:
		data = domain.TwintRedirect{}
	case w.VippsRedirect != nil:
		data = domain.VippsRedirect{}
	case w.TouchNGoRedirect != nil:
		data = domain.TouchNGoRedirect{}
	case w.WeChatPayRedirect != nil:
		data = domain.WeChatPayRedirect{}
	case w.WeChatPayQr != nil:
		data = domain.WeChatPayQr{}
	case w.CashappQr != nil:
		data = domain.CashappQr{}
	case w.SwishQr != nil:
		data = domain.SwishQr{}
	case w.MbWayRedirect != nil:
		data = domain.MbWayRedirect{}
	case w.MobilePayRedirect != nil:
		data = domain.MobilePayRedirect{}
	case w.ApplePay != nil:
		data = domain.ApplePayWallet{
			PaymentData:           w.ApplePay.PaymentData,
			DisplayName:           w.ApplePay.DisplayName,
			Network:               w.ApplePay.Network,
			TransactionIdentifier: w.ApplePay.TransactionIdentifier,
		}
	case w.ApplePayRedirect != nil:
		data = domain.ApplePayRedirect{}
	case w.ApplePayThirdPartySdk != nil:
		data = domain.ApplePayThirdPartySdk{}
	case w.GooglePay != nil:
		data = domain.GooglePayWallet{
			Type:        w.GooglePay.Type,
			Description: w.GooglePay.Description,
			CardNetwork: w.GooglePay.CardNetwork,
			CardDetails: w.GooglePay.CardDetails,
			TokenType:   w.GooglePay.TokenType,
			Token:       w.GooglePay.Token,
		}
	case w.GooglePayRedirect != nil:
		data = domain.GooglePayRedirect{}
	case w.GooglePayThirdPartySdk != nil:
		data = domain.GooglePayThirdPartySdk{}
	case w.PaypalRedirect != nil:
		data = domain.PaypalRedirect{Email: w.PaypalRedirect.Email}
	case w.PaypalSdk != nil:
		data = domain.PaypalSdk{Token: w.PaypalSdk.Token}
	case w.SamsungPay != nil:
		data = domain.SamsungPayWallet{Token: masking.New(w.SamsungPay.Token)}
	case w.Mifinity != nil:
		data = domain.MifinityWallet{
			DateOfBirth:        w.Mifinity.DateOfBirth,
			LanguagePreference: w.Mifinity.LanguagePreference,
		}
	default:
		return nil, perrors.NewValidationError("wallet", "no wallet variant provided")
	}
	return domain.Wallet{Data: data}, nil
}

func payLaterFromAPI(pl PayLater) (domain.PaymentMethodData, error) {
	var data domain.PayLaterData
	switch {
	case pl.KlarnaRedirect != nil:
		data = domain.KlarnaRedirect{}
	case pl.KlarnaSdk != nil:
		data = domain.KlarnaSdk{Token: pl.KlarnaSdk.Token}
	case pl.AffirmRedirect != nil:
		data = domain.AffirmRedirect{}
	case pl.AfterpayClearpayRedirect != nil:
		data = domain.AfterpayClearpayRedirect{}
	case pl.PayBrightRedirect != nil:
		data = domain.PayBrightRedirect{}
	case pl.WalleyRedirect != nil:
		data = domain.WalleyRedirect{}
	case pl.AlmaRedirect != nil:
		data = domain.AlmaRedirect{}
	case pl.AtomeRedirect != nil:
		data = domain.AtomeRedirect{}
	default:
		return nil, perrors.NewValidationError("pay_later", "no pay later variant provided")
	}
	return domain.PayLater{Data: data}, nil
}

func bankRedirectFromAPI(br BankRedirect) (domain.PaymentMethodData, error) {
	var data domain.BankRedirectData
	switch {
	case br.BancontactCard != nil:
		data = domain.BancontactCard{
			Number:   masking.New(br.BancontactCard.CardNumber),
			ExpMonth: masking.New(br.BancontactCard.CardExpMonth),
			ExpYear:  masking.New(br.BancontactCard.CardExpYear),
		}
	case br.Bizum != nil:
		data = domain.Bizum{}
	case br.Blik != nil:
		data = domain.Blik{BlikCode: br.Blik.BlikCode}
	case br.Eps != nil:
		data = domain.Eps{BankName: br.Eps.BankName}
	case br.Giropay != nil:
		data = domain.Giropay{
			BIC:  masking.New(br.Giropay.BankAccountBIC),
			IBAN: masking.New(br.Giropay.BankAccountIBAN),
		}
	case br.Ideal != nil:
		data = domain.Ideal{BankName: br.Ideal.BankName}
	case br.Interac != nil:
		data = domain.Interac{}
	case br.OnlineBankingCzechRepublic != nil:
		data = domain.OnlineBankingCzechRepublic{Issuer: br.OnlineBankingCzechRepublic.Issuer}
	case br.OnlineBankingFinland != nil:
		data = domain.OnlineBankingFinland{}
	case br.OnlineBankingPoland != nil:
		data = domain.OnlineBankingPoland{Issuer: br.OnlineBankingPoland.Issuer}
	case br.OnlineBankingSlovakia != nil:
		data = domain.OnlineBankingSlovakia{Issuer: br.OnlineBankingSlovakia.Issuer}
	case br.OpenBankingUk != nil:
		data = domain.OpenBankingUk{Issuer: br.OpenBankingUk.Issuer}
	case br.Przelewy24 != nil:
		data = domain.Przelewy24{BankName: br.Przelewy24.BankName}
	case br.Sofort != nil:
		data = domain.Sofort{PreferredLanguage: br.Sofort.PreferredLanguage}
	case br.Trustly != nil:
		data = domain.Trustly{}
	case br.OnlineBankingFpx != nil:
		data = domain.OnlineBankingFpx{Issuer: br.OnlineBankingFpx.Issuer}
	case br.OnlineBankingThailand != nil:
		data = domain.OnlineBankingThailand{Issuer: br.OnlineBankingThailand.Issuer}
	case br.LocalBankRedirect != nil:
		data = domain.LocalBankRedirect{}
	default:
		return nil, perrors.NewValidationError("bank_redirect", "no bank redirect variant provided")
	}
	return domain.BankRedirect{Data: data}, nil
}

func bankDebitFromAPI(bd BankDebit) (domain.PaymentMethodData, error) {
	var data domain.BankDebitData
	switch {
	case bd.Ach != nil:
		data = domain.AchBankDebit{
			AccountNumber:  masking.New(bd.Ach.AccountNumber),
			RoutingNumber:  masking.New(bd.Ach.RoutingNumber),
			BankName:       bd.Ach.BankName,
			BankType:       bd.Ach.BankType,
			BankHolderType: bd.Ach.BankHolderType,
		}
	case bd.Sepa != nil:
		data = domain.SepaBankDebit{IBAN: masking.New(bd.Sepa.IBAN)}
	case bd.Becs != nil:
		data = domain.BecsBankDebit{
			AccountNumber: masking.New(bd.Becs.AccountNumber),
			BSBNumber:     masking.New(bd.Becs.BSBNumber),
		}
	case bd.Bacs != nil:
		data = domain.BacsBankDebit{
			AccountNumber: masking.New(bd.Bacs.AccountNumber),
			SortCode:      masking.New(bd.Bacs.SortCode),
		}
	default:
		return nil, perrors.NewValidationError("bank_debit", "no bank debit variant provided")
	}
	return domain.BankDebit{Data: data}, nil
}

func bankTransferFromAPI(bt BankTransfer) (domain.PaymentMethodData, error) {
	var data domain.BankTransferData
	switch {
	case bt.Ach != nil:
		data = domain.AchBankTransfer{}
	case bt.Sepa != nil:
		data = domain.SepaBankTransfer{}
	case bt.Bacs != nil:
		data = domain.BacsBankTransfer{}
	case bt.Multibanco != nil:
		data = domain.MultibancoBankTransfer{}
	case bt.Permata != nil:
		data = domain.PermataBankTransfer{}
	case bt.Bca != nil:
		data = domain.BcaBankTransfer{}
	case bt.BniVa != nil:
		data = domain.BniVaBankTransfer{}
	case bt.BriVa != nil:
		data = domain.BriVaBankTransfer{}
	case bt.CimbVa != nil:
		data = domain.CimbVaBankTransfer{}
	case bt.DanamonVa != nil:
		data = domain.DanamonVaBankTransfer{}
	case bt.MandiriVa != nil:
		data = domain.MandiriVaBankTransfer{}
	case bt.Pix != nil:
		data = domain.Pix{}
	case bt.Pse != nil:
		data = domain.Pse{}
	case bt.LocalBank != nil:
		data = domain.LocalBankTransfer{BankCode: bt.LocalBank.BankCode}
	default:
		return nil, perrors.NewValidationError("bank_transfer", "no bank transfer variant provided")
	}
	return domain.BankTransfer{Data: data}, nil
}

func realTimePaymentFromAPI(rtp RealTimePayment) (domain.PaymentMethodData, error) {
	var data domain.RealTimePaymentData
	switch {
	case rtp.DuitNow != nil:
		data = domain.DuitNow{}
	case rtp.Fps != nil:
		data = domain.Fps{}
	case rtp.PromptPay != nil:
		data = domain.PromptPay{}
	case rtp.VietQr != nil:
		data = domain.VietQr{}
	default:
		return nil, perrors.NewValidationError("real_time_payment", "no real time payment variant provided")
	}
	return domain.RealTimePayment{Data: data}, nil
}

func upiFromAPI(u Upi) (domain.PaymentMethodData, error) {
	var data domain.UpiData
	switch {
	case u.Collect != nil:
		data = domain.UpiCollect{VpaID: masking.New(u.Collect.VpaID)}
	case u.Intent != nil:
		data = domain.UpiIntent{}
	default:
		return nil, perrors.NewValidationError("upi", "no upi variant provided")
	}
	return domain.Upi{Data: data}, nil
}

func voucherFromAPI(v Voucher) (domain.PaymentMethodData, error) {
	var data domain.VoucherData
	switch {
	case v.Boleto != nil:
		data = domain.Boleto{SocialSecurityNumber: masking.New(v.Boleto.SocialSecurityNumber)}
	case v.Efecty != nil:
		data = domain.Efecty{}
	case v.PagoEfectivo != nil:
		data = domain.PagoEfectivo{}
	case v.RedCompra != nil:
		data = domain.RedCompra{}
	case v.RedPagos != nil:
		data = domain.RedPagos{}
	case v.Alfamart != nil:
		data = domain.Alfamart{}
	case v.Indomaret != nil:
		data = domain.Indomaret{}
	case v.Oxxo != nil:
		data = domain.Oxxo{}
	case v.SevenEleven != nil:
		data = domain.SevenEleven{}
	case v.Lawson != nil:
		data = domain.Lawson{}
	case v.MiniStop != nil:
		data = domain.MiniStop{}
	case v.FamilyMart != nil:
		data = domain.FamilyMart{}
	case v.Seicomart != nil:
		data = domain.Seicomart{}
	case v.PayEasy != nil:
		data = domain.PayEasy{}
	default:
		return nil, perrors.NewValidationError("voucher", "no voucher variant provided")
	}
	return domain.Voucher{Data: data}, nil
}

func giftCardFromAPI(gc GiftCard) (domain.PaymentMethodData, error) {
	var data domain.GiftCardData
	switch {
	case gc.Givex != nil:
		data = domain.GivexGiftCard{
			Number: masking.New(gc.Givex.Number),
			CVC:    masking.New(gc.Givex.CVC),
		}
	case gc.PaySafeCard != nil:
		data = domain.PaySafeCard{}
	default:
		return nil, perrors.NewValidationError("gift_card", "no gift card variant provided")
	}
	return domain.GiftCard{Data: data}, nil
}

func openBankingFromAPI(ob OpenBanking) (domain.PaymentMethodData, error) {
	var data domain.OpenBankingData
	switch {
	case ob.OpenBankingPIS != nil:
		data = domain.OpenBankingPIS{}
	default:
		return nil, perrors.NewValidationError("open_banking", "no open banking variant provided")
	}
	return domain.OpenBanking{Data: data}, nil
}
