package payment

import (
	"strconv"
	"strings"

	"github.com/matoboco/pay-by-square/internal/model"
)

var paymentOptionCodes = map[model.PaymentOption]string{
	model.PaymentOrderOption:  "1",
	model.StandingOrderOption: "2",
	model.DirectDebitOption:   "3",
}

var periodicityLetters = map[model.Periodicity]string{
	model.PeriodicityDaily:      "D",
	model.PeriodicityWeekly:     "W",
	model.PeriodicityMonthly:    "M",
	model.PeriodicityQuarterly:  "Q",
	model.PeriodicityHalfYearly: "H",
	model.PeriodicityYearly:     "Y",
}

var directDebitSchemeTokens = map[model.DirectDebitScheme]string{
	model.DirectDebitSchemeSEPA:  "SEPA",
	model.DirectDebitSchemeOther: "OTHER",
}

var directDebitTypeTokens = map[model.DirectDebitType]string{
	model.DirectDebitTypeOneOff:    "ONEOFF",
	model.DirectDebitTypeRecurrent: "RCUR",
}

// Serialize maps a payment request to the 17 tab-separated fields of the
// Pay by Square payload. Absent optional values become empty strings, so
// the tab count is fixed.
func Serialize(p *model.PaymentRequest) string {
	fields := make([]string, 0, 17)

	fields = append(fields, serializePaymentOptions(p.PaymentOptions))
	fields = append(fields, p.Amount.StringFixed(2))

	currency := p.Currency
	if currency == "" {
		currency = model.DefaultCurrency
	}
	fields = append(fields, currency)

	fields = append(fields, compactDate(p.Date))
	fields = append(fields, p.VariableSymbol)
	fields = append(fields, p.ConstantSymbol)
	fields = append(fields, p.SpecificSymbol)
	fields = append(fields, p.OriginatorsReferenceInformation)
	fields = append(fields, p.Note)
	fields = append(fields, serializeAccounts(p))
	fields = append(fields, p.BeneficiaryName)
	fields = append(fields, p.BeneficiaryAddress1)
	fields = append(fields, p.BeneficiaryAddress2)
	fields = append(fields, compactDate(p.PaymentDueDate))
	fields = append(fields, p.InvoiceID)
	fields = append(fields, serializeStandingOrder(p.StandingOrder))
	fields = append(fields, serializeDirectDebit(p.DirectDebit))

	return strings.Join(fields, "\t")
}

func serializePaymentOptions(opts []model.PaymentOption) string {
	if len(opts) == 0 {
		// Default: plain payment order.
		return "1"
	}
	codes := make([]string, 0, len(opts))
	for _, opt := range opts {
		codes = append(codes, paymentOptionCodes[opt])
	}
	return strings.Join(codes, ",")
}

// serializeAccounts renders field 10: each account as IBAN or IBAN|SWIFT,
// comma-joined, falling back to the top-level iban/swift pair.
func serializeAccounts(p *model.PaymentRequest) string {
	if p.BankAccounts != nil {
		accounts := make([]string, 0, len(p.BankAccounts))
		for _, acc := range p.BankAccounts {
			if acc.SWIFT != "" {
				accounts = append(accounts, acc.IBAN+"|"+acc.SWIFT)
			} else {
				accounts = append(accounts, acc.IBAN)
			}
		}
		return strings.Join(accounts, ",")
	}
	if p.IBAN != "" {
		if p.SWIFT != "" {
			return p.IBAN + "|" + p.SWIFT
		}
		return p.IBAN
	}
	return ""
}

func serializeStandingOrder(so *model.StandingOrder) string {
	if so == nil {
		return ""
	}
	months := make([]string, 0, len(so.Month))
	for _, m := range so.Month {
		months = append(months, strconv.Itoa(m))
	}
	parts := []string{
		strconv.Itoa(so.Day),
		strings.Join(months, ","),
		periodicityLetters[so.Periodicity],
		so.LastDate.Compact(),
	}
	return strings.Join(parts, "|")
}

func serializeDirectDebit(dd *model.DirectDebit) string {
	if dd == nil {
		return ""
	}
	parts := []string{
		directDebitSchemeTokens[dd.Scheme],
		directDebitTypeTokens[dd.DebitType],
	}
	if dd.MandateID != "" {
		parts = append(parts, dd.MandateID)
	}
	if dd.CreditorID != "" {
		parts = append(parts, dd.CreditorID)
	}
	return strings.Join(parts, "|")
}

func compactDate(d *model.Date) string {
	if d == nil {
		return ""
	}
	return d.Compact()
}
