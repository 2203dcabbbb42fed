package model

import (
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a payment request omits the currency code.
const DefaultCurrency = "EUR"

// PaymentRequest is a single payment instruction to be encoded as a
// Pay by Square code. Either IBAN or BankAccounts must be set; all other
// fields are optional and serialize as empty placeholders when absent.
type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`

	IBAN         string        `json:"iban,omitempty" validate:"omitempty,max=34"`
	BankAccounts []BankAccount `json:"bank_accounts,omitempty" validate:"omitempty,dive"`
	SWIFT        string        `json:"swift,omitempty" validate:"omitempty,max=11"`

	Currency string `json:"currency,omitempty" validate:"omitempty,len=3"`

	Date           *Date `json:"date,omitempty"`
	PaymentDueDate *Date `json:"payment_due_date,omitempty"`

	InvoiceID           string `json:"invoice_id,omitempty"`
	BeneficiaryName     string `json:"beneficiary_name,omitempty"`
	BeneficiaryAddress1 string `json:"beneficiary_address_1,omitempty"`
	BeneficiaryAddress2 string `json:"beneficiary_address_2,omitempty"`

	VariableSymbol string `json:"variable_symbol,omitempty"`
	ConstantSymbol string `json:"constant_symbol,omitempty"`
	SpecificSymbol string `json:"specific_symbol,omitempty"`

	OriginatorsReferenceInformation string `json:"originators_reference_information,omitempty"`
	Note                            string `json:"note,omitempty"`

	PaymentOptions []PaymentOption `json:"payment_options,omitempty" validate:"omitempty,dive,oneof=PAYMENT_ORDER STANDING_ORDER DIRECT_DEBIT"`
	StandingOrder  *StandingOrder  `json:"standing_order,omitempty"`
	DirectDebit    *DirectDebit    `json:"direct_debit,omitempty"`
}

// BankAccount is one beneficiary account in the bank_accounts list.
type BankAccount struct {
	IBAN  string `json:"iban" validate:"required,max=34"`
	SWIFT string `json:"swift,omitempty" validate:"omitempty,max=11"`
}

type PaymentOption string

const (
	PaymentOrderOption  PaymentOption = "PAYMENT_ORDER"
	StandingOrderOption PaymentOption = "STANDING_ORDER"
	DirectDebitOption   PaymentOption = "DIRECT_DEBIT"
)

// StandingOrder holds the recurring-payment attributes for option 2.
type StandingOrder struct {
	Day         int         `json:"day" validate:"required,min=1,max=31"`
	Month       []int       `json:"month" validate:"required,min=1,dive,min=1,max=12"`
	Periodicity Periodicity `json:"periodicity" validate:"required,oneof=DAILY WEEKLY MONTHLY QUARTERLY HALF_YEARLY YEARLY"`
	LastDate    Date        `json:"last_date" validate:"required"`
}

type Periodicity string

const (
	PeriodicityDaily      Periodicity = "DAILY"
	PeriodicityWeekly     Periodicity = "WEEKLY"
	PeriodicityMonthly    Periodicity = "MONTHLY"
	PeriodicityQuarterly  Periodicity = "QUARTERLY"
	PeriodicityHalfYearly Periodicity = "HALF_YEARLY"
	PeriodicityYearly     Periodicity = "YEARLY"
)

// DirectDebit holds the direct-debit attributes for option 3. MaxAmount and
// ValidTillDate are accepted but are not part of the serialized code.
type DirectDebit struct {
	Scheme        DirectDebitScheme `json:"scheme" validate:"required,oneof=SEPA OTHER"`
	DebitType     DirectDebitType   `json:"debit_type" validate:"required,oneof=ONE_OFF RECURRENT"`
	MandateID     string            `json:"mandate_id,omitempty"`
	CreditorID    string            `json:"creditor_id,omitempty"`
	MaxAmount     *decimal.Decimal  `json:"max_amount,omitempty"`
	ValidTillDate *Date             `json:"valid_till_date,omitempty"`
}

type DirectDebitScheme string

const (
	DirectDebitSchemeSEPA  DirectDebitScheme = "SEPA"
	DirectDebitSchemeOther DirectDebitScheme = "OTHER"
)

type DirectDebitType string

const (
	DirectDebitTypeOneOff    DirectDebitType = "ONE_OFF"
	DirectDebitTypeRecurrent DirectDebitType = "RECURRENT"
)

// QrOptions controls the image endpoint output.
type QrOptions struct {
	WithFrame bool `json:"with_frame"`
	QrSize    int  `json:"qr_size"`
}

// CodeResponse is the JSON body returned by the text-code endpoint.
type CodeResponse struct {
	Code string `json:"code"`
}
