package payment

import (
	"strings"

	"github.com/matoboco/pay-by-square/internal/model"
)

// Maximum lengths of the bounded text fields, per the Pay by Square
// payload definition.
const (
	maxInvoiceID       = 10
	maxBeneficiaryName = 70
	maxAddressLine     = 70
	maxVariableSymbol  = 10
	maxConstantSymbol  = 4
	maxSpecificSymbol  = 10
	maxReferenceInfo   = 35
	maxNote            = 140
)

// Validate checks a payment request against the format rules. Rules run in
// a fixed order and the first failure wins; the request is never mutated.
func Validate(p *model.PaymentRequest) error {
	if !p.Amount.IsPositive() {
		return &Error{Kind: KindInvalidAmount}
	}

	if p.IBAN == "" && p.BankAccounts == nil {
		return &Error{Kind: KindMissingAccount}
	}

	if p.IBAN != "" {
		if err := validateIBAN(p.IBAN); err != nil {
			return err
		}
	}

	for _, acc := range p.BankAccounts {
		if err := validateIBAN(acc.IBAN); err != nil {
			return err
		}
		if acc.SWIFT != "" {
			if err := validateSWIFT(acc.SWIFT); err != nil {
				return err
			}
		}
	}

	if p.SWIFT != "" {
		if err := validateSWIFT(p.SWIFT); err != nil {
			return err
		}
	}

	lengths := []struct {
		field string
		value string
		max   int
	}{
		{"invoice_id", p.InvoiceID, maxInvoiceID},
		{"beneficiary_name", p.BeneficiaryName, maxBeneficiaryName},
		{"beneficiary_address_1", p.BeneficiaryAddress1, maxAddressLine},
		{"beneficiary_address_2", p.BeneficiaryAddress2, maxAddressLine},
		{"variable_symbol", p.VariableSymbol, maxVariableSymbol},
		{"constant_symbol", p.ConstantSymbol, maxConstantSymbol},
		{"specific_symbol", p.SpecificSymbol, maxSpecificSymbol},
		{"originators_reference_information", p.OriginatorsReferenceInformation, maxReferenceInfo},
		{"note", p.Note, maxNote},
	}
	for _, l := range lengths {
		if len(l.value) > l.max {
			return fieldTooLong(l.field, l.max, len(l.value))
		}
	}

	return nil
}

func validateIBAN(iban string) error {
	clean := strings.ReplaceAll(iban, " ", "")

	if len(clean) < 15 || len(clean) > 34 {
		return invalidIban("IBAN must be between 15 and 34 characters")
	}
	if !isASCIILetter(clean[0]) || !isASCIILetter(clean[1]) {
		return invalidIban("IBAN must start with a 2-letter country code")
	}
	if !isASCIIDigit(clean[2]) || !isASCIIDigit(clean[3]) {
		return invalidIban("IBAN check digits must be numeric")
	}
	for i := 0; i < len(clean); i++ {
		if !isASCIILetter(clean[i]) && !isASCIIDigit(clean[i]) {
			return invalidIban("IBAN contains invalid characters")
		}
	}
	return nil
}

func validateSWIFT(swift string) error {
	clean := strings.ReplaceAll(swift, " ", "")

	if len(clean) != 8 && len(clean) != 11 {
		return invalidSwift("SWIFT/BIC must be 8 or 11 characters")
	}
	for i := 0; i < len(clean); i++ {
		if !isASCIILetter(clean[i]) && !isASCIIDigit(clean[i]) {
			return invalidSwift("SWIFT/BIC contains invalid characters")
		}
	}
	return nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
