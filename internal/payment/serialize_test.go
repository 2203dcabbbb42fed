package payment

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/matoboco/pay-by-square/internal/model"
)

const testIBAN = "SK9611000000002918599669"

func minimalRequest() *model.PaymentRequest {
	return &model.PaymentRequest{
		Amount: decimal.NewFromFloat(100.5),
		IBAN:   testIBAN,
	}
}

func TestSerializeFieldCount(t *testing.T) {
	fields := strings.Split(Serialize(minimalRequest()), "\t")
	if len(fields) != 17 {
		t.Fatalf("expected 17 fields, got %d", len(fields))
	}
}

func TestSerializeMinimal(t *testing.T) {
	fields := strings.Split(Serialize(minimalRequest()), "\t")

	if fields[0] != "1" {
		t.Errorf("payment options: expected default %q, got %q", "1", fields[0])
	}
	if fields[1] != "100.50" {
		t.Errorf("amount: expected %q, got %q", "100.50", fields[1])
	}
	if fields[2] != "EUR" {
		t.Errorf("currency: expected default %q, got %q", "EUR", fields[2])
	}
	if fields[9] != testIBAN {
		t.Errorf("account: expected %q, got %q", testIBAN, fields[9])
	}
	for _, i := range []int{3, 4, 5, 6, 7, 8, 10, 11, 12, 13, 14, 15, 16} {
		if fields[i] != "" {
			t.Errorf("field %d: expected empty, got %q", i+1, fields[i])
		}
	}
}

func TestSerializeDates(t *testing.T) {
	req := minimalRequest()
	date := model.NewDate(2024, time.March, 15)
	due := model.NewDate(2024, time.April, 1)
	req.Date = &date
	req.PaymentDueDate = &due

	fields := strings.Split(Serialize(req), "\t")
	if fields[3] != "20240315" {
		t.Errorf("payment date: expected %q, got %q", "20240315", fields[3])
	}
	if fields[13] != "20240401" {
		t.Errorf("due date: expected %q, got %q", "20240401", fields[13])
	}
}

func TestSerializePaymentOptions(t *testing.T) {
	req := minimalRequest()
	req.PaymentOptions = []model.PaymentOption{
		model.PaymentOrderOption,
		model.StandingOrderOption,
		model.DirectDebitOption,
	}

	fields := strings.Split(Serialize(req), "\t")
	if fields[0] != "1,2,3" {
		t.Errorf("expected %q, got %q", "1,2,3", fields[0])
	}
}

func TestSerializeAccountWithSwift(t *testing.T) {
	req := minimalRequest()
	req.SWIFT = "TATRSKBX"

	fields := strings.Split(Serialize(req), "\t")
	if fields[9] != testIBAN+"|TATRSKBX" {
		t.Errorf("expected IBAN|SWIFT pair, got %q", fields[9])
	}
}

func TestSerializeBankAccountsList(t *testing.T) {
	req := &model.PaymentRequest{
		Amount: decimal.NewFromInt(10),
		BankAccounts: []model.BankAccount{
			{IBAN: testIBAN, SWIFT: "TATRSKBX"},
			{IBAN: "CZ6508000000192000145399"},
		},
	}

	fields := strings.Split(Serialize(req), "\t")
	want := testIBAN + "|TATRSKBX,CZ6508000000192000145399"
	if fields[9] != want {
		t.Errorf("expected %q, got %q", want, fields[9])
	}
}

func TestSerializeSymbolsAndTexts(t *testing.T) {
	req := minimalRequest()
	req.VariableSymbol = "1234567890"
	req.ConstantSymbol = "0308"
	req.SpecificSymbol = "99"
	req.OriginatorsReferenceInformation = "RF18539007547034"
	req.Note = "Payment for invoice"
	req.BeneficiaryName = "John Doe"
	req.BeneficiaryAddress1 = "Main Street 1"
	req.BeneficiaryAddress2 = "Bratislava"
	req.InvoiceID = "INV-42"

	fields := strings.Split(Serialize(req), "\t")
	want := map[int]string{
		4:  "1234567890",
		5:  "0308",
		6:  "99",
		7:  "RF18539007547034",
		8:  "Payment for invoice",
		10: "John Doe",
		11: "Main Street 1",
		12: "Bratislava",
		14: "INV-42",
	}
	for i, v := range want {
		if fields[i] != v {
			t.Errorf("field %d: expected %q, got %q", i+1, v, fields[i])
		}
	}
}

func TestSerializeStandingOrder(t *testing.T) {
	req := minimalRequest()
	req.StandingOrder = &model.StandingOrder{
		Day:         15,
		Month:       []int{1, 4, 7, 10},
		Periodicity: model.PeriodicityQuarterly,
		LastDate:    model.NewDate(2025, time.December, 31),
	}

	fields := strings.Split(Serialize(req), "\t")
	want := "15|1,4,7,10|Q|20251231"
	if fields[15] != want {
		t.Errorf("expected %q, got %q", want, fields[15])
	}
}

func TestSerializeDirectDebit(t *testing.T) {
	req := minimalRequest()
	req.DirectDebit = &model.DirectDebit{
		Scheme:    model.DirectDebitSchemeSEPA,
		DebitType: model.DirectDebitTypeRecurrent,
		MandateID: "MANDATE-1",
	}

	fields := strings.Split(Serialize(req), "\t")
	want := "SEPA|RCUR|MANDATE-1"
	if fields[16] != want {
		t.Errorf("expected %q, got %q", want, fields[16])
	}
}

func TestSerializeDirectDebitOneOff(t *testing.T) {
	req := minimalRequest()
	req.DirectDebit = &model.DirectDebit{
		Scheme:     model.DirectDebitSchemeOther,
		DebitType:  model.DirectDebitTypeOneOff,
		CreditorID: "SK19ZZZ70000000022",
	}

	fields := strings.Split(Serialize(req), "\t")
	want := "OTHER|ONEOFF|SK19ZZZ70000000022"
	if fields[16] != want {
		t.Errorf("expected %q, got %q", want, fields[16])
	}
}

func TestSerializeWholeAmount(t *testing.T) {
	req := minimalRequest()
	req.Amount = decimal.NewFromInt(25)

	fields := strings.Split(Serialize(req), "\t")
	if fields[1] != "25.00" {
		t.Errorf("expected %q, got %q", "25.00", fields[1])
	}
}
