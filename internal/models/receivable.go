package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type PaymentFrequency string

const (
	PaymentBiweekly  PaymentFrequency = "biweekly"
	PaymentMonthly   PaymentFrequency = "monthly"
	PaymentLumpSum   PaymentFrequency = "lump_sum"
	PaymentIrregular PaymentFrequency = "irregular"
)

type ReceivableStatus string

const (
	ReceivableActive     ReceivableStatus = "active"
	ReceivablePaid       ReceivableStatus = "paid"
	ReceivableOverdue    ReceivableStatus = "overdue"
	ReceivableWrittenOff ReceivableStatus = "written_off"
)

// Receivable is money owed to the ledger owner.
type Receivable struct {
	ID                  int              `json:"id" csv:"id"`
	DebtorName          string           `json:"debtor_name" csv:"debtor_name"`
	OriginalAmount      decimal.Decimal  `json:"original_amount" csv:"original_amount"`
	CurrentBalance      decimal.Decimal  `json:"current_balance" csv:"current_balance"`
	LoanDate            string           `json:"loan_date" csv:"loan_date"`
	ExpectedPaymentDate string           `json:"expected_payment_date" csv:"expected_payment_date"`
	PaymentFrequency    PaymentFrequency `json:"payment_frequency" csv:"payment_frequency"`
	Status              ReceivableStatus `json:"status" csv:"status"`
	Notes               string           `json:"notes" csv:"notes"`
}

func (r Receivable) Validate() error {
	switch r.PaymentFrequency {
	case PaymentBiweekly, PaymentMonthly, PaymentLumpSum, PaymentIrregular:
	default:
		return fmt.Errorf("%w: payment frequency %q", ErrInvalidEnum, r.PaymentFrequency)
	}
	switch r.Status {
	case ReceivableActive, ReceivablePaid, ReceivableOverdue, ReceivableWrittenOff:
	default:
		return fmt.Errorf("%w: receivable status %q", ErrInvalidEnum, r.Status)
	}
	return nil
}

// ReceivablePayment records money received against a receivable. Payments do
// not change the receivable balance on their own.
type ReceivablePayment struct {
	ID               int             `json:"id" csv:"id"`
	ReceivableID     int             `json:"receivable_id" csv:"receivable_id"`
	PeriodID         int             `json:"period_id" csv:"period_id"`
	PaymentDate      string          `json:"payment_date" csv:"payment_date"`
	AmountReceived   decimal.Decimal `json:"amount_received" csv:"amount_received"`
	RemainingBalance decimal.Decimal `json:"remaining_balance" csv:"remaining_balance"`
	Notes            string          `json:"notes" csv:"notes"`
}
