package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountCash          AccountType = "cash"
	AccountBank          AccountType = "bank"
	AccountDigitalWallet AccountType = "digital_wallet"
	AccountSalary        AccountType = "salary_account"
	AccountInvestment    AccountType = "investment"
	AccountCredit        AccountType = "credit"
)

func (t AccountType) Valid() bool {
	switch t {
	case AccountCash, AccountBank, AccountDigitalWallet, AccountSalary, AccountInvestment, AccountCredit:
		return true
	}
	return false
}

// Account is a named holding of liquid assets.
type Account struct {
	ID             int             `json:"id" csv:"id"`
	Name           string          `json:"name" csv:"name"`
	Type           AccountType     `json:"type" csv:"type"`
	CurrentBalance decimal.Decimal `json:"current_balance" csv:"current_balance"`
	LastUpdated    string          `json:"last_updated" csv:"last_updated"` // YYYY-MM-DD of the last balance update
	PeriodID       int             `json:"period_id" csv:"period_id"`
}

func (a Account) Validate() error {
	if !a.Type.Valid() {
		return fmt.Errorf("%w: account type %q", ErrInvalidEnum, a.Type)
	}
	return nil
}
