package models

import "time"

// State is the persisted snapshot of the whole ledger. Field names follow the
// JSON blob written by earlier versions of the app.
type State struct {
	CurrentPeriod      *Period             `json:"currentPeriod"`
	Periods            []Period            `json:"periods"`
	Accounts           []Account           `json:"accounts"`
	Receivables        []Receivable        `json:"receivables"`
	BudgetTemplate     []BudgetTemplate    `json:"budgetTemplate"`
	IncomeTemplate     []IncomeTemplate    `json:"incomeTemplate"`
	ReceivablePayments []ReceivablePayment `json:"receivablePayments"`
	Transactions       []Transaction       `json:"transactions"`
	Variances          []Variance          `json:"variances"`
	Goals              []Goal              `json:"goals"`
	LastUpdated        time.Time           `json:"lastUpdated"`
	ExpenseCategories  []string            `json:"expenseCategories"`
}

// DefaultExpenseCategories seeds the category list of a fresh ledger.
var DefaultExpenseCategories = []string{
	"Transportes",
	"Suscripciones",
	"Servicios",
	"Hogar",
	"Salidas",
	"Credito",
	"Ahorro",
	"Salud",
	"Entretenimiento",
	"Educacion",
}
