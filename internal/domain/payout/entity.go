package payout

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayoutEntry is a reconciling payment against a month's net payable.
// Multiple payouts per employee per month accumulate.
type PayoutEntry struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Month       string          `json:"month"`
	PaymentMode PaymentMode     `json:"payment_mode"`
	Reference   string          `json:"reference,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

type PaymentMode string

const (
	ModeCash   PaymentMode = "cash"
	ModeBank   PaymentMode = "bank"
	ModeCheque PaymentMode = "cheque"
)
