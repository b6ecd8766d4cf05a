package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

type AdvanceEntry struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
	Reason     string          `json:"reason"`
	CreatedAt  time.Time       `json:"created_at"`
	CreatedBy  string          `json:"created_by"`
}

// InitialAdvanceReason marks the advance recorded automatically when an
// employee is onboarded with an opening balance.
const InitialAdvanceReason = "Initial onboarding advance"
