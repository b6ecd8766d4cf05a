package payout

import (
	"github.com/facade-tech/workforce-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

var paymentModes = []string{
	string(ModeCash),
	string(ModeBank),
	string(ModeCheque),
}

type CreatePayoutRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
	// Amount is optional; when omitted or zero the full net payable for
	// the month is disbursed.
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	PaymentMode string           `json:"payment_mode"`
	Reference   string           `json:"reference,omitempty"`
}

func (r *CreatePayoutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be a valid month (YYYY-MM)"})
	}
	if r.Amount != nil && r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if !validator.IsInSlice(r.PaymentMode, paymentModes) {
		errs = append(errs, validator.ValidationError{Field: "payment_mode", Message: "must be 'cash', 'bank' or 'cheque'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayoutResponse struct {
	PayoutEntry
	EmployeeName string `json:"employee_name"`
}
