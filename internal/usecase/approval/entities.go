package approval

import (
	expenseUC "expense-approval-service/internal/usecase/expense"
)

type DecideInput struct {
	Decision string `json:"decision"`
	Comment  string `json:"comment"`
}

const (
	ConversionOK          = "ok"
	ConversionUnavailable = "unavailable"
)

// QueueItemDTO is one pending expense annotated with a best-effort conversion
// into the approver company's reporting currency. Conversion failure only
// marks the item unavailable; the rest of the fields are always present.
// ConvertedAmount is pre-rendered with two decimals so 324.00 stays "324.00"
// on the wire instead of collapsing to "324".
type QueueItemDTO struct {
	expenseUC.ExpenseDTO
	BaseCurrency    string `json:"base_currency"`
	ConvertedAmount string `json:"converted_amount,omitempty"`
	Conversion      string `json:"conversion"`
}
