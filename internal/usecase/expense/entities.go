package expense

import (
	"time"

	"github.com/shopspring/decimal"

	domain "expense-approval-service/internal/domain/expense"
)

type CreateExpenseInput struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Category    string          `json:"category"`
	OtherReason string          `json:"other_reason"`
	ExpenseDate time.Time       `json:"expense_date"`
	ReceiptURL  string          `json:"receipt_url"`
}

type HistoryDTO struct {
	ApproverID   string    `json:"approver_id"`
	ApproverName string    `json:"approver_name"`
	Decision     string    `json:"decision"`
	Comment      string    `json:"comment,omitempty"`
	DecidedAt    time.Time `json:"decided_at"`
}

type ExpenseDTO struct {
	ExpenseID         string          `json:"expense_id"`
	Description       string          `json:"description"`
	ExpenseDate       time.Time       `json:"expense_date"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	Category          string          `json:"category"`
	OtherReason       string          `json:"other_reason,omitempty"`
	Status            string          `json:"status"`
	ClaimantID        string          `json:"claimant_id"`
	ClaimantName      string          `json:"claimant_name,omitempty"`
	ReceiptURL        string          `json:"receipt_url,omitempty"`
	CurrentApproverID string          `json:"current_approver_id,omitempty"`
	History           []HistoryDTO    `json:"approval_history"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ToDTO maps the aggregate for transport; history keeps insertion order.
func ToDTO(e *domain.Expense) *ExpenseDTO {
	dto := &ExpenseDTO{
		ExpenseID:   e.ExpenseID,
		Description: e.Description,
		ExpenseDate: e.ExpenseDate,
		Amount:      e.Amount,
		Currency:    e.Currency,
		Category:    string(e.Category),
		OtherReason: e.OtherReason,
		Status:      string(e.Status),
		ClaimantID:  e.ClaimantID,
		ReceiptURL:  e.ReceiptURL,
		History:     make([]HistoryDTO, 0, len(e.History)),
		CreatedAt:   e.CreatedAt,
	}
	if e.CurrentApproverID != nil {
		dto.CurrentApproverID = *e.CurrentApproverID
	}
	for _, h := range e.History {
		dto.History = append(dto.History, HistoryDTO{
			ApproverID:   h.ApproverID,
			ApproverName: h.ApproverName,
			Decision:     string(h.Decision),
			Comment:      h.Comment,
			DecidedAt:    h.DecidedAt,
		})
	}
	return dto
}
