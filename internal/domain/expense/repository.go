package expense

import "context"

type Repository interface {
	Create(ctx context.Context, e *Expense) error
	// GetByExpenseID loads the expense with its history in insertion order.
	GetByExpenseID(ctx context.Context, expenseID string) (*Expense, error)
	// GetByExpenseIDForUpdate locks the row for the enclosing transaction.
	GetByExpenseIDForUpdate(ctx context.Context, expenseID string) (*Expense, error)
	ListByClaimant(ctx context.Context, claimantID string) ([]Expense, error)
	ListByClaimants(ctx context.Context, claimantIDs []string) ([]Expense, error)
	ListByCompany(ctx context.Context, companyID uint64) ([]Expense, error)
	ListPendingForApprover(ctx context.Context, approverID string) ([]Expense, error)
	AppendHistory(ctx context.Context, h *HistoryEntry) error
	// FinalizeDecision is the single write path for workflow fields: a
	// conditional update that commits only while the expense is still
	// In Progress with approverID as its current approver. Returns the
	// number of rows affected; zero means another decision won the race.
	FinalizeDecision(ctx context.Context, id uint64, approverID string, status Status) (int64, error)
	DeleteByClaimant(ctx context.Context, claimantID string) error
}
