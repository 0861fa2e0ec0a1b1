package expensemock

import (
	"context"

	domain "expense-approval-service/internal/domain/expense"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                  func(ctx context.Context, e *domain.Expense) error
	GetByExpenseIDFn          func(ctx context.Context, expenseID string) (*domain.Expense, error)
	GetByExpenseIDForUpdateFn func(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListByClaimantFn          func(ctx context.Context, claimantID string) ([]domain.Expense, error)
	ListByClaimantsFn         func(ctx context.Context, claimantIDs []string) ([]domain.Expense, error)
	ListByCompanyFn           func(ctx context.Context, companyID uint64) ([]domain.Expense, error)
	ListPendingForApproverFn  func(ctx context.Context, approverID string) ([]domain.Expense, error)
	AppendHistoryFn           func(ctx context.Context, h *domain.HistoryEntry) error
	FinalizeDecisionFn        func(ctx context.Context, id uint64, approverID string, status domain.Status) (int64, error)
	DeleteByClaimantFn        func(ctx context.Context, claimantID string) error
}

func (m *Repo) Create(ctx context.Context, e *domain.Expense) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByExpenseID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	if m.GetByExpenseIDFn != nil {
		return m.GetByExpenseIDFn(ctx, expenseID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByExpenseIDForUpdate(ctx context.Context, expenseID string) (*domain.Expense, error) {
	if m.GetByExpenseIDForUpdateFn != nil {
		return m.GetByExpenseIDForUpdateFn(ctx, expenseID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByClaimant(ctx context.Context, claimantID string) ([]domain.Expense, error) {
	if m.ListByClaimantFn != nil {
		return m.ListByClaimantFn(ctx, claimantID)
	}
	return nil, nil
}

func (m *Repo) ListByClaimants(ctx context.Context, claimantIDs []string) ([]domain.Expense, error) {
	if m.ListByClaimantsFn != nil {
		return m.ListByClaimantsFn(ctx, claimantIDs)
	}
	return nil, nil
}

func (m *Repo) ListByCompany(ctx context.Context, companyID uint64) ([]domain.Expense, error) {
	if m.ListByCompanyFn != nil {
		return m.ListByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (m *Repo) ListPendingForApprover(ctx context.Context, approverID string) ([]domain.Expense, error) {
	if m.ListPendingForApproverFn != nil {
		return m.ListPendingForApproverFn(ctx, approverID)
	}
	return nil, nil
}

func (m *Repo) AppendHistory(ctx context.Context, h *domain.HistoryEntry) error {
	if m.AppendHistoryFn != nil {
		return m.AppendHistoryFn(ctx, h)
	}
	return nil
}

func (m *Repo) FinalizeDecision(ctx context.Context, id uint64, approverID string, status domain.Status) (int64, error) {
	if m.FinalizeDecisionFn != nil {
		return m.FinalizeDecisionFn(ctx, id, approverID, status)
	}
	return 0, nil
}

func (m *Repo) DeleteByClaimant(ctx context.Context, claimantID string) error {
	if m.DeleteByClaimantFn != nil {
		return m.DeleteByClaimantFn(ctx, claimantID)
	}
	return nil
}
