package rulemock

import (
	"context"

	domain "expense-approval-service/internal/domain/approvalrule"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, r *domain.ApprovalRule) error
	ListByCompanyFn func(ctx context.Context, companyID uint64) ([]domain.ApprovalRule, error)
}

func (m *Repo) Create(ctx context.Context, r *domain.ApprovalRule) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) ListByCompany(ctx context.Context, companyID uint64) ([]domain.ApprovalRule, error) {
	if m.ListByCompanyFn != nil {
		return m.ListByCompanyFn(ctx, companyID)
	}
	return nil, nil
}
