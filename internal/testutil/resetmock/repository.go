package resetmock

import (
	"context"

	domain "expense-approval-service/internal/domain/passwordreset"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, r *domain.PasswordReset) error
	GetByResetIDFn  func(ctx context.Context, resetID string) (*domain.PasswordReset, error)
	ListByCompanyFn func(ctx context.Context, companyID uint64) ([]domain.PasswordReset, error)
	DeleteFn        func(ctx context.Context, r *domain.PasswordReset) error
}

func (m *Repo) Create(ctx context.Context, r *domain.PasswordReset) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}

func (m *Repo) GetByResetID(ctx context.Context, resetID string) (*domain.PasswordReset, error) {
	if m.GetByResetIDFn != nil {
		return m.GetByResetIDFn(ctx, resetID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByCompany(ctx context.Context, companyID uint64) ([]domain.PasswordReset, error) {
	if m.ListByCompanyFn != nil {
		return m.ListByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (m *Repo) Delete(ctx context.Context, r *domain.PasswordReset) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, r)
	}
	return nil
}
