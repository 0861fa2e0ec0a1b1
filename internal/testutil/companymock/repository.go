package companymock

import (
	"context"

	domain "expense-approval-service/internal/domain/company"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn    func(ctx context.Context, c *domain.Company) error
	GetByIDFn   func(ctx context.Context, id uint64) (*domain.Company, error)
	GetByNameFn func(ctx context.Context, name string) (*domain.Company, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Company) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Company, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, context.Canceled
}
