package usermock

import (
	"context"

	domain "expense-approval-service/internal/domain/user"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn          func(ctx context.Context, u *domain.User) error
	GetByUserIDFn     func(ctx context.Context, userID string) (*domain.User, error)
	GetByEmailFn      func(ctx context.Context, email string) (*domain.User, error)
	ListByCompanyFn   func(ctx context.Context, companyID uint64) ([]domain.User, error)
	ListByUserIDsFn   func(ctx context.Context, userIDs []string) ([]domain.User, error)
	ListManagedByFn   func(ctx context.Context, managerID string) ([]domain.User, error)
	SaveFn            func(ctx context.Context, u *domain.User) error
	ReplaceManagersFn func(ctx context.Context, u *domain.User, managerIDs []string) error
	DeleteFn          func(ctx context.Context, u *domain.User) error
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByCompany(ctx context.Context, companyID uint64) ([]domain.User, error) {
	if m.ListByCompanyFn != nil {
		return m.ListByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (m *Repo) ListByUserIDs(ctx context.Context, userIDs []string) ([]domain.User, error) {
	if m.ListByUserIDsFn != nil {
		return m.ListByUserIDsFn(ctx, userIDs)
	}
	return nil, nil
}

func (m *Repo) ListManagedBy(ctx context.Context, managerID string) ([]domain.User, error) {
	if m.ListManagedByFn != nil {
		return m.ListManagedByFn(ctx, managerID)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}

func (m *Repo) ReplaceManagers(ctx context.Context, u *domain.User, managerIDs []string) error {
	if m.ReplaceManagersFn != nil {
		return m.ReplaceManagersFn(ctx, u, managerIDs)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, u *domain.User) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, u)
	}
	return nil
}
