package passwordreset

import "context"

type Repository interface {
	Create(ctx context.Context, r *PasswordReset) error
	GetByResetID(ctx context.Context, resetID string) (*PasswordReset, error)
	ListByCompany(ctx context.Context, companyID uint64) ([]PasswordReset, error)
	Delete(ctx context.Context, r *PasswordReset) error
}
