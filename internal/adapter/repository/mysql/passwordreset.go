package mysql

import (
	"context"

	resetDomain "expense-approval-service/internal/domain/passwordreset"

	"gorm.io/gorm"
)

type PasswordResetRepository struct{ db *gorm.DB }

func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Create(ctx context.Context, pr *resetDomain.PasswordReset) error {
	return r.db.WithContext(ctx).Create(pr).Error
}

func (r *PasswordResetRepository) GetByResetID(ctx context.Context, resetID string) (*resetDomain.PasswordReset, error) {
	var out resetDomain.PasswordReset
	res := r.db.WithContext(ctx).Where("reset_id = ?", resetID).First(&out)
	return &out, res.Error
}

func (r *PasswordResetRepository) ListByCompany(ctx context.Context, companyID uint64) ([]resetDomain.PasswordReset, error) {
	var out []resetDomain.PasswordReset
	res := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *PasswordResetRepository) Delete(ctx context.Context, pr *resetDomain.PasswordReset) error {
	return r.db.WithContext(ctx).Delete(pr).Error
}
