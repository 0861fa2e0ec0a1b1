package mysql

import (
	"context"

	ruleDomain "expense-approval-service/internal/domain/approvalrule"

	"gorm.io/gorm"
)

type ApprovalRuleRepository struct{ db *gorm.DB }

func NewApprovalRuleRepository(db *gorm.DB) *ApprovalRuleRepository {
	return &ApprovalRuleRepository{db: db}
}

func (r *ApprovalRuleRepository) Create(ctx context.Context, rule *ruleDomain.ApprovalRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *ApprovalRuleRepository) ListByCompany(ctx context.Context, companyID uint64) ([]ruleDomain.ApprovalRule, error) {
	var out []ruleDomain.ApprovalRule
	res := r.db.WithContext(ctx).
		Preload("Steps", func(db *gorm.DB) *gorm.DB { return db.Order("sequence ASC") }).
		Where("company_id = ?", companyID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
