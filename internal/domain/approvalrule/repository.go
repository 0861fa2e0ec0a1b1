package approvalrule

import "context"

type Repository interface {
	Create(ctx context.Context, r *ApprovalRule) error
	ListByCompany(ctx context.Context, companyID uint64) ([]ApprovalRule, error)
}
