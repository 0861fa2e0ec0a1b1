package mysql

import (
	"context"

	expenseDomain "expense-approval-service/internal/domain/expense"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExpenseRepository struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository { return &ExpenseRepository{db: db} }

func historyInOrder(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }

func (r *ExpenseRepository) Create(ctx context.Context, e *expenseDomain.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ExpenseRepository) GetByExpenseID(ctx context.Context, expenseID string) (*expenseDomain.Expense, error) {
	var out expenseDomain.Expense
	res := r.db.WithContext(ctx).
		Preload("History", historyInOrder).
		Where("expense_id = ?", expenseID).
		First(&out)
	return &out, res.Error
}

func (r *ExpenseRepository) GetByExpenseIDForUpdate(ctx context.Context, expenseID string) (*expenseDomain.Expense, error) {
	var out expenseDomain.Expense
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("expense_id = ?", expenseID).
		First(&out)
	return &out, res.Error
}

func (r *ExpenseRepository) ListByClaimant(ctx context.Context, claimantID string) ([]expenseDomain.Expense, error) {
	var out []expenseDomain.Expense
	res := r.db.WithContext(ctx).
		Preload("History", historyInOrder).
		Where("claimant_id = ?", claimantID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ExpenseRepository) ListByClaimants(ctx context.Context, claimantIDs []string) ([]expenseDomain.Expense, error) {
	if len(claimantIDs) == 0 {
		return nil, nil
	}
	var out []expenseDomain.Expense
	res := r.db.WithContext(ctx).
		Preload("History", historyInOrder).
		Where("claimant_id IN ?", claimantIDs).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ExpenseRepository) ListByCompany(ctx context.Context, companyID uint64) ([]expenseDomain.Expense, error) {
	var out []expenseDomain.Expense
	res := r.db.WithContext(ctx).
		Preload("History", historyInOrder).
		Where("company_id = ?", companyID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ExpenseRepository) ListPendingForApprover(ctx context.Context, approverID string) ([]expenseDomain.Expense, error) {
	var out []expenseDomain.Expense
	res := r.db.WithContext(ctx).
		Preload("History", historyInOrder).
		Where("current_approver_id = ? AND status = ?", approverID, expenseDomain.StatusInProgress).
		Order("created_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ExpenseRepository) AppendHistory(ctx context.Context, h *expenseDomain.HistoryEntry) error {
	return r.db.WithContext(ctx).Create(h).Error
}

// FinalizeDecision commits the terminal status only while the row still shows
// approverID as current approver and In Progress status. RowsAffected = 0
// means a concurrent decision got there first.
func (r *ExpenseRepository) FinalizeDecision(ctx context.Context, id uint64, approverID string, status expenseDomain.Status) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&expenseDomain.Expense{}).
		Where("id = ? AND status = ? AND current_approver_id = ?", id, expenseDomain.StatusInProgress, approverID).
		Updates(map[string]any{
			"status":              status,
			"current_approver_id": nil,
		})
	return res.RowsAffected, res.Error
}

func (r *ExpenseRepository) DeleteByClaimant(ctx context.Context, claimantID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []uint64
		if err := tx.Model(&expenseDomain.Expense{}).
			Where("claimant_id = ?", claimantID).
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("expense_id IN ?", ids).Delete(&expenseDomain.HistoryEntry{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&expenseDomain.Expense{}).Error
	})
}
