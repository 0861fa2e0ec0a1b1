package uowmock

import (
	"context"

	"expense-approval-service/internal/domain/expense"
	"expense-approval-service/internal/domain/uow"
)

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinExpenseTxFn func(ctx context.Context, expenseID string, fn func(r uow.Repos, e *expense.Expense) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return nil
}

func (m *UoW) WithinExpenseTx(ctx context.Context, expenseID string, fn func(r uow.Repos, e *expense.Expense) error) error {
	if m.WithinExpenseTxFn != nil {
		return m.WithinExpenseTxFn(ctx, expenseID, fn)
	}
	return nil
}
