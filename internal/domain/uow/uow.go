package uow

import (
	"context"

	"expense-approval-service/internal/domain/expense"
	"expense-approval-service/internal/domain/user"
)

type Repos struct {
	Users    user.Repository
	Expenses expense.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the expense row first, then pass it in
	WithinExpenseTx(ctx context.Context, expenseID string, fn func(r Repos, e *expense.Expense) error) error
}
