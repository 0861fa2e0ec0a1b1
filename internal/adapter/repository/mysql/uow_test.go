package mysql

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	expenseDomain "expense-approval-service/internal/domain/expense"
	"expense-approval-service/internal/domain/uow"
	userDomain "expense-approval-service/internal/domain/user"
	"expense-approval-service/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// openUowTestDB migrates every table, so the UoW can orchestrate both repos.
func openUowTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userSQLite{}, &managerLinkSQLite{}, &expenseSQLite{}, &historySQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	userRepo := NewUserRepository(db)
	expRepo := NewExpenseRepository(db)

	claimant := makeUser("claimant@example.com", userDomain.RoleEmployee)
	var expenseID string
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Users.Create(ctx, claimant); err != nil {
			return err
		}
		e := makeExpense(claimant.UserID, nil, expenseDomain.StatusPending)
		expenseID = e.ExpenseID
		return r.Expenses.Create(ctx, e)
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	if _, err := userRepo.GetByUserID(ctx, claimant.UserID); err != nil {
		t.Fatalf("user not visible after commit: %v", err)
	}
	if _, err := expRepo.GetByExpenseID(ctx, expenseID); err != nil {
		t.Fatalf("expense not visible after commit: %v", err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	expRepo := NewExpenseRepository(db)

	sentinel := errors.New("boom")
	var expenseID string
	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		e := makeExpense(id.NewID32(), nil, expenseDomain.StatusPending)
		expenseID = e.ExpenseID
		if err := r.Expenses.Create(ctx, e); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	if _, err := expRepo.GetByExpenseID(ctx, expenseID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected expense absent after rollback, got %v", err)
	}
}

func TestGormUoW_WithinExpenseTx_Commit(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	expRepo := NewExpenseRepository(db)

	approver := id.NewID32()
	seed := makeExpense(id.NewID32(), &approver, expenseDomain.StatusInProgress)
	if err := expRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed expense: %v", err)
	}

	err := guow.WithinExpenseTx(ctx, seed.ExpenseID, func(r uow.Repos, e *expenseDomain.Expense) error {
		if e == nil || e.ExpenseID != seed.ExpenseID || e.Status != expenseDomain.StatusInProgress {
			t.Fatalf("unexpected expense passed to fn: %+v", e)
		}
		rows, err := r.Expenses.FinalizeDecision(ctx, e.ID, approver, expenseDomain.StatusApproved)
		if err != nil {
			return err
		}
		if rows != 1 {
			t.Fatalf("FinalizeDecision rows = %d", rows)
		}
		return r.Expenses.AppendHistory(ctx, &expenseDomain.HistoryEntry{
			ExpenseID: e.ID, ApproverID: approver, ApproverName: "M",
			Decision: expenseDomain.DecisionApproved, DecidedAt: time.Now().UTC(),
		})
	})
	if err != nil {
		t.Fatalf("WithinExpenseTx commit err: %v", err)
	}

	got, err := expRepo.GetByExpenseID(ctx, seed.ExpenseID)
	if err != nil {
		t.Fatalf("GetByExpenseID post-commit: %v", err)
	}
	if got.Status != expenseDomain.StatusApproved || len(got.History) != 1 {
		t.Fatalf("decision not committed: status=%s history=%d", got.Status, len(got.History))
	}
}

func TestGormUoW_WithinExpenseTx_Rollback(t *testing.T) {
	db := openUowTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	expRepo := NewExpenseRepository(db)

	approver := id.NewID32()
	seed := makeExpense(id.NewID32(), &approver, expenseDomain.StatusInProgress)
	if err := expRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed expense: %v", err)
	}

	sentinel := errors.New("stop")
	_ = guow.WithinExpenseTx(ctx, seed.ExpenseID, func(r uow.Repos, e *expenseDomain.Expense) error {
		if _, err := r.Expenses.FinalizeDecision(ctx, e.ID, approver, expenseDomain.StatusRejected); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	got, err := expRepo.GetByExpenseID(ctx, seed.ExpenseID)
	if err != nil {
		t.Fatalf("post-rollback GetByExpenseID: %v", err)
	}
	if got.Status != expenseDomain.StatusInProgress || got.CurrentApproverID == nil {
		t.Fatalf("rollback did not restore the row: %+v", got)
	}
}

func TestGormUoW_ConcurrentDecide_SingleWinner(t *testing.T) {
	db := openUowTestDB(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// a sqlite :memory: database exists per connection; a pool of one keeps
	// both goroutines on the same database and serializes their transactions
	sqlDB.SetMaxOpenConns(1)

	ctx := context.Background()
	guow := NewGormUoW(db)
	expRepo := NewExpenseRepository(db)

	approver := id.NewID32()
	seed := makeExpense(id.NewID32(), &approver, expenseDomain.StatusInProgress)
	if err := expRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed expense: %v", err)
	}

	decide := func(status expenseDomain.Status, decision expenseDomain.Decision) error {
		return guow.WithinExpenseTx(ctx, seed.ExpenseID, func(r uow.Repos, e *expenseDomain.Expense) error {
			rows, err := r.Expenses.FinalizeDecision(ctx, e.ID, approver, status)
			if err != nil {
				return err
			}
			if rows == 0 {
				return expenseDomain.ErrConflict
			}
			return r.Expenses.AppendHistory(ctx, &expenseDomain.HistoryEntry{
				ExpenseID: e.ID, ApproverID: approver, ApproverName: "M",
				Decision: decision, DecidedAt: time.Now().UTC(),
			})
		})
	}

	results := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		results <- decide(expenseDomain.StatusApproved, expenseDomain.DecisionApproved)
	}()
	go func() {
		defer wg.Done()
		results <- decide(expenseDomain.StatusRejected, expenseDomain.DecisionRejected)
	}()
	wg.Wait()
	close(results)

	wins, conflicts := 0, 0
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, expenseDomain.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected decide error: %v", err)
		}
	}
	if wins != 1 || conflicts != 1 {
		t.Fatalf("wins=%d conflicts=%d, want exactly one of each", wins, conflicts)
	}

	got, err := expRepo.GetByExpenseID(ctx, seed.ExpenseID)
	if err != nil {
		t.Fatalf("GetByExpenseID after race: %v", err)
	}
	if got.Status == expenseDomain.StatusInProgress || got.CurrentApproverID != nil {
		t.Fatalf("expense not terminal after race: %+v", got)
	}
	if len(got.History) != 1 {
		t.Fatalf("history rows = %d, want exactly one", len(got.History))
	}
}

func TestGormUoW_WithinExpenseTx_NotFound(t *testing.T) {
	db := openUowTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinExpenseTx(context.Background(), id.NewID32(), func(r uow.Repos, e *expenseDomain.Expense) error {
		t.Fatal("callback should not run when the expense is missing")
		return nil
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
