package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	domain "expense-approval-service/internal/domain/expense"
	"expense-approval-service/internal/domain/user"
	"expense-approval-service/pkg/id"
)

type Usecase struct {
	users    user.Repository
	expenses domain.Repository
}

func NewUsecase(users user.Repository, expenses domain.Repository) *Usecase {
	return &Usecase{users: users, expenses: expenses}
}

// Create files a new expense for the claimant and routes it to its first
// approver. A resolved approver makes the expense In Progress; no approver
// leaves it Pending with no active workflow.
func (u *Usecase) Create(ctx context.Context, claimant *user.User, in CreateExpenseInput) (*ExpenseDTO, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}
	if !in.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidInput)
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if len(currency) != 3 {
		return nil, fmt.Errorf("%w: currency must be a 3-letter code", domain.ErrInvalidInput)
	}
	category := domain.Category(in.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, in.Category)
	}
	otherReason := strings.TrimSpace(in.OtherReason)
	if category == domain.CategoryOther && otherReason == "" {
		return nil, fmt.Errorf(`%w: a reason is required for the "Other" category`, domain.ErrInvalidInput)
	}
	if category != domain.CategoryOther {
		otherReason = ""
	}

	// Re-read the claimant so routing sees the current manager list, not a
	// stale copy from token issuance time.
	fresh, err := u.users.GetByUserID(ctx, claimant.UserID)
	if err != nil {
		return nil, err
	}

	expenseDate := in.ExpenseDate
	if expenseDate.IsZero() {
		expenseDate = time.Now().UTC()
	}

	e := &domain.Expense{
		ExpenseID:   id.NewID32(),
		Description: strings.TrimSpace(in.Description),
		ExpenseDate: expenseDate.UTC(),
		Amount:      in.Amount,
		Currency:    currency,
		Category:    category,
		OtherReason: otherReason,
		Status:      domain.StatusPending,
		ClaimantID:  fresh.UserID,
		CompanyID:   fresh.CompanyID,
		ReceiptURL:  strings.TrimSpace(in.ReceiptURL),
	}
	if approver := ResolveInitialApprover(fresh); approver != "" {
		e.Status = domain.StatusInProgress
		e.CurrentApproverID = &approver
	}

	if err := u.expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	return ToDTO(e), nil
}

// ListOwn returns the claimant's expenses newest first.
func (u *Usecase) ListOwn(ctx context.Context, claimant *user.User) ([]ExpenseDTO, error) {
	list, err := u.expenses.ListByClaimant(ctx, claimant.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]ExpenseDTO, 0, len(list))
	for i := range list {
		out = append(out, *ToDTO(&list[i]))
	}
	return out, nil
}
