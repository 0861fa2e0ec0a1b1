package approval

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"expense-approval-service/internal/domain/company"
	domain "expense-approval-service/internal/domain/expense"
	"expense-approval-service/internal/domain/uow"
	"expense-approval-service/internal/domain/user"
	expenseUC "expense-approval-service/internal/usecase/expense"
)

// Converter annotates amounts for display; implemented by
// infrastructure/exchange.Converter.
type Converter interface {
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, bool)
}

type Usecase struct {
	uow       uow.UnitOfWork
	users     user.Repository
	expenses  domain.Repository
	companies company.Repository
	converter Converter
	log       *zap.Logger
}

func NewUsecase(tx uow.UnitOfWork, users user.Repository, expenses domain.Repository, companies company.Repository, converter Converter, log *zap.Logger) *Usecase {
	return &Usecase{uow: tx, users: users, expenses: expenses, companies: companies, converter: converter, log: log}
}

// Decide records actingUser's decision on an expense and terminates its
// workflow. Whether the expense is missing, Pending, already terminal, or
// assigned to someone else, the caller gets the same collapsed
// ErrNotFoundOrForbidden so non-approvers cannot probe for existence.
//
// The row lock plus the conditional status update guarantee at most one
// successful decision per approval cycle: a racer that read a stale approver
// pointer fails the UPDATE's guard and gets ErrConflict instead of silently
// double-appending history.
func (u *Usecase) Decide(ctx context.Context, expenseID string, actingUser *user.User, in DecideInput) (*expenseUC.ExpenseDTO, error) {
	decision := domain.Decision(in.Decision)
	if !decision.Valid() {
		return nil, fmt.Errorf("%w: decision must be Approved or Rejected", domain.ErrInvalidInput)
	}
	target := domain.StatusApproved
	if decision == domain.DecisionRejected {
		target = domain.StatusRejected
	}

	var dto *expenseUC.ExpenseDTO
	err := u.uow.WithinExpenseTx(ctx, expenseID, func(r uow.Repos, e *domain.Expense) error {
		if e.CurrentApproverID == nil || *e.CurrentApproverID != actingUser.UserID {
			return domain.ErrNotFoundOrForbidden
		}

		rows, err := r.Expenses.FinalizeDecision(ctx, e.ID, actingUser.UserID, target)
		if err != nil {
			return err
		}
		if rows == 0 {
			return domain.ErrConflict
		}

		// Only the race winner reaches this append, so history grows by at
		// most one entry per approval cycle.
		h := &domain.HistoryEntry{
			ExpenseID:    e.ID,
			ApproverID:   actingUser.UserID,
			ApproverName: actingUser.Name,
			Decision:     decision,
			Comment:      in.Comment,
			DecidedAt:    time.Now().UTC(),
		}
		if err := r.Expenses.AppendHistory(ctx, h); err != nil {
			return err
		}

		updated, err := r.Expenses.GetByExpenseID(ctx, e.ExpenseID)
		if err != nil {
			return err
		}
		dto = expenseUC.ToDTO(updated)
		return nil
	})
	if err != nil {
		// A missing row reads the same as a foreign approver.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFoundOrForbidden
		}
		return nil, err
	}

	u.log.Info("expense decided",
		zap.String("expense_id", expenseID),
		zap.String("approver_id", actingUser.UserID),
		zap.String("decision", string(decision)))
	return dto, nil
}

// PendingQueue lists expenses waiting on actingUser, annotated with a
// conversion into the company's reporting currency.
func (u *Usecase) PendingQueue(ctx context.Context, actingUser *user.User) ([]QueueItemDTO, error) {
	list, err := u.expenses.ListPendingForApprover(ctx, actingUser.UserID)
	if err != nil {
		return nil, err
	}
	comp, err := u.companies.GetByID(ctx, actingUser.CompanyID)
	if err != nil {
		return nil, err
	}
	names, err := u.claimantNames(ctx, list)
	if err != nil {
		return nil, err
	}

	out := make([]QueueItemDTO, 0, len(list))
	for i := range list {
		e := &list[i]
		item := QueueItemDTO{
			ExpenseDTO:   *expenseUC.ToDTO(e),
			BaseCurrency: comp.DefaultCurrency,
			Conversion:   ConversionUnavailable,
		}
		item.ClaimantName = names[e.ClaimantID]
		if converted, ok := u.converter.Convert(ctx, e.Amount, e.Currency, comp.DefaultCurrency); ok {
			item.ConvertedAmount = converted.StringFixed(2)
			item.Conversion = ConversionOK
		}
		out = append(out, item)
	}
	return out, nil
}

// TeamExpenses returns every expense filed by users whose manager list
// contains actingUser, any status.
func (u *Usecase) TeamExpenses(ctx context.Context, actingUser *user.User) ([]expenseUC.ExpenseDTO, error) {
	team, err := u.users.ListManagedBy(ctx, actingUser.UserID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(team))
	for i := range team {
		ids = append(ids, team[i].UserID)
	}
	list, err := u.expenses.ListByClaimants(ctx, ids)
	if err != nil {
		return nil, err
	}
	return u.toDTOsWithNames(ctx, list)
}

// CompanyExpenses is the company-wide audit view.
func (u *Usecase) CompanyExpenses(ctx context.Context, actingUser *user.User) ([]expenseUC.ExpenseDTO, error) {
	list, err := u.expenses.ListByCompany(ctx, actingUser.CompanyID)
	if err != nil {
		return nil, err
	}
	return u.toDTOsWithNames(ctx, list)
}

func (u *Usecase) claimantNames(ctx context.Context, list []domain.Expense) (map[string]string, error) {
	seen := make(map[string]struct{}, len(list))
	ids := make([]string, 0, len(list))
	for i := range list {
		cid := list[i].ClaimantID
		if _, dup := seen[cid]; dup {
			continue
		}
		seen[cid] = struct{}{}
		ids = append(ids, cid)
	}
	claimants, err := u.users.ListByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(claimants))
	for i := range claimants {
		names[claimants[i].UserID] = claimants[i].Name
	}
	return names, nil
}

func (u *Usecase) toDTOsWithNames(ctx context.Context, list []domain.Expense) ([]expenseUC.ExpenseDTO, error) {
	names, err := u.claimantNames(ctx, list)
	if err != nil {
		return nil, err
	}
	out := make([]expenseUC.ExpenseDTO, 0, len(list))
	for i := range list {
		dto := expenseUC.ToDTO(&list[i])
		dto.ClaimantName = names[list[i].ClaimantID]
		out = append(out, *dto)
	}
	return out, nil
}
