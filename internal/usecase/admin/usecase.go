package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"expense-approval-service/internal/domain/approvalrule"
	"expense-approval-service/internal/domain/expense"
	"expense-approval-service/internal/domain/passwordreset"
	"expense-approval-service/internal/domain/user"
	"expense-approval-service/pkg/id"
)

var (
	ErrInvalidInput = errors.New("invalid admin input")
	ErrSelfDelete   = errors.New("you cannot remove your own account")
	ErrSelfManager  = errors.New("a user cannot be their own manager")
	ErrForbidden    = errors.New("not authorized for this record")
)

type Usecase struct {
	users    user.Repository
	expenses expense.Repository
	resets   passwordreset.Repository
	rules    approvalrule.Repository
	log      *zap.Logger
}

func NewUsecase(users user.Repository, expenses expense.Repository, resets passwordreset.Repository, rules approvalrule.Repository, log *zap.Logger) *Usecase {
	return &Usecase{users: users, expenses: expenses, resets: resets, rules: rules, log: log}
}

type CreateEmployeeInput struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       string   `json:"role"`
	ManagerIDs []string `json:"manager_ids"`
}

type EmployeeDTO struct {
	UserID            string   `json:"user_id"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Role              string   `json:"role"`
	ManagerIDs        []string `json:"manager_ids"`
	TemporaryPassword bool     `json:"temporary_password"`
}

type CreatedEmployeeDTO struct {
	Employee          EmployeeDTO `json:"employee"`
	TemporaryPassword string      `json:"temporary_password"`
}

func toEmployeeDTO(u *user.User) EmployeeDTO {
	return EmployeeDTO{
		UserID:            u.UserID,
		Name:              u.Name,
		Email:             u.Email,
		Role:              string(u.Role),
		ManagerIDs:        u.ManagerIDs(),
		TemporaryPassword: u.TemporaryPassword,
	}
}

// CreateEmployee provisions an account with a one-time temporary password,
// returned once in the response for the admin to hand over.
func (u *Usecase) CreateEmployee(ctx context.Context, actingUser *user.User, in CreateEmployeeInput) (*CreatedEmployeeDTO, error) {
	if in.Name == "" || in.Email == "" {
		return nil, ErrInvalidInput
	}
	role := user.Role(in.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, in.Role)
	}
	if _, err := u.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, user.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newID := id.NewID32()
	if err := validateManagers(newID, in.ManagerIDs); err != nil {
		return nil, err
	}

	temp := id.NewTempPassword()
	hash, err := bcrypt.GenerateFromPassword([]byte(temp), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	links := make([]user.ManagerLink, 0, len(in.ManagerIDs))
	for i, mid := range in.ManagerIDs {
		links = append(links, user.ManagerLink{ManagerID: mid, Position: i})
	}
	emp := &user.User{
		UserID:            newID,
		Name:              in.Name,
		Email:             in.Email,
		PasswordHash:      string(hash),
		Role:              role,
		TemporaryPassword: true,
		CompanyID:         actingUser.CompanyID,
		Managers:          links,
	}
	if err := u.users.Create(ctx, emp); err != nil {
		return nil, err
	}

	u.log.Info("employee account created",
		zap.String("user_id", emp.UserID), zap.String("created_by", actingUser.UserID))
	return &CreatedEmployeeDTO{Employee: toEmployeeDTO(emp), TemporaryPassword: temp}, nil
}

type UpdateEmployeeInput struct {
	Role       *string   `json:"role"`
	ManagerIDs *[]string `json:"manager_ids"`
}

// UpdateEmployee changes role and/or the ordered manager list. Assigning a
// manager here is also how a Pending expense claimant gains a route for
// future submissions; existing Pending expenses are not revisited.
func (u *Usecase) UpdateEmployee(ctx context.Context, actingUser *user.User, userID string, in UpdateEmployeeInput) (*EmployeeDTO, error) {
	emp, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	if emp.CompanyID != actingUser.CompanyID {
		return nil, user.ErrNotFound
	}

	if in.Role != nil {
		role := user.Role(*in.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *in.Role)
		}
		emp.Role = role
	}
	// Validate everything before the first write so a bad manager list
	// cannot leave a half-applied update behind.
	if in.ManagerIDs != nil {
		if err := validateManagers(emp.UserID, *in.ManagerIDs); err != nil {
			return nil, err
		}
	}
	if err := u.users.Save(ctx, emp); err != nil {
		return nil, err
	}
	if in.ManagerIDs != nil {
		if err := u.users.ReplaceManagers(ctx, emp, *in.ManagerIDs); err != nil {
			return nil, err
		}
	}
	return ptr(toEmployeeDTO(emp)), nil
}

func (u *Usecase) ListEmployees(ctx context.Context, actingUser *user.User) ([]EmployeeDTO, error) {
	list, err := u.users.ListByCompany(ctx, actingUser.CompanyID)
	if err != nil {
		return nil, err
	}
	out := make([]EmployeeDTO, 0, len(list))
	for i := range list {
		out = append(out, toEmployeeDTO(&list[i]))
	}
	return out, nil
}

// DeleteEmployee removes the account and every expense the employee filed.
func (u *Usecase) DeleteEmployee(ctx context.Context, actingUser *user.User, userID string) error {
	if actingUser.UserID == userID {
		return ErrSelfDelete
	}
	emp, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.ErrNotFound
		}
		return err
	}
	if emp.CompanyID != actingUser.CompanyID {
		return user.ErrNotFound
	}
	if err := u.users.Delete(ctx, emp); err != nil {
		return err
	}
	return u.expenses.DeleteByClaimant(ctx, emp.UserID)
}

// ResetPassword stamps a fresh temporary credential on the account and
// returns it once.
func (u *Usecase) ResetPassword(ctx context.Context, actingUser *user.User, userID string) (string, error) {
	emp, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", user.ErrNotFound
		}
		return "", err
	}
	if emp.CompanyID != actingUser.CompanyID {
		return "", user.ErrNotFound
	}

	temp := id.NewTempPassword()
	hash, err := bcrypt.GenerateFromPassword([]byte(temp), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	emp.PasswordHash = string(hash)
	emp.TemporaryPassword = true
	if err := u.users.Save(ctx, emp); err != nil {
		return "", err
	}
	u.log.Info("password reset by admin",
		zap.String("user_id", emp.UserID), zap.String("reset_by", actingUser.UserID))
	return temp, nil
}

func (u *Usecase) ListPasswordResets(ctx context.Context, actingUser *user.User) ([]passwordreset.PasswordReset, error) {
	return u.resets.ListByCompany(ctx, actingUser.CompanyID)
}

// ResolvePasswordReset deletes the pending record once the admin has handed
// the temporary credential to the user.
func (u *Usecase) ResolvePasswordReset(ctx context.Context, actingUser *user.User, resetID string) error {
	req, err := u.resets.GetByResetID(ctx, resetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return passwordreset.ErrNotFound
		}
		return err
	}
	if req.CompanyID != actingUser.CompanyID {
		return ErrForbidden
	}
	return u.resets.Delete(ctx, req)
}

type CreateRuleInput struct {
	Name               string   `json:"name"`
	IsManagerApprover  bool     `json:"is_manager_approver"`
	SequentialApprover []string `json:"sequential_approvers"`
	RuleType           string   `json:"rule_type"`
	Percentage         *int     `json:"percentage"`
	SpecificApproverID string   `json:"specific_approver_id"`
}

// CreateRule stores an approval rule as configuration data. The decision
// engine runs a single-approver hop and does not evaluate rules.
func (u *Usecase) CreateRule(ctx context.Context, actingUser *user.User, in CreateRuleInput) (*approvalrule.ApprovalRule, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ErrInvalidInput
	}
	rule := &approvalrule.ApprovalRule{
		RuleID:            id.NewID32(),
		Name:              in.Name,
		CompanyID:         actingUser.CompanyID,
		IsManagerApprover: in.IsManagerApprover,
	}
	if in.RuleType != "" {
		rt := approvalrule.RuleType(in.RuleType)
		if !rt.Valid() {
			return nil, fmt.Errorf("%w: unknown rule type %q", ErrInvalidInput, in.RuleType)
		}
		rule.RuleType = &rt
		if in.Percentage != nil {
			if *in.Percentage < 1 || *in.Percentage > 100 {
				return nil, fmt.Errorf("%w: percentage must be 1..100", ErrInvalidInput)
			}
			rule.Percentage = in.Percentage
		}
		if in.SpecificApproverID != "" {
			rule.SpecificApproverID = &in.SpecificApproverID
		}
	}
	for i, approverID := range in.SequentialApprover {
		rule.Steps = append(rule.Steps, approvalrule.ApproverStep{Sequence: i + 1, ApproverID: approverID})
	}
	if err := u.rules.Create(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

func (u *Usecase) ListRules(ctx context.Context, actingUser *user.User) ([]approvalrule.ApprovalRule, error) {
	return u.rules.ListByCompany(ctx, actingUser.CompanyID)
}

func validateManagers(userID string, managerIDs []string) error {
	for _, mid := range managerIDs {
		if mid == userID {
			return ErrSelfManager
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
