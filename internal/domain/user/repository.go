package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListByCompany(ctx context.Context, companyID uint64) ([]User, error)
	ListByUserIDs(ctx context.Context, userIDs []string) ([]User, error)
	// ListManagedBy returns users whose manager list contains managerID.
	ListManagedBy(ctx context.Context, managerID string) ([]User, error)
	Save(ctx context.Context, u *User) error
	// ReplaceManagers swaps the full ordered manager list in one shot.
	ReplaceManagers(ctx context.Context, u *User, managerIDs []string) error
	Delete(ctx context.Context, u *User) error
}
