package company

import "context"

type Repository interface {
	Create(ctx context.Context, c *Company) error
	GetByID(ctx context.Context, id uint64) (*Company, error)
	GetByName(ctx context.Context, name string) (*Company, error)
}
