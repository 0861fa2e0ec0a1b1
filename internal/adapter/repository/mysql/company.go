package mysql

import (
	"context"

	companyDomain "expense-approval-service/internal/domain/company"

	"gorm.io/gorm"
)

type CompanyRepository struct{ db *gorm.DB }

func NewCompanyRepository(db *gorm.DB) *CompanyRepository { return &CompanyRepository{db: db} }

func (r *CompanyRepository) Create(ctx context.Context, c *companyDomain.Company) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uint64) (*companyDomain.Company, error) {
	var out companyDomain.Company
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *CompanyRepository) GetByName(ctx context.Context, name string) (*companyDomain.Company, error) {
	var out companyDomain.Company
	res := r.db.WithContext(ctx).Where("name = ?", name).First(&out)
	return &out, res.Error
}
