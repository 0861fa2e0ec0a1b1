package mysql

import (
	"context"

	userDomain "expense-approval-service/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Omit("Managers").Save(u).Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).
		Preload("Managers", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("user_id = ?", userID).
		First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).
		Preload("Managers", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("email = ?", email).
		First(&out)
	return &out, res.Error
}

func (r *UserRepository) ListByCompany(ctx context.Context, companyID uint64) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).
		Preload("Managers", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("company_id = ?", companyID).
		Order("name ASC").
		Find(&out)
	return out, res.Error
}

func (r *UserRepository) ListByUserIDs(ctx context.Context, userIDs []string) ([]userDomain.User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var out []userDomain.User
	res := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&out)
	return out, res.Error
}

func (r *UserRepository) ListManagedBy(ctx context.Context, managerID string) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).
		Joins("JOIN user_managers um ON um.user_id = users.id").
		Where("um.manager_id = ?", managerID).
		Find(&out)
	return out, res.Error
}

func (r *UserRepository) ReplaceManagers(ctx context.Context, u *userDomain.User, managerIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", u.ID).Delete(&userDomain.ManagerLink{}).Error; err != nil {
			return err
		}
		links := make([]userDomain.ManagerLink, 0, len(managerIDs))
		for i, mid := range managerIDs {
			links = append(links, userDomain.ManagerLink{UserID: u.ID, ManagerID: mid, Position: i})
		}
		if len(links) == 0 {
			u.Managers = nil
			return nil
		}
		if err := tx.Create(&links).Error; err != nil {
			return err
		}
		u.Managers = links
		return nil
	})
}

func (r *UserRepository) Delete(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", u.ID).Delete(&userDomain.ManagerLink{}).Error; err != nil {
			return err
		}
		return tx.Delete(u).Error
	})
}
