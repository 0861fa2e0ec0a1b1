package company

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("company not found")
	ErrNameTaken = errors.New("a company with this name is already registered")
)

type Company struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	CompanyID string    `gorm:"column:company_id;type:char(32);not null;uniqueIndex" json:"company_id"`
	Name      string    `gorm:"column:name;size:255;not null;uniqueIndex" json:"name"`
	Country   string    `gorm:"column:country;size:128;not null" json:"country"`
	// ISO-4217 reporting currency, uppercase
	DefaultCurrency string    `gorm:"column:default_currency;type:char(3);not null" json:"default_currency"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Company) TableName() string { return "companies" }
