package passwordreset

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("reset request not found")

// PasswordReset is a pending-action record carrying a freshly issued
// temporary credential. An administrator deletes it once the credential has
// been handed to the user out of band.
type PasswordReset struct {
	ID      uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ResetID string `gorm:"column:reset_id;type:char(32);not null;uniqueIndex" json:"reset_id"`
	// Public user_id of the affected user
	UserID            string    `gorm:"column:user_id;type:char(32);not null;index" json:"user_id"`
	UserName          string    `gorm:"column:user_name;size:255;not null" json:"user_name"`
	UserEmail         string    `gorm:"column:user_email;size:255;not null" json:"user_email"`
	TemporaryPassword string    `gorm:"column:temporary_password;size:64;not null" json:"temporary_password"`
	CompanyID         uint64    `gorm:"column:company_id;not null;index" json:"-"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PasswordReset) TableName() string { return "password_resets" }
