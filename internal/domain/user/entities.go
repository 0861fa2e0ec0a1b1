package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("a user with this email already exists")
)

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// CanReviewQueues reports whether the role may see approval/team views.
// Queue visibility is role-based; acting on an expense is not (that is
// enforced per-expense by approver identity).
func (r Role) CanReviewQueues() bool {
	return r == RoleAdmin || r == RoleManager
}

type User struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	UserID            string `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_users_user_id_active" json:"user_id"`
	Name              string `gorm:"column:name;size:255;not null" json:"name"`
	Email             string `gorm:"column:email;size:255;not null;uniqueIndex:ux_users_email_active" json:"email"`
	PasswordHash      string `gorm:"column:password_hash;size:255;not null" json:"-"`
	Role              Role   `gorm:"column:role;type:enum('Admin','Manager','Employee');not null" json:"role"`
	TemporaryPassword bool   `gorm:"column:temporary_password;not null;default:true" json:"temporary_password"`
	CompanyID         uint64 `gorm:"column:company_id;not null;index" json:"-"`
	// Ordered approver assignments; index 0 is the primary approver.
	Managers  []ManagerLink  `gorm:"foreignKey:UserID;references:ID" json:"managers,omitempty"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (User) TableName() string { return "users" }

// ManagerLink is one entry of a user's ordered manager list. The list is
// caller-assigned priority order; only position 0 is consulted when routing a
// new expense (see usecase/expense). The full list is kept for future
// multi-hop chains.
type ManagerLink struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UserID uint64 `gorm:"column:user_id;not null;index" json:"-"`
	// Public user_id of the manager
	ManagerID string `gorm:"column:manager_id;type:char(32);not null;index" json:"manager_id"`
	Position  int    `gorm:"column:position;not null" json:"position"`
}

func (ManagerLink) TableName() string { return "user_managers" }

// ManagerIDs returns the manager list in priority order.
func (u *User) ManagerIDs() []string {
	out := make([]string, len(u.Managers))
	for i, m := range u.Managers {
		out[i] = m.ManagerID
	}
	return out
}
