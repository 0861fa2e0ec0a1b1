package mysql

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	domain "expense-approval-service/internal/domain/user"
	"expense-approval-service/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type userSQLite struct {
	ID                uint64         `gorm:"primaryKey;column:id"`
	UserID            string         `gorm:"size:32;column:user_id;uniqueIndex"`
	Name              string         `gorm:"column:name"`
	Email             string         `gorm:"column:email;uniqueIndex"`
	PasswordHash      string         `gorm:"column:password_hash"`
	Role              string         `gorm:"type:text;column:role"` // ← no enum
	TemporaryPassword bool           `gorm:"column:temporary_password"`
	CompanyID         uint64         `gorm:"column:company_id;index"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (userSQLite) TableName() string { return "users" }

type managerLinkSQLite struct {
	ID        uint64 `gorm:"primaryKey;column:id"`
	UserID    uint64 `gorm:"column:user_id;index"`
	ManagerID string `gorm:"size:32;column:manager_id;index"`
	Position  int    `gorm:"column:position"`
}

func (managerLinkSQLite) TableName() string { return "user_managers" }

func openUserTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userSQLite{}, &managerLinkSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeUser(email string, role domain.Role) *domain.User {
	return &domain.User{
		UserID:       id.NewID32(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$hash",
		Role:         role,
		CompanyID:    1,
	}
}

func TestUserCreateAndGetByUserID(t *testing.T) {
	db := openUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := makeUser("eve@example.com", domain.RoleEmployee)
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("Create did not set auto-increment ID")
	}

	got, err := repo.GetByUserID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if got.Email != u.Email || got.Role != domain.RoleEmployee {
		t.Errorf("unexpected user: %+v", got)
	}

	if _, err := repo.GetByUserID(ctx, id.NewID32()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestReplaceManagers_KeepsPriorityOrder(t *testing.T) {
	db := openUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := makeUser("eve@example.com", domain.RoleEmployee)
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	first := []string{id.NewID32(), id.NewID32()}
	if err := repo.ReplaceManagers(ctx, u, first); err != nil {
		t.Fatalf("ReplaceManagers: %v", err)
	}

	got, err := repo.GetByUserID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	ids := got.ManagerIDs()
	if len(ids) != 2 || ids[0] != first[0] || ids[1] != first[1] {
		t.Fatalf("manager order = %v, want %v", ids, first)
	}

	// Replacement swaps the primary approver; the old list is fully gone.
	swapped := []string{first[1], first[0]}
	if err := repo.ReplaceManagers(ctx, u, swapped); err != nil {
		t.Fatalf("ReplaceManagers (swap): %v", err)
	}
	got, err = repo.GetByUserID(ctx, u.UserID)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	ids = got.ManagerIDs()
	if len(ids) != 2 || ids[0] != first[1] {
		t.Fatalf("primary after swap = %v, want %s first", ids, first[1])
	}

	// Clearing leaves no links behind.
	if err := repo.ReplaceManagers(ctx, u, nil); err != nil {
		t.Fatalf("ReplaceManagers (clear): %v", err)
	}
	var links int64
	if err := db.Model(&managerLinkSQLite{}).Where("user_id = ?", u.ID).Count(&links).Error; err != nil {
		t.Fatal(err)
	}
	if links != 0 {
		t.Errorf("%d stale manager links remain", links)
	}
}

func TestListManagedBy(t *testing.T) {
	db := openUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	manager := makeUser("mgr@example.com", domain.RoleManager)
	reportA := makeUser("a@example.com", domain.RoleEmployee)
	reportB := makeUser("b@example.com", domain.RoleEmployee)
	stranger := makeUser("c@example.com", domain.RoleEmployee)
	for _, u := range []*domain.User{manager, reportA, reportB, stranger} {
		if err := repo.Create(ctx, u); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.ReplaceManagers(ctx, reportA, []string{manager.UserID}); err != nil {
		t.Fatal(err)
	}
	// reportB has the manager as secondary; containment still applies.
	if err := repo.ReplaceManagers(ctx, reportB, []string{stranger.UserID, manager.UserID}); err != nil {
		t.Fatal(err)
	}

	got, err := repo.ListManagedBy(ctx, manager.UserID)
	if err != nil {
		t.Fatalf("ListManagedBy: %v", err)
	}
	var emails []string
	for _, u := range got {
		emails = append(emails, u.Email)
	}
	sort.Strings(emails)
	want := []string{"a@example.com", "b@example.com"}
	if len(emails) != 2 || emails[0] != want[0] || emails[1] != want[1] {
		t.Fatalf("managed reports = %v, want %v", emails, want)
	}
}

func TestUserDelete_RemovesManagerLinks(t *testing.T) {
	db := openUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := makeUser("eve@example.com", domain.RoleEmployee)
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.ReplaceManagers(ctx, u, []string{id.NewID32()}); err != nil {
		t.Fatal(err)
	}

	if err := repo.Delete(ctx, u); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByUserID(ctx, u.UserID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected deleted user to be gone, got %v", err)
	}
	var links int64
	if err := db.Model(&managerLinkSQLite{}).Where("user_id = ?", u.ID).Count(&links).Error; err != nil {
		t.Fatal(err)
	}
	if links != 0 {
		t.Errorf("%d manager links survived the delete", links)
	}
}
