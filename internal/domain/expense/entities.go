package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusApproved   Status = "Approved"
	StatusRejected   Status = "Rejected"
)

// Terminal statuses are absorbing: the approver pointer is cleared for good
// and no further decisions may be appended.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type Decision string

const (
	DecisionApproved Decision = "Approved"
	DecisionRejected Decision = "Rejected"
)

func (d Decision) Valid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

type Category string

const (
	CategoryFlights       Category = "Flights"
	CategoryHotels        Category = "Hotels"
	CategoryMeals         Category = "Meals"
	CategoryTransport     Category = "Transport"
	CategorySoftware      Category = "Software"
	CategoryOfficeSupply  Category = "Office Supplies"
	CategoryEntertainment Category = "Client Entertainment"
	CategoryUtilities     Category = "Utilities"
	CategoryHealth        Category = "Health"
	CategoryOther         Category = "Other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryFlights, CategoryHotels, CategoryMeals, CategoryTransport,
		CategorySoftware, CategoryOfficeSupply, CategoryEntertainment,
		CategoryUtilities, CategoryHealth, CategoryOther:
		return true
	}
	return false
}

type Expense struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	ExpenseID   string    `gorm:"column:expense_id;type:char(32);not null;uniqueIndex" json:"expense_id"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	ExpenseDate time.Time `gorm:"column:expense_date;not null" json:"expense_date"`
	// Amount as submitted; never rounded after creation.
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	Currency    string          `gorm:"column:currency;type:char(3);not null" json:"currency"`
	Category    Category        `gorm:"column:category;size:32;not null" json:"category"`
	OtherReason string          `gorm:"column:other_reason;type:text" json:"other_reason,omitempty"`
	Status      Status          `gorm:"column:status;type:enum('Pending','In Progress','Approved','Rejected');not null;default:'Pending'" json:"status"`
	// Public user_id of the claimant
	ClaimantID string `gorm:"column:claimant_id;type:char(32);not null;index" json:"claimant_id"`
	CompanyID  uint64 `gorm:"column:company_id;not null;index" json:"-"`
	ReceiptURL string `gorm:"column:receipt_url;type:text" json:"receipt_url,omitempty"`
	// Routing rule this expense was filed under; data only, the engine does
	// not evaluate rules (single-hop policy).
	ApprovalRuleID *uint64 `gorm:"column:approval_rule_id" json:"-"`
	// Public user_id of the approver who must act next; nil when Pending or
	// terminal. Written only at creation (resolver) and by Decide.
	CurrentApproverID *string `gorm:"column:current_approver_id;type:char(32);index" json:"current_approver_id,omitempty"`
	// Append-only, serialized in insertion order.
	History   []HistoryEntry `gorm:"foreignKey:ExpenseID;references:ID" json:"approval_history"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Expense) TableName() string { return "expenses" }

// HistoryEntry is one immutable decision record. Entries are only ever
// appended, never edited or removed.
type HistoryEntry struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	ExpenseID uint64 `gorm:"column:expense_id;not null;index" json:"-"`
	// Public user_id of the deciding approver
	ApproverID string `gorm:"column:approver_id;type:char(32);not null" json:"approver_id"`
	// Display name snapshot taken at decision time
	ApproverName string    `gorm:"column:approver_name;size:255;not null" json:"approver_name"`
	Decision     Decision  `gorm:"column:decision;type:enum('Approved','Rejected');not null" json:"decision"`
	Comment      string    `gorm:"column:comment;type:text" json:"comment,omitempty"`
	DecidedAt    time.Time `gorm:"column:decided_at;not null" json:"decided_at"`
}

func (HistoryEntry) TableName() string { return "approval_history" }
