package approvalrule

import (
	"time"
)

type RuleType string

const (
	RuleTypePercentage RuleType = "Percentage"
	RuleTypeSpecific   RuleType = "Specific"
	RuleTypeHybridOr   RuleType = "HybridOr"
	RuleTypeHybridAnd  RuleType = "HybridAnd"
)

func (t RuleType) Valid() bool {
	switch t {
	case RuleTypePercentage, RuleTypeSpecific, RuleTypeHybridOr, RuleTypeHybridAnd:
		return true
	}
	return false
}

// ApprovalRule models configurable approval chains as data. The decision
// engine currently runs a single-approver hop and does not evaluate these;
// they are stored for administration and future multi-hop routing.
type ApprovalRule struct {
	ID                uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	RuleID            string         `gorm:"column:rule_id;type:char(32);not null;uniqueIndex" json:"rule_id"`
	Name              string         `gorm:"column:name;size:255;not null" json:"name"`
	CompanyID         uint64         `gorm:"column:company_id;not null;index" json:"-"`
	IsManagerApprover bool           `gorm:"column:is_manager_approver;not null;default:true" json:"is_manager_approver"`
	Steps             []ApproverStep `gorm:"foreignKey:RuleID;references:ID" json:"sequential_approvers"`
	RuleType          *RuleType      `gorm:"column:rule_type;size:16" json:"rule_type,omitempty"`
	// 1..100 when RuleType is Percentage/Hybrid*
	Percentage *int `gorm:"column:percentage" json:"percentage,omitempty"`
	// Public user_id for Specific/Hybrid* rules
	SpecificApproverID *string   `gorm:"column:specific_approver_id;type:char(32)" json:"specific_approver_id,omitempty"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ApprovalRule) TableName() string { return "approval_rules" }

type ApproverStep struct {
	ID       uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	RuleID   uint64 `gorm:"column:rule_id;not null;index" json:"-"`
	Sequence int    `gorm:"column:sequence;not null" json:"sequence"`
	// Public user_id of the step's approver
	ApproverID string `gorm:"column:approver_id;type:char(32);not null" json:"approver_id"`
}

func (ApproverStep) TableName() string { return "approval_rule_steps" }
