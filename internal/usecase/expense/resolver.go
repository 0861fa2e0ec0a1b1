package expense

import (
	"expense-approval-service/internal/domain/user"
)

// ResolveInitialApprover picks who must act first on a new expense: the
// claimant's primary manager (position 0 of the ordered list), or "" when the
// claimant has no managers. An empty result is a valid outcome — the expense
// starts Pending with no active workflow — not a failure.
func ResolveInitialApprover(claimant *user.User) string {
	if claimant == nil || len(claimant.Managers) == 0 {
		return ""
	}
	return claimant.Managers[0].ManagerID
}
