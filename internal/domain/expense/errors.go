package expense

import "errors"

var (
	// ErrInvalidInput covers malformed creation requests ("Other" without a
	// reason, non-positive amount, missing fields).
	ErrInvalidInput = errors.New("invalid expense input")

	// ErrNotFoundOrForbidden deliberately collapses "no such expense" and
	// "you are not the current approver" into one signal so callers cannot
	// probe which expenses exist.
	ErrNotFoundOrForbidden = errors.New("expense not found or you are not the current approver")

	// ErrConflict means the conditional decision update lost a race with
	// another decision; the caller must refresh before retrying.
	ErrConflict = errors.New("expense was decided concurrently, refresh and retry")
)
