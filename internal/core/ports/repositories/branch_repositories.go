package repositories

import "context"

// BranchReader resolves branches referenced by ledgers.
type BranchReader interface {
	// BranchExists reports whether a branch with the given ID exists.
	BranchExists(ctx context.Context, branchID int64) (bool, error)
}
