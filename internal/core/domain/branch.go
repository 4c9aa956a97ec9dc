package domain

// Branch is a physical retail location, the scoping unit for every ledger.
type Branch struct {
	BranchID int64  `json:"branchID"`
	Name     string `json:"name"`
}
